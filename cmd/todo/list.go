package main

import (
	"fmt"
	"time"

	"github.com/amonks/todolist/internal/listflags"
	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
	"github.com/spf13/cobra"
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List todos matching a filter.

Filter defaults come from the [list] section of the config file. The summary
line always counts the whole list, not just the shown todos.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listStatus   = newEnumValue[todo.StatusFilter]("", "status", todo.ParseStatusFilter)
	listSortBy   = newEnumValue[todo.SortKey]("", "key", todo.ParseSortKey)
	listOrder    = newEnumValue[todo.SortOrder]("", "order", todo.ParseSortOrder)
	listSearch   string
	listCategory string
	listJSON     bool
	listAll      bool
)

// categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories in first-seen order",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var categoriesJSON bool

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count todos",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(listCmd, categoriesCmd, statsCmd)
	setFlagAliases(listCmd.Flags(), listFlagAliases)

	listCmd.Flags().Var(listStatus, "status", "Filter by status (all, active, completed)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title or description substring")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by exact category (empty for uncategorized)")
	listCmd.Flags().Var(listSortBy, "sort", "Sort key (createdAt, dueDate, priority, title)")
	listCmd.Flags().Var(listOrder, "order", "Sort order (asc, desc)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listflags.AddAllFlag(listCmd, &listAll)

	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

// listFilterUpdate collects the filter flags that were set.
func listFilterUpdate(cmd *cobra.Command) todo.FilterUpdate {
	flags := cmd.Flags()
	var update todo.FilterUpdate
	if flags.Changed("status") {
		status := listStatus.value
		update.Status = &status
	}
	if listAll {
		status := todo.StatusAll
		update.Status = &status
	}
	if flags.Changed("search") {
		update.Search = &listSearch
	}
	if flags.Changed("category") {
		update.Category = &listCategory
	}
	if flags.Changed("sort") {
		key := listSortBy.value
		update.SortBy = &key
	}
	if flags.Changed("order") {
		order := listOrder.value
		update.SortOrder = &order
	}
	return update
}

func runList(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}

	filter := session.SetFilter(listFilterUpdate(cmd))
	current.logger.Debug("listing todos", "status", filter.Status, "sort", filter.SortBy, "order", filter.SortOrder)

	view := session.View()
	if listJSON {
		todos := view.Todos
		if todos == nil {
			todos = []todo.Todo{}
		}
		return encodeJSON(cmd.OutOrStdout(), todos)
	}

	out := cmd.OutOrStdout()
	if len(view.Todos) == 0 {
		fmt.Fprintln(out, "No todos found.")
	} else {
		highlight := storeHighlighter(session.Store())
		fmt.Fprint(out, formatTodoTable(view.Todos, highlight, themeFor(session), time.Now()))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: %s\n", ui.StatusLabel(filter.Status), ui.FormatStats(view.Stats))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}

	categories := session.View().Categories
	if categoriesJSON {
		return encodeJSON(cmd.OutOrStdout(), categories)
	}

	theme := themeFor(session)
	for _, category := range categories {
		fmt.Fprintln(cmd.OutOrStdout(), theme.Category(category))
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}

	stats := session.View().Stats
	if statsJSON {
		return encodeJSON(cmd.OutOrStdout(), stats)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStats(stats))
	return nil
}
