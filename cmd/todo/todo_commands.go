package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amonks/todolist/internal/editor"
	"github.com/amonks/todolist/todo"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add [title...]",
	Short: "Add a todo",
	Long: `Add a todo. New todos go to the top of the list.

The title is the remaining arguments joined by spaces. With no title and no
flags, opens $EDITOR when running interactively. Use --no-edit to skip the
editor, or --edit to force it.`,
	Aliases: []string{"create", "new"},
	RunE:    runAdd,
}

var (
	addDescription string
	addCategory    string
	addDue         = newDueValue(time.Now)
	addPriority    = newPriorityValue(todo.PriorityMedium)
	addEdit        bool
	addNoEdit      bool
)

// update
var updateCmd = &cobra.Command{
	Use:   "update <id>...",
	Short: "Update one or more todos",
	Long: `Update one or more todos.

With no update flags, opens $EDITOR when running interactively (one editor
session per ID). Use --no-edit to skip the editor, or --edit to force it.`,
	Aliases: []string{"edit"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updateCategory    string
	updateDue         = newDueValue(time.Now)
	updateNoDue       bool
	updatePriority    = newPriorityValue(todo.PriorityMedium)
	updateCompleted   bool
	updateEdit        bool
	updateNoEdit      bool
)

var updateFieldFlags = []string{"title", "description", "category", "due", "no-due", "priority", "completed"}

// toggle
var toggleCmd = &cobra.Command{
	Use:     "toggle <id>...",
	Short:   "Flip the completion of one or more todos",
	Aliases: []string{"done"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runToggle,
}

// delete
var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Short:   "Delete one or more todos",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, toggleCmd, deleteCmd, showCmd)
	addDescriptionFlagAliases(addCmd, updateCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category")
	addCmd.Flags().Var(addDue, "due", "Due date (YYYY-MM-DD, today, tomorrow, +Nd)")
	addCmd.Flags().VarP(addPriority, "priority", "p", "Priority (low, medium, high)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no title)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category (empty to clear)")
	updateCmd.Flags().Var(updateDue, "due", "New due date (YYYY-MM-DD, today, tomorrow, +Nd)")
	updateCmd.Flags().BoolVar(&updateNoDue, "no-due", false, "Remove the due date")
	updateCmd.Flags().VarP(updatePriority, "priority", "p", "New priority (low, medium, high)")
	updateCmd.Flags().BoolVar(&updateCompleted, "completed", false, "Set completion (--completed=false to reopen)")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no flags)")
	updateCmd.Flags().BoolVar(&updateNoEdit, "no-edit", false, "Do not open $EDITOR")
	updateCmd.MarkFlagsMutuallyExclusive("due", "no-due")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := resolveDescriptionFlag(cmd, &addDescription, os.Stdin); err != nil {
		return err
	}

	title := strings.Join(args, " ")
	hasFlags := len(args) > 0 || hasChangedFlags(cmd, "description", "category", "due", "priority")
	useEditor := editorRequest{force: addEdit, skip: addNoEdit}.open(hasFlags, editor.IsInteractive())

	opts := todo.CreateOptions{
		Description: addDescription,
		Category:    addCategory,
		DueDate:     addDue.Date(),
		Priority:    addPriority.value,
	}

	if useEditor {
		data := editor.DefaultCreateData()
		data.Title = title
		data.Description = opts.Description
		data.Category = opts.Category
		data.Priority = string(opts.Priority)
		if opts.DueDate != nil {
			data.Due = opts.DueDate.String()
		}

		parsed, err := editor.EditTodoWithData(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToCreateOptions()
	} else if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	session, err := openSession()
	if err != nil {
		return err
	}

	created, err := session.AddTodo(title, opts)
	if err != nil {
		return err
	}

	highlight := storeHighlighter(session.Store())
	fmt.Fprintf(cmd.OutOrStdout(), "Created todo %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if err := resolveDescriptionFlag(cmd, &updateDescription, os.Stdin); err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	store := session.Store()

	ids, err := resolveIDs(store, args)
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, updateFieldFlags...)
	useEditor := editorRequest{force: updateEdit, skip: updateNoEdit}.open(hasFlags, editor.IsInteractive())
	if !useEditor && !hasFlags {
		return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
	}

	updated := make([]todo.Todo, 0, len(ids))
	for _, id := range ids {
		var opts todo.UpdateOptions
		if useEditor {
			existing, err := store.Get(id)
			if err != nil {
				return err
			}
			data := editor.DataFromTodo(existing)
			overrideEditorData(cmd, &data)

			parsed, err := editor.EditTodoWithData(data)
			if err != nil {
				return err
			}
			opts = parsed.ToUpdateOptions()
		} else {
			opts = updateOptionsFromFlags(cmd)
		}

		item, err := session.UpdateTodo(id, opts)
		if err != nil {
			return err
		}
		updated = append(updated, *item)
	}

	printTodoActionResults(cmd, store, "Updated", updated)
	return nil
}

// overrideEditorData pre-populates the editor template with any update flags.
func overrideEditorData(cmd *cobra.Command, data *editor.TodoData) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		data.Title = updateTitle
	}
	if flags.Changed("description") {
		data.Description = updateDescription
	}
	if flags.Changed("category") {
		data.Category = updateCategory
	}
	if flags.Changed("due") {
		data.Due = updateDue.String()
	}
	if flags.Changed("no-due") && updateNoDue {
		data.Due = ""
	}
	if flags.Changed("priority") {
		data.Priority = updatePriority.String()
	}
	if flags.Changed("completed") {
		data.Completed = updateCompleted
	}
}

func updateOptionsFromFlags(cmd *cobra.Command) todo.UpdateOptions {
	flags := cmd.Flags()
	var opts todo.UpdateOptions
	if flags.Changed("title") {
		opts.Title = &updateTitle
	}
	if flags.Changed("description") {
		opts.Description = &updateDescription
	}
	if flags.Changed("category") {
		opts.Category = &updateCategory
	}
	if flags.Changed("due") {
		opts.DueDate = updateDue.Date()
	}
	if flags.Changed("no-due") && updateNoDue {
		opts.ClearDueDate = true
	}
	if flags.Changed("priority") {
		priority := updatePriority.value
		opts.Priority = &priority
	}
	if flags.Changed("completed") {
		opts.Completed = &updateCompleted
	}
	return opts
}

func runToggle(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	store := session.Store()

	ids, err := resolveIDs(store, args)
	if err != nil {
		return err
	}

	highlight := storeHighlighter(store)
	for _, id := range ids {
		item, err := session.ToggleTodo(id)
		if err != nil {
			return err
		}
		verb := "Reopened"
		if item.Completed {
			verb = "Completed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", verb, highlight(item.ID), item.Title)
	}
	return nil
}

// runDelete removes each todo. An ID that matches nothing is reported and
// skipped; an ambiguous prefix is still an error.
func runDelete(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	store := session.Store()
	highlight := storeHighlighter(store)

	for _, arg := range args {
		id, err := store.Resolve(arg)
		if errors.Is(err, todo.ErrTodoNotFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "No todo matches %s\n", arg)
			continue
		}
		if err != nil {
			return err
		}

		item, err := store.Get(id)
		if err != nil {
			return err
		}
		label := highlight(id)

		removed, err := session.DeleteTodo(id)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s\n", label, item.Title)
		}
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	store := session.Store()

	ids, err := resolveIDs(store, args)
	if err != nil {
		return err
	}

	todos := make([]todo.Todo, 0, len(ids))
	for _, id := range ids {
		item, err := store.Get(id)
		if err != nil {
			return err
		}
		todos = append(todos, *item)
	}

	if showJSON {
		return encodeJSON(cmd.OutOrStdout(), todos)
	}

	out := cmd.OutOrStdout()
	theme := themeFor(session)
	highlight := storeHighlighter(store)
	now := time.Now()
	for i, item := range todos {
		if i > 0 {
			fmt.Fprintln(out, "---")
		}
		fmt.Fprint(out, formatTodoDetail(item, highlight, theme, now))
	}
	return nil
}

// resolveIDs expands each argument, an exact ID or unique prefix, to a full ID.
func resolveIDs(store *todo.Store, args []string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := store.Resolve(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printTodoActionResults(cmd *cobra.Command, store *todo.Store, action string, todos []todo.Todo) {
	highlight := storeHighlighter(store)
	for _, item := range todos {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", action, highlight(item.ID), item.Title)
	}
}
