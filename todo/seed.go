package todo

import "time"

type seedTodo struct {
	id          string
	title       string
	description string
	completed   bool
	priority    Priority
	category    string
	dueInDays   *int
}

func days(n int) *int {
	return &n
}

var seedTodos = []seedTodo{
	{
		id:          "sample-1",
		title:       "プロジェクト企画書の作成",
		description: "来週の会議までに第1稿を完成させる",
		priority:    PriorityHigh,
		category:    "仕事",
		dueInDays:   days(2),
	},
	{
		id:          "sample-2",
		title:       "週次レポートの提出",
		description: "先週の進捗をまとめてメールで送付する",
		priority:    PriorityMedium,
		category:    "仕事",
		dueInDays:   days(0),
	},
	{
		id:          "sample-3",
		title:       "歯医者の予約",
		description: "3ヶ月ぶりの定期検診",
		priority:    PriorityLow,
		category:    "健康",
		dueInDays:   days(7),
	},
	{
		id:          "sample-4",
		title:       "読書: TypeScript実践ガイド",
		description: "第4章まで読み終える",
		completed:   true,
		priority:    PriorityLow,
		category:    "学習",
	},
	{
		id:          "sample-5",
		title:       "冷蔵庫の掃除",
		description: "賞味期限切れのものを処分する",
		priority:    PriorityMedium,
		category:    "家事",
		dueInDays:   days(-1),
	},
}

// SeedTodos returns the sample collection used when no valid stored data
// exists. Due dates are relative to now.
func SeedTodos(now time.Time) []Todo {
	today := DateOf(now)
	todos := make([]Todo, 0, len(seedTodos))
	for _, seed := range seedTodos {
		item := Todo{
			ID:          seed.id,
			Title:       seed.title,
			Description: seed.description,
			Completed:   seed.completed,
			Priority:    seed.priority,
			Category:    seed.category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if seed.dueInDays != nil {
			item.DueDate = DatePtr(today.AddDays(*seed.dueInDays))
		}
		todos = append(todos, item)
	}
	return todos
}
