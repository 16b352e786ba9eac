package catalog

import "github.com/abhisek/skillbyte/internal/model"

// seedTopics is the built-in topic catalog. TotalLessons mirrors the
// seed lesson data; ListAll recomputes the count on read so the two can
// never drift.
var seedTopics = []model.Topic{
	{
		ID:           "js-foundations",
		Name:         "JavaScript Foundations",
		Icon:         "Code",
		Difficulty:   model.DifficultyBeginner,
		TotalLessons: 3,
	},
	{
		ID:           "python-essentials",
		Name:         "Python Essentials",
		Icon:         "Terminal",
		Difficulty:   model.DifficultyBeginner,
		TotalLessons: 3,
	},
	{
		ID:           "ui-design",
		Name:         "UI Design Basics",
		Icon:         "Palette",
		Difficulty:   model.DifficultyIntermediate,
		TotalLessons: 2,
	},
	{
		ID:           "data-literacy",
		Name:         "Data Literacy",
		Icon:         "BarChart",
		Difficulty:   model.DifficultyIntermediate,
		TotalLessons: 3,
	},
	{
		ID:           "focus-habits",
		Name:         "Focus & Productivity",
		Icon:         "Target",
		Difficulty:   model.DifficultyBeginner,
		TotalLessons: 2,
	},
	{
		ID:           "public-speaking",
		Name:         "Public Speaking",
		Icon:         "Mic",
		Difficulty:   model.DifficultyAdvanced,
		TotalLessons: 2,
	},
}

// SeedTopics returns a copy of the built-in topics.
func SeedTopics() []model.Topic {
	out := make([]model.Topic, len(seedTopics))
	copy(out, seedTopics)
	return out
}
