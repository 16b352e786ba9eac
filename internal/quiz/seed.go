package quiz

import "github.com/abhisek/skillbyte/internal/model"

// seedQuizzes attaches a quiz to a subset of the built-in lessons.
// Lessons without an entry here simply have no quiz — that is a valid
// state, not a gap in the data.
var seedQuizzes = []model.Quiz{
	{
		ID:       "quiz-js-variables",
		LessonID: "js-variables",
		Questions: []model.Question{
			{
				Text:          "Which declaration should you reach for by default?",
				Options:       []string{"var", "let", "const", "function"},
				CorrectAnswer: 2,
				Explanation:   "const signals the binding never changes; use let only when reassignment is needed.",
			},
			{
				Text:          "In JavaScript, what carries the type?",
				Options:       []string{"The variable", "The value", "The declaration keyword", "The scope"},
				CorrectAnswer: 1,
				Explanation:   "Variables are untyped labels; the values they point at have types.",
			},
		},
	},
	{
		ID:       "quiz-js-arrays",
		LessonID: "js-arrays",
		Questions: []model.Question{
			{
				Text:          "Which method keeps only the elements matching a condition?",
				Options:       []string{"map", "filter", "reduce", "forEach"},
				CorrectAnswer: 1,
				Explanation:   "filter returns a new array containing the elements the predicate accepted.",
			},
			{
				Text:          "What does map return?",
				Options:       []string{"The same array, mutated", "A single folded value", "A new array of transformed elements", "Nothing"},
				CorrectAnswer: 2,
				Explanation:   "map builds a new array by applying the callback to each element.",
			},
			{
				Text:          "Which method folds an array into one result?",
				Options:       []string{"filter", "concat", "slice", "reduce"},
				CorrectAnswer: 3,
				Explanation:   "reduce accumulates across elements into a single value.",
			},
		},
	},
	{
		ID:       "quiz-py-syntax",
		LessonID: "py-syntax",
		Questions: []model.Question{
			{
				Text:          "What defines a block in Python?",
				Options:       []string{"Curly braces", "Indentation", "Semicolons", "Parentheses"},
				CorrectAnswer: 1,
				Explanation:   "Python's block structure is the indentation itself.",
			},
			{
				Text:          "How many spaces per indentation level does convention use?",
				Options:       []string{"Two", "Three", "Four", "Eight"},
				CorrectAnswer: 2,
			},
		},
	},
	{
		ID:       "quiz-py-collections",
		LessonID: "py-collections",
		Questions: []model.Question{
			{
				Text:          "You keep searching a list for an item by its name. What should you use instead?",
				Options:       []string{"A tuple", "A longer list", "A dict keyed by name", "A set of names"},
				CorrectAnswer: 2,
				Explanation:   "A dict gives direct lookup by key instead of a linear scan.",
			},
			{
				Text:          "What does a list comprehension produce?",
				Options:       []string{"A generator", "A new list", "An iterator over the old list", "A sorted copy"},
				CorrectAnswer: 1,
			},
		},
	},
	{
		ID:       "quiz-design-hierarchy",
		LessonID: "design-hierarchy",
		Questions: []model.Question{
			{
				Text:          "How many primary actions should a screen have?",
				Options:       []string{"One", "Two", "Three", "As many as fit"},
				CorrectAnswer: 0,
				Explanation:   "A single primary action keeps the hierarchy unambiguous.",
			},
			{
				Text:          "What happens when everything on a page is bold?",
				Options:       []string{"The page looks confident", "Nothing stands out", "Users read faster", "Contrast improves"},
				CorrectAnswer: 1,
			},
		},
	},
	{
		ID:       "quiz-data-mean-median",
		LessonID: "data-mean-median",
		Questions: []model.Question{
			{
				Text:          "Which statistic is dragged most by a few extreme outliers?",
				Options:       []string{"Median", "Mode", "Mean", "Range midpoint"},
				CorrectAnswer: 2,
				Explanation:   "Every value feeds the mean, so extremes pull it; the median only cares about the middle.",
			},
			{
				Text:          "House prices in a city are heavily skewed by a few mansions. Which average better describes a typical house?",
				Options:       []string{"Mean", "Median", "Sum", "Standard deviation"},
				CorrectAnswer: 1,
			},
		},
	},
	{
		ID:       "quiz-data-correlation",
		LessonID: "data-correlation",
		Questions: []model.Question{
			{
				Text:          "Ice cream sales and drowning deaths rise together each summer. What is the most likely explanation?",
				Options:       []string{"Ice cream causes drowning", "Drowning causes ice cream sales", "Hot weather drives both", "Coincidence over decades"},
				CorrectAnswer: 2,
				Explanation:   "A confounder — temperature — moves both measures.",
			},
			{
				Text:          "What establishes causation rather than mere correlation?",
				Options:       []string{"A larger sample", "Controlled comparison", "A stronger correlation coefficient", "Longer observation"},
				CorrectAnswer: 1,
			},
		},
	},
	{
		ID:       "quiz-focus-deep-work",
		LessonID: "focus-deep-work",
		Questions: []model.Question{
			{
				Text:          "Why does fragmenting the day hurt hard work disproportionately?",
				Options:       []string{"Meetings are boring", "Attention takes time to settle", "Tasks expand to fill time", "Email is distracting"},
				CorrectAnswer: 1,
				Explanation:   "Each interruption resets the settling time attention needs before deep work starts.",
			},
			{
				Text:          "How should a deep work block be treated?",
				Options:       []string{"As free time", "As optional", "As an appointment", "As overtime"},
				CorrectAnswer: 2,
			},
		},
	},
	{
		ID:       "quiz-speak-structure",
		LessonID: "speak-structure",
		Questions: []model.Question{
			{
				Text:          "What should a talk lead with?",
				Options:       []string{"An agenda slide", "The one thing to remember", "Speaker credentials", "A joke"},
				CorrectAnswer: 1,
			},
			{
				Text:          "When should slides be made?",
				Options:       []string{"First, to find the story", "After the structure exists", "During rehearsal", "Never"},
				CorrectAnswer: 1,
				Explanation:   "Slides illustrate a structure that must already exist.",
			},
		},
	},
}

// SeedQuizzes returns a copy of the built-in quizzes.
func SeedQuizzes() []model.Quiz {
	out := make([]model.Quiz, len(seedQuizzes))
	copy(out, seedQuizzes)
	return out
}
