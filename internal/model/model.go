// Package model holds the domain records shared by the stores.
package model

import "time"

// Difficulty is the declared difficulty band of a topic or lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Topic is a subject area containing lessons.
type Topic struct {
	ID           string
	Name         string
	Icon         string
	Difficulty   Difficulty
	TotalLessons int
	IsCustom     bool
	CreatedAt    time.Time // zero for built-in topics
}

// Lesson is a single short learning unit belonging to one topic.
//
// CompletedAt is a derived annotation filled in on reads by joining the
// completed-lessons set. It is never persisted on the lesson itself.
type Lesson struct {
	ID          string
	TopicID     string
	Title       string
	Content     string
	Image       string
	Duration    string
	KeyPoints   []string
	IsCustom    bool
	GeneratedAt *time.Time

	CompletedAt *time.Time
}

// Question is a single multiple-choice question.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // zero-based index into Options
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is the optional question set attached to one lesson.
// A lesson has zero or one quiz.
type Quiz struct {
	ID        string
	LessonID  string
	Questions []Question
}

// QuizAttempt is the single stored result for a quiz. Resubmission
// replaces the prior record.
//
// Answers holds one entry per question; nil marks an unanswered question.
type QuizAttempt struct {
	QuizID      string
	Answers     []*int
	Score       int // 0-100, computed by the quiz-taking flow
	CompletedAt time.Time
}

// UserProgress is the single per-installation progress record.
type UserProgress struct {
	Streak                int
	TotalLessonsCompleted int
	OverallMastery        float64 // 0-100 running mean of quiz scores
	DailyGoal             int
	LastActiveDate        string // calendar date "2006-01-02"; "" = never active
	CompletedLessonsToday []string

	// Version increments on every persisted write so concurrent
	// read-modify-write cycles fail loudly instead of losing updates.
	Version int64
}

// DefaultProgress returns the initial progress record.
func DefaultProgress() UserProgress {
	return UserProgress{DailyGoal: 1}
}

// Settings holds the user-configured generation settings.
type Settings struct {
	APIKey        string
	SelectedModel string
}
