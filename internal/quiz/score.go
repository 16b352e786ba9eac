package quiz

import (
	"math"

	"github.com/abhisek/skillbyte/internal/model"
)

// Score grades a submitted answer sheet against the quiz, returning a
// 0-100 percentage. A nil entry is an unanswered question and counts as
// wrong. Scoring lives with the quiz-taking flow, where the questions
// are already loaded — the store only persists the result.
func Score(q model.Quiz, answers []*int) int {
	if len(q.Questions) == 0 {
		return 0
	}

	correct := 0
	for i, question := range q.Questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	pct := float64(correct) / float64(len(q.Questions)) * 100
	return int(math.Round(pct))
}
