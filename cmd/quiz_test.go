package cmd

import (
	"testing"

	"github.com/abhisek/skillbyte/internal/model"
)

func twoOptionQuestions(n int) []model.Question {
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{Options: []string{"x", "y"}}
	}
	return qs
}

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers("a,B, -", twoOptionQuestions(3))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if answers[0] == nil || *answers[0] != 0 {
		t.Errorf("answers[0] = %v, want 0", answers[0])
	}
	if answers[1] == nil || *answers[1] != 1 {
		t.Errorf("answers[1] = %v, want 1 (case insensitive)", answers[1])
	}
	if answers[2] != nil {
		t.Errorf("answers[2] = %v, want nil for \"-\"", answers[2])
	}
}

func TestParseAnswersErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"too few", "a"},
		{"too many", "a,b,a,b"},
		{"out of range letter", "a,c,a"},
		{"not a letter", "a,2,a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseAnswers(tt.raw, twoOptionQuestions(3)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey(""); got != "(not set)" {
		t.Errorf("empty key = %q", got)
	}
	if got := maskKey("short"); got != "*****" {
		t.Errorf("short key = %q", got)
	}
	got := maskKey("sk-abcdefghijklmnop")
	if got != "sk-a********mnop" {
		t.Errorf("long key = %q", got)
	}
}
