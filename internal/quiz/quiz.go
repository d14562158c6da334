// Package quiz scores multiple-choice chapter quizzes.
package quiz

import (
	"math"
	"slices"
)

const (
	// SelfGradePassPercent is the verdict shown to the learner after a quiz.
	SelfGradePassPercent = 70
	// CompletionPassPercent is required before a chapter can be validated.
	CompletionPassPercent = 80
)

type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Points  float64  `json:"points"`
}

func (q Question) HasOption(option string) bool {
	return slices.Contains(q.Options, option)
}

// Answers maps a question index to the chosen option.
type Answers map[int]string

type Result struct {
	ScoreEarned float64
	ScoreMax    float64
	Percentage  float64
}

// Evaluate scores answers against the questions. Negative weights count as
// zero, and a quiz worth no points scores 0%.
func Evaluate(questions []Question, answers Answers) Result {
	var result Result
	for i, q := range questions {
		points := math.Max(q.Points, 0)
		result.ScoreMax += points
		if chosen, ok := answers[i]; ok && chosen == q.Answer {
			result.ScoreEarned += points
		}
	}
	if result.ScoreMax > 0 {
		result.Percentage = result.ScoreEarned / result.ScoreMax * 100
	}
	return result
}

// Score is the rounded percentage reported to the backend.
func (r Result) Score() int {
	return int(math.Round(r.Percentage))
}

func (r Result) SelfGradePassed() bool {
	return r.Percentage >= SelfGradePassPercent
}

func (r Result) CompletionPassed() bool {
	return r.Percentage >= CompletionPassPercent
}
