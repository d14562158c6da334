// Package progress holds a learner's course progress and decides when a
// chapter is validated against the backend.
package progress

import (
	"slices"
)

// Progress is the backend's snapshot of a learner's progress in one course.
type Progress struct {
	CourseID          string         `json:"courseId"`
	CompletedChapters []string       `json:"completedChapters"`
	Scores            map[string]int `json:"scores,omitempty"`
	Percentage        float64        `json:"percentage"`
}

func (p Progress) IsCompleted(chapterID string) bool {
	return slices.Contains(p.CompletedChapters, chapterID)
}

// Score returns the recorded quiz score of a chapter.
func (p Progress) Score(chapterID string) (int, bool) {
	score, ok := p.Scores[chapterID]
	return score, ok
}
