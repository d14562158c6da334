// Package course provides course catalog models and the client-side catalog filters.
package course

import (
	"slices"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Price       float64   `json:"price"`
	Chapters    []Chapter `json:"chapters"`
}

// Chapter is immutable from the learner's perspective. Its Markdown content is
// fetched separately by position.
type Chapter struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	// RequiresSubmission marks chapters whose completion needs an approved mentor review.
	RequiresSubmission bool `json:"requiresSubmission,omitempty"`
}

// ChapterByID returns the chapter with id, or false.
func (c Course) ChapterByID(id string) (Chapter, bool) {
	for _, chapter := range c.Chapters {
		if chapter.ID == id {
			return chapter, true
		}
	}
	return Chapter{}, false
}

// OrderedChapters returns the chapters sorted by position without changing c.
func (c Course) OrderedChapters() []Chapter {
	chapters := slices.Clone(c.Chapters)
	slices.SortStableFunc(chapters, func(a, b Chapter) int {
		return a.Position - b.Position
	})
	return chapters
}

// NextChapter returns the first chapter positioned after position.
func (c Course) NextChapter(position int) (Chapter, bool) {
	for _, chapter := range c.OrderedChapters() {
		if chapter.Position > position {
			return chapter, true
		}
	}
	return Chapter{}, false
}

func (c Course) IsFree() bool {
	return c.Price == 0
}

// Enrollment is the backend's answer to an enrollment request. Paid courses
// return a checkout URL handled by the external payment provider.
type Enrollment struct {
	CourseID    string `json:"courseId"`
	Enrolled    bool   `json:"enrolled"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}
