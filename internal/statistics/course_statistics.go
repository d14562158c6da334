package statistics

import (
	"github.com/at-ishikawa/aiboost/internal/course"
	"github.com/at-ishikawa/aiboost/internal/progress"
)

// ChapterStatistics is the learner's state in one chapter.
type ChapterStatistics struct {
	Chapter   course.Chapter
	Completed bool
	Score     int  // Last validated quiz score
	HasScore  bool // Score was recorded by the backend
}

// CourseStatistics summarizes the learner's progress in one course.
type CourseStatistics struct {
	CourseID      string
	Title         string
	TotalChapters int
	Completed     int
	Percentage    float64 // Completed chapters over all chapters, 0 for an empty course
	AverageScore  float64 // Average over chapters with a recorded score
	Next          *course.Chapter
	Chapters      []ChapterStatistics
}

// AggregateStatistics holds totals across courses.
type AggregateStatistics struct {
	Courses           int
	CompletedCourses  int
	TotalChapters     int
	CompletedChapters int
}

// Summarize computes the statistics of a course from a progress snapshot.
// Completed chapter ids that are not part of the course are ignored.
func Summarize(c course.Course, p progress.Progress) CourseStatistics {
	chapters := c.OrderedChapters()
	result := CourseStatistics{
		CourseID:      c.ID,
		Title:         c.Title,
		TotalChapters: len(chapters),
		Chapters:      make([]ChapterStatistics, 0, len(chapters)),
	}

	scoreSum, scored := 0, 0
	for _, chapter := range chapters {
		stats := ChapterStatistics{
			Chapter:   chapter,
			Completed: p.IsCompleted(chapter.ID),
		}
		stats.Score, stats.HasScore = p.Score(chapter.ID)
		if stats.Completed {
			result.Completed++
		} else if result.Next == nil {
			next := chapter
			result.Next = &next
		}
		if stats.HasScore {
			scoreSum += stats.Score
			scored++
		}
		result.Chapters = append(result.Chapters, stats)
	}

	if result.TotalChapters > 0 {
		result.Percentage = float64(result.Completed) * 100 / float64(result.TotalChapters)
	}
	if scored > 0 {
		result.AverageScore = float64(scoreSum) / float64(scored)
	}
	return result
}

// Aggregate sums course statistics.
func Aggregate(courses []CourseStatistics) AggregateStatistics {
	var result AggregateStatistics
	for _, c := range courses {
		result.Courses++
		result.TotalChapters += c.TotalChapters
		result.CompletedChapters += c.Completed
		if c.TotalChapters > 0 && c.Completed == c.TotalChapters {
			result.CompletedCourses++
		}
	}
	return result
}
