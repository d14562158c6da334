package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/statistics"
)

func newProgressCommand() *cobra.Command {
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show learning progress",
	}
	progressCmd.AddCommand(newProgressShowCommand())
	return progressCmd
}

func newProgressShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [course-id]",
		Short: "Show progress in one course, or in every enrolled course",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				u, err := a.signedInUser()
				if err != nil {
					return err
				}
				courseIDs := u.EnrolledCourses
				if len(args) == 1 {
					courseIDs = args
				}
				if len(courseIDs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "You are not enrolled in any course yet.")
					return nil
				}

				summaries := make([]statistics.CourseStatistics, 0, len(courseIDs))
				for _, courseID := range courseIDs {
					c, err := a.client.Course(cmd.Context(), courseID)
					if err != nil {
						return err
					}
					p, err := a.client.Progress(cmd.Context(), courseID)
					if err != nil {
						return err
					}
					summaries = append(summaries, statistics.Summarize(*c, *p))
				}

				out := cmd.OutOrStdout()
				if len(summaries) == 1 {
					writeCourseStatistics(out, summaries[0])
					return nil
				}
				for _, summary := range summaries {
					writeCourseStatistics(out, summary)
					fmt.Fprintln(out)
				}
				total := statistics.Aggregate(summaries)
				fmt.Fprintf(out, "Total: %d/%d chapters, %d/%d courses completed\n",
					total.CompletedChapters, total.TotalChapters, total.CompletedCourses, total.Courses)
				return nil
			})
		},
	}
}

func writeCourseStatistics(out io.Writer, stats statistics.CourseStatistics) {
	fmt.Fprintf(out, "%s: %d/%d chapters (%.0f%%)\n", stats.Title, stats.Completed, stats.TotalChapters, stats.Percentage)
	if stats.AverageScore > 0 {
		fmt.Fprintf(out, "Average quiz score: %.0f%%\n", stats.AverageScore)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, chapter := range stats.Chapters {
		mark := " "
		if chapter.Completed {
			mark = "x"
		}
		score := ""
		if chapter.HasScore {
			score = fmt.Sprintf("%d%%", chapter.Score)
		}
		_, _ = fmt.Fprintf(w, "  [%s]\t%d. %s\t%s\n", mark, chapter.Chapter.Position, chapter.Chapter.Title, score)
	}
	_ = w.Flush()

	if stats.Next != nil {
		fmt.Fprintf(out, "Next: %s (aiboost chapters learn %s %s)\n", stats.Next.Title, stats.CourseID, stats.Next.ID)
	}
}
