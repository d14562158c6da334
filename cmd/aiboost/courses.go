package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/course"
)

func newCoursesCommand() *cobra.Command {
	coursesCmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse and enroll in courses",
	}

	coursesCmd.AddCommand(newCoursesListCommand())
	coursesCmd.AddCommand(newCoursesShowCommand())
	coursesCmd.AddCommand(newCoursesCategoriesCommand())
	coursesCmd.AddCommand(newCoursesTagsCommand())
	coursesCmd.AddCommand(newCoursesEnrollCommand())

	return coursesCmd
}

func newCoursesListCommand() *cobra.Command {
	var (
		filter course.Filter
		order  course.SortOrder
	)
	command := &cobra.Command{
		Use:   "list",
		Short: "List courses, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				courses, err := a.client.Courses(cmd.Context())
				if err != nil {
					return err
				}
				courses = filter.Apply(courses)
				if order != "" {
					course.SortByTitle(courses, order)
				}
				writeCourses(cmd.OutOrStdout(), courses)
				return nil
			})
		},
	}
	command.Flags().StringVar(&filter.Search, "search", "", "search in titles and descriptions")
	command.Flags().StringVar(&filter.Category, "category", "", "only courses of this category")
	command.Flags().StringVar(&filter.Tag, "tag", "", "only courses with this tag")
	command.Flags().Var(&order, "sort", "sort by title: asc or desc")
	return command
}

func writeCourses(out io.Writer, courses []course.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE")
	for _, c := range courses {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Category, formatPrice(c))
	}
	_ = w.Flush()
}

func formatPrice(c course.Course) string {
	if c.IsFree() {
		return "free"
	}
	return fmt.Sprintf("%.2f", c.Price)
}

func newCoursesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course and its chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				c, err := a.client.Course(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", c.Title, formatPrice(*c))
				fmt.Fprintf(out, "%s\n\n", c.Description)
				fmt.Fprintf(out, "Category: %s\n", c.Category)
				if len(c.Tags) > 0 {
					fmt.Fprintf(out, "Tags: %v\n", c.Tags)
				}
				if u := a.session.User(); u != nil && u.IsEnrolled(c.ID) {
					fmt.Fprintln(out, "You are enrolled in this course.")
				}

				fmt.Fprintln(out, "\nChapters:")
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, chapter := range c.OrderedChapters() {
					marker := ""
					if chapter.RequiresSubmission {
						marker = "submission"
					}
					_, _ = fmt.Fprintf(w, "  %d.\t%s\t%s\t%s\n", chapter.Position, chapter.ID, chapter.Title, marker)
				}
				_ = w.Flush()
				return nil
			})
		},
	}
}

func newCoursesCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List course categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				categories, err := a.client.Categories(cmd.Context())
				if err != nil {
					return err
				}
				for _, category := range categories {
					fmt.Fprintln(cmd.OutOrStdout(), category.Name)
				}
				return nil
			})
		},
	}
}

func newCoursesTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List course tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				tags, err := a.client.Tags(cmd.Context())
				if err != nil {
					return err
				}
				for _, tag := range tags {
					fmt.Fprintln(cmd.OutOrStdout(), tag.Name)
				}
				return nil
			})
		},
	}
}

func newCoursesEnrollCommand() *cobra.Command {
	var reference string
	command := &cobra.Command{
		Use:   "enroll <course-id>",
		Short: "Enroll in a course",
		Long: "Enroll in a free course directly. A paid course returns a checkout URL; " +
			"once paid, run the command again with --reference to confirm the enrollment.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if _, err := a.signedInUser(); err != nil {
					return err
				}

				ctx := cmd.Context()
				var (
					enrollment *course.Enrollment
					err        error
				)
				if reference != "" {
					enrollment, err = a.client.VerifyEnrollment(ctx, args[0], reference)
				} else {
					enrollment, err = a.client.Enroll(ctx, args[0])
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !enrollment.Enrolled {
					fmt.Fprintf(out, "Complete the payment at %s\n", enrollment.CheckoutURL)
					fmt.Fprintf(out, "Then run: aiboost courses enroll %s --reference <payment reference>\n", args[0])
					return nil
				}

				profile, err := a.client.Profile(ctx)
				if err != nil {
					return err
				}
				if err := a.session.UpdateUser(ctx, *profile); err != nil {
					return fmt.Errorf("session.UpdateUser() > %w", err)
				}
				fmt.Fprintf(out, "Enrolled in %s\n", args[0])
				return nil
			})
		},
	}
	command.Flags().StringVar(&reference, "reference", "", "payment reference returned by the checkout")
	return command
}
