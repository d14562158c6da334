package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/submission"
	"github.com/at-ishikawa/aiboost/internal/user"
)

func newMentorCommand() *cobra.Command {
	mentorCmd := &cobra.Command{
		Use:   "mentor",
		Short: "Review learner submissions",
	}
	mentorCmd.AddCommand(newMentorPendingCommand())
	mentorCmd.AddCommand(newMentorReviewCommand())
	return mentorCmd
}

func newMentorPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List submissions awaiting review",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if _, err := a.signedInUser(user.RoleMentor, user.RoleAdmin); err != nil {
					return err
				}
				records, err := a.client.PendingSubmissions(cmd.Context())
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No submissions awaiting review.")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "ID\tLEARNER\tCOURSE\tCHAPTER\tLINK")
				for _, r := range records {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.UserName, r.CourseID, r.ChapterID, r.Link)
				}
				_ = w.Flush()
				return nil
			})
		},
	}
}

func newMentorReviewCommand() *cobra.Command {
	var review submission.Review
	command := &cobra.Command{
		Use:   "review <submission-id>",
		Short: "Approve a submission or request a revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := review.Validate(); err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				if _, err := a.signedInUser(user.RoleMentor, user.RoleAdmin); err != nil {
					return err
				}
				record, err := a.client.ReviewSubmission(cmd.Context(), args[0], review)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Submission %s: %s\n", record.ID, record.Status.Label())
				return nil
			})
		},
	}
	command.Flags().Var(&review.Status, "status", "approved or needs_revision")
	command.Flags().StringVar(&review.Feedback, "feedback", "", "comment shown to the learner")
	return command
}
