package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/submission"
)

func newSubmissionsCommand() *cobra.Command {
	submissionsCmd := &cobra.Command{
		Use:   "submissions",
		Short: "Submit work for mentor review",
	}
	submissionsCmd.AddCommand(newSubmissionsSubmitCommand())
	submissionsCmd.AddCommand(newSubmissionsStatusCommand())
	return submissionsCmd
}

func newSubmissionsSubmitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <course-id> <chapter-id> <link>",
		Short: "Submit a link to your work",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				u, err := a.signedInUser()
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				record, err := a.client.SubmissionStatus(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				key := submission.Key{CourseID: args[0], ChapterID: args[1], UserID: u.ID}
				tracker, err := submission.NewTracker(key, record.Status, record.Feedback, a.client)
				if err != nil {
					return fmt.Errorf("submission.NewTracker() > %w", err)
				}
				if err := tracker.Submit(ctx, args[2]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Submitted. Status: %s\n", tracker.Status().Label())
				return nil
			})
		},
	}
}

func newSubmissionsStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <course-id> <chapter-id>",
		Short: "Show the review status of your submission",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if _, err := a.signedInUser(); err != nil {
					return err
				}
				record, err := a.client.SubmissionStatus(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Status: %s\n", record.Status.Label())
				if record.Link != "" {
					fmt.Fprintf(out, "Link: %s\n", record.Link)
				}
				if record.Status == submission.StatusNeedsRevision && record.Feedback != "" {
					fmt.Fprintf(out, "Mentor feedback: %s\n", record.Feedback)
				}
				return nil
			})
		},
	}
}
