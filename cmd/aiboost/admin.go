package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/course"
	"github.com/at-ishikawa/aiboost/internal/spreadsheet"
	"github.com/at-ishikawa/aiboost/internal/user"
)

func newAdminCommand() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage users, courses and chapters",
	}
	adminCmd.AddCommand(newAdminUsersCommand())
	adminCmd.AddCommand(newAdminCoursesCommand())
	adminCmd.AddCommand(newAdminChaptersCommand())
	return adminCmd
}

// withAdmin is withApp for commands restricted to administrators.
func withAdmin(cmd *cobra.Command, f func(a *app) error) error {
	return withApp(cmd.Context(), func(a *app) error {
		if _, err := a.signedInUser(user.RoleAdmin); err != nil {
			return err
		}
		return f(a)
	})
}

func newAdminUsersCommand() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	usersCmd.AddCommand(newAdminUsersListCommand())
	usersCmd.AddCommand(newAdminUsersCreateCommand())
	usersCmd.AddCommand(newAdminUsersUpdateCommand())
	usersCmd.AddCommand(newAdminUsersDeleteCommand())
	usersCmd.AddCommand(newAdminUsersSuspendCommand())
	usersCmd.AddCommand(newAdminUsersExportCommand())
	return usersCmd
}

func newAdminUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(a *app) error {
				users, err := a.client.Users(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSUSPENDED")
				for _, u := range users {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.Role, u.Suspended)
				}
				_ = w.Flush()
				return nil
			})
		},
	}
}

func addUserFormFlags(cmd *cobra.Command, form *user.UserForm) {
	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "initial password, at least 8 characters")
	cmd.Flags().Var(&form.Role, "role", "learner, mentor or admin")
}

func newAdminUsersCreateCommand() *cobra.Command {
	form := user.UserForm{Role: user.RoleLearner}
	command := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(form); err != nil {
				return err
			}
			return withAdmin(cmd, func(a *app) error {
				created, err := a.client.CreateUser(cmd.Context(), form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", created.ID, created.Email)
				return nil
			})
		},
	}
	addUserFormFlags(command, &form)
	return command
}

func newAdminUsersUpdateCommand() *cobra.Command {
	var form user.UserForm
	command := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Update a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(form); err != nil {
				return err
			}
			return withAdmin(cmd, func(a *app) error {
				updated, err := a.client.UpdateUser(cmd.Context(), args[0], form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s (%s)\n", updated.ID, updated.Email)
				return nil
			})
		},
	}
	addUserFormFlags(command, &form)
	return command
}

func newAdminUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(a *app) error {
				if err := a.client.DeleteUser(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
				return nil
			})
		},
	}
}

func newAdminUsersSuspendCommand() *cobra.Command {
	var lift bool
	command := &cobra.Command{
		Use:   "suspend <user-id>",
		Short: "Suspend a user account, or lift the suspension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(a *app) error {
				updated, err := a.client.SuspendUser(cmd.Context(), args[0], !lift)
				if err != nil {
					return err
				}
				state := "active"
				if updated.Suspended {
					state = "suspended"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %s is %s\n", updated.ID, state)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&lift, "lift", false, "lift the suspension instead")
	return command
}

func newAdminUsersExportCommand() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export user accounts to an Excel file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(a *app) error {
				users, err := a.client.Users(cmd.Context())
				if err != nil {
					return err
				}
				path := output
				if path == "" {
					path = filepath.Join(a.cfg.Outputs.ExportDirectory, "users.xlsx")
				}
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
				}
				if err := spreadsheet.WriteUsers(path, users); err != nil {
					return fmt.Errorf("spreadsheet.WriteUsers() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d users to %s\n", len(users), path)
				return nil
			})
		},
	}
	command.Flags().StringVarP(&output, "output", "o", "", "output file (default is users.xlsx in the export directory)")
	return command
}

func newAdminCoursesCommand() *cobra.Command {
	coursesCmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage courses",
	}
	coursesCmd.AddCommand(newAdminCoursesCreateCommand())
	coursesCmd.AddCommand(newAdminCoursesUpdateCommand())
	coursesCmd.AddCommand(newAdminCoursesDeleteCommand())
	return coursesCmd
}

func addCourseFormFlags(cmd *cobra.Command, form *course.CourseForm) {
	cmd.Flags().StringVar(&form.Title, "title", "", "course title")
	cmd.Flags().StringVar(&form.Description, "description", "", "course description")
	cmd.Flags().StringVar(&form.Category, "category", "", "course category")
	cmd.Flags().StringSliceVar(&form.Tags, "tags", nil, "comma separated tags")
	cmd.Flags().Float64Var(&form.Price, "price", 0, "price, 0 for a free course")
}

func newAdminCoursesCreateCommand() *cobra.Command {
	var form course.CourseForm
	command := &cobra.Command{
		Use:   "create",
		Short: "Create a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(form); err != nil {
				return err
			}
			return withAdmin(cmd, func(a *app) error {
				created, err := a.client.CreateCourse(cmd.Context(), form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created course %s\n", created.ID)
				return nil
			})
		},
	}
	addCourseFormFlags(command, &form)
	return command
}

func newAdminCoursesUpdateCommand() *cobra.Command {
	var form course.CourseForm
	command := &cobra.Command{
		Use:   "update <course-id>",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(form); err != nil {
				return err
			}
			return withAdmin(cmd, func(a *app) error {
				updated, err := a.client.UpdateCourse(cmd.Context(), args[0], form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated course %s\n", updated.ID)
				return nil
			})
		},
	}
	addCourseFormFlags(command, &form)
	return command
}

func newAdminCoursesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <course-id>",
		Short: "Delete a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(a *app) error {
				if err := a.client.DeleteCourse(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %s\n", args[0])
				return nil
			})
		},
	}
}

func newAdminChaptersCommand() *cobra.Command {
	chaptersCmd := &cobra.Command{
		Use:   "chapters",
		Short: "Manage the chapters of a course",
	}
	chaptersCmd.AddCommand(newAdminChaptersCreateCommand())
	chaptersCmd.AddCommand(newAdminChaptersUpdateCommand())
	chaptersCmd.AddCommand(newAdminChaptersDeleteCommand())
	return chaptersCmd
}

// chapterFormFlags holds the flags of chapter create and update. The
// content is read from a Markdown file.
type chapterFormFlags struct {
	form        course.ChapterForm
	contentFile string
}

func (f *chapterFormFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.form.Title, "title", "", "chapter title")
	cmd.Flags().IntVar(&f.form.Position, "position", 0, "position in the course, starting at 1")
	cmd.Flags().StringVar(&f.contentFile, "content-file", "", "Markdown file with the chapter content")
	cmd.Flags().BoolVar(&f.form.RequiresSubmission, "requires-submission", false, "completion needs an approved submission")
}

func (f *chapterFormFlags) build() (course.ChapterForm, error) {
	form := f.form
	if f.contentFile != "" {
		contents, err := os.ReadFile(f.contentFile)
		if err != nil {
			return form, fmt.Errorf("os.ReadFile(%s) > %w", f.contentFile, err)
		}
		form.Content = strings.TrimSpace(string(contents)) + "\n"
	}
	if err := validateForm(form); err != nil {
		return form, err
	}
	return form, nil
}

func newAdminChaptersCreateCommand() *cobra.Command {
	var flags chapterFormFlags
	command := &cobra.Command{
		Use:   "create <course-id>",
		Short: "Add a chapter to a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.build()
			if err != nil {
				return err
			}
			return withAdmin(cmd, func(a *app) error {
				created, err := a.client.CreateChapter(cmd.Context(), args[0], form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created chapter %s\n", created.ID)
				return nil
			})
		},
	}
	flags.add(command)
	return command
}

func newAdminChaptersUpdateCommand() *cobra.Command {
	var flags chapterFormFlags
	command := &cobra.Command{
		Use:   "update <course-id> <chapter-id>",
		Short: "Update a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.build()
			if err != nil {
				return err
			}
			return withAdmin(cmd, func(a *app) error {
				updated, err := a.client.UpdateChapter(cmd.Context(), args[0], args[1], form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated chapter %s\n", updated.ID)
				return nil
			})
		},
	}
	flags.add(command)
	return command
}

func newAdminChaptersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <course-id> <chapter-id>",
		Short: "Delete a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(a *app) error {
				if err := a.client.DeleteChapter(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted chapter %s\n", args[1])
				return nil
			})
		},
	}
}
