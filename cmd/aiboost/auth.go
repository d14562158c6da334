package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/at-ishikawa/aiboost/internal/session"
	"github.com/at-ishikawa/aiboost/internal/user"
)

// readPasswordFunc reads a password without echoing it. Tests replace it.
var readPasswordFunc = func(prompt string, out io.Writer) (string, error) {
	fmt.Fprint(out, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("term.ReadPassword() > %w", err)
	}
	return string(password), nil
}

func newLoginCommand() *cobra.Command {
	var email string
	command := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPasswordFunc("Password: ", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			form := user.LoginForm{Email: email, Password: password}
			if err := validateForm(form); err != nil {
				return err
			}

			return withApp(cmd.Context(), func(a *app) error {
				auth, err := a.client.Login(cmd.Context(), form)
				if err != nil {
					return err
				}
				if err := a.session.Login(cmd.Context(), auth.Token, auth.User); err != nil {
					return fmt.Errorf("session.Login() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", auth.User.Name, auth.User.Role)
				return nil
			})
		},
	}
	command.Flags().StringVar(&email, "email", "", "account email")
	return command
}

func newRegisterCommand() *cobra.Command {
	var name, email string
	command := &cobra.Command{
		Use:   "register",
		Short: "Create a learner account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPasswordFunc("Password: ", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			confirmation, err := readPasswordFunc("Confirm password: ", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			form := user.RegisterForm{Name: name, Email: email, Password: password, ConfirmPassword: confirmation}
			if err := validateForm(form); err != nil {
				return err
			}

			return withApp(cmd.Context(), func(a *app) error {
				auth, err := a.client.Register(cmd.Context(), form)
				if err != nil {
					return err
				}
				if err := a.session.Login(cmd.Context(), auth.Token, auth.User); err != nil {
					return fmt.Errorf("session.Login() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", auth.User.Name)
				return nil
			})
		},
	}
	command.Flags().StringVar(&name, "name", "", "display name")
	command.Flags().StringVar(&email, "email", "", "account email")
	return command
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if err := a.session.Logout(cmd.Context()); err != nil {
					return fmt.Errorf("session.Logout() > %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	var refresh bool
	command := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				u, err := a.signedInUser()
				if err != nil {
					return err
				}
				if refresh {
					if u, err = a.client.Profile(cmd.Context()); err != nil {
						return err
					}
					if err := a.session.UpdateUser(cmd.Context(), *u); err != nil {
						return fmt.Errorf("session.UpdateUser() > %w", err)
					}
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
				fmt.Fprintf(out, "Role: %s\n", u.Role)
				fmt.Fprintf(out, "Enrolled courses: %d\n", len(u.EnrolledCourses))
				if claims, err := session.ParseClaims(a.session.Token()); err == nil && claims.ExpiresAt != nil {
					fmt.Fprintf(out, "Session expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
	command.Flags().BoolVar(&refresh, "refresh", false, "reload the profile from the backend")
	return command
}
