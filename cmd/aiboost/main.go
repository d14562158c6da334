package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/api"
	"github.com/at-ishikawa/aiboost/internal/user"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aiboost",
		Short:         "Learn AIBoost courses from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./config.yml or $HOME/.config/aiboost/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newLoginCommand())
	rootCmd.AddCommand(newRegisterCommand())
	rootCmd.AddCommand(newLogoutCommand())
	rootCmd.AddCommand(newWhoamiCommand())
	rootCmd.AddCommand(newCoursesCommand())
	rootCmd.AddCommand(newChaptersCommand())
	rootCmd.AddCommand(newProgressCommand())
	rootCmd.AddCommand(newSubmissionsCommand())
	rootCmd.AddCommand(newMentorCommand())
	rootCmd.AddCommand(newAdminCommand())
	return rootCmd
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(logger)
}

// errorMessage is what the user sees for err. Permission failures are
// reported the same way whether the backend or the client refused.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrForbidden), errors.Is(err, user.ErrAccessDenied):
		return "access denied"
	case errors.Is(err, api.ErrUnauthorized):
		return "your session has expired, please run 'aiboost login' again"
	case errors.Is(err, user.ErrNotSignedIn):
		return "you are not signed in, please run 'aiboost login' first"
	}
	var responseErr *api.ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.Error()
	}
	return err.Error()
}
