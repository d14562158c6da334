package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/aiboost/internal/assets"
	"github.com/at-ishikawa/aiboost/internal/cli"
	"github.com/at-ishikawa/aiboost/internal/content"
	"github.com/at-ishikawa/aiboost/internal/lesson"
	"github.com/at-ishikawa/aiboost/internal/pdf"
)

func newChaptersCommand() *cobra.Command {
	chaptersCmd := &cobra.Command{
		Use:   "chapters",
		Short: "Read, learn and export chapters",
	}

	chaptersCmd.AddCommand(newChaptersTOCCommand())
	chaptersCmd.AddCommand(newChaptersShowCommand())
	chaptersCmd.AddCommand(newChaptersLearnCommand())
	chaptersCmd.AddCommand(newChaptersExportCommand())

	return chaptersCmd
}

func newChaptersTOCCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toc <course-id> <chapter-id>",
		Short: "Show the table of contents of a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				_, markdown, err := a.contentLoader().Load(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				for heading := range content.Headings(markdown) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s- %s (#%s)\n",
						strings.Repeat("  ", heading.Level-1), heading.Text, heading.AnchorID)
				}
				return nil
			})
		},
	}
}

func loadView(cmd *cobra.Command, a *app, courseID, chapterID string) (*lesson.View, error) {
	view, err := lesson.NewLoader(a.client, a.contentLoader()).Load(cmd.Context(), courseID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("lesson.Load() > %w", err)
	}
	return view, nil
}

func newChaptersShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id> <chapter-id>",
		Short: "Print a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if _, err := a.signedInUser(); err != nil {
					return err
				}
				view, err := loadView(cmd, a, args[0], args[1])
				if err != nil {
					return err
				}
				session := cli.NewChapterSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.client, a.client)
				return session.Render(view)
			})
		},
	}
}

func newChaptersLearnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <course-id> <chapter-id>",
		Short: "Read a chapter, take its quiz and submit your work",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				u, err := a.signedInUser()
				if err != nil {
					return err
				}
				view, err := loadView(cmd, a, args[0], args[1])
				if err != nil {
					return err
				}

				session := cli.NewChapterSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.client, a.client)
				if err := session.Run(cmd.Context(), view, u.ID); err != nil {
					return err
				}
				if next, ok := view.Next(); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "\nNext: aiboost chapters learn %s %s  (%s)\n", view.Course.ID, next.ID, next.Title)
				}
				return nil
			})
		},
	}
}

func newChaptersExportCommand() *cobra.Command {
	var (
		toPDF bool
		theme = pdf.ThemeLight
	)
	command := &cobra.Command{
		Use:   "export <course-id> <chapter-id>",
		Short: "Export a chapter as Markdown, and optionally PDF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				ctx := cmd.Context()
				c, err := a.client.Course(ctx, args[0])
				if err != nil {
					return err
				}
				chapter, markdown, err := a.contentLoader().Load(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				data, err := assets.NewChapterExport(c.Title, chapter.Title, chapter.Position, markdown)
				if err != nil {
					return fmt.Errorf("assets.NewChapterExport() > %w", err)
				}
				path, err := exportChapter(a.cfg.Outputs.ExportDirectory, a.cfg.Templates.ChapterTemplate, c.ID, data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)

				if !toPDF {
					return nil
				}
				pdfPath, err := pdf.ConvertMarkdownToPDF(path, theme)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", pdfPath)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the export to PDF")
	command.Flags().Var(&theme, "theme", "PDF theme: light or dark")
	return command
}

// createExportFunc opens the export file. Tests replace it.
var createExportFunc = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func exportChapter(directory, templatePath, courseID string, data assets.ChapterExport) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	path := filepath.Join(directory, fmt.Sprintf("%s-chapter-%d.md", courseID, data.Position))
	file, err := createExportFunc(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}

	if err := assets.WriteChapter(file, templatePath, data); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("assets.WriteChapter() > %w", err)
	}
	// The PDF step reads the file back, so a failed close must not pass silently
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("file.Close(%s) > %w", path, err)
	}
	return path, nil
}
