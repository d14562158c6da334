// Package assets renders chapters into printable Markdown.
package assets

import (
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/aiboost/internal/content"
	"github.com/at-ishikawa/aiboost/internal/quiz"
)

// ChapterExport is the data of the chapter template.
type ChapterExport struct {
	CourseTitle string
	Title       string
	Position    int
	Headings    []content.Heading
	// Body is the chapter Markdown with quiz, video and submission blocks
	// rewritten as plain Markdown.
	Body string
}

// NewChapterExport prepares a chapter for printing.
func NewChapterExport(courseTitle, title string, position int, markdown string) (ChapterExport, error) {
	printer := &blockPrinter{}
	body, err := content.Rewrite(markdown, func(block content.Block) (string, error) {
		printer.out.Reset()
		if err := content.Dispatch(block, printer); err != nil {
			return "", err
		}
		return printer.out.String(), nil
	})
	if err != nil {
		return ChapterExport{}, fmt.Errorf("content.Rewrite() > %w", err)
	}
	return ChapterExport{
		CourseTitle: courseTitle,
		Title:       title,
		Position:    position,
		Headings:    content.TableOfContents(markdown),
		Body:        strings.TrimRight(body, "\n"),
	}, nil
}

func WriteChapter(output io.Writer, templatePath string, data ChapterExport) error {
	tmpl, err := ParseChapterTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseChapterTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// blockPrinter turns fenced blocks into Markdown a PDF renderer understands.
type blockPrinter struct {
	out strings.Builder
}

var _ content.BlockHandler = (*blockPrinter)(nil)

func (p *blockPrinter) Code(block content.Block) error {
	fmt.Fprintf(&p.out, "```%s\n%s```\n", block.Language, block.Body)
	return nil
}

// Quiz prints the questions and options without the answers.
func (p *blockPrinter) Quiz(block content.Block) error {
	parsed, err := quiz.ParseBlock(block.Body)
	if err != nil {
		fmt.Fprintf(&p.out, "> Quiz unavailable: %v\n", err)
		return nil
	}
	p.out.WriteString("**Quiz")
	if parsed.Title != "" {
		p.out.WriteString(": " + parsed.Title)
	}
	p.out.WriteString("**\n\n")
	for i, q := range parsed.Questions {
		fmt.Fprintf(&p.out, "%d. %s\n", i+1, q.Prompt)
		for _, option := range q.Options {
			fmt.Fprintf(&p.out, "    - [ ] %s\n", option)
		}
	}
	return nil
}

func (p *blockPrinter) YouTube(block content.Block) error {
	return p.link("Video (YouTube)", block.Body)
}

func (p *blockPrinter) Video(block content.Block) error {
	return p.link("Video", block.Body)
}

func (p *blockPrinter) link(label, body string) error {
	url := strings.TrimSpace(body)
	fmt.Fprintf(&p.out, "> %s: [%s](%s)\n", label, url, url)
	return nil
}

func (p *blockPrinter) Submission(block content.Block) error {
	p.out.WriteString("> **Submission required.**")
	if instructions := strings.TrimSpace(block.Body); instructions != "" {
		p.out.WriteString(" " + strings.ReplaceAll(instructions, "\n", "\n> "))
	}
	p.out.WriteString("\n")
	return nil
}
