package content

import (
	"iter"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Heading struct {
	Level    int
	Text     string
	AnchorID string
}

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	nonWordPattern = regexp.MustCompile(`\W+`)
	lower          = cases.Lower(language.Und)
)

// Anchor lowercases text and replaces each run of non-word characters with a hyphen.
func Anchor(text string) string {
	return nonWordPattern.ReplaceAllString(lower.String(text), "-")
}

// Headings lazily scans markdown for ATX headings. Lines inside fenced code
// blocks are not headings.
func Headings(markdown string) iter.Seq[Heading] {
	return func(yield func(Heading) bool) {
		inFence := false
		for line := range strings.Lines(markdown) {
			line = strings.TrimRight(line, "\r\n")
			if isFence(line) {
				inFence = !inFence
				continue
			}
			if inFence {
				continue
			}
			m := headingPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			text := strings.TrimSpace(m[2])
			if !yield(Heading{
				Level:    len(m[1]),
				Text:     text,
				AnchorID: Anchor(text),
			}) {
				return
			}
		}
	}
}

// TableOfContents collects every heading of markdown.
func TableOfContents(markdown string) []Heading {
	return slices.Collect(Headings(markdown))
}

func isFence(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	return len(line)-len(trimmed) < 4 &&
		(strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"))
}
