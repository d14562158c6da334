package content

import (
	"fmt"
	"strings"
)

// Rewrite replaces every fenced block of markdown with the output of replace.
// Text outside fenced blocks is kept as is, and an unterminated fence runs to
// the end of the document.
func Rewrite(markdown string, replace func(Block) (string, error)) (string, error) {
	var (
		out    strings.Builder
		body   strings.Builder
		fence  string
		lang   string
		inside bool
	)
	flush := func() error {
		replaced, err := replace(Block{
			Kind:     KindOf(lang),
			Language: lang,
			Body:     body.String(),
		})
		if err != nil {
			return fmt.Errorf("replace(%s) > %w", lang, err)
		}
		out.WriteString(replaced)
		body.Reset()
		return nil
	}

	for line := range strings.Lines(markdown) {
		trimmed := strings.TrimRight(line, "\r\n")
		if !inside {
			if !isFence(trimmed) {
				out.WriteString(line)
				continue
			}
			marker := strings.TrimLeft(trimmed, " ")
			fence = marker[:3]
			lang = ""
			if fields := strings.Fields(strings.TrimLeft(marker, "`~")); len(fields) > 0 {
				lang = fields[0]
			}
			inside = true
			continue
		}
		if closesFence(trimmed, fence) {
			if err := flush(); err != nil {
				return "", err
			}
			inside = false
			continue
		}
		body.WriteString(line)
	}
	if inside {
		if err := flush(); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// closesFence reports whether line is a bare run of the opening fence character.
func closesFence(line, fence string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, fence) && strings.Trim(line, fence[:1]) == ""
}
