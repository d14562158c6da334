// Package pdf prints exported chapters to PDF.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
	"github.com/spf13/pflag"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var _ pflag.Value = (*Theme)(nil)

// Set implements pflag.Value.
func (t *Theme) Set(v string) error {
	switch Theme(v) {
	case ThemeLight, ThemeDark:
		*t = Theme(v)
		return nil
	}
	return fmt.Errorf("invalid theme %q, valid values are %q or %q", v, ThemeLight, ThemeDark)
}

// String implements pflag.Value.
func (t *Theme) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Type implements pflag.Value.
func (t *Theme) Type() string {
	return "Theme"
}

func (t Theme) mdtopdf() mdtopdf.Theme {
	if t == ThemeDark {
		return mdtopdf.DARK
	}
	return mdtopdf.LIGHT
}

// ConvertMarkdownToPDF writes a PDF next to the exported chapter at
// markdownPath and returns its absolute path.
func ConvertMarkdownToPDF(markdownPath string, theme Theme) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, theme.mdtopdf())
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
