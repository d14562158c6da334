package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/russross/blackfriday/v2"

	"github.com/at-ishikawa/aiboost/internal/content"
)

// TerminalRenderer prints a chapter's Markdown AST as plain terminal text.
// Fenced blocks are handed to blocks.
type TerminalRenderer struct {
	blocks content.BlockHandler
	bold   *color.Color
	italic *color.Color
	code   *color.Color
	err    error
}

var _ blackfriday.Renderer = (*TerminalRenderer)(nil)

func NewTerminalRenderer(blocks content.BlockHandler) *TerminalRenderer {
	return &TerminalRenderer{
		blocks: blocks,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		code:   color.New(color.FgCyan),
	}
}

// Render walks doc and writes it to w as it goes, so block handlers that
// write to the same writer stay in document order.
func (r *TerminalRenderer) Render(w io.Writer, doc *content.Document) error {
	r.err = nil
	r.RenderHeader(w, doc.Root)
	doc.Root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return r.RenderNode(w, node, entering)
	})
	r.RenderFooter(w, doc.Root)
	return r.err
}

// RenderNode implements blackfriday.Renderer.
func (r *TerminalRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	switch node.Type {
	case blackfriday.Heading:
		if entering {
			_, _ = r.bold.Fprintf(w, "%s %s\n\n", strings.Repeat("#", node.Level), plainText(node))
		}
		return blackfriday.SkipChildren
	case blackfriday.Paragraph:
		if !entering {
			if node.Parent != nil && node.Parent.Type == blackfriday.Item {
				_, _ = io.WriteString(w, "\n")
			} else {
				_, _ = io.WriteString(w, "\n\n")
			}
		}
	case blackfriday.Text, blackfriday.HTMLSpan:
		_, _ = w.Write(node.Literal)
	case blackfriday.HTMLBlock:
		_, _ = w.Write(node.Literal)
		_, _ = io.WriteString(w, "\n\n")
	case blackfriday.Emph:
		if entering {
			_, _ = r.italic.Fprint(w, plainText(node))
		}
		return blackfriday.SkipChildren
	case blackfriday.Strong:
		if entering {
			_, _ = r.bold.Fprint(w, plainText(node))
		}
		return blackfriday.SkipChildren
	case blackfriday.Code:
		_, _ = r.code.Fprint(w, string(node.Literal))
	case blackfriday.Link:
		if !entering {
			fmt.Fprintf(w, " (%s)", node.Destination)
		}
	case blackfriday.Image:
		if entering {
			fmt.Fprintf(w, "[image: %s]", node.Destination)
		}
		return blackfriday.SkipChildren
	case blackfriday.Softbreak, blackfriday.Hardbreak:
		_, _ = io.WriteString(w, "\n")
	case blackfriday.HorizontalRule:
		_, _ = io.WriteString(w, "----\n\n")
	case blackfriday.BlockQuote:
		if entering {
			_, _ = io.WriteString(w, "> ")
		}
	case blackfriday.List:
		if !entering && (node.Parent == nil || node.Parent.Type != blackfriday.Item) {
			_, _ = io.WriteString(w, "\n")
		}
	case blackfriday.Item:
		if entering {
			r.writeBullet(w, node)
		}
	case blackfriday.TableCell:
		if !entering && node.Next != nil {
			_, _ = io.WriteString(w, " | ")
		}
	case blackfriday.TableRow:
		if !entering {
			_, _ = io.WriteString(w, "\n")
		}
	case blackfriday.Table:
		if !entering {
			_, _ = io.WriteString(w, "\n")
		}
	case blackfriday.CodeBlock:
		if err := content.Dispatch(content.BlockOf(node), r.blocks); err != nil && r.err == nil {
			r.err = err
		}
	}
	return blackfriday.GoToNext
}

func (r *TerminalRenderer) writeBullet(w io.Writer, item *blackfriday.Node) {
	depth := 0
	for p := item.Parent; p != nil; p = p.Parent {
		if p.Type == blackfriday.List {
			depth++
		}
	}
	indent := strings.Repeat("  ", max(depth-1, 0))
	if item.ListFlags&blackfriday.ListTypeOrdered != 0 {
		n := 1
		for prev := item.Prev; prev != nil; prev = prev.Prev {
			n++
		}
		fmt.Fprintf(w, "%s%d. ", indent, n)
		return
	}
	fmt.Fprintf(w, "%s- ", indent)
}

// RenderHeader implements blackfriday.Renderer.
func (r *TerminalRenderer) RenderHeader(io.Writer, *blackfriday.Node) {}

// RenderFooter implements blackfriday.Renderer.
func (r *TerminalRenderer) RenderFooter(io.Writer, *blackfriday.Node) {}

func plainText(node *blackfriday.Node) string {
	var b strings.Builder
	node.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && (n.Type == blackfriday.Text || n.Type == blackfriday.Code) {
			b.Write(n.Literal)
		}
		return blackfriday.GoToNext
	})
	return b.String()
}
