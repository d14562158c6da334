package content

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// BlockKind classifies a fenced block by its info string.
type BlockKind int

const (
	BlockCode BlockKind = iota
	BlockQuiz
	BlockYouTube
	BlockVideo
	BlockSubmission
)

var blockKinds = map[string]BlockKind{
	"qcm":        BlockQuiz,
	"youtube":    BlockYouTube,
	"video":      BlockVideo,
	"submission": BlockSubmission,
}

// KindOf maps a fenced block language to its kind. Unknown languages are code.
func KindOf(language string) BlockKind {
	if kind, ok := blockKinds[strings.ToLower(language)]; ok {
		return kind
	}
	return BlockCode
}

func (k BlockKind) String() string {
	switch k {
	case BlockQuiz:
		return "qcm"
	case BlockYouTube:
		return "youtube"
	case BlockVideo:
		return "video"
	case BlockSubmission:
		return "submission"
	default:
		return "code"
	}
}

// Block is a fenced block of a chapter.
type Block struct {
	Kind     BlockKind
	Language string
	Body     string
}

// Document is a parsed chapter.
type Document struct {
	Root   *blackfriday.Node
	blocks []Block
}

// Extensions are the Markdown extensions chapters are written with.
const Extensions = blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs

func Parse(markdown string) *Document {
	root := blackfriday.New(blackfriday.WithExtensions(Extensions)).Parse([]byte(markdown))
	doc := &Document{Root: root}
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && node.Type == blackfriday.CodeBlock {
			doc.blocks = append(doc.blocks, BlockOf(node))
		}
		return blackfriday.GoToNext
	})
	return doc
}

// BlockOf converts a code block node.
func BlockOf(node *blackfriday.Node) Block {
	language := ""
	if fields := strings.Fields(string(node.Info)); len(fields) > 0 {
		language = fields[0]
	}
	kind := BlockCode
	if node.IsFenced {
		kind = KindOf(language)
	}
	return Block{
		Kind:     kind,
		Language: language,
		Body:     string(node.Literal),
	}
}

func (d *Document) Blocks() []Block {
	return d.blocks
}

func (d *Document) first(kind BlockKind) (Block, bool) {
	for _, b := range d.blocks {
		if b.Kind == kind {
			return b, true
		}
	}
	return Block{}, false
}

func (d *Document) HasQuiz() bool {
	_, ok := d.first(BlockQuiz)
	return ok
}

func (d *Document) HasSubmissionBlock() bool {
	_, ok := d.first(BlockSubmission)
	return ok
}

// QuizBlock returns the first qcm block. A chapter embeds at most one.
func (d *Document) QuizBlock() (Block, bool) {
	return d.first(BlockQuiz)
}
