package content

import "fmt"

// BlockHandler renders each kind of fenced block. Adding a BlockKind means
// adding a method here, so every handler has to cover it.
type BlockHandler interface {
	Code(block Block) error
	Quiz(block Block) error
	YouTube(block Block) error
	Video(block Block) error
	Submission(block Block) error
}

// Dispatch calls the one handler method matching the block kind.
func Dispatch(block Block, handler BlockHandler) error {
	switch block.Kind {
	case BlockCode:
		return handler.Code(block)
	case BlockQuiz:
		return handler.Quiz(block)
	case BlockYouTube:
		return handler.YouTube(block)
	case BlockVideo:
		return handler.Video(block)
	case BlockSubmission:
		return handler.Submission(block)
	}
	return fmt.Errorf("unknown block kind %d", block.Kind)
}
