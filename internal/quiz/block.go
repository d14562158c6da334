package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/at-ishikawa/aiboost/schemas"
)

var ErrInvalidBlock = errors.New("invalid qcm block")

// Block is the body of a qcm fenced block.
type Block struct {
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions"`
}

type rawQuestion struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Points  *float64 `json:"points"`
}

var blockSchema = gojsonschema.NewBytesLoader(schemas.QuizBlock)

// ParseBlock validates body against the qcm schema and decodes it. Questions
// without points are worth 1.
func ParseBlock(body string) (Block, error) {
	result, err := gojsonschema.Validate(blockSchema, gojsonschema.NewStringLoader(body))
	if err != nil {
		return Block{}, fmt.Errorf("gojsonschema.Validate() > %w: %w", ErrInvalidBlock, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			messages = append(messages, e.String())
		}
		return Block{}, fmt.Errorf("%w: %s", ErrInvalidBlock, strings.Join(messages, "; "))
	}

	var raw struct {
		Title     string        `json:"title"`
		Questions []rawQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return Block{}, fmt.Errorf("json.Unmarshal() > %w", err)
	}

	block := Block{
		Title:     raw.Title,
		Questions: make([]Question, 0, len(raw.Questions)),
	}
	for i, q := range raw.Questions {
		question := Question{
			Prompt:  q.Prompt,
			Options: q.Options,
			Answer:  q.Answer,
			Points:  1,
		}
		if q.Points != nil {
			question.Points = *q.Points
		}
		if !question.HasOption(question.Answer) {
			return Block{}, fmt.Errorf("%w: question %d answer %q is not one of its options", ErrInvalidBlock, i+1, question.Answer)
		}
		block.Questions = append(block.Questions, question)
	}
	return block, nil
}
