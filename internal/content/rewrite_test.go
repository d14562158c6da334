package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "no blocks",
			markdown: "# Title\n\ntext\n",
			want:     "# Title\n\ntext\n",
		},
		{
			name:     "blocks are replaced",
			markdown: "# Title\n```go\nfmt.Println()\n```\ntext\n~~~youtube\nhttps://youtu.be/x\n~~~\n",
			want:     "# Title\n[code:go:fmt.Println()\n]text\n[youtube:youtube:https://youtu.be/x\n]",
		},
		{
			name:     "inner backticks do not close a tilde fence",
			markdown: "~~~qcm\n```\n~~~\n",
			want:     "[qcm:qcm:```\n]",
		},
		{
			name:     "unterminated fence",
			markdown: "```submission\nlink\n",
			want:     "[submission:submission:link\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rewrite(tt.markdown, func(b Block) (string, error) {
				return "[" + b.Kind.String() + ":" + b.Language + ":" + b.Body + "]", nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewrite_Error(t *testing.T) {
	_, err := Rewrite("```video\nx\n```\n", func(Block) (string, error) {
		return "", errors.New("boom")
	})
	assert.ErrorContains(t, err, "boom")
}

func TestRewrite_KeepsUntouchedBlocks(t *testing.T) {
	markdown := "```go\nx := 1\n```\n"
	got, err := Rewrite(markdown, func(b Block) (string, error) {
		return "```" + b.Language + "\n" + b.Body + "```\n", nil
	})
	require.NoError(t, err)
	assert.Equal(t, markdown, got)
	assert.True(t, strings.HasSuffix(got, "```\n"))
}
