package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/aiboost/internal/course"
)

func TestStaticSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/go-101/chapter-2.md":
			_, _ = w.Write([]byte("# Interfaces\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	source := NewStaticSource(server.URL + "/content/")
	assert.Equal(t, server.URL+"/content/go-101/chapter-2.md", source.URL("go-101", course.Chapter{Position: 2}))

	got, err := source.Fetch(context.Background(), "go-101", course.Chapter{ID: "ch-2", Position: 2})
	require.NoError(t, err)
	assert.Equal(t, "# Interfaces\n", got)

	_, err = source.Fetch(context.Background(), "go-101", course.Chapter{ID: "ch-9", Position: 9})
	assert.ErrorContains(t, err, "unexpected status 404")
}

type contentFetcherFunc func(ctx context.Context, courseID, chapterID string) (string, error)

func (f contentFetcherFunc) ChapterContent(ctx context.Context, courseID, chapterID string) (string, error) {
	return f(ctx, courseID, chapterID)
}

func TestAPISource_Fetch(t *testing.T) {
	source := NewAPISource(contentFetcherFunc(func(_ context.Context, courseID, chapterID string) (string, error) {
		if chapterID == "ch-1" {
			return "# " + courseID + "\n", nil
		}
		return "", errors.New("not found")
	}))

	got, err := source.Fetch(context.Background(), "go-101", course.Chapter{ID: "ch-1"})
	require.NoError(t, err)
	assert.Equal(t, "# go-101\n", got)

	_, err = source.Fetch(context.Background(), "go-101", course.Chapter{ID: "ch-2"})
	assert.ErrorContains(t, err, "not found")
}
