package md2quote

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter(t *testing.T) {
	ctx := context.Background()
	conv := newGoldmarkConverter()

	t.Run("basic markdown", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "# Title\n\nSome **bold** text.")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(got, "<h1") || !strings.Contains(got, "Title") {
			t.Errorf("output missing heading: %q", got)
		}
		if !strings.Contains(got, "<strong>bold</strong>") {
			t.Errorf("output missing bold: %q", got)
		}
	})

	t.Run("gfm table", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "| a | b |\n| --- | --- |\n| 1 | 2 |")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(got, "<table>") {
			t.Errorf("output missing table: %q", got)
		}
	})

	t.Run("fragment has no document shell", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "plain text")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
			t.Errorf("output is a full document: %q", got)
		}
	})

	t.Run("code block gets chroma classes", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "```go\nfunc main() {}\n```")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(got, "class=") {
			t.Errorf("output missing highlight classes: %q", got)
		}
	})

	t.Run("raw html is escaped", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "<script>alert(1)</script>")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.Contains(got, "<script>") {
			t.Errorf("raw script tag passed through: %q", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := conv.ToHTML(cancelled, "# Title")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ToHTML() error = %v, want context.Canceled", err)
		}
	})
}
