package spell

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// TextChunker passes text through unchanged.
type TextChunker struct{}

func (TextChunker) Chunk(text string) []string {
	return []string{text}
}

// HTMLChunker keeps the text nodes of markup and drops tags and attributes.
type HTMLChunker struct{}

func (HTMLChunker) Chunk(text string) []string {
	if !strings.ContainsAny(text, "<&") {
		return []string{text}
	}
	z := html.NewTokenizer(strings.NewReader(text))
	var out []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			return out
		case html.TextToken:
			if s := string(z.Text()); strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	}
}

// ChunkerByName maps a configured name to a Chunker.
func ChunkerByName(name string) (Chunker, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return TextChunker{}, nil
	case "html":
		return HTMLChunker{}, nil
	default:
		return nil, fmt.Errorf("unknown chunker %q", name)
	}
}
