// Package spell checks text against a dictionary.
//
// Text passes through three stages. Phrases are blanked out, Chunkers cut
// what remains into checkable chunks, and each whitespace-separated unit of
// a chunk is either dropped by a Filter or, once Strippers have cut out the
// placeholders they match, split into words that are looked up in the
// dictionary.
package spell

import (
	"strings"
	"unicode"

	"github.com/sagerenn/pospell/internal/dict"
)

// Chunker splits text into the parts that should be spellchecked.
type Chunker interface {
	Chunk(text string) []string
}

// Filter excludes a whitespace-separated unit from checking.
type Filter interface {
	Match(unit string) bool
}

// Stripper is a Filter that also removes the parts it matches from units
// it does not exclude whole.
type Stripper interface {
	Filter
	Strip(unit string) string
}

// Options is the tokenizer and filter configuration of a Checker.
type Options struct {
	Chunkers []Chunker
	Filters  []Filter
	// Phrases are removed verbatim before chunking.
	Phrases []string
}

type Checker struct {
	dict dict.Dictionary
	opts Options
}

func NewChecker(d dict.Dictionary, opts Options) *Checker {
	if len(opts.Chunkers) == 0 {
		opts.Chunkers = []Chunker{TextChunker{}}
	}
	return &Checker{dict: d, opts: opts}
}

func (c *Checker) Dictionary() dict.Dictionary {
	return c.dict
}

// Check returns the words of text missing from the dictionary, each once,
// in order of first appearance.
func (c *Checker) Check(text string) []string {
	for _, p := range c.opts.Phrases {
		if p != "" {
			text = strings.ReplaceAll(text, p, " ")
		}
	}
	chunks := []string{text}
	for _, ch := range c.opts.Chunkers {
		var next []string
		for _, s := range chunks {
			next = append(next, ch.Chunk(s)...)
		}
		chunks = next
	}

	var out []string
	seen := make(map[string]bool)
	for _, chunk := range chunks {
		for _, unit := range strings.Fields(chunk) {
			if c.filtered(unit) {
				continue
			}
			for _, w := range Words(c.strip(unit)) {
				if seen[w] || c.dict.Check(w) {
					continue
				}
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

func (c *Checker) strip(unit string) string {
	for _, f := range c.opts.Filters {
		if s, ok := f.(Stripper); ok {
			unit = s.Strip(unit)
		}
	}
	return unit
}

func (c *Checker) filtered(unit string) bool {
	for _, f := range c.opts.Filters {
		if f.Match(unit) {
			return true
		}
	}
	return false
}

// Words splits a unit into letter runs. Apostrophes between letters stay
// inside a word; runs touching a digit are dropped.
func Words(unit string) []string {
	var out []string
	rs := []rune(unit)
	start := -1
	digit := false
	flush := func(end int) {
		if start >= 0 && !digit {
			out = append(out, string(rs[start:end]))
		}
		start = -1
		digit = false
	}
	for i, r := range rs {
		switch {
		case unicode.IsLetter(r) || unicode.IsMark(r):
			if start < 0 {
				start = i
			}
		case unicode.IsDigit(r):
			if start < 0 {
				start = i
			}
			digit = true
		case isApostrophe(r) && start >= 0 && i+1 < len(rs) && unicode.IsLetter(rs[i+1]):
		default:
			flush(i)
		}
	}
	flush(len(rs))
	return out
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
