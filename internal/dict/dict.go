package dict

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Dictionary answers membership queries for one language.
type Dictionary interface {
	Lang() string
	Check(word string) bool
	Len() int
	// Wordlist is the supplementary word list merged into the dictionary,
	// or "" when there is none.
	Wordlist() string
}

// Normalize maps a word to its lookup key: trimmed, NFC, case folded.
func Normalize(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(word))
}

// Words is a set of normalized words. It is read-only once handed to a Dict.
type Words struct {
	set map[string]struct{}
}

func NewWords(capacity int) *Words {
	return &Words{set: make(map[string]struct{}, capacity)}
}

// WordsFrom builds a set from already normalized keys.
func WordsFrom(keys []string) *Words {
	w := NewWords(len(keys))
	for _, k := range keys {
		w.set[k] = struct{}{}
	}
	return w
}

func (w *Words) Add(word string) {
	if key := Normalize(word); key != "" {
		w.set[key] = struct{}{}
	}
}

func (w *Words) Has(word string) bool {
	if w == nil {
		return false
	}
	_, ok := w.set[Normalize(word)]
	return ok
}

func (w *Words) Len() int {
	if w == nil {
		return 0
	}
	return len(w.set)
}

// Keys returns the normalized words in sorted order.
func (w *Words) Keys() []string {
	if w == nil {
		return nil
	}
	out := make([]string, 0, len(w.set))
	for k := range w.set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Dict is a base word set optionally extended by a word list.
type Dict struct {
	lang     string
	base     *Words
	extra    *Words
	wordlist string
}

func New(lang string, base *Words) *Dict {
	return &Dict{lang: lang, base: base}
}

// WithWordlist returns a copy of d that also accepts the words in extra.
// d and its base set are left untouched.
func (d *Dict) WithWordlist(path string, extra *Words) *Dict {
	return &Dict{lang: d.lang, base: d.base, extra: extra, wordlist: path}
}

func (d *Dict) Lang() string {
	return d.lang
}

func (d *Dict) Check(word string) bool {
	key := Normalize(word)
	if key == "" {
		return true
	}
	if _, ok := d.base.set[key]; ok {
		return true
	}
	if d.extra != nil {
		_, ok := d.extra.set[key]
		return ok
	}
	return false
}

func (d *Dict) Len() int {
	return d.base.Len() + d.extra.Len()
}

func (d *Dict) Wordlist() string {
	return d.wordlist
}
