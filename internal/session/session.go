// Package session assembles the spellcheck session for one resource.
package session

import (
	"fmt"

	"github.com/sagerenn/pospell/internal/dict"
	"github.com/sagerenn/pospell/internal/lang"
	"github.com/sagerenn/pospell/internal/observability"
	"github.com/sagerenn/pospell/internal/spell"
	"github.com/sagerenn/pospell/internal/wordlist"
)

// Backend opens dictionaries by language tag.
type Backend interface {
	Open(tag string) (dict.Dictionary, error)
	OpenWithWordlist(tag, path string) (dict.Dictionary, error)
}

// Outcome is the result of combining a base dictionary with a word list.
type Outcome struct {
	Dict dict.Dictionary
	// Wordlist is the list that was requested, "" when none was located.
	Wordlist string
	// Fallback is set when the word list could not be merged; Cause holds why.
	Fallback bool
	Cause    error
}

// Combine opens the dictionary for tag with the word list at wordlistPath,
// falling back to the plain dictionary when that fails. The error is only
// non-nil when the plain dictionary cannot be opened either.
func Combine(b Backend, tag lang.Tag, wordlistPath string) (Outcome, error) {
	out := Outcome{Wordlist: wordlistPath}
	if wordlistPath != "" {
		d, err := b.OpenWithWordlist(tag.String(), wordlistPath)
		if err == nil {
			out.Dict = d
			return out, nil
		}
		out.Fallback = true
		out.Cause = err
	}
	d, err := b.Open(tag.String())
	if err != nil {
		return out, fmt.Errorf("open dictionary %s: %w", tag, err)
	}
	out.Dict = d
	return out, nil
}

// Session is a dictionary and checker built for a single resource.
type Session struct {
	Resource string
	Lang     lang.Tag
	Outcome  Outcome
	Checker  *spell.Checker
}

func (s *Session) Dictionary() dict.Dictionary {
	return s.Outcome.Dict
}

// Check returns the misspelled words of text.
func (s *Session) Check(text string) []string {
	return s.Checker.Check(text)
}

type Factory struct {
	backend Backend
	opts    spell.Options
	log     *observability.Logger
}

// NewFactory returns a Factory whose sessions use opts for chunking and
// filtering.
func NewFactory(b Backend, opts spell.Options, log *observability.Logger) *Factory {
	if log == nil {
		log = observability.Discard()
	}
	return &Factory{backend: b, opts: opts, log: log}
}

// Build creates the session for resource. A word list that fails to load is
// logged and dropped; the session then uses the plain dictionary.
func (f *Factory) Build(resource string, tag lang.Tag, loc wordlist.Location) (*Session, error) {
	if tag.IsZero() {
		return nil, fmt.Errorf("session for %s: unresolved language", resource)
	}
	out, err := Combine(f.backend, tag, loc.Path)
	if err != nil {
		return nil, err
	}
	if out.Fallback {
		f.log.Warn("word list ignored, using plain dictionary",
			"resource", resource, "language", tag.String(), "wordlist", loc.Path, "error", out.Cause)
		observability.WordlistFallbacks.Add(1)
	}
	return &Session{
		Resource: resource,
		Lang:     tag,
		Outcome:  out,
		Checker:  spell.NewChecker(out.Dict, f.opts),
	}, nil
}
