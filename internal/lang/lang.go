// Package lang maps the language declared by a translation catalog onto a
// language the dictionary backend can serve.
package lang

import (
	"fmt"
	"strings"

	"github.com/sagerenn/pospell/internal/observability"
)

// Catalog enumerates the language tags a dictionary backend supports.
type Catalog interface {
	Languages() []string
}

// Set is a set of language tags.
type Set map[string]struct{}

func NewSet(tags ...string) Set {
	s := make(Set, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s Set) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Tag is a language tag known to be present in the backend's catalog.
// The zero Tag is invalid; only Resolve produces valid tags.
type Tag struct {
	name     string
	declared string
}

func (t Tag) String() string { return t.name }

// Declared is the tag as written in the resource, before any fallback.
func (t Tag) Declared() string { return t.declared }

// Fallback reports whether the tag is the base language of the declared one.
func (t Tag) Fallback() bool { return t.name != t.declared }

func (t Tag) IsZero() bool { return t.name == "" }

// LanguageNotFoundError means neither the declared tag nor its base
// language has a dictionary.
type LanguageNotFoundError struct {
	Tag string
}

func (e *LanguageNotFoundError) Error() string {
	return fmt.Sprintf("dictionary for language %q could not be found", e.Tag)
}

// Base truncates tag at its first region or script separator:
// "en_US" and "en-US" become "en". A tag without a separator is returned as is.
func Base(tag string) string {
	if i := strings.IndexAny(tag, "_-"); i >= 0 {
		return tag[:i]
	}
	return tag
}

// Resolve picks declared if available, else its base language.
func Resolve(declared string, available Set) (Tag, error) {
	if declared != "" && available.Has(declared) {
		return Tag{name: declared, declared: declared}, nil
	}
	if base := Base(declared); base != "" && available.Has(base) {
		return Tag{name: base, declared: declared}, nil
	}
	return Tag{}, &LanguageNotFoundError{Tag: declared}
}

type Resolver struct {
	catalog Catalog
	log     *observability.Logger
}

func NewResolver(catalog Catalog, log *observability.Logger) *Resolver {
	if log == nil {
		log = observability.Discard()
	}
	return &Resolver{catalog: catalog, log: log}
}

// Resolve queries the catalog once and resolves declared against it.
// An unsupported language is logged before the error is returned.
func (r *Resolver) Resolve(declared string) (Tag, error) {
	tag, err := Resolve(declared, NewSet(r.catalog.Languages()...))
	if err != nil {
		r.log.Warn("dictionary for language could not be found", "language", declared)
		observability.LanguageFailures.Add(1)
		return Tag{}, err
	}
	if tag.Fallback() {
		r.log.Debug("using base language dictionary", "declared", declared, "language", tag.String())
	}
	return tag, nil
}
