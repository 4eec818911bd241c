// Package backend serves per-language dictionaries from the registry.
package backend

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/sagerenn/pospell/internal/cache"
	"github.com/sagerenn/pospell/internal/dict"
	"github.com/sagerenn/pospell/internal/dict/filedict"
	"github.com/sagerenn/pospell/internal/dict/loader"
	"github.com/sagerenn/pospell/internal/dict/registry"
	"github.com/sagerenn/pospell/internal/indexcache"
	"github.com/sagerenn/pospell/internal/observability"
)

// ErrUnknownLanguage is returned for tags missing from the registry.
var ErrUnknownLanguage = errors.New("no dictionary registered for language")

type Backend struct {
	reg   *registry.Registry
	words *cache.Cache[*dict.Words]
	index *indexcache.Store
	log   *observability.Logger
}

// New returns a backend over reg. Up to cacheSize parsed base dictionaries
// stay in memory; index may be nil.
func New(reg *registry.Registry, cacheSize int, index *indexcache.Store, log *observability.Logger) *Backend {
	if log == nil {
		log = observability.Discard()
	}
	return &Backend{
		reg:   reg,
		words: cache.New[*dict.Words](cacheSize),
		index: index,
		log:   log,
	}
}

func (b *Backend) Languages() []string {
	return b.reg.Languages()
}

// Open returns the plain dictionary for tag.
func (b *Backend) Open(tag string) (dict.Dictionary, error) {
	words, err := b.base(tag)
	if err != nil {
		return nil, err
	}
	return dict.New(tag, words), nil
}

// OpenWithWordlist returns the dictionary for tag extended with the words
// in the file at path. A malformed word list is an error.
func (b *Backend) OpenWithWordlist(tag, path string) (dict.Dictionary, error) {
	words, err := b.base(tag)
	if err != nil {
		return nil, err
	}
	extra, err := filedict.ReadWordlist(path)
	if err != nil {
		return nil, fmt.Errorf("word list for %s: %w", tag, err)
	}
	b.log.Debug("word list loaded", "language", tag, "path", path, "words", humanize.Comma(int64(extra.Len())))
	return dict.New(tag, words).WithWordlist(path, extra), nil
}

func (b *Backend) base(tag string) (*dict.Words, error) {
	if w, ok := b.words.Get(tag); ok {
		return w, nil
	}
	src, ok := b.reg.Get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, tag)
	}
	words, err := loader.Open(src, b.index)
	if err != nil {
		return nil, err
	}
	b.log.Debug("dictionary loaded", "language", tag, "type", src.Type, "path", src.Path,
		"words", humanize.Comma(int64(words.Len())))
	b.words.Set(tag, words)
	return words, nil
}
