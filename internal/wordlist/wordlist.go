// Package wordlist finds the supplementary word list that belongs to a
// translation resource.
//
// Word lists follow a directory convention. A project keeps either a
// dedicated directory of <lang>.txt files, or a wordlist.txt next to its
// catalogs:
//
//	locales/wordlist.txt                   source language
//	locales/fr/wordlist.txt                shared by everything under fr/
//	locales/fr/LC_MESSAGES/wordlist.txt    beside the catalogs
package wordlist

import (
	"os"
	"path/filepath"

	"github.com/sagerenn/pospell/internal/observability"
)

const (
	// FileName is the word list looked up beside resources.
	FileName = "wordlist.txt"
	// CatalogDir is the per-locale message directory that triggers the
	// search one level up.
	CatalogDir = "LC_MESSAGES"
)

// Tier names the rule that produced a Location.
type Tier string

const (
	TierOverride   Tier = "override"
	TierSibling    Tier = "sibling"
	TierLocaleRoot Tier = "locale-root"
	TierSourceDir  Tier = "source-dir"
)

// Location is a located word list. The zero value means no list was found.
type Location struct {
	Path string
	Tier Tier
}

func (l Location) Found() bool { return l.Path != "" }

// Query describes the resource a word list is searched for.
type Query struct {
	// Resource is the absolute path of the catalog file or source directory.
	Resource string
	// IsDir is set when Resource is a directory.
	IsDir bool
	// Lang is the resolved language tag.
	Lang string
	// OverrideDir is the optional directory of <lang>.txt lists.
	OverrideDir string
}

// Candidate proposes one path for q, or ok=false when its rule does not apply.
type Candidate struct {
	Tier Tier
	Path func(q Query) (path string, ok bool)
}

// DefaultCandidates is the search order, highest priority first.
var DefaultCandidates = []Candidate{
	{Tier: TierOverride, Path: overridePath},
	{Tier: TierSibling, Path: siblingPath},
	{Tier: TierLocaleRoot, Path: localeRootPath},
	{Tier: TierSourceDir, Path: sourceDirPath},
}

func overridePath(q Query) (string, bool) {
	if q.OverrideDir == "" || q.Lang == "" {
		return "", false
	}
	return filepath.Join(q.OverrideDir, q.Lang+".txt"), true
}

func siblingPath(q Query) (string, bool) {
	if q.IsDir {
		return "", false
	}
	return filepath.Join(filepath.Dir(q.Resource), FileName), true
}

func localeRootPath(q Query) (string, bool) {
	if q.IsDir {
		return "", false
	}
	dir := filepath.Dir(q.Resource)
	if filepath.Base(dir) != CatalogDir {
		return "", false
	}
	return filepath.Join(filepath.Dir(dir), FileName), true
}

func sourceDirPath(q Query) (string, bool) {
	if !q.IsDir {
		return "", false
	}
	return filepath.Join(q.Resource, FileName), true
}

type Locator struct {
	overrideDir string
	candidates  []Candidate
	log         *observability.Logger
}

// NewLocator returns a Locator using DefaultCandidates. overrideDir may be empty.
func NewLocator(overrideDir string, log *observability.Logger) *Locator {
	return NewLocatorWith(overrideDir, DefaultCandidates, log)
}

func NewLocatorWith(overrideDir string, candidates []Candidate, log *observability.Logger) *Locator {
	if log == nil {
		log = observability.Discard()
	}
	if overrideDir != "" {
		if abs, err := filepath.Abs(overrideDir); err == nil {
			overrideDir = abs
		}
	}
	return &Locator{overrideDir: overrideDir, candidates: candidates, log: log}
}

// Locate returns the first candidate that exists as a regular file.
// A missing word list is not an error and yields the zero Location.
func (l *Locator) Locate(resourcePath, lang string) Location {
	abs, err := filepath.Abs(resourcePath)
	if err != nil {
		abs = filepath.Clean(resourcePath)
	}
	q := Query{Resource: abs, Lang: lang, OverrideDir: l.overrideDir}
	if info, err := os.Stat(abs); err == nil {
		q.IsDir = info.IsDir()
	}
	for _, c := range l.candidates {
		p, ok := c.Path(q)
		if !ok {
			continue
		}
		if isFile(p) {
			l.log.Debug("word list found", "resource", abs, "wordlist", p, "tier", string(c.Tier))
			return Location{Path: p, Tier: c.Tier}
		}
	}
	l.log.Debug("no word list", "resource", abs, "language", lang)
	return Location{}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
