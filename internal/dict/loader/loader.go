package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sagerenn/pospell/internal/config"
	"github.com/sagerenn/pospell/internal/dict"
	"github.com/sagerenn/pospell/internal/dict/dsl"
	"github.com/sagerenn/pospell/internal/dict/filedict"
	"github.com/sagerenn/pospell/internal/dict/mdict"
	"github.com/sagerenn/pospell/internal/dict/registry"
	"github.com/sagerenn/pospell/internal/dict/stardict"
	"github.com/sagerenn/pospell/internal/indexcache"
)

type Result struct {
	Sources []registry.Source
	Errs    []error
}

// LoadAll builds the dictionary catalog: explicit dictionaries first, then
// every recognised file in the dictionary directories, named by file stem
// ("en_US.dic" registers "en_US"). The first source for a language wins.
// Problems are collected in Errs and never stop the scan.
func LoadAll(cfg config.Config) Result {
	res := Result{
		Sources: make([]registry.Source, 0, len(cfg.Dictionaries)),
		Errs:    nil,
	}
	seen := make(map[string]bool)
	for _, d := range cfg.Dictionaries {
		if strings.TrimSpace(d.Path) == "" {
			res.Errs = append(res.Errs, fmt.Errorf("dictionary %q missing path", d.Lang))
			continue
		}
		if strings.TrimSpace(d.Lang) == "" {
			res.Errs = append(res.Errs, fmt.Errorf("dictionary entry missing lang for path %q", d.Path))
			continue
		}
		typ := strings.ToLower(strings.TrimSpace(d.Type))
		if typ == "" {
			typ = detectType(d.Path)
		}
		if typ == "" {
			res.Errs = append(res.Errs, fmt.Errorf("dictionary %q: cannot detect type of %q", d.Lang, d.Path))
			continue
		}
		if seen[d.Lang] {
			res.Errs = append(res.Errs, fmt.Errorf("duplicate dictionary language: %s", d.Lang))
			continue
		}
		seen[d.Lang] = true
		res.Sources = append(res.Sources, registry.Source{Lang: d.Lang, Type: typ, Path: d.Path})
	}
	for _, dir := range cfg.DictDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				res.Errs = append(res.Errs, fmt.Errorf("scan %s: %w", dir, err))
			}
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			typ := detectType(e.Name())
			if typ == "" {
				continue
			}
			lang := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			if lang == "" || seen[lang] {
				continue
			}
			seen[lang] = true
			res.Sources = append(res.Sources, registry.Source{Lang: lang, Type: typ, Path: filepath.Join(dir, e.Name())})
		}
	}
	return res
}

// Open parses the word set of s, going through cache when it is enabled.
func Open(s registry.Source, cache *indexcache.Store) (*dict.Words, error) {
	sources := []string{s.Path}
	if s.Type == "stardict" || s.Type == "ifo" {
		sources = stardict.Sources(s.Path)
	}
	if keys, ok, err := cache.Load(sources...); err == nil && ok {
		return dict.WordsFrom(keys), nil
	}
	var (
		words *dict.Words
		err   error
	)
	switch s.Type {
	case "dic", "hunspell", "myspell", "txt", "text", "wordlist", "tsv", "tab":
		words, err = filedict.Load(s.Path, s.Type)
	case "dsl":
		words, err = dsl.Load(s.Path)
	case "stardict", "ifo":
		words, err = stardict.Load(s.Path)
	case "mdict", "mdx":
		words, err = mdict.Load(s.Path)
	default:
		err = fmt.Errorf("unsupported dictionary type: %q", s.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Lang, err)
	}
	_ = cache.Save(words.Keys(), sources...)
	return words, nil
}

func detectType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".dic":
		return "dic"
	case ".ifo":
		return "stardict"
	case ".mdx":
		return "mdict"
	case ".dsl":
		return "dsl"
	case ".tsv":
		return "tsv"
	case ".txt":
		return "txt"
	default:
		return ""
	}
}
