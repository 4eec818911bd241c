// Package po reads gettext catalogs into spellcheckable resources.
package po

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"unsafe"

	"github.com/leonelquinteros/gotext"
)

// ErrNoLanguage is returned for catalogs without a Language header.
var ErrNoLanguage = errors.New("catalog has no Language header")

// Entry is one message and the texts of it that get checked.
type Entry struct {
	// Context is the msgctxt, "" for messages without one.
	Context string
	ID      string
	Texts   []string
}

// Resource is a translation catalog or, for the source language, a
// directory of catalogs whose msgids are checked.
type Resource struct {
	Path     string
	Language string
	// Source is set for the source-language resource.
	Source  bool
	Entries []Entry
}

// Load parses the catalog at path and collects its translated strings.
func Load(path string) (*Resource, error) {
	dom, err := parse(path)
	if err != nil {
		return nil, err
	}
	lang := strings.TrimSpace(dom.Language)
	if lang == "" {
		lang = strings.TrimSpace(dom.Headers.Get("Language"))
	}
	if lang == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNoLanguage)
	}
	res := &Resource{Path: path, Language: lang}
	for _, m := range messages(dom) {
		tr := m.tr
		texts := make([]string, 0, len(tr.Trs))
		for i := 0; i < len(tr.Trs); i++ {
			if s, ok := tr.Trs[i]; ok && strings.TrimSpace(s) != "" {
				texts = append(texts, s)
			}
		}
		if len(texts) > 0 {
			res.Entries = append(res.Entries, Entry{Context: m.ctx, ID: tr.ID, Texts: texts})
		}
	}
	return res, nil
}

// LoadSource builds the source-language resource for dir from the msgids
// of files. Each msgid is checked once per msgctxt even if several
// catalogs share it.
func LoadSource(dir, lang string, files []string) (*Resource, error) {
	res := &Resource{Path: dir, Language: lang, Source: true}
	seen := make(map[string]bool)
	for _, f := range files {
		dom, err := parse(f)
		if err != nil {
			return nil, err
		}
		for _, m := range messages(dom) {
			tr := m.tr
			key := m.ctx + "\x04" + tr.ID
			if seen[key] {
				continue
			}
			seen[key] = true
			texts := []string{tr.ID}
			if tr.PluralID != "" {
				texts = append(texts, tr.PluralID)
			}
			res.Entries = append(res.Entries, Entry{Context: m.ctx, ID: tr.ID, Texts: texts})
		}
	}
	return res, nil
}

func parse(path string) (*gotext.Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := gotext.NewPo()
	p.Parse(data)
	return p.GetDomain(), nil
}

type message struct {
	ctx string
	tr  *gotext.Translation
}

// messages returns every message of dom except the header, ordered by
// msgid and then msgctxt.
func messages(dom *gotext.Domain) []message {
	var out []message
	for id, tr := range dom.GetTranslations() {
		if id != "" {
			out = append(out, message{tr: tr})
		}
	}
	for ctx, trs := range contextTranslations(dom) {
		for _, tr := range trs {
			out = append(out, message{ctx: ctx, tr: tr})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].tr.ID != out[j].tr.ID {
			return out[i].tr.ID < out[j].tr.ID
		}
		return out[i].ctx < out[j].ctx
	})
	return out
}

// gotext keeps msgctxt messages in an unexported per-context map.
func contextTranslations(dom *gotext.Domain) map[string]map[string]*gotext.Translation {
	v := reflect.ValueOf(dom).Elem().FieldByName("contextTranslations")
	if !v.IsValid() || v.Kind() != reflect.Map || !v.CanAddr() {
		return nil
	}
	m, ok := reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem().Interface().(map[string]map[string]*gotext.Translation)
	if !ok {
		return nil
	}
	return m
}
