package mdict

import (
	"errors"
	"reflect"
	"strings"

	"github.com/ChaosNyaruko/ondict/decoder"

	"github.com/sagerenn/pospell/internal/dict"
)

// Load collects the keywords of an .mdx dictionary.
func Load(path string) (*dict.Words, error) {
	md := &decoder.MDict{}
	if err := md.Decode(path, false); err != nil {
		return nil, err
	}
	_ = md.Keys() // populate keymap
	words := keywords(md)
	if words == nil {
		return nil, errors.New("mdict: no keyword index in " + path)
	}
	return words, nil
}

// keywords reads the decoded keyword index of m. Multi-word keywords
// contribute each word. It returns nil when m has no index.
func keywords(m *decoder.MDict) *dict.Words {
	keymap := mdictKeyMap(m)
	if keymap == nil {
		return nil
	}
	words := dict.NewWords(len(keymap))
	for key := range keymap {
		for _, f := range strings.Fields(key) {
			words.Add(f)
		}
	}
	return words
}

// ondict keeps its keyword index unexported.
func mdictKeyMap(m *decoder.MDict) map[string]struct{} {
	v := reflect.ValueOf(m).Elem().FieldByName("keymap")
	if !v.IsValid() || v.Kind() != reflect.Map || v.IsNil() {
		return nil
	}
	out := make(map[string]struct{}, v.Len())
	for _, k := range v.MapKeys() {
		out[k.String()] = struct{}{}
	}
	return out
}
