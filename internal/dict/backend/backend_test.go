package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagerenn/pospell/internal/dict/filedict"
	"github.com/sagerenn/pospell/internal/dict/registry"
)

func setup(t *testing.T) (*Backend, string) {
	t.Helper()
	tmp := t.TempDir()
	dic := filepath.Join(tmp, "en.dic")
	if err := os.WriteFile(dic, []byte("2\nhello\nworld\n"), 0644); err != nil {
		t.Fatal(err)
	}
	reg := registry.New()
	if err := reg.Add(registry.Source{Lang: "en", Type: "dic", Path: dic}); err != nil {
		t.Fatal(err)
	}
	return New(reg, 2, nil, nil), tmp
}

func TestOpen(t *testing.T) {
	b, tmp := setup(t)
	d, err := b.Open("en")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Check("Hello") || d.Check("gettext") || d.Wordlist() != "" || d.Lang() != "en" {
		t.Fatalf("unexpected dictionary %+v", d)
	}

	// A cached base set survives removal of the source file.
	if err := os.Remove(filepath.Join(tmp, "en.dic")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Open("en"); err != nil {
		t.Fatalf("expected cached dictionary, got %v", err)
	}
}

func TestOpenUnknown(t *testing.T) {
	b, _ := setup(t)
	if _, err := b.Open("fr"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
	if langs := b.Languages(); len(langs) != 1 || langs[0] != "en" {
		t.Fatalf("unexpected languages %v", langs)
	}
}

func TestOpenWithWordlist(t *testing.T) {
	b, tmp := setup(t)
	wl := filepath.Join(tmp, "wordlist.txt")
	if err := os.WriteFile(wl, []byte("gettext\n"), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := b.OpenWithWordlist("en", wl)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Check("gettext") || !d.Check("world") || d.Wordlist() != wl {
		t.Fatalf("unexpected combined dictionary %+v", d)
	}

	plain, err := b.Open("en")
	if err != nil {
		t.Fatal(err)
	}
	if plain.Check("gettext") {
		t.Fatal("word list leaked into the shared base dictionary")
	}
}

func TestOpenWithMalformedWordlist(t *testing.T) {
	b, tmp := setup(t)
	wl := filepath.Join(tmp, "wordlist.txt")
	if err := os.WriteFile(wl, []byte("\xff\xfe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := b.OpenWithWordlist("en", wl)
	var me *filedict.MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}
