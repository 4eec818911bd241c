package lang

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/sagerenn/pospell/internal/observability"
)

type fakeCatalog struct {
	tags  []string
	calls int
}

func (c *fakeCatalog) Languages() []string {
	c.calls++
	return c.tags
}

func TestResolveExact(t *testing.T) {
	available := NewSet("en", "en_US", "de_DE", "fr")
	for _, tag := range []string{"en", "en_US", "de_DE", "fr"} {
		got, err := Resolve(tag, available)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tag, err)
		}
		if got.String() != tag || got.Fallback() {
			t.Fatalf("Resolve(%q) = %q (fallback=%v)", tag, got, got.Fallback())
		}
	}
}

func TestResolveBaseFallback(t *testing.T) {
	available := NewSet("fr", "pt", "de_AT")
	cases := map[string]string{
		"fr_CA":      "fr",
		"fr_FR":      "fr",
		"pt-BR":      "pt",
		"fr_Latn_CA": "fr",
	}
	for in, want := range cases {
		got, err := Resolve(in, available)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", in, err)
		}
		if got.String() != want || got.Declared() != in || !got.Fallback() {
			t.Fatalf("Resolve(%q) = %q declared %q", in, got, got.Declared())
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	available := NewSet("fr", "de_AT")
	for _, in := range []string{"es_ES", "es", "de_DE", ""} {
		got, err := Resolve(in, available)
		var nf *LanguageNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Resolve(%q): expected LanguageNotFoundError, got %v", in, err)
		}
		if nf.Tag != in || !got.IsZero() {
			t.Fatalf("Resolve(%q): unexpected result %q / %q", in, got, nf.Tag)
		}
	}
}

func TestBase(t *testing.T) {
	cases := map[string]string{
		"en_US": "en",
		"en-GB": "en",
		"sr":    "sr",
		"":      "",
	}
	for in, want := range cases {
		if got := Base(in); got != want {
			t.Fatalf("Base(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolverLogsUnsupported(t *testing.T) {
	var buf bytes.Buffer
	cat := &fakeCatalog{tags: []string{"en"}}
	r := NewResolver(cat, observability.NewWriter(&buf, "warn", "json"))

	if _, err := r.Resolve("ja_JP"); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), `"language":"ja_JP"`) {
		t.Fatalf("expected diagnostic naming the tag, got %s", buf.String())
	}

	tag, err := r.Resolve("en_GB")
	if err != nil || tag.String() != "en" {
		t.Fatalf("unexpected resolution %q, %v", tag, err)
	}
	if cat.calls != 2 {
		t.Fatalf("expected one catalog query per resolution, got %d", cat.calls)
	}
}

func TestPOSIX(t *testing.T) {
	cases := map[string]string{
		"en-US": "en_US",
		"de":    "de",
		"pt-BR": "pt_BR",
	}
	for in, want := range cases {
		if got := POSIX(language.MustParse(in)); got != want {
			t.Fatalf("POSIX(%q) = %q, want %q", in, got, want)
		}
	}
}
