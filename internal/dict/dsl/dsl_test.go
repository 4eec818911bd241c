package dsl

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

const sample = `#NAME "Test"
#INDEX_LANGUAGE "English"

colour
	[m1]the property of [i]reflecting[/i] light[/m]

ice cream
	[m1]frozen dessert[/m]
{(}self{)}-made
	[m1]x[/m]
`

func TestLoadUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.dsl")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"colour", "ice", "cream", "self-made"} {
		if !words.Has(w) {
			t.Fatalf("expected %q in %v", w, words.Keys())
		}
	}
	if words.Has("reflecting") || words.Has("name") {
		t.Fatalf("card body or header leaked: %v", words.Keys())
	}
}

func TestLoadUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "en.dsl")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !words.Has("colour") {
		t.Fatalf("expected utf-16 headword, got %v", words.Keys())
	}
}

func TestHeadword(t *testing.T) {
	cases := map[string]string{
		"plain":          "plain",
		"a{(}b{)}c":      "abc",
		`semi\;colon`:    "semi;colon",
		"{unclosed text": "",
	}
	for in, want := range cases {
		if got := headword(in); got != want {
			t.Fatalf("headword(%q) = %q, want %q", in, got, want)
		}
	}
}
