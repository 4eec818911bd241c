package filedict

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDic(t *testing.T) {
	tmp := t.TempDir()
	path := write(t, tmp, "en_US.dic", []byte("4\ncolour/MS\nParis/M po:noun\nand/or\\/not\n# comment\nhello\n"))

	words, err := LoadDic(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"colour", "paris", "hello"} {
		if !words.Has(w) {
			t.Fatalf("expected %q in %v", w, words.Keys())
		}
	}
	if words.Has("4") || words.Has("MS") {
		t.Fatalf("count line or flags leaked: %v", words.Keys())
	}
}

func TestLoadDicCharset(t *testing.T) {
	tmp := t.TempDir()
	write(t, tmp, "de_DE.aff", []byte("SET ISO-8859-1\nTRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ\n"))
	path := write(t, tmp, "de_DE.dic", []byte("1\nStra\xdfe/N\n"))

	words, err := LoadDic(path)
	if err != nil {
		t.Fatal(err)
	}
	if !words.Has("Straße") {
		t.Fatalf("expected latin-1 entry decoded, got %v", words.Keys())
	}
}

func TestLoadTSV(t *testing.T) {
	tmp := t.TempDir()
	path := write(t, tmp, "fr.tsv", []byte("bonjour\thello\nmerci\tthanks\n"))
	words, err := Load(path, "tsv")
	if err != nil {
		t.Fatal(err)
	}
	if !words.Has("bonjour") || words.Has("hello") || words.Len() != 2 {
		t.Fatalf("unexpected words %v", words.Keys())
	}
}

func TestLoadByExtension(t *testing.T) {
	tmp := t.TempDir()
	path := write(t, tmp, "fr.txt", []byte("bonjour\n\nmerci\n"))
	words, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if words.Len() != 2 {
		t.Fatalf("unexpected words %v", words.Keys())
	}
	if _, err := Load(path, "bogus"); err == nil {
		t.Fatal("expected unsupported type error")
	}
}

func TestReadWordlist(t *testing.T) {
	tmp := t.TempDir()
	path := write(t, tmp, "wordlist.txt", []byte("\xef\xbb\xbfgettext\n# project words\n  msgid  \n\n"))
	words, err := ReadWordlist(path)
	if err != nil {
		t.Fatal(err)
	}
	if !words.Has("gettext") || !words.Has("msgid") || words.Len() != 2 {
		t.Fatalf("unexpected words %v", words.Keys())
	}
}

func TestReadWordlistMalformed(t *testing.T) {
	tmp := t.TempDir()
	cases := map[string][]byte{
		"latin1.txt":  []byte("ok\nStra\xdfe\n"),
		"control.txt": []byte("ok\nbad\x00word\n"),
	}
	for name, data := range cases {
		path := write(t, tmp, name, data)
		_, err := ReadWordlist(path)
		var me *MalformedError
		if !errors.As(err, &me) {
			t.Fatalf("%s: expected MalformedError, got %v", name, err)
		}
		if me.Line != 2 {
			t.Fatalf("%s: expected line 2, got %d", name, me.Line)
		}
	}
	if _, err := ReadWordlist(filepath.Join(tmp, "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
