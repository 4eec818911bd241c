package indexcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreRoundTripAndInvalidation(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "en.dic")
	if err := os.WriteFile(src, []byte("1\nhello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s := New(filepath.Join(tmp, "cache"))

	if _, ok, err := s.Load(src); err != nil || ok {
		t.Fatalf("expected miss on empty cache, got ok=%v err=%v", ok, err)
	}
	if err := s.Save([]string{"hello"}, src); err != nil {
		t.Fatal(err)
	}
	words, ok, err := s.Load(src)
	if err != nil || !ok || len(words) != 1 || words[0] != "hello" {
		t.Fatalf("unexpected load: %v %v %v", words, ok, err)
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(src, later, later); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Load(src); ok {
		t.Fatal("expected miss after source changed")
	}
}

func TestDisabledStore(t *testing.T) {
	s := New("")
	if s.Enabled() {
		t.Fatal("empty dir should disable the store")
	}
	if err := s.Save([]string{"x"}, "/does/not/matter"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := s.Load("/does/not/matter"); ok || err != nil {
		t.Fatalf("disabled store should miss silently, got ok=%v err=%v", ok, err)
	}
}
