package registry

import "testing"

func TestRegistry(t *testing.T) {
	r := New()
	if err := r.MustAddAll([]Source{
		{Lang: "en_US", Type: "dic", Path: "/d/en_US.dic"},
		{Lang: "fr", Type: "stardict", Path: "/d/fr.ifo"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(Source{Lang: "fr", Path: "/other/fr.dic"}); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := r.Add(Source{Path: "/x"}); err == nil {
		t.Fatal("expected empty language error")
	}
	if err := r.Add(Source{Lang: "de"}); err == nil {
		t.Fatal("expected empty path error")
	}

	s, ok := r.Get("fr")
	if !ok || s.Path != "/d/fr.ifo" {
		t.Fatalf("unexpected source %+v", s)
	}
	langs := r.Languages()
	if len(langs) != 2 || langs[0] != "en_US" || langs[1] != "fr" {
		t.Fatalf("unexpected languages %v", langs)
	}
	if !r.Has("en_US") || r.Has("en") {
		t.Fatal("Has mismatch")
	}

	list := r.List()
	if len(list) != 2 || list[0].Type != "dic" || list[1] != (Source{Lang: "fr", Type: "stardict", Path: "/d/fr.ifo"}) {
		t.Fatalf("unexpected sources %+v", list)
	}
	list[0].Lang = "changed"
	if s, _ := r.Get("en_US"); s.Lang != "en_US" || r.List()[0].Lang != "en_US" {
		t.Fatal("List must return a copy")
	}
}
