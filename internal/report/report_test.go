package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sagerenn/pospell/internal/service"
)

func sample() []service.Report {
	return []service.Report{
		{Path: "locales/de/LC_MESSAGES/app.po", Language: "de_DE", Resolved: "de"},
		{
			Path: "locales/fr/LC_MESSAGES/app.po", Language: "fr_CA", Resolved: "fr",
			Degraded: "bad word list",
			Findings: []service.Finding{
				{MsgID: "Open file", Words: []string{"Ouvrir", "fichierr"}},
				{Context: "menu", MsgID: "Open", Words: []string{"Ouvrirr"}},
			},
		},
		{Path: "locales/ja/LC_MESSAGES/app.po", Language: "ja", Err: errors.New("no dictionary"), Error: "no dictionary"},
	}
}

func TestTextRender(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText(true).Render(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"locales/fr/LC_MESSAGES/app.po [fr]\n",
		"  word list ignored: bad word list\n",
		"  \"Open file\": Ouvrir, fichierr\n",
		"  [menu] \"Open\": Ouvrirr\n",
		"locales/ja/LC_MESSAGES/app.po [ja]\n",
		"  error: no dictionary\n",
		"3 resources checked, 2 failed, 3 words misspelled\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "de/LC_MESSAGES") {
		t.Fatalf("clean resource should not be listed:\n%s", out)
	}
}

func TestTextRenderSingular(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText(true).Render(&buf, sample()[:1]); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "1 resource checked, 0 failed, 0 words misspelled\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSON{}).Render(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Reports []struct {
			Path     string `json:"path"`
			Degraded string `json:"degraded"`
			Error    string `json:"error"`
			Findings []struct {
				Context string   `json:"msgctxt"`
				MsgID   string   `json:"msgid"`
				Words   []string `json:"words"`
			} `json:"findings"`
		} `json:"reports"`
		Summary  jsonSummary      `json:"summary"`
		Counters map[string]int64 `json:"counters"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Summary != (jsonSummary{Resources: 3, Failed: 2, Misspelled: 3}) {
		t.Fatalf("unexpected summary %+v", doc.Summary)
	}
	if len(doc.Reports) != 3 || doc.Reports[2].Error != "no dictionary" || doc.Reports[1].Degraded == "" {
		t.Fatalf("unexpected reports %+v", doc.Reports)
	}
	if w := doc.Reports[1].Findings[0].Words; len(w) != 2 || w[1] != "fichierr" {
		t.Fatalf("unexpected words %v", w)
	}
	if f := doc.Reports[1].Findings[1]; f.Context != "menu" || f.MsgID != "Open" {
		t.Fatalf("unexpected context finding %+v", f)
	}
	if doc.Counters == nil {
		t.Fatal("expected counters block")
	}
	for _, k := range []string{"resources_checked", "language_failures", "wordlist_fallbacks", "misspellings"} {
		if _, ok := doc.Counters[k]; !ok {
			t.Fatalf("counter %q missing from %v", k, doc.Counters)
		}
	}
}

func TestNew(t *testing.T) {
	if _, err := New("xml", true); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if r, err := New("json", false); err != nil {
		t.Fatal(err)
	} else if _, ok := r.(JSON); !ok {
		t.Fatalf("expected JSON renderer, got %T", r)
	}
}
