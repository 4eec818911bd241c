// Package report renders check results for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"

	"github.com/sagerenn/pospell/internal/observability"
	"github.com/sagerenn/pospell/internal/service"
)

// Renderer writes a batch of reports.
type Renderer interface {
	Render(w io.Writer, reports []service.Report) error
}

// New returns the renderer for format ("text" or "json").
func New(format string, noColor bool) (Renderer, error) {
	switch format {
	case "", "text":
		return NewText(noColor), nil
	case "json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Text is the human-readable renderer.
type Text struct {
	path *color.Color
	word *color.Color
	warn *color.Color
	fail *color.Color
	ok   *color.Color
}

func NewText(noColor bool) *Text {
	t := &Text{
		path: color.New(color.Bold),
		word: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
		ok:   color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{t.path, t.word, t.warn, t.fail, t.ok} {
			c.DisableColor()
		}
	}
	return t
}

func (t *Text) Render(w io.Writer, reports []service.Report) error {
	words, failed := 0, 0
	for _, r := range reports {
		if r.Failed() {
			failed++
		}
		words += r.Misspelled()
		if !r.Failed() && r.Degraded == "" {
			continue
		}
		header := r.Path
		if r.Resolved != "" {
			header += " [" + r.Resolved + "]"
		} else if r.Language != "" {
			header += " [" + r.Language + "]"
		}
		if _, err := t.path.Fprintln(w, header); err != nil {
			return err
		}
		if r.Err != nil {
			t.fail.Fprintf(w, "  error: %s\n", r.Error)
			continue
		}
		if r.Degraded != "" {
			t.warn.Fprintf(w, "  word list ignored: %s\n", r.Degraded)
		}
		for _, f := range r.Findings {
			if f.Context != "" {
				fmt.Fprintf(w, "  [%s] %q: ", f.Context, f.MsgID)
			} else {
				fmt.Fprintf(w, "  %q: ", f.MsgID)
			}
			for i, word := range f.Words {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				t.word.Fprint(w, word)
			}
			fmt.Fprintln(w)
		}
	}

	summary := fmt.Sprintf("%s checked, %s failed, %s misspelled",
		plural(len(reports), "resource"), humanize.Comma(int64(failed)), plural(words, "word"))
	c := t.ok
	if failed > 0 {
		c = t.fail
	}
	_, err := c.Fprintln(w, summary)
	return err
}

func plural(n int, unit string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, unit, "")
}

// JSON writes one document holding every report.
type JSON struct{}

type jsonSummary struct {
	Resources  int `json:"resources"`
	Failed     int `json:"failed"`
	Misspelled int `json:"misspelled"`
}

type jsonDocument struct {
	Reports  []service.Report       `json:"reports"`
	Summary  jsonSummary            `json:"summary"`
	Counters observability.Snapshot `json:"counters"`
}

// Render writes the reports with a summary and the process counters.
func (JSON) Render(w io.Writer, reports []service.Report) error {
	doc := jsonDocument{
		Reports:  reports,
		Summary:  jsonSummary{Resources: len(reports)},
		Counters: observability.Counters(),
	}
	if doc.Reports == nil {
		doc.Reports = []service.Report{}
	}
	for _, r := range reports {
		if r.Failed() {
			doc.Summary.Failed++
		}
		doc.Summary.Misspelled += r.Misspelled()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
