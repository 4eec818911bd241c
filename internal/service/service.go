package service

import (
	"github.com/sagerenn/pospell/internal/lang"
	"github.com/sagerenn/pospell/internal/observability"
	"github.com/sagerenn/pospell/internal/po"
	"github.com/sagerenn/pospell/internal/session"
	"github.com/sagerenn/pospell/internal/wordlist"
)

// Service runs the resolve, locate, build and check pipeline over resources.
type Service struct {
	resolver *lang.Resolver
	locator  *wordlist.Locator
	factory  *session.Factory
	log      *observability.Logger
}

type Finding struct {
	Context string   `json:"msgctxt,omitempty"`
	MsgID   string   `json:"msgid"`
	Words   []string `json:"words"`
}

// Report is the outcome of checking one resource. Err is set when the
// resource could not be checked at all.
type Report struct {
	Path         string    `json:"path"`
	Language     string    `json:"language"`
	Resolved     string    `json:"resolved,omitempty"`
	Source       bool      `json:"source,omitempty"`
	Wordlist     string    `json:"wordlist,omitempty"`
	WordlistTier string    `json:"wordlist_tier,omitempty"`
	Degraded     string    `json:"degraded,omitempty"`
	Findings     []Finding `json:"findings"`
	Err          error     `json:"-"`
	Error        string    `json:"error,omitempty"`
}

// Misspelled counts the misspelled words over all findings.
func (r Report) Misspelled() int {
	n := 0
	for _, f := range r.Findings {
		n += len(f.Words)
	}
	return n
}

func (r Report) Failed() bool {
	return r.Err != nil || len(r.Findings) > 0
}

func New(resolver *lang.Resolver, locator *wordlist.Locator, factory *session.Factory, log *observability.Logger) *Service {
	if log == nil {
		log = observability.Discard()
	}
	return &Service{resolver: resolver, locator: locator, factory: factory, log: log}
}

// CheckFile loads and checks the catalog at path.
func (s *Service) CheckFile(path string) Report {
	res, err := po.Load(path)
	if err != nil {
		return s.fail(Report{Path: path}, err)
	}
	return s.Check(res)
}

// CheckSource checks the msgids of files as text in language lang.
func (s *Service) CheckSource(dir, lang string, files []string) Report {
	res, err := po.LoadSource(dir, lang, files)
	if err != nil {
		return s.fail(Report{Path: dir, Language: lang, Source: true}, err)
	}
	return s.Check(res)
}

func (s *Service) Check(res *po.Resource) Report {
	rep := Report{Path: res.Path, Language: res.Language, Source: res.Source}
	observability.ResourcesChecked.Add(1)

	tag, err := s.resolver.Resolve(res.Language)
	if err != nil {
		return s.fail(rep, err)
	}
	rep.Resolved = tag.String()

	loc := s.locator.Locate(res.Path, tag.String())
	sess, err := s.factory.Build(res.Path, tag, loc)
	if err != nil {
		return s.fail(rep, err)
	}
	if sess.Outcome.Fallback {
		rep.Degraded = sess.Outcome.Cause.Error()
	} else if loc.Found() {
		rep.Wordlist = loc.Path
		rep.WordlistTier = string(loc.Tier)
	}

	for _, e := range res.Entries {
		var words []string
		for _, text := range e.Texts {
			words = appendUnique(words, sess.Check(text))
		}
		if len(words) > 0 {
			rep.Findings = append(rep.Findings, Finding{Context: e.Context, MsgID: e.ID, Words: words})
		}
	}
	observability.Misspellings.Add(int64(rep.Misspelled()))
	s.log.Info("resource checked", "path", res.Path, "language", rep.Resolved, "misspelled", rep.Misspelled())
	return rep
}

func (s *Service) fail(rep Report, err error) Report {
	s.log.Error("resource not checked", "path", rep.Path, "error", err)
	rep.Err = err
	rep.Error = err.Error()
	return rep
}

func appendUnique(dst, src []string) []string {
	for _, w := range src {
		dup := false
		for _, d := range dst {
			if d == w {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, w)
		}
	}
	return dst
}
