package spell

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternFilter matches units containing a match of its expression.
// A stripping PatternFilter only matches units that consist of a single
// match, and cuts matches out of every other unit instead.
type PatternFilter struct {
	re    *regexp.Regexp
	strip bool
}

func NewPatternFilter(expr string) (*PatternFilter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("filter pattern %q: %w", expr, err)
	}
	return &PatternFilter{re: re}, nil
}

func (f *PatternFilter) Match(unit string) bool {
	if !f.strip {
		return f.re.MatchString(unit)
	}
	loc := f.re.FindStringIndex(unit)
	return loc != nil && loc[0] == 0 && loc[1] == len(unit)
}

// Strip replaces every match in unit with a space.
func (f *PatternFilter) Strip(unit string) string {
	if !f.strip {
		return unit
	}
	return f.re.ReplaceAllString(unit, " ")
}

var (
	URLFilter   = &PatternFilter{re: regexp.MustCompile(`(?i)^[("'<]*(?:[a-z][a-z0-9+.-]*://|www\.)\S+`)}
	EmailFilter = &PatternFilter{re: regexp.MustCompile(`^[("'<]*[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}`)}
	// printf verbs, Python %(name)s and brace placeholders.
	PlaceholderFilter = &PatternFilter{
		re:    regexp.MustCompile(`%(?:\d+\$)?[-+# 0]*\d*(?:\.\d+)?[a-zA-Z]|%\([^)]+\)[a-zA-Z]|\{[^{}\s]*\}`),
		strip: true,
	}
)

// WordsFilter matches units equal to one of its words, ignoring trailing
// punctuation. It covers words such as "e.g." that the tokenizer would split.
type WordsFilter map[string]struct{}

func NewWordsFilter(words ...string) WordsFilter {
	f := make(WordsFilter, len(words))
	for _, w := range words {
		f[w] = struct{}{}
	}
	return f
}

func (f WordsFilter) Match(unit string) bool {
	if _, ok := f[unit]; ok {
		return true
	}
	_, ok := f[strings.TrimRight(unit, ",;:!?)\"'")]
	return ok
}

// FilterByName maps a configured name to one of the built-in filters.
func FilterByName(name string) (Filter, error) {
	switch strings.ToLower(name) {
	case "url":
		return URLFilter, nil
	case "email":
		return EmailFilter, nil
	case "placeholder":
		return PlaceholderFilter, nil
	default:
		return nil, fmt.Errorf("unknown filter %q", name)
	}
}

// BuildOptions assembles Options from configuration values.
func BuildOptions(chunkers, filters, patterns, phrases, edgecaseWords []string) (Options, error) {
	var opts Options
	for _, name := range chunkers {
		c, err := ChunkerByName(name)
		if err != nil {
			return Options{}, err
		}
		opts.Chunkers = append(opts.Chunkers, c)
	}
	for _, name := range filters {
		f, err := FilterByName(name)
		if err != nil {
			return Options{}, err
		}
		opts.Filters = append(opts.Filters, f)
	}
	for _, expr := range patterns {
		f, err := NewPatternFilter(expr)
		if err != nil {
			return Options{}, err
		}
		opts.Filters = append(opts.Filters, f)
	}
	if len(edgecaseWords) > 0 {
		opts.Filters = append(opts.Filters, NewWordsFilter(edgecaseWords...))
	}
	opts.Phrases = append(opts.Phrases, phrases...)
	return opts, nil
}
