package observability

import "expvar"

var (
	ResourcesChecked  = expvar.NewInt("resources_checked")
	LanguageFailures  = expvar.NewInt("language_failures")
	WordlistFallbacks = expvar.NewInt("wordlist_fallbacks")
	Misspellings      = expvar.NewInt("misspellings")
)

// Snapshot is a point-in-time copy of the process counters.
type Snapshot struct {
	ResourcesChecked  int64 `json:"resources_checked"`
	LanguageFailures  int64 `json:"language_failures"`
	WordlistFallbacks int64 `json:"wordlist_fallbacks"`
	Misspellings      int64 `json:"misspellings"`
}

func Counters() Snapshot {
	return Snapshot{
		ResourcesChecked:  ResourcesChecked.Value(),
		LanguageFailures:  LanguageFailures.Value(),
		WordlistFallbacks: WordlistFallbacks.Value(),
		Misspellings:      Misspellings.Value(),
	}
}
