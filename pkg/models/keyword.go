package models

// KeywordRule binds a single synonym token to a prefill fragment.
// Synonym tokens come from splitting a compound dictionary key on commas;
// every synonym of a compound key shares the same prefill, applied
// all-or-nothing when the synonym matches.
type KeywordRule struct {
	// Synonym is the individual token matched against narrative text.
	// Always lowercase and trimmed.
	Synonym string `json:"synonym"`
	// SourceKey is the original compound dictionary key the synonym was
	// split from, kept for trigger explanations and debug rendering.
	SourceKey string `json:"source_key"`
	// Prefill maps question ids to the answers set when the synonym matches.
	Prefill map[string]string `json:"prefill"`
}

// WordCount returns the number of whitespace-separated words in the synonym.
// Single-word synonyms additionally participate in the substring pass.
func (r KeywordRule) WordCount() int {
	n := 0
	inWord := false
	for _, c := range r.Synonym {
		if c == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// Dictionary is the loaded keyword dictionary: rules in deterministic
// longest-synonym-first order, fixed once at load time so matching-pass
// ordering is reproducible. Immutable during a session.
type Dictionary struct {
	Rules []KeywordRule `json:"rules"`
}
