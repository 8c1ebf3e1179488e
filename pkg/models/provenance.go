package models

// ProvenanceSource represents how an answer was set.
type ProvenanceSource string

const (
	// SourceUser means the answer came from an explicit user action
	// (answering the presented question, or the narrative text itself).
	SourceUser ProvenanceSource = "user"
	// SourceKeyword means the answer was prefilled by the narrative
	// inference engine from a dictionary keyword.
	SourceKeyword ProvenanceSource = "keyword"
)

// String returns the string representation of a ProvenanceSource.
func (s ProvenanceSource) String() string {
	return string(s)
}

// IsValid returns true if the source is a valid provenance source.
func (s ProvenanceSource) IsValid() bool {
	switch s {
	case SourceUser, SourceKeyword:
		return true
	default:
		return false
	}
}

// MatchMethod identifies which inference strategy produced a keyword match.
type MatchMethod string

const (
	MethodExact     MatchMethod = "exact"
	MethodSubstring MatchMethod = "substring"
	MethodLoose     MatchMethod = "loose"
	MethodFuzzy     MatchMethod = "fuzzy"
)

// Provenance records why a given answer was set. Every key in the answer map
// has exactly one provenance entry; undoing an answer removes both, so stale
// provenance can never mis-attribute a later re-ask.
type Provenance struct {
	Source ProvenanceSource `json:"source"`
	// Keyword is the matched synonym token, set when Source is keyword.
	Keyword string `json:"keyword,omitempty"`
	// Method is the matching strategy that fired, set when Source is keyword.
	Method MatchMethod `json:"method,omitempty"`
	// Distance is the Levenshtein distance of a fuzzy match.
	Distance int `json:"distance,omitempty"`
}

// UserProvenance is the provenance for an explicit user answer.
func UserProvenance() Provenance {
	return Provenance{Source: SourceUser}
}

// KeywordProvenance is the provenance for an inferred answer.
func KeywordProvenance(keyword string, method MatchMethod, distance int) Provenance {
	return Provenance{
		Source:   SourceKeyword,
		Keyword:  keyword,
		Method:   method,
		Distance: distance,
	}
}
