// Package models contains domain types for the scoping engine.
package models

// ============================================================================
// Question Kinds
// ============================================================================

// QuestionKind represents the input widget a question expects.
type QuestionKind string

const (
	KindShortText    QuestionKind = "text"
	KindLongText     QuestionKind = "textarea"
	KindNumeric      QuestionKind = "number"
	KindSingleChoice QuestionKind = "select"
	KindBoolean      QuestionKind = "boolean"
)

// ValidQuestionKinds contains all valid question kind values.
var ValidQuestionKinds = []QuestionKind{
	KindShortText,
	KindLongText,
	KindNumeric,
	KindSingleChoice,
	KindBoolean,
}

// IsValidQuestionKind checks if the given kind is valid.
func IsValidQuestionKind(k QuestionKind) bool {
	for _, v := range ValidQuestionKinds {
		if v == k {
			return true
		}
	}
	return false
}

// ============================================================================
// Preconditions
// ============================================================================

// PreconditionKind tags the unified precondition variant.
type PreconditionKind string

const (
	// PreconditionNone means the question is always eligible.
	PreconditionNone PreconditionKind = "none"
	// PreconditionAllOf means every condition in All must hold.
	PreconditionAllOf PreconditionKind = "all_of"
	// PreconditionAnyOf means at least one group in Any must fully hold.
	PreconditionAnyOf PreconditionKind = "any_of"
)

// Condition is a single dependency on a previously-given answer.
// Values holds one or more accepted answers; the condition holds when the
// dependency's answer case-insensitively equals any of them.
type Condition struct {
	QuestionID string   `json:"question_id"`
	Values     []string `json:"values"`
}

// Precondition is the unified tagged variant the evaluator operates on.
// Both the legacy {all,any} shorthand and the advanced
// conditions/conditionGroups source shapes are translated into this form at
// load time, so only one representation exists at runtime.
type Precondition struct {
	Kind PreconditionKind `json:"kind"`
	// All is populated for PreconditionAllOf.
	All []Condition `json:"all,omitempty"`
	// Any is populated for PreconditionAnyOf. Each inner slice is a
	// conjunction; the precondition holds when any one is fully satisfied.
	Any [][]Condition `json:"any,omitempty"`
}

// IsZero reports whether the precondition imposes no constraint.
func (p Precondition) IsZero() bool {
	return p.Kind == "" || p.Kind == PreconditionNone
}

// Dependencies returns the distinct question ids the precondition refers to,
// in first-appearance order.
func (p Precondition) Dependencies() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(conds []Condition) {
		for _, c := range conds {
			if !seen[c.QuestionID] {
				seen[c.QuestionID] = true
				ids = append(ids, c.QuestionID)
			}
		}
	}
	add(p.All)
	for _, group := range p.Any {
		add(group)
	}
	return ids
}

// ============================================================================
// Question Model
// ============================================================================

// Question is a single node of the question graph. Immutable once loaded.
type Question struct {
	ID           string       `json:"id"`
	Prompt       string       `json:"prompt"`
	Kind         QuestionKind `json:"kind"`
	Options      []string     `json:"options,omitempty"`
	Help         string       `json:"help,omitempty"`
	Unit         string       `json:"unit,omitempty"`
	Placeholder  string       `json:"placeholder,omitempty"`
	Precondition Precondition `json:"precondition"`
}

// Graph is the ordered question list. Declaration order drives the
// "next eligible question" scan, never answer-map order.
type Graph struct {
	Questions []Question `json:"questions"`
}

// ByID returns the question with the given id, or nil.
func (g *Graph) ByID(id string) *Question {
	for i := range g.Questions {
		if g.Questions[i].ID == id {
			return &g.Questions[i]
		}
	}
	return nil
}
