package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the controller's lifecycle state.
type SessionState string

const (
	StateNotStarted        SessionState = "not_started"
	StateAwaitingNarrative SessionState = "awaiting_narrative"
	StateAwaitingAnswer    SessionState = "awaiting_answer"
	StateComplete          SessionState = "complete"
)

// IsValidSessionState checks if the given state is valid.
func IsValidSessionState(s SessionState) bool {
	switch s {
	case StateNotStarted, StateAwaitingNarrative, StateAwaitingAnswer, StateComplete:
		return true
	default:
		return false
	}
}

// SessionSnapshot is a read-only view of a session handed to the UI layer.
// Maps are copies; mutating a snapshot never affects the live session.
type SessionSnapshot struct {
	ID         uuid.UUID             `json:"id"`
	State      SessionState          `json:"state"`
	Current    *Question             `json:"current_question,omitempty"`
	Answers    map[string]string     `json:"answers"`
	Provenance map[string]Provenance `json:"provenance"`
	// HistoryDepth is the number of explicit user answers that can be undone.
	HistoryDepth int       `json:"history_depth"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ============================================================================
// Trigger Explanations
// ============================================================================

// ExplanationSource tells which kind of evidence made a question eligible.
type ExplanationSource string

const (
	// ExplainNarrative means at least one gating answer was inferred from
	// the narrative; evidence lists the keywords involved.
	ExplainNarrative ExplanationSource = "narrative"
	// ExplainPrevious means every gating answer was given explicitly;
	// evidence lists the dependency question ids.
	ExplainPrevious ExplanationSource = "previous"
)

// TriggerExplanation justifies why a question is currently being asked.
type TriggerExplanation struct {
	Source   ExplanationSource `json:"source"`
	Evidence []string          `json:"evidence"`
}
