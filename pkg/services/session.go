package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/apperrors"
	"github.com/renomarket/scoping-engine/pkg/models"
)

// Session is one user's interactive scoping run: the answer map, the
// provenance map, and the history stack, owned exclusively by this instance.
// The flow is strictly request/response; the mutex only guards against an
// HTTP host delivering overlapping calls, the state machine itself assumes
// one event at a time.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	state     models.SessionState
	evaluator *GraphEvaluator
	inference *InferenceEngine

	answers    map[string]string
	provenance map[string]models.Provenance
	// history holds the ids answered via SubmitAnswer, in order. Inferred
	// answers never enter history: only explicit user answers can be
	// undone.
	history []string
	current *models.Question

	createdAt time.Time
	updatedAt time.Time
	logger    *zap.Logger
}

// NewSession creates a session in the NotStarted state.
func NewSession(graph *models.Graph, dict *models.Dictionary, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	now := time.Now()
	return &Session{
		id:         id,
		state:      models.StateNotStarted,
		evaluator:  NewGraphEvaluator(graph),
		inference:  NewInferenceEngine(dict, logger),
		answers:    make(map[string]string),
		provenance: make(map[string]models.Provenance),
		createdAt:  now,
		updatedAt:  now,
		logger:     logger.With(zap.String("session_id", id.String())),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Start moves the session from NotStarted to AwaitingNarrative.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateNotStarted {
		return fmt.Errorf("start in state %s: %w", s.state, apperrors.ErrAlreadyStarted)
	}
	s.state = models.StateAwaitingNarrative
	s.touch()
	return nil
}

// SubmitNarrative runs narrative inference and advances to the first
// eligible question. Only valid while awaiting the narrative.
func (s *Session) SubmitNarrative(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateAwaitingNarrative {
		return fmt.Errorf("narrative in state %s: %w", s.state, apperrors.ErrNarrativeOutOfTurn)
	}

	result := s.inference.Infer(text, s.answers)
	merged := 0
	for key, value := range result.Answers {
		if _, ok := s.answers[key]; ok {
			continue
		}
		s.answers[key] = value
		s.provenance[key] = result.Provenance[key]
		merged++
	}
	s.logger.Info("Narrative processed",
		zap.Int("prefilled", merged),
		zap.Int("narrative_len", len(text)))

	s.advance()
	return nil
}

// SubmitAnswer records a user answer for the currently presented question.
// An id missing from the graph entirely, answering out of turn, or a
// question id other than the current one are all rejected no-ops.
func (s *Session) SubmitAnswer(questionID, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateAwaitingAnswer || s.current == nil {
		return fmt.Errorf("answer in state %s: %w", s.state, apperrors.ErrAnswerOutOfTurn)
	}
	if s.evaluator.graph.ByID(questionID) == nil {
		return fmt.Errorf("answer for %s: %w", questionID, apperrors.ErrUnknownQuestion)
	}
	if questionID != s.current.ID {
		return fmt.Errorf("answer for %s while asking %s: %w",
			questionID, s.current.ID, apperrors.ErrAnswerOutOfTurn)
	}

	s.answers[questionID] = value
	s.provenance[questionID] = models.UserProvenance()
	s.history = append(s.history, questionID)

	s.advance()
	return nil
}

// GoBack undoes the most recent explicit user answer, deleting both the
// answer and its provenance entry, and re-presents that question. Rejected
// as a no-op when nothing can be undone.
func (s *Session) GoBack() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return apperrors.ErrHistoryEmpty
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	delete(s.answers, last)
	delete(s.provenance, last)

	s.state = models.StateAwaitingAnswer
	s.advance()
	return nil
}

// CurrentQuestion returns the question being asked, or nil.
func (s *Session) CurrentQuestion() *models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Explain justifies why the given question is being asked, based on the
// session's current answers and provenance.
func (s *Session) Explain(q *models.Question) *models.TriggerExplanation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Explain(q, s.answers, s.provenance)
}

// Answers returns a copy of the current answer map for summary building.
func (s *Session) Answers() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyAnswers(s.answers)
}

// Provenance returns a copy of the current provenance map.
func (s *Session) Provenance() map[string]models.Provenance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProvenance(s.provenance)
}

// Snapshot returns a read-only view of the session.
func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *models.Question
	if s.current != nil {
		q := *s.current
		current = &q
	}
	return models.SessionSnapshot{
		ID:           s.id,
		State:        s.state,
		Current:      current,
		Answers:      copyAnswers(s.answers),
		Provenance:   copyProvenance(s.provenance),
		HistoryDepth: len(s.history),
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.updatedAt,
	}
}

// UpdatedAt returns the time of the last accepted event.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// advance recomputes the current question and the resulting state.
// Caller holds the lock.
func (s *Session) advance() {
	s.current = s.evaluator.NextQuestion(s.answers)
	if s.current == nil {
		s.state = models.StateComplete
	} else {
		s.state = models.StateAwaitingAnswer
	}
	s.touch()
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func copyAnswers(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyProvenance(m map[string]models.Provenance) map[string]models.Provenance {
	out := make(map[string]models.Provenance, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
