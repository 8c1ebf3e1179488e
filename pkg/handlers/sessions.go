package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/apperrors"
	"github.com/renomarket/scoping-engine/pkg/logging"
	"github.com/renomarket/scoping-engine/pkg/models"
	"github.com/renomarket/scoping-engine/pkg/services"
)

// ============================================================================
// Request/Response Types
// ============================================================================

// SubmitNarrativeRequest for POST /api/sessions/{sid}/narrative
type SubmitNarrativeRequest struct {
	Narrative string `json:"narrative"`
}

// SubmitAnswerRequest for POST /api/sessions/{sid}/answer
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

// SessionStatusResponse for session state queries. Explanation is only set
// while a conditional question is being asked.
type SessionStatusResponse struct {
	models.SessionSnapshot
	Explanation *models.TriggerExplanation `json:"explanation,omitempty"`
}

// ============================================================================
// Handler
// ============================================================================

// SessionsHandler handles questionnaire session HTTP requests.
type SessionsHandler struct {
	sessions services.SessionService
	graph    *models.Graph
	logger   *zap.Logger
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(sessions services.SessionService, graph *models.Graph, logger *zap.Logger) *SessionsHandler {
	return &SessionsHandler{
		sessions: sessions,
		graph:    graph,
		logger:   logger,
	}
}

// RegisterRoutes registers the session handler's routes on the given mux.
func (h *SessionsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sessions", h.Create)
	mux.HandleFunc("GET /api/sessions/{sid}", h.Status)
	mux.HandleFunc("DELETE /api/sessions/{sid}", h.Delete)
	mux.HandleFunc("POST /api/sessions/{sid}/narrative", h.SubmitNarrative)
	mux.HandleFunc("POST /api/sessions/{sid}/answer", h.SubmitAnswer)
	mux.HandleFunc("POST /api/sessions/{sid}/back", h.GoBack)
	mux.HandleFunc("GET /api/sessions/{sid}/summary", h.Summary)
}

// Create handles POST /api/sessions
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create()
	if err != nil {
		h.logger.Error("Failed to create session", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "create_session_failed", err.Error())
		return
	}

	h.writeStatus(w, http.StatusCreated, sess)
}

// Status handles GET /api/sessions/{sid}
func (h *SessionsHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeStatus(w, http.StatusOK, sess)
}

// Delete handles DELETE /api/sessions/{sid}
func (h *SessionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseSessionID(w, r, h.logger)
	if !ok {
		return
	}
	if err := h.sessions.Delete(id); err != nil {
		h.mapError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "session deleted"})
}

// SubmitNarrative handles POST /api/sessions/{sid}/narrative
func (h *SessionsHandler) SubmitNarrative(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req SubmitNarrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request_body", err.Error())
		return
	}

	if err := sess.SubmitNarrative(req.Narrative); err != nil {
		h.mapError(w, err)
		return
	}

	h.logger.Info("Narrative submitted",
		zap.String("session_id", sess.ID().String()),
		zap.String("narrative", logging.SanitizeNarrative(req.Narrative)))
	h.writeStatus(w, http.StatusOK, sess)
}

// SubmitAnswer handles POST /api/sessions/{sid}/answer
func (h *SessionsHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request_body", err.Error())
		return
	}
	if req.QuestionID == "" {
		h.writeError(w, http.StatusBadRequest, "invalid_request_body", "question_id is required")
		return
	}

	if err := sess.SubmitAnswer(req.QuestionID, req.Value); err != nil {
		h.mapError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, sess)
}

// GoBack handles POST /api/sessions/{sid}/back
func (h *SessionsHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := sess.GoBack(); err != nil {
		h.mapError(w, err)
		return
	}

	h.writeStatus(w, http.StatusOK, sess)
}

// Summary handles GET /api/sessions/{sid}/summary
func (h *SessionsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	summary := services.BuildSummary(h.graph, sess.Answers(), sess.Provenance())
	h.writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: summary})
}

// ============================================================================
// Helpers
// ============================================================================

func (h *SessionsHandler) lookup(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	id, ok := ParseSessionID(w, r, h.logger)
	if !ok {
		return nil, false
	}
	sess, err := h.sessions.Get(id)
	if err != nil {
		h.mapError(w, err)
		return nil, false
	}
	return sess, true
}

func (h *SessionsHandler) writeStatus(w http.ResponseWriter, status int, sess *services.Session) {
	snap := sess.Snapshot()

	response := SessionStatusResponse{SessionSnapshot: snap}
	if snap.Current != nil {
		response.Explanation = sess.Explain(snap.Current)
	}
	h.writeJSON(w, status, ApiResponse{Success: true, Data: response})
}

// mapError translates the engine's sentinel errors into HTTP status codes
// and machine-readable reason codes. Protocol violations come back as 409
// rejections the client can recover from.
func (h *SessionsHandler) mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		h.writeError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, apperrors.ErrUnknownQuestion):
		h.writeError(w, http.StatusBadRequest, "unknown_question", err.Error())
	case errors.Is(err, apperrors.ErrAnswerOutOfTurn):
		h.writeError(w, http.StatusConflict, "answer_out_of_turn", err.Error())
	case errors.Is(err, apperrors.ErrNarrativeOutOfTurn):
		h.writeError(w, http.StatusConflict, "narrative_out_of_turn", err.Error())
	case errors.Is(err, apperrors.ErrHistoryEmpty):
		h.writeError(w, http.StatusConflict, "history_empty", err.Error())
	case errors.Is(err, apperrors.ErrAlreadyStarted):
		h.writeError(w, http.StatusConflict, "already_started", err.Error())
	default:
		h.logger.Error("Unexpected session error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func (h *SessionsHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func (h *SessionsHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := WriteJSON(w, status, data); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
