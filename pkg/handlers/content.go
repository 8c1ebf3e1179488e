package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/models"
)

// QuestionsResponse for GET /api/content/questions
type QuestionsResponse struct {
	Questions []models.Question `json:"questions"`
	Total     int               `json:"total"`
}

// KeywordsResponse for GET /api/content/keywords. Rules carry the compound
// source key each synonym was split from, for debug rendering.
type KeywordsResponse struct {
	Rules []models.KeywordRule `json:"rules"`
	Total int                  `json:"total"`
}

// ContentHandler serves the loaded content packs, read-only.
type ContentHandler struct {
	graph  *models.Graph
	dict   *models.Dictionary
	logger *zap.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(graph *models.Graph, dict *models.Dictionary, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{graph: graph, dict: dict, logger: logger}
}

// RegisterRoutes registers the content handler's routes on the given mux.
func (h *ContentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/content/questions", h.Questions)
	mux.HandleFunc("GET /api/content/keywords", h.Keywords)
}

// Questions handles GET /api/content/questions
func (h *ContentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	response := QuestionsResponse{
		Questions: h.graph.Questions,
		Total:     len(h.graph.Questions),
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Keywords handles GET /api/content/keywords
func (h *ContentHandler) Keywords(w http.ResponseWriter, r *http.Request) {
	response := KeywordsResponse{
		Rules: h.dict.Rules,
		Total: len(h.dict.Rules),
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
