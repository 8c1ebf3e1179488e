package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ParseSessionID extracts and validates the {sid} path parameter. On failure
// it writes a 400 response and returns false.
func ParseSessionID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uuid.UUID, bool) {
	raw := r.PathValue("sid")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Debug("Invalid session id", zap.String("sid", raw), zap.Error(err))
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_session_id", "session id must be a UUID"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return uuid.Nil, false
	}
	return id, true
}
