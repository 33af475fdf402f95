package common

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *logrus.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.WithError(err).Error("failed to encode JSON response")
	}
}

// WriteError emits the shared error envelope.
func WriteError(logger *logrus.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, map[string]string{"error": message})
}
