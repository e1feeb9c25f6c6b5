package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nDmitry/rssreader/internal/app"
)

// handleError responds with an error message
func handleError(logger *slog.Logger, w http.ResponseWriter, err error, statusCode int) {
	logger.Error("Request error", "error", err, "status", statusCode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := map[string]string{"error": err.Error()}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		handleBadErrorResponse(err, response)
	}
}

func handleBadErrorResponse(err error, resp any) {
	app.Logger().Error(
		"failed to encode an error response",
		"error", err,
		"response", resp,
	)
}
