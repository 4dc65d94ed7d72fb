package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// writeJSON writes v as a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{
		Error:   true,
		Message: message,
	})
}

// writeInternalError writes a 500 envelope carrying the error chain in
// the stack field.
func writeInternalError(w http.ResponseWriter, message string, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	resp := models.Response{
		Error:   true,
		Message: message,
	}
	if err != nil {
		resp.Stack = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
