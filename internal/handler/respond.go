package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookmarkd/bookmarkd-go/internal/validate"
)

// maxBodySize caps request bodies at 1MB; larger bodies get a 413.
const maxBodySize = 1 << 20

// decodeBody decodes a JSON request body into v, writing the error response
// itself and returning false when the body is unusable.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeServiceError maps a validation failure to a 400 with field details and
// everything else to a 500. Handlers deal with their own sentinel errors
// before falling through to this.
func writeServiceError(w http.ResponseWriter, err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verrs,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
