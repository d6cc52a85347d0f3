package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    map[string]any    `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONCreated writes v with 201 and a Location header for the new resource.
func JSONCreated(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError writes the error envelope, tagged with the request id when one
// is present on the request context.
func JSONError(r *http.Request, w http.ResponseWriter, statusCode int, code, message string) {
	resp := ErrorResponse{
		Error: ErrorResponseBody{Code: code, Message: message},
	}
	if requestID := RequestIDFrom(r); requestID != "" {
		resp.Meta = map[string]any{"request_id": requestID}
	}
	JSON(w, statusCode, resp)
}
