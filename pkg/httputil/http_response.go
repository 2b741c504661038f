// Package httputil holds the response helpers every handler writes
// through, keeping bodies and error shapes uniform across endpoints.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the body of every non-2xx handler reply. Details is
// filled only when the caller can act on it, such as validation output.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteJSONResponse writes body as JSON with the given status. A nil
// body sends the status line and headers only.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response body failed", slog.String("error", err.Error()))
	}
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	WriteJSONResponse(w, statusCode, resp)
}
