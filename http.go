package aitriage

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body written by Write for a failed upstream
// AI call.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Write classifies v and writes the user-facing message as a small JSON
// body. The HTTP status is derived from the classification code via
// StatusFor. Side effects (notification, recovery signals) fire exactly as
// they do for Classify.
func Write(w http.ResponseWriter, cls *Classifier, v any) {
	rep := cls.Triage(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(rep.Code))

	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Message: rep.UserMessage,
		Code:    string(rep.Code),
	})
}
