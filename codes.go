package aitriage

import (
	"net/http"
	"strconv"
)

// Code is the short classification label derived from a provider error.
// Most values are HTTP status codes rendered as text; codes extracted from
// error payloads may carry other three-digit values (for example "404").
type Code string

const (
	CodeBadRequest   Code = "400"
	CodeUnauthorized Code = "401"
	CodeForbidden    Code = "403"
	CodeRateLimited  Code = "429"
	CodeServerError  Code = "500"
	CodeUnavailable  Code = "503"

	// CodeNetwork marks connectivity failures where no response was received.
	CodeNetwork Code = "NET"

	// CodeUnknown means no heuristic matched.
	CodeUnknown Code = ""
)

// StatusFor maps a classification code to the HTTP status an adapter should
// respond with. Numeric codes map to themselves, network failures to 502
// Bad Gateway, and unclassified errors to 500.
func StatusFor(code Code) int {
	switch code {
	case CodeNetwork:
		return http.StatusBadGateway
	case CodeUnknown:
		return http.StatusInternalServerError
	}
	if n, err := strconv.Atoi(string(code)); err == nil && n >= 100 && n < 600 {
		return n
	}
	return http.StatusInternalServerError
}
