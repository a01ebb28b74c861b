package aitriage

import (
	"encoding/json"
	"regexp"
	"strings"
)

// statusTokenRe matches a three-digit status, bracketed like "[404]" or as a
// standalone token. The first match in the message wins.
var statusTokenRe = regexp.MustCompile(`\[(\d{3})\]|\b(\d{3})\b`)

// jsonCode extracts a nested error.code from the first {...} span of msg.
// The span may contain newlines. Parse failures and missing fields are
// swallowed; the cascade just moves on to the next heuristic.
func jsonCode(msg string) (Code, bool) {
	start := strings.Index(msg, "{")
	end := strings.LastIndex(msg, "}")
	if start < 0 || end <= start {
		return CodeUnknown, false
	}

	// UseNumber keeps numeric codes intact instead of round-tripping
	// through float64.
	dec := json.NewDecoder(strings.NewReader(msg[start : end+1]))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return CodeUnknown, false
	}

	obj, ok := payload["error"].(map[string]any)
	if !ok {
		return CodeUnknown, false
	}
	switch v := obj["code"].(type) {
	case json.Number:
		return Code(v.String()), true
	case string:
		if v != "" {
			return Code(v), true
		}
	}
	return CodeUnknown, false
}

// numericCode finds the first three-digit status token in msg.
func numericCode(msg string) (Code, bool) {
	m := statusTokenRe.FindStringSubmatch(msg)
	if m == nil {
		return CodeUnknown, false
	}
	if m[1] != "" {
		return Code(m[1]), true
	}
	return Code(m[2]), true
}

// keywordCode is the last-resort keyword cascade. msg must already be
// lower-cased. Order matters: earlier checks win.
func keywordCode(msg string) (Code, bool) {
	switch {
	case strings.Contains(msg, "permission denied"), strings.Contains(msg, "api key not valid"):
		return CodeForbidden, true
	case strings.Contains(msg, "bad request"):
		return CodeBadRequest, true
	case strings.Contains(msg, "server error"), strings.Contains(msg, "503"):
		return CodeServerError, true
	case strings.Contains(msg, "failed to fetch"):
		return CodeNetwork, true
	}
	return CodeUnknown, false
}
