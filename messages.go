package aitriage

import "strings"

// User-facing messages keyed by classification outcome. These are complete
// sentences shown directly in the UI, so keep them short and free of jargon.
const (
	// MsgVeoAuth is returned when a Veo authorization token is rejected.
	MsgVeoAuth = "Veo authorization failed. Your access token has expired and a new claim has been started automatically."

	// MsgInvalidKey is returned when the API key is invalid or expired.
	MsgInvalidKey = "Your API key is invalid or has expired. A replacement key claim has been started automatically."

	// MsgSafety is returned for requests rejected by the provider's safety filter.
	MsgSafety = "The request was rejected by the provider's safety filter. Adjust the prompt and try again."

	// MsgCapacity is returned for rate-limit and quota-exhaustion failures.
	MsgCapacity = "The model is at capacity or the quota is exhausted. Please wait a moment and try again."

	// MsgUnavailable is returned for transient provider-side failures.
	MsgUnavailable = "The AI service is temporarily unavailable. Please try again shortly."

	// MsgNetwork is returned when the provider could not be reached at all.
	MsgNetwork = "Could not reach the AI service. Check your network connection and try again."

	// MsgUnexpected replaces raw text that is too long or too noisy to show.
	MsgUnexpected = "An unexpected error occurred. Check the logs for details."
)

// maxFirstLine is the longest raw first line surfaced to users verbatim.
const maxFirstLine = 150

// sdkErrorTag marks messages produced by the vendor SDK's own error wrapper.
// Those dump stack context and are never shown verbatim.
const sdkErrorTag = "googlegenerativeai"

// cannedMessage returns the fixed sentence for codes that have one.
func cannedMessage(code Code) (string, bool) {
	switch code {
	case CodeBadRequest:
		return MsgSafety, true
	case CodeRateLimited:
		return MsgCapacity, true
	case CodeServerError, CodeUnavailable:
		return MsgUnavailable, true
	case CodeNetwork:
		return MsgNetwork, true
	}
	return "", false
}

// firstLineMessage is the fallback for unclassified errors: the trimmed first
// line of the raw message, unless it is too long or carries the SDK tag.
func firstLineMessage(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	line = strings.TrimSpace(line)
	if line == "" || len(line) > maxFirstLine || strings.Contains(strings.ToLower(line), sdkErrorTag) {
		return MsgUnexpected
	}
	return line
}
