package aitriage

import (
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

// normalize converts an arbitrary caught value into its message text. When
// the value is a structured SDK error it also returns the HTTP status the
// SDK recorded, which pre-seeds the structured pass so string scraping is
// only needed for plain errors.
func normalize(v any) (msg string, status int) {
	err, ok := v.(error)
	if !ok || err == nil {
		return fmt.Sprint(v), 0
	}
	msg = err.Error()

	var oaiErr *openai.Error
	if errors.As(err, &oaiErr) {
		return msg, oaiErr.StatusCode
	}
	var antErr *anthropic.Error
	if errors.As(err, &antErr) {
		return msg, antErr.StatusCode
	}
	var gemErr genai.APIError
	if errors.As(err, &gemErr) {
		return msg, gemErr.Code
	}
	return msg, 0
}
