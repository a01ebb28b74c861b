package aitriage

import (
	"log/slog"
	"time"
)

// Report describes the outcome of one classification.
type Report struct {
	// Raw is the normalized message text derived from the caught value.
	Raw string

	// Code is the classification label, CodeUnknown when nothing matched.
	Code Code

	// Signal is the recovery signal published for this error, if any.
	Signal Signal

	// UserMessage is the short display string returned to the caller.
	UserMessage string

	// At is when the classification ran.
	At time.Time
}

// LogValue lets a Report be logged structurally with log/slog.
func (r Report) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", string(r.Code)),
		slog.String("message", r.UserMessage),
	}
	if r.Signal != "" {
		attrs = append(attrs, slog.String("signal", string(r.Signal)))
	}
	attrs = append(attrs, slog.String("raw", r.Raw))
	return slog.GroupValue(attrs...)
}
