// Package aitriage maps errors raised by generative-AI API calls to short
// user-facing messages. Every classified error is forwarded to an admin
// notification sink, and auth failures additionally publish a recovery
// signal so the application can claim fresh credentials without user action.
package aitriage

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Phrases that route auth failures into the dedicated recovery flows.
const (
	veoAuthPhrase    = "veo auth token"
	invalidKeyPhrase = "api key not valid"
	invalidKeyAlt    = "invalid api key"
)

// Classifier turns raw provider errors into user-facing messages.
//
// Collaborators are injected so the classifier stays testable in isolation;
// a zero-option New() wires no-op implementations. Classifier holds no state
// between calls and is safe for concurrent use.
type Classifier struct {
	notifier Notifier
	bus      Bus
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithNotifier sets the notification sink that receives every raw error.
func WithNotifier(n Notifier) Option {
	return func(c *Classifier) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithBus sets the bus recovery signals are published on.
func WithBus(b Bus) Option {
	return func(c *Classifier) {
		if b != nil {
			c.bus = b
		}
	}
}

// WithLogger sets the logger used for classification diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Classifier. Without options it notifies nobody and publishes
// nowhere, which is useful in tests and in tools that only want the message.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		notifier: NopNotifier{},
		bus:      NopBus{},
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Classify returns a short user-facing message for an arbitrary caught
// value. The raw value is always forwarded to the notifier first, and at
// most one recovery signal is published. Classify never panics and never
// returns an empty string; any internal fault falls back to the generic
// message.
func (c *Classifier) Classify(v any) string {
	return c.Triage(v).UserMessage
}

// Triage is Classify with the full Report exposed, for adapters that need
// the code as well as the message. Side effects are identical to Classify.
func (c *Classifier) Triage(v any) (rep Report) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("classification panicked", "panic", r)
			rep.UserMessage = MsgUnexpected
			rep.At = c.now()
		}
	}()

	c.notifier.Notify(v)

	rep = c.explain(v)
	if rep.Signal != "" {
		c.bus.Publish(rep.Signal)
	}
	c.log.Debug("classified provider error", "report", rep)
	return rep
}

// explain runs the classification cascade without side effects.
func (c *Classifier) explain(v any) Report {
	raw, status := normalize(v)
	lower := strings.ToLower(raw)

	// Specific phrases win over any numeric code present in the same text.
	code := priorityCode(lower)
	if code == CodeUnknown {
		code = structuredCode(lower, status)
	}

	rep := Report{Raw: raw, Code: code, At: c.now()}

	// Recovery flows short-circuit the canned-message switch: an auth
	// failure with a key phrase reports the credential problem even when
	// the code would otherwise map to a canned sentence.
	switch {
	case isAuthCode(code) && strings.Contains(lower, veoAuthPhrase):
		rep.Signal = SignalVeoKeyClaim
		rep.UserMessage = MsgVeoAuth
	case isAuthCode(code),
		code == CodeBadRequest && mentionsInvalidKey(lower):
		rep.Signal = SignalAPIKeyClaim
		rep.UserMessage = MsgInvalidKey
	default:
		if msg, ok := cannedMessage(code); ok {
			rep.UserMessage = msg
		} else {
			rep.UserMessage = firstLineMessage(raw)
		}
	}
	return rep
}

// priorityCode handles phrases that must beat every other heuristic.
func priorityCode(lower string) Code {
	switch {
	case strings.Contains(lower, "resource exhausted"), strings.Contains(lower, "quota exceeded"):
		return CodeRateLimited
	case strings.Contains(lower, "bad request") &&
		(strings.Contains(lower, "safety") || strings.Contains(lower, "filter")):
		return CodeBadRequest
	}
	return CodeUnknown
}

// structuredCode runs the generic pass: SDK status, embedded JSON error
// payload, bare three-digit status, then keyword inference.
func structuredCode(lower string, status int) Code {
	if status >= 100 && status < 600 {
		return Code(strconv.Itoa(status))
	}
	if code, ok := jsonCode(lower); ok {
		return code
	}
	if code, ok := numericCode(lower); ok {
		return code
	}
	if code, ok := keywordCode(lower); ok {
		return code
	}
	return CodeUnknown
}

func isAuthCode(code Code) bool {
	return code == CodeUnauthorized || code == CodeForbidden
}

func mentionsInvalidKey(lower string) bool {
	return strings.Contains(lower, invalidKeyPhrase) || strings.Contains(lower, invalidKeyAlt)
}
