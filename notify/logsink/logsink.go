// Package logsink provides an slog-backed notification sink, handy for
// development and for deployments without an admin webhook.
package logsink

import (
	"fmt"
	"log/slog"
)

// Notifier logs every raw error at Error level.
type Notifier struct {
	log *slog.Logger
}

// New creates a Notifier. A nil logger falls back to slog.Default.
func New(log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{log: log}
}

// Notify logs v and returns immediately.
func (n *Notifier) Notify(v any) {
	n.log.Error("provider call failed", "error", fmt.Sprint(v))
}
