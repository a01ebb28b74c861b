// Package webhook delivers raw provider errors to an admin webhook as JSON.
//
// Delivery is fire-and-forget: Notify returns immediately and failures are
// logged, never propagated. Call Flush before shutdown to wait for in-flight
// deliveries.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Notifier posts error reports to a fixed webhook URL.
type Notifier struct {
	url     string
	client  *http.Client
	timeout time.Duration
	header  http.Header
	log     *slog.Logger

	wg sync.WaitGroup
}

// Option configures a Notifier. Options validate eagerly so a bad
// configuration surfaces at construction, not on first delivery.
type Option func(*Notifier) error

// WithHTTPClient replaces the HTTP client used for deliveries.
func WithHTTPClient(c *http.Client) Option {
	return func(n *Notifier) error {
		if c == nil {
			return errors.New("webhook: nil http client")
		}
		n.client = c
		return nil
	}
}

// WithTimeout bounds each delivery attempt.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) error {
		if d <= 0 {
			return errors.New("webhook: timeout must be positive")
		}
		n.timeout = d
		return nil
	}
}

// WithHeader adds a header to every delivery, e.g. an auth token.
func WithHeader(key, value string) Option {
	return func(n *Notifier) error {
		if key == "" {
			return errors.New("webhook: empty header key")
		}
		n.header.Add(key, value)
		return nil
	}
}

// WithLogger sets the logger for delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) error {
		if l == nil {
			return errors.New("webhook: nil logger")
		}
		n.log = l
		return nil
	}
}

// New creates a Notifier posting to rawURL.
func New(rawURL string, opts ...Option) (*Notifier, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("webhook: parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("webhook: unsupported scheme %q", u.Scheme)
	}

	n := &Notifier{
		url:     rawURL,
		client:  http.DefaultClient,
		timeout: 5 * time.Second,
		header:  http.Header{},
		log:     slog.Default(),
	}
	for _, o := range opts {
		if err := o(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// report is the webhook payload.
type report struct {
	Error string    `json:"error"`
	At    time.Time `json:"at"`
}

// Notify posts v to the webhook in the background.
func (n *Notifier) Notify(v any) {
	body, err := json.Marshal(report{Error: fmt.Sprint(v), At: time.Now().UTC()})
	if err != nil {
		n.log.Error("webhook payload encode failed", "err", err)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(body)
	}()
}

// Flush blocks until all in-flight deliveries finish.
func (n *Notifier) Flush() {
	n.wg.Wait()
}

func (n *Notifier) deliver(body []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.log.Error("webhook request build failed", "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range n.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Error("webhook delivery failed", "err", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		n.log.Warn("webhook rejected report", "status", resp.StatusCode)
	}
}
