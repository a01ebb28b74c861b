// Package redis publishes recovery signals over Redis PUB/SUB so the
// credential-claim flows can run in a separate process.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	aitriage "github.com/blackwell-systems/aitriage"
)

// DefaultChannel is the PUB/SUB channel signals are published on when the
// config does not name one.
const DefaultChannel = "aitriage:signals"

// Config holds connection settings for the signal bus.
type Config struct {
	// URL is a redis:// connection URL.
	URL string

	// Channel overrides DefaultChannel.
	Channel string
}

// Bus publishes signals on a Redis channel. Publishing is fire-and-forget
// with a short timeout; failures are logged and dropped.
type Bus struct {
	rdb     *redis.Client
	channel string
	timeout time.Duration
	log     *slog.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg Config) (*Bus, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(rdb, cfg.Channel), nil
}

// NewWithClient wraps an existing client the caller manages. channel may be
// empty to use DefaultChannel.
func NewWithClient(rdb *redis.Client, channel string) *Bus {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Bus{
		rdb:     rdb,
		channel: channel,
		timeout: 2 * time.Second,
		log:     slog.Default(),
	}
}

// Publish sends sig on the configured channel.
func (b *Bus) Publish(sig aitriage.Signal) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	if err := b.rdb.Publish(ctx, b.channel, string(sig)).Err(); err != nil {
		b.log.Error("signal publish failed", "signal", string(sig), "err", err)
	}
}

// Close closes the underlying client.
func (b *Bus) Close() error {
	return b.rdb.Close()
}
