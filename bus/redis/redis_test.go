package redis_test

import (
	"testing"

	goredis "github.com/redis/go-redis/v9"

	redisbus "github.com/blackwell-systems/aitriage/bus/redis"
)

func TestNewInvalidURL(t *testing.T) {
	if _, err := redisbus.New(redisbus.Config{URL: "not-a-url"}); err == nil {
		t.Fatal("expected error for invalid redis URL")
	}
}

func TestNewWithClientDefaults(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
	defer rdb.Close()

	b := redisbus.NewWithClient(rdb, "")
	if b == nil {
		t.Fatal("expected bus")
	}
	// No server needed: construction alone must succeed with the default
	// channel in place.
}
