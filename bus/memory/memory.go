// Package memory implements an in-process signal bus for single-binary
// deployments where the recovery flows run in the same process as the UI.
package memory

import (
	"sync"

	aitriage "github.com/blackwell-systems/aitriage"
)

// Bus fans published signals out to every subscriber channel.
type Bus struct {
	mu   sync.Mutex
	subs []chan aitriage.Signal
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe returns a channel that receives every subsequently published
// signal. buf bounds the channel; slow subscribers drop signals rather than
// block Publish.
func (b *Bus) Subscribe(buf int) <-chan aitriage.Signal {
	if buf < 1 {
		buf = 1
	}
	ch := make(chan aitriage.Signal, buf)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish delivers sig to every subscriber without blocking.
func (b *Bus) Publish(sig aitriage.Signal) {
	b.mu.Lock()
	subs := make([]chan aitriage.Signal, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- sig:
		default:
		}
	}
}
