package aitriage

// Signal names an event published on the Bus to start a credential-recovery
// flow elsewhere in the application. The vocabulary is fixed; subscribers
// match on the exact string.
type Signal string

const (
	// SignalVeoKeyClaim asks the application to re-run the Veo access token
	// claim flow after a Veo authorization failure.
	SignalVeoKeyClaim Signal = "initiateAutoVeoKeyClaim"

	// SignalAPIKeyClaim asks the application to claim a fresh API key after
	// an auth failure or an invalid-key rejection.
	SignalAPIKeyClaim Signal = "initiateAutoApiKeyClaim"
)

// Bus publishes recovery signals. The classifier only ever publishes; it
// never subscribes.
type Bus interface {
	Publish(sig Signal)
}

// BusFunc adapts a function to the Bus interface.
type BusFunc func(Signal)

func (f BusFunc) Publish(sig Signal) { f(sig) }

// NopBus discards every signal.
type NopBus struct{}

func (NopBus) Publish(Signal) {}

// Notifier receives every raw error handed to Classify, before any analysis
// runs. Implementations must not block the caller; delivery failures stay
// inside the implementation and are never reported back.
type Notifier interface {
	Notify(v any)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(any)

func (f NotifierFunc) Notify(v any) { f(v) }

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(any) {}
