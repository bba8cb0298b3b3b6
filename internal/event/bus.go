package event

import "sync"

// Bus is a lightweight pub/sub hand-off between pipeline collaborators,
// keyed by the event discriminant. It applies no scheduling or retry policy;
// that belongs to the dispatcher that owns the pipeline loop.
type Bus struct {
	mu   sync.RWMutex
	subs map[Type][]chan Event
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Type][]chan Event)}
}

// Subscribe registers a listener for a variant and returns the channel and
// an unsubscribe function.
func (b *Bus) Subscribe(t Type, buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	b.subs[t] = append(b.subs[t], ch)

	unsub := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[t]
		for i, c := range subs {
			if c == ch {
				close(c)
				b.subs[t] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}

	return ch, unsub
}

// Publish fans the event out to subscribers of its discriminant without
// blocking.
func (b *Bus) Publish(ev Event) {
	if ev == nil {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[ev.Type()] {
		select {
		case ch <- ev:
		default:
			// drop if subscriber is slow; keep the hand-off non-blocking
		}
	}
}
