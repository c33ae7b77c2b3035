package eventbus

import (
	"context"
	"errors"
	"sync"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp/event"
)

// DefaultSubscriberBuffer is the per-subscriber queue capacity. A subscriber
// that falls this far behind is dropped rather than slowing down publishers.
const DefaultSubscriberBuffer = 256

// ErrDisconnected is returned by Next once a dropped or unsubscribed
// subscription has drained its queue. Stream readers are expected to
// reconnect.
var ErrDisconnected = errors.New("subscription disconnected")

// Bus is an in-process, per-run fan-out of live events. It provides no
// durability or replay; the store is the source of truth.
type Bus struct {
	logger lager.Logger
	buffer int

	mu     sync.Mutex
	topics map[string]*topic
}

type topic struct {
	subs map[*Subscription]struct{}
}

// Subscription is one reader's bounded view of a run's topic.
type Subscription struct {
	bus   *Bus
	runID string

	queue chan event.Event

	mu      sync.Mutex
	closed  bool
	dropped bool
	// errorSent guards the one synthetic error frame emitted after a drop.
	errorSent bool
}

func NewBus(logger lager.Logger, buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Bus{
		logger: logger,
		buffer: buffer,
		topics: map[string]*topic{},
	}
}

// Subscribe registers a new subscriber on the run's topic.
func (b *Bus) Subscribe(runID string) *Subscription {
	sub := &Subscription{
		bus:   b,
		runID: runID,
		queue: make(chan event.Event, b.buffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[runID]
	if !ok {
		t = &topic{subs: map[*Subscription]struct{}{}}
		b.topics[runID] = t
	}
	t.subs[sub] = struct{}{}

	return sub
}

// Publish delivers ev to every live subscriber of the run. Publishing never
// blocks: a subscriber whose queue is full is dropped, leaving the others
// unaffected.
func (b *Bus) Publish(runID string, ev event.Event) {
	b.mu.Lock()
	t, ok := b.topics[runID]
	if !ok {
		b.mu.Unlock()
		return
	}
	subs := make([]*Subscription, 0, len(t.subs))
	for sub := range t.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		if !sub.offer(ev) {
			b.logger.Info("dropping-slow-subscriber", lager.Data{
				"run": runID,
			})
			b.drop(sub)
		}
	}
}

// Unsubscribe removes the subscription from its topic. Safe to call more
// than once.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.remove(sub)

	sub.mu.Lock()
	defer sub.mu.Unlock()
	if !sub.closed {
		sub.closed = true
		close(sub.queue)
	}
}

// SubscriberCount reports the number of live subscriptions for a run.
func (b *Bus) SubscriberCount(runID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[runID]
	if !ok {
		return 0
	}
	return len(t.subs)
}

func (b *Bus) drop(sub *Subscription) {
	b.remove(sub)

	sub.mu.Lock()
	defer sub.mu.Unlock()
	if !sub.closed {
		sub.closed = true
		sub.dropped = true
		close(sub.queue)
	}
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[sub.runID]
	if !ok {
		return
	}
	delete(t.subs, sub)
	if len(t.subs) == 0 {
		delete(b.topics, sub.runID)
	}
}

func (sub *Subscription) offer(ev event.Event) bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return true
	}
	select {
	case sub.queue <- ev:
		return true
	default:
		return false
	}
}

// Next blocks until an event is available or ctx is done. After a drop, the
// buffered backlog is still drained; the final frame is a synthetic error
// event, after which Next returns ErrDisconnected.
func (sub *Subscription) Next(ctx context.Context) (event.Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-sub.queue:
		if ok {
			return ev, nil
		}

		sub.mu.Lock()
		defer sub.mu.Unlock()
		if sub.dropped && !sub.errorSent {
			sub.errorSent = true
			return event.Error{Message: "event buffer overflow; please reconnect"}, nil
		}
		return nil, ErrDisconnected
	}
}
