package eventbus_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/eventbus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bus", func() {
	var bus *eventbus.Bus

	BeforeEach(func() {
		bus = eventbus.NewBus(lagertest.NewTestLogger("test"), 4)
	})

	next := func(sub *eventbus.Subscription) (event.Event, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return sub.Next(ctx)
	}

	It("fans an event out to every subscriber of the run", func() {
		sub1 := bus.Subscribe("run-1")
		sub2 := bus.Subscribe("run-1")
		defer bus.Unsubscribe(sub1)
		defer bus.Unsubscribe(sub2)

		bus.Publish("run-1", event.Heartbeat{})

		ev, err := next(sub1)
		Expect(err).ToNot(HaveOccurred())
		Expect(ev).To(Equal(event.Heartbeat{}))

		ev, err = next(sub2)
		Expect(err).ToNot(HaveOccurred())
		Expect(ev).To(Equal(event.Heartbeat{}))
	})

	It("does not deliver events across runs", func() {
		sub := bus.Subscribe("run-1")
		defer bus.Unsubscribe(sub)

		bus.Publish("run-2", event.Heartbeat{})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := sub.Next(ctx)
		Expect(err).To(Equal(context.DeadlineExceeded))
	})

	It("preserves publish order for a single subscriber", func() {
		sub := bus.Subscribe("run-1")
		defer bus.Unsubscribe(sub)

		bus.Publish("run-1", event.StatusChanged{From: rp.RunStatusPending, To: rp.RunStatusRunning})
		bus.Publish("run-1", event.Heartbeat{})

		ev, err := next(sub)
		Expect(err).ToNot(HaveOccurred())
		Expect(ev).To(BeAssignableToTypeOf(event.StatusChanged{}))

		ev, err = next(sub)
		Expect(err).ToNot(HaveOccurred())
		Expect(ev).To(Equal(event.Heartbeat{}))
	})

	Describe("a subscriber that falls behind", func() {
		It("is dropped without blocking the publisher or its peers", func() {
			slow := bus.Subscribe("run-1")
			healthy := bus.Subscribe("run-1")
			defer bus.Unsubscribe(healthy)

			for i := 0; i < 5; i++ {
				bus.Publish("run-1", event.Heartbeat{})
			}

			Expect(bus.SubscriberCount("run-1")).To(Equal(1))

			// the backlog drains first, then the synthetic error frame
			for i := 0; i < 4; i++ {
				ev, err := next(slow)
				Expect(err).ToNot(HaveOccurred())
				Expect(ev).To(Equal(event.Heartbeat{}))
			}

			ev, err := next(slow)
			Expect(err).ToNot(HaveOccurred())
			Expect(ev).To(BeAssignableToTypeOf(event.Error{}))

			_, err = next(slow)
			Expect(err).To(Equal(eventbus.ErrDisconnected))

			// the healthy subscriber saw everything
			for i := 0; i < 5; i++ {
				ev, err := next(healthy)
				Expect(err).ToNot(HaveOccurred())
				Expect(ev).To(Equal(event.Heartbeat{}))
			}
		})
	})

	Describe("Unsubscribe", func() {
		It("removes the subscription and ends Next with ErrDisconnected", func() {
			sub := bus.Subscribe("run-1")
			Expect(bus.SubscriberCount("run-1")).To(Equal(1))

			bus.Unsubscribe(sub)
			Expect(bus.SubscriberCount("run-1")).To(Equal(0))

			_, err := next(sub)
			Expect(err).To(Equal(eventbus.ErrDisconnected))
		})

		It("is safe to call twice", func() {
			sub := bus.Subscribe("run-1")
			bus.Unsubscribe(sub)
			Expect(func() { bus.Unsubscribe(sub) }).ToNot(Panic())
		})

		It("drains buffered events before disconnecting", func() {
			sub := bus.Subscribe("run-1")
			bus.Publish("run-1", event.Heartbeat{})
			bus.Unsubscribe(sub)

			ev, err := next(sub)
			Expect(err).ToNot(HaveOccurred())
			Expect(ev).To(Equal(event.Heartbeat{}))

			_, err = next(sub)
			Expect(err).To(Equal(eventbus.ErrDisconnected))
		})
	})

	It("ignores publishes to runs with no subscribers", func() {
		Expect(func() { bus.Publish("run-1", event.Heartbeat{}) }).ToNot(Panic())
	})
})
