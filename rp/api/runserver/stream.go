package runserver

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp/api/present"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/vito/go-sse/sse"
)

const streamHeartbeatInterval = 30 * time.Second

// StreamEventsHandler serves the live run stream: snapshot first, then
// every bus event, with heartbeats and synthesized hardware-cost frames.
// The stream ends on a complete event, an overflow error, or disconnect.
func (s *Server) StreamEventsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("stream")

		run, ok := s.resolveRun(logger, w, r)
		if !ok {
			return
		}
		logger = logger.WithData(lager.Data{"run": run.ID()})

		flusher, ok := w.(http.Flusher)
		if !ok {
			logger.Info("streaming-unsupported")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		snapshot, billing, tracker, err := s.buildSnapshot(run)
		if err != nil {
			logger.Error("failed-to-build-snapshot", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		writeFrame := func(ev event.Event) error {
			payload, err := present.Sanitized(event.Message{Event: ev})
			if err != nil {
				return err
			}
			if err := (sse.Event{Data: payload}).Write(w); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		}

		if err := writeFrame(event.Initial{RunSnapshot: snapshot}); err != nil {
			return
		}

		actualEmitted := false
		emitActual := func(amountUSD float64) error {
			if actualEmitted {
				return nil
			}
			actualEmitted = true
			return writeFrame(event.HWCostActual{HWActualCostCents: actualCents(amountUSD)})
		}

		if billing != nil {
			if err := emitActual(billing.AmountUSD); err != nil {
				return
			}
		}

		costTick := func() error {
			if est := tracker.estimate(s.clock.Now()); est != nil {
				return writeFrame(event.HWCostEstimate{HWCostEstimate: *est})
			}
			return nil
		}
		if err := costTick(); err != nil {
			return
		}

		sub := s.bus.Subscribe(run.ID())
		defer s.bus.Unsubscribe(sub)

		ctx := r.Context()

		events := make(chan event.Event)
		subErrs := make(chan error, 1)
		go func() {
			for {
				ev, err := sub.Next(ctx)
				if err != nil {
					subErrs <- err
					return
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}()

		heartbeat := s.clock.NewTicker(streamHeartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case err := <-subErrs:
				if err == eventbus.ErrDisconnected {
					logger.Info("subscription-dropped")
				}
				return

			case <-heartbeat.C():
				if err := writeFrame(event.Heartbeat{}); err != nil {
					return
				}
				if err := costTick(); err != nil {
					return
				}

			case ev := <-events:
				switch typed := ev.(type) {
				case event.StatusChanged:
					if typed.To.Terminal() {
						tracker.stop(typed.Time)
					}
				case event.PodBillingSummary:
					if err := writeFrame(ev); err != nil {
						return
					}
					if err := emitActual(typed.AmountUSD); err != nil {
						return
					}
					if err := costTick(); err != nil {
						return
					}
					continue
				}

				if err := writeFrame(ev); err != nil {
					return
				}
				if err := costTick(); err != nil {
					return
				}

				switch ev.(type) {
				case event.Complete:
					return
				case event.Error:
					return
				}
			}
		}
	})
}
