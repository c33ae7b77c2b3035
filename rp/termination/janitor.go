package termination

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/eventbus"
)

const (
	DefaultHeartbeatTimeout = 10 * time.Minute
	DefaultSweepInterval    = time.Minute
)

// Janitor flips runs the pipeline silently abandoned: heartbeat-stale runs
// and pending runs whose startup deadline passed. An advisory lock keeps
// the sweep to a single replica; the others skip the cycle.
type Janitor struct {
	logger lager.Logger
	clock  clock.Clock

	conn         db.DbConn
	runs         db.RunFactory
	terminations db.TerminationRepository
	bus          *eventbus.Bus
	waker        Waker

	heartbeatTimeout time.Duration
	interval         time.Duration
}

func NewJanitor(
	logger lager.Logger,
	clk clock.Clock,
	conn db.DbConn,
	runs db.RunFactory,
	terminations db.TerminationRepository,
	bus *eventbus.Bus,
	waker Waker,
	heartbeatTimeout time.Duration,
	interval time.Duration,
) *Janitor {
	if heartbeatTimeout == 0 {
		heartbeatTimeout = DefaultHeartbeatTimeout
	}
	if interval == 0 {
		interval = DefaultSweepInterval
	}

	return &Janitor{
		logger:           logger,
		clock:            clk,
		conn:             conn,
		runs:             runs,
		terminations:     terminations,
		bus:              bus,
		waker:            waker,
		heartbeatTimeout: heartbeatTimeout,
		interval:         interval,
	}
}

// Run implements ifrit.Runner. One sweep happens immediately at startup for
// recovery after a crash, then periodically.
func (j *Janitor) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := j.logger.Session("janitor")
	logger.Info("start")
	defer logger.Info("done")

	close(ready)

	j.sweep(logger)

	ticker := j.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-signals:
			return nil
		case <-ticker.C():
			j.sweep(logger)
		}
	}
}

func (j *Janitor) sweep(logger lager.Logger) {
	tx, acquired, err := db.AcquireLock(j.conn, db.LockIDRecovery)
	if err != nil {
		logger.Error("failed-to-acquire-lock", err)
		return
	}
	if !acquired {
		logger.Debug("another-replica-sweeping")
		return
	}
	defer tx.Commit()

	stale, err := j.runs.FindHeartbeatStale(j.heartbeatTimeout)
	if err != nil {
		logger.Error("failed-to-find-heartbeat-stale-runs", err)
	} else {
		for _, runID := range stale {
			j.failRun(logger, runID, rp.TerminationTriggerHeartbeatStale,
				"no heartbeat received; run presumed dead")
		}
	}

	expired, err := j.runs.FindStartDeadlineExpired()
	if err != nil {
		logger.Error("failed-to-find-deadline-expired-runs", err)
		return
	}
	for _, runID := range expired {
		j.failRun(logger, runID, rp.TerminationTriggerStartDeadline,
			"pipeline never reported startup before the deadline")
	}
}

func (j *Janitor) failRun(logger lager.Logger, runID, trigger, message string) {
	logger = logger.WithData(lager.Data{"run": runID, "trigger": trigger})

	run, found, err := j.runs.GetRun(runID)
	if err != nil {
		logger.Error("failed-to-load-run", err)
		return
	}
	if !found {
		return
	}

	from := run.Status()
	moved, err := run.Finish(rp.RunStatusFailed, trigger, message)
	if err != nil {
		logger.Error("failed-to-fail-run", err)
		return
	}
	if !moved {
		// Lost the race against a webhook-driven transition; the winner
		// already enqueued cleanup.
		return
	}

	j.bus.Publish(runID, event.StatusChanged{
		From:   from,
		To:     rp.RunStatusFailed,
		Reason: trigger,
		Time:   j.clock.Now().Unix(),
	})

	if _, err := j.terminations.Enqueue(runID, trigger); err != nil {
		logger.Error("failed-to-enqueue-termination", err)
		return
	}
	j.waker.Wake()

	logger.Info("flipped")
}
