package runserver

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/api/present"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/event"
)

const (
	snapshotLogLimit      = 500
	snapshotProgressLimit = 200
)

// buildSnapshot rehydrates the initial stream payload from the durable
// projections. It also returns the recorded billing summary, if any, and a
// cost tracker primed with the run's terminal time, so the stream can keep
// synthesizing hw_cost_estimate ticks.
func (s *Server) buildSnapshot(run db.Run) (rp.RunSnapshot, *event.PodBillingSummary, *costTracker, error) {
	snapshot := rp.RunSnapshot{Run: run.ToWire()}

	var err error
	runID := run.ID()

	if snapshot.StageProgress, err = s.projections.StageProgress(runID, snapshotProgressLimit); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.Substages, err = s.projections.SubstagesCompleted(runID); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.SubstageSummaries, err = s.projections.SubstageSummaries(runID); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.PaperProgress, err = s.projections.PaperProgress(runID, snapshotProgressLimit); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.Logs, err = s.projections.RunLogs(runID, snapshotLogLimit); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.Artifacts, err = s.projections.Artifacts(runID); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.TreeViz, err = s.projections.TreeViz(runID); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.BestNodes, err = s.projections.BestNodes(runID); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.SkipWindows, err = s.projections.StageSkipWindows(runID); err != nil {
		return snapshot, nil, nil, err
	}
	if snapshot.LatestCodeExecution, err = s.projections.LatestCodeExecution(runID); err != nil {
		return snapshot, nil, nil, err
	}

	if t, found, err := s.terminations.Get(runID); err != nil {
		return snapshot, nil, nil, err
	} else if found {
		snapshot.TerminationStatus = &t
	}

	tracker := s.newCostTracker(run)
	if stoppedAt, found, err := run.TerminalEventTime(); err != nil {
		return snapshot, nil, nil, err
	} else if found {
		tracker.stop(stoppedAt.Unix())
	}
	snapshot.HWCost = tracker.estimate(s.clock.Now())

	billing, err := latestBillingSummary(run)
	if err != nil {
		return snapshot, nil, nil, err
	}

	return snapshot, billing, tracker, nil
}

func latestBillingSummary(run db.Run) (*event.PodBillingSummary, error) {
	row, found, err := run.LatestEvent(string(event.TypePodBillingSummary))
	if err != nil || !found {
		return nil, err
	}

	var summary event.PodBillingSummary
	if err := json.Unmarshal(row.Metadata, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Server) GetSnapshotHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("snapshot")

		run, ok := s.resolveRun(logger, w, r)
		if !ok {
			return
		}

		snapshot, _, _, err := s.buildSnapshot(run)
		if err != nil {
			logger.Error("failed-to-build-snapshot", err, lager.Data{"run": run.ID()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		payload, err := present.Sanitized(snapshot)
		if err != nil {
			logger.Error("failed-to-encode-snapshot", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	})
}

// costTracker synthesizes hw_cost_estimate ticks. Elapsed time is capped at
// the terminal transition once one is observed.
type costTracker struct {
	costPerHourCents int64
	startedAt        int64
	stoppedAt        int64
}

func (s *Server) newCostTracker(run db.Run) *costTracker {
	t := &costTracker{
		costPerHourCents: int64(math.Round(run.CostPerHour() * 100)),
	}
	if started := run.StartedRunningAt(); !started.IsZero() {
		t.startedAt = started.Unix()
	}
	return t
}

func (t *costTracker) stop(at int64) {
	if t.stoppedAt == 0 || at < t.stoppedAt {
		t.stoppedAt = at
	}
}

func (t *costTracker) estimate(now time.Time) *rp.HWCostEstimate {
	if t.startedAt == 0 {
		return nil
	}

	until := now.Unix()
	if t.stoppedAt != 0 && t.stoppedAt < until {
		until = t.stoppedAt
	}

	elapsed := until - t.startedAt
	if elapsed < 0 {
		elapsed = 0
	}

	return &rp.HWCostEstimate{
		HWEstimatedCostCents: t.costPerHourCents * elapsed / 3600,
		HWCostPerHourCents:   t.costPerHourCents,
		HWStartedRunningAt:   t.startedAt,
	}
}

// actualCents converts the provider's dollar total with half-up rounding.
func actualCents(amountUSD float64) int64 {
	return int64(math.Floor(amountUSD*100 + 0.5))
}
