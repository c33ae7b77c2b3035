package termination

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/notifier"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/ae-scientist/tower/rp/remoteshell"
	"github.com/google/uuid"
	multierror "github.com/hashicorp/go-multierror"
)

const (
	MaxAttempts   = 3
	LeaseDuration = 50 * time.Minute
	StuckGrace    = 60 * time.Minute

	DefaultPollInterval = time.Second
	DefaultConcurrency  = 4
)

// Waker nudges the worker out of its poll sleep. The ingress calls it right
// after enqueueing a cleanup job.
type Waker interface {
	Wake()
}

// Worker drains the termination queue: artifact upload, then pod release,
// with bounded attempts under a lease. Jobs are not cancellable mid-flight;
// a dead worker's jobs are reclaimed via the lease.
type Worker struct {
	logger lager.Logger
	clock  clock.Clock
	owner  string

	runs         db.RunFactory
	terminations db.TerminationRepository
	shell        remoteshell.Shell
	provider     podprovider.Provider
	bus          *eventbus.Bus
	notifier     notifier.Notifier

	pollInterval time.Duration
	concurrency  int

	wake chan struct{}
}

func NewWorker(
	logger lager.Logger,
	clk clock.Clock,
	runs db.RunFactory,
	terminations db.TerminationRepository,
	shell remoteshell.Shell,
	provider podprovider.Provider,
	bus *eventbus.Bus,
	notify notifier.Notifier,
	pollInterval time.Duration,
	concurrency int,
) *Worker {
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}

	return &Worker{
		logger:       logger,
		clock:        clk,
		owner:        uuid.NewString(),
		runs:         runs,
		terminations: terminations,
		shell:        shell,
		provider:     provider,
		bus:          bus,
		notifier:     notify,
		pollInterval: pollInterval,
		concurrency:  concurrency,
		wake:         make(chan struct{}, 1),
	}
}

func (w *Worker) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run implements ifrit.Runner.
func (w *Worker) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := w.logger.Session("worker", lager.Data{"owner": w.owner})
	logger.Info("start")
	defer logger.Info("done")

	close(ready)

	ticker := w.clock.NewTicker(w.pollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.concurrency)
	var wg sync.WaitGroup

	for {
		w.drain(logger, sem, &wg)

		select {
		case <-signals:
			// In-flight jobs finish; anything queued is reclaimed by lease.
			wg.Wait()
			return nil
		case <-w.wake:
		case <-ticker.C():
		}
	}
}

func (w *Worker) drain(logger lager.Logger, sem chan struct{}, wg *sync.WaitGroup) {
	for {
		job, claimed, err := w.terminations.ClaimNext(w.owner, LeaseDuration, StuckGrace)
		if err != nil {
			logger.Error("failed-to-claim-job", err)
			return
		}
		if !claimed {
			return
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(job rp.Termination) {
			defer wg.Done()
			defer func() { <-sem }()
			w.process(logger.Session("job", lager.Data{"run": job.RunID, "trigger": job.Trigger}), job)
		}(job)
	}
}

func (w *Worker) process(logger lager.Logger, job rp.Termination) {
	ctx := context.Background()
	attempt := job.Attempts + 1

	run, found, err := w.runs.GetRun(job.RunID)
	if err != nil {
		w.retryOrFail(logger, job, attempt, err)
		return
	}
	if !found {
		w.fail(logger, job.RunID, attempt, errors.New("run not found"))
		return
	}

	var uploadErr error
	if job.ArtifactsUploadedAt == 0 {
		uploadErr = w.uploadArtifacts(logger, run, job)
		if uploadErr != nil && attempt < MaxAttempts {
			w.reschedule(logger, job.RunID, attempt, uploadErr)
			return
		}
		// Attempts exhausted: release the pod anyway rather than leak it.
	}

	if podID := run.PodID(); podID != "" {
		err := w.provider.DeletePod(ctx, podID)
		if err != nil && err != podprovider.ErrPodNotFound {
			if attempt < MaxAttempts {
				w.reschedule(logger, job.RunID, attempt, err)
				return
			}

			failErr := err
			if uploadErr != nil {
				failErr = multierror.Append(uploadErr, err)
			}
			w.fail(logger, job.RunID, attempt, failErr)
			w.emitComplete(logger, run)
			return
		}

		if err := w.terminations.MarkPodTerminated(job.RunID); err != nil {
			logger.Error("failed-to-mark-pod-terminated", err)
		}

		w.captureBilling(ctx, logger, run, job, podID)
	} else {
		if err := w.terminations.MarkPodTerminated(job.RunID); err != nil {
			logger.Error("failed-to-mark-pod-terminated", err)
		}
	}

	if err := w.terminations.MarkTerminated(job.RunID, attempt); err != nil {
		logger.Error("failed-to-mark-terminated", err)
		return
	}

	w.bus.Publish(job.RunID, event.TerminationStatus{Status: rp.TerminationStatusTerminated})
	w.emitComplete(logger, run)

	if uploadErr != nil {
		logger.Info("terminated-without-artifacts", lager.Data{"upload-error": uploadErr.Error()})
		w.notifier.Alert("artifact upload abandoned at retry budget", map[string]any{
			"run_id": job.RunID,
			"error":  uploadErr.Error(),
		})
	}

	logger.Info("terminated", lager.Data{"attempt": attempt})
}

func (w *Worker) uploadArtifacts(logger lager.Logger, run db.Run, job rp.Termination) error {
	if run.PublicIP() == "" || run.SSHPort() == 0 {
		return errors.New("missing SSH connection info")
	}

	err := w.shell.UploadArtifacts(context.Background(), run.PublicIP(), run.SSHPort(), run.ID(), job.Trigger)
	if err != nil {
		logger.Error("failed-to-upload-artifacts", err)
		return err
	}

	if err := w.terminations.MarkArtifactsUploaded(run.ID()); err != nil {
		logger.Error("failed-to-mark-artifacts-uploaded", err)
	}
	return nil
}

func (w *Worker) captureBilling(ctx context.Context, logger lager.Logger, run db.Run, job rp.Termination, podID string) {
	summary, err := w.provider.GetBillingSummary(ctx, podID)
	if err != nil {
		logger.Error("failed-to-fetch-billing-summary", err, lager.Data{"pod-id": podID})
		return
	}
	if summary == nil {
		logger.Debug("no-billing-records-yet", lager.Data{"pod-id": podID})
		return
	}

	records, err := json.Marshal(summary.Records)
	if err != nil {
		logger.Error("failed-to-encode-billing-records", err)
		records = nil
	}

	billingEvent := event.PodBillingSummary{
		AmountUSD:    summary.AmountUSD,
		TimeBilledMS: summary.TimeBilledMS,
		Records:      records,
		Context:      job.Trigger,
	}
	if err := run.SaveEvent(billingEvent); err != nil {
		logger.Error("failed-to-save-billing-summary", err)
		return
	}
	w.bus.Publish(run.ID(), billingEvent)
}

// emitComplete synthesizes the final stream frame from the run's terminal
// state. It is saved as an audit event so reconnecting clients see it in
// the snapshot path.
func (w *Worker) emitComplete(logger lager.Logger, run db.Run) {
	if _, err := run.Reload(); err != nil {
		logger.Error("failed-to-reload-run", err)
	}

	complete := event.Complete{
		Status:  run.Status(),
		Success: run.Status() == rp.RunStatusCompleted,
		Message: run.ErrorMessage(),
	}
	if err := run.SaveEvent(complete); err != nil {
		logger.Error("failed-to-save-complete-event", err)
	}
	w.bus.Publish(run.ID(), complete)
}

func (w *Worker) reschedule(logger lager.Logger, runID string, attempt int, cause error) {
	logger.Info("rescheduling", lager.Data{"attempt": attempt, "cause": cause.Error()})

	if err := w.terminations.Reschedule(runID, attempt, cause.Error()); err != nil {
		logger.Error("failed-to-reschedule", err)
		return
	}
	w.bus.Publish(runID, event.TerminationStatus{
		Status:    rp.TerminationStatusRequested,
		LastError: cause.Error(),
	})
}

func (w *Worker) retryOrFail(logger lager.Logger, job rp.Termination, attempt int, cause error) {
	if attempt < MaxAttempts {
		w.reschedule(logger, job.RunID, attempt, cause)
		return
	}
	w.fail(logger, job.RunID, attempt, cause)
}

func (w *Worker) fail(logger lager.Logger, runID string, attempt int, cause error) {
	logger.Error("job-failed", cause, lager.Data{"attempt": attempt})

	if err := w.terminations.MarkFailed(runID, attempt, cause.Error()); err != nil {
		logger.Error("failed-to-mark-failed", err)
		return
	}
	w.bus.Publish(runID, event.TerminationStatus{
		Status:    rp.TerminationStatusFailed,
		LastError: cause.Error(),
	})
}
