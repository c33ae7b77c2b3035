package launcher

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/event"
)

// RetryForGPUShortage relaunches a run reported short on GPUs as a fresh
// run with its own identity and credential. It reports false, without
// error, when the restart budget is spent; the caller then finishes the
// run and enqueues cleanup.
func (l *Launcher) RetryForGPUShortage(run db.Run) (string, bool, error) {
	logger := l.logger.Session("gpu-shortage-retry", lager.Data{"run": run.ID()})

	attempt := run.RestartCount() + 1
	if attempt > l.cfg.MaxGPURetries {
		logger.Info("retries-exhausted", lager.Data{"attempts": run.RestartCount()})
		return "", false, nil
	}

	retryRunID, err := l.Submit(SubmitRequest{
		IdeaVersionID:  run.IdeaVersionID(),
		UserID:         run.UserID(),
		ConversationID: run.ConversationID(),
		ParentRunID:    run.ParentRunID(),
		GPUPreferences: rp.RetryGPUPreferences(run.GPUType(), rp.SupportedGPUTypes),

		// Admission already happened when the original run was submitted.
		skipAdmission: true,
		restartCount:  attempt,
	})
	if err != nil {
		return "", false, fmt.Errorf("submit retry run: %w", err)
	}

	retryEvent := event.GPUShortageRetry{
		RetryRunID: retryRunID,
		Attempt:    attempt,
	}
	if err := run.SaveEvent(retryEvent); err != nil {
		logger.Error("failed-to-save-retry-event", err, lager.Data{"retry-run": retryRunID})
	}
	l.bus.Publish(run.ID(), retryEvent)

	logger.Info("retried", lager.Data{"retry-run": retryRunID, "attempt": attempt})
	return retryRunID, true, nil
}

// ExhaustedShortageMessage decorates the provider's message with the spent
// restart budget for the user-facing error.
func ExhaustedShortageMessage(message string, attempts int) string {
	if message == "" {
		message = "no GPUs available"
	}
	return fmt.Sprintf("%s (after %d restart attempt(s))", message, attempts)
}
