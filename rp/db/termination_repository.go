package db

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ae-scientist/tower/rp"
)

//counterfeiter:generate . TerminationRepository

// TerminationRepository is the persistent, lease-protected queue of cleanup
// jobs. One row per run; the claim operation is the only path into
// in_progress, so the lease owner's updates are the only ones that advance
// state.
type TerminationRepository interface {
	// Enqueue inserts a requested job, or refreshes the trigger on an
	// existing job that has not yet reached a terminal status.
	Enqueue(runID, trigger string) (rp.Termination, error)

	Get(runID string) (rp.Termination, bool, error)

	// ClaimNext atomically leases the oldest claimable job: one that is
	// requested, or in_progress with a lease that expired more than
	// stuckGrace ago.
	ClaimNext(leaseOwner string, leaseDuration, stuckGrace time.Duration) (rp.Termination, bool, error)

	MarkArtifactsUploaded(runID string) error
	MarkPodTerminated(runID string) error
	MarkTerminated(runID string, attempts int) error
	MarkFailed(runID string, attempts int, lastError string) error

	// Reschedule returns the job to the requested state for a later
	// attempt, releasing the lease.
	Reschedule(runID string, attempts int, lastError string) error
}

type terminationRepository struct {
	conn DbConn
}

func NewTerminationRepository(conn DbConn) TerminationRepository {
	return &terminationRepository{conn: conn}
}

var terminationColumns = []string{
	"run_id", "status", "trigger", "attempts",
	"artifacts_uploaded_at", "pod_terminated_at",
	"last_error", "scheduled_at",
}

func (repo *terminationRepository) Enqueue(runID, trigger string) (rp.Termination, error) {
	row := psql.Insert("terminations").
		Columns("run_id", "status", "trigger", "attempts", "scheduled_at", "updated_at").
		Values(runID, string(rp.TerminationStatusRequested), trigger, 0, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (run_id) DO UPDATE SET
				trigger = EXCLUDED.trigger,
				updated_at = NOW()
			WHERE terminations.status IN ('requested', 'in_progress')
			RETURNING `+columnList(terminationColumns)).
		RunWith(repo.conn).
		QueryRow()

	t, err := scanTermination(row)
	if err != nil {
		if err == sql.ErrNoRows {
			// Conflict on a terminal row: nothing was updated; return the
			// existing row as-is.
			existing, found, getErr := repo.Get(runID)
			if getErr != nil {
				return rp.Termination{}, getErr
			}
			if found {
				return existing, nil
			}
		}
		return rp.Termination{}, err
	}
	return t, nil
}

func (repo *terminationRepository) Get(runID string) (rp.Termination, bool, error) {
	row := psql.Select(terminationColumns...).
		From("terminations").
		Where(sq.Eq{"run_id": runID}).
		RunWith(repo.conn).
		QueryRow()

	t, err := scanTermination(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return rp.Termination{}, false, nil
		}
		return rp.Termination{}, false, err
	}
	return t, true, nil
}

func (repo *terminationRepository) ClaimNext(leaseOwner string, leaseDuration, stuckGrace time.Duration) (rp.Termination, bool, error) {
	row := psql.Update("terminations").
		Set("status", string(rp.TerminationStatusInProgress)).
		Set("lease_owner", leaseOwner).
		Set("lease_expires_at", sq.Expr("NOW() + ?::INTERVAL", interval(leaseDuration))).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Expr(`run_id = (
			SELECT run_id FROM terminations
			WHERE status = 'requested'
			   OR (status = 'in_progress' AND lease_expires_at < NOW() - ?::INTERVAL)
			ORDER BY scheduled_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)`, interval(stuckGrace))).
		Suffix("RETURNING " + columnList(terminationColumns)).
		RunWith(repo.conn).
		QueryRow()

	t, err := scanTermination(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return rp.Termination{}, false, nil
		}
		return rp.Termination{}, false, err
	}
	return t, true, nil
}

func (repo *terminationRepository) MarkArtifactsUploaded(runID string) error {
	return repo.update(runID, map[string]any{
		"artifacts_uploaded_at": sq.Expr("NOW()"),
	})
}

func (repo *terminationRepository) MarkPodTerminated(runID string) error {
	return repo.update(runID, map[string]any{
		"pod_terminated_at": sq.Expr("NOW()"),
	})
}

func (repo *terminationRepository) MarkTerminated(runID string, attempts int) error {
	return repo.update(runID, map[string]any{
		"status":   string(rp.TerminationStatusTerminated),
		"attempts": attempts,
	})
}

func (repo *terminationRepository) MarkFailed(runID string, attempts int, lastError string) error {
	return repo.update(runID, map[string]any{
		"status":     string(rp.TerminationStatusFailed),
		"attempts":   attempts,
		"last_error": lastError,
	})
}

func (repo *terminationRepository) Reschedule(runID string, attempts int, lastError string) error {
	return repo.update(runID, map[string]any{
		"status":           string(rp.TerminationStatusRequested),
		"attempts":         attempts,
		"last_error":       lastError,
		"lease_owner":      nil,
		"lease_expires_at": nil,
	})
}

func (repo *terminationRepository) update(runID string, sets map[string]any) error {
	update := psql.Update("terminations").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"run_id": runID})
	for col, val := range sets {
		update = update.Set(col, val)
	}

	_, err := update.RunWith(repo.conn).Exec()
	return err
}

func scanTermination(row scannable) (rp.Termination, error) {
	var (
		t                   rp.Termination
		status              string
		artifactsUploadedAt sql.NullTime
		podTerminatedAt     sql.NullTime
		lastError           sql.NullString
		scheduledAt         time.Time
	)

	err := row.Scan(
		&t.RunID, &status, &t.Trigger, &t.Attempts,
		&artifactsUploadedAt, &podTerminatedAt,
		&lastError, &scheduledAt,
	)
	if err != nil {
		return rp.Termination{}, err
	}

	t.Status = rp.TerminationStatus(status)
	if artifactsUploadedAt.Valid {
		t.ArtifactsUploadedAt = artifactsUploadedAt.Time.Unix()
	}
	if podTerminatedAt.Valid {
		t.PodTerminatedAt = podTerminatedAt.Time.Unix()
	}
	t.LastError = lastError.String
	t.ScheduledAt = scheduledAt.Unix()

	return t, nil
}

func columnList(cols []string) string {
	list := ""
	for i, col := range cols {
		if i > 0 {
			list += ", "
		}
		list += col
	}
	return list
}
