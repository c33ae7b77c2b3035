package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrRunAlreadyExists is returned when a run with the same ID was inserted
// concurrently.
var ErrRunAlreadyExists = errors.New("run already exists")

//counterfeiter:generate . RunFactory

// RunFactory creates and looks up runs. Mutations on a single run live on
// the Run interface.
type RunFactory interface {
	CreateRun(spec RunSpec) (Run, error)
	GetRun(runID string) (Run, bool, error)
	RunsForConversation(conversationID string) ([]Run, error)
	GetWebhookTokenHash(runID string) (string, bool, error)

	// FindStartDeadlineExpired returns pending runs whose startup grace
	// period has passed without a run-started ingest.
	FindStartDeadlineExpired() ([]string, error)

	// FindHeartbeatStale returns non-terminal runs whose last heartbeat is
	// older than the timeout.
	FindHeartbeatStale(timeout time.Duration) ([]string, error)
}

// RunSpec is the creation-time shape of a run. The webhook token hash is
// fixed here and never rotated.
type RunSpec struct {
	ID               string
	IdeaVersionID    string
	UserID           string
	ConversationID   string
	ParentRunID      string
	WebhookTokenHash string
	ContainerDiskGB  int
	VolumeDiskGB     int
	RestartCount     int
	StartDeadline    time.Time
}

type runFactory struct {
	conn DbConn
}

func NewRunFactory(conn DbConn) RunFactory {
	return &runFactory{conn: conn}
}

var runsQuery = psql.Select(
	"r.run_id",
	"r.idea_version_id",
	"r.user_id",
	"r.conversation_id",
	"r.parent_run_id",
	"r.status",
	"r.initialization_status",
	"r.pod_id",
	"r.pod_name",
	"r.gpu_type",
	"r.cost_per_hour",
	"r.public_ip",
	"r.ssh_port",
	"r.pod_host_id",
	"r.container_disk_gb",
	"r.volume_disk_gb",
	"r.restart_count",
	"r.error_message",
	"r.last_heartbeat_at",
	"r.heartbeat_failures",
	"r.start_deadline_at",
	"r.started_running_at",
	"r.created_at",
	"r.updated_at",
).From("runs r")

func (f *runFactory) CreateRun(spec RunSpec) (Run, error) {
	tx, err := f.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer Rollback(tx)

	_, err = psql.Insert("runs").
		SetMap(map[string]any{
			"run_id":             spec.ID,
			"idea_version_id":    spec.IdeaVersionID,
			"user_id":            spec.UserID,
			"conversation_id":    spec.ConversationID,
			"parent_run_id":      nullStr(spec.ParentRunID),
			"status":             string(rp.RunStatusPending),
			"webhook_token_hash": spec.WebhookTokenHash,
			"container_disk_gb":  spec.ContainerDiskGB,
			"volume_disk_gb":     spec.VolumeDiskGB,
			"restart_count":      spec.RestartCount,
			"heartbeat_failures": 0,
			"cost_per_hour":      0,
			"start_deadline_at":  spec.StartDeadline,
			"created_at":         sq.Expr("NOW()"),
			"updated_at":         sq.Expr("NOW()"),
		}).
		RunWith(tx).
		Exec()
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, ErrRunAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				return nil, fmt.Errorf("idea version %s not found: %w", spec.IdeaVersionID, err)
			}
		}
		return nil, err
	}

	err = saveEvent(tx, spec.ID, event.StatusChanged{
		To:   rp.RunStatusPending,
		Time: time.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return f.GetRunOrStub(spec.ID)
}

// GetRunOrStub reloads the created run; insertion has already succeeded so
// a missing row is a hard error.
func (f *runFactory) GetRunOrStub(runID string) (Run, error) {
	r, found, err := f.GetRun(runID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sql.ErrNoRows
	}
	return r, nil
}

func (f *runFactory) GetRun(runID string) (Run, bool, error) {
	row := runsQuery.Where(sq.Eq{"r.run_id": runID}).
		RunWith(f.conn).
		QueryRow()

	r := &run{conn: f.conn}
	err := scanRun(r, row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	return r, true, nil
}

func (f *runFactory) RunsForConversation(conversationID string) ([]Run, error) {
	rows, err := runsQuery.
		Where(sq.Eq{"r.conversation_id": conversationID}).
		OrderBy("r.created_at DESC").
		RunWith(f.conn).
		Query()
	if err != nil {
		return nil, err
	}
	defer Close(rows)

	runs := []Run{}
	for rows.Next() {
		r := &run{conn: f.conn}
		if err := scanRun(r, rows); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

func (f *runFactory) GetWebhookTokenHash(runID string) (string, bool, error) {
	var hash string
	err := psql.Select("webhook_token_hash").
		From("runs").
		Where(sq.Eq{"run_id": runID}).
		RunWith(f.conn).
		QueryRow().
		Scan(&hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return hash, true, nil
}

func (f *runFactory) FindStartDeadlineExpired() ([]string, error) {
	rows, err := psql.Select("run_id").
		From("runs").
		Where(sq.Eq{"status": string(rp.RunStatusPending)}).
		Where(sq.Expr("start_deadline_at IS NOT NULL")).
		Where(sq.Expr("start_deadline_at < NOW()")).
		RunWith(f.conn).
		Query()
	if err != nil {
		return nil, err
	}
	return runIDsAffected(rows)
}

func (f *runFactory) FindHeartbeatStale(timeout time.Duration) ([]string, error) {
	rows, err := psql.Select("run_id").
		From("runs").
		Where(sq.Eq{"status": []string{
			string(rp.RunStatusPending),
			string(rp.RunStatusRunning),
		}}).
		Where(sq.Expr("last_heartbeat_at IS NOT NULL")).
		Where(sq.Expr("last_heartbeat_at < NOW() - ?::INTERVAL", interval(timeout))).
		RunWith(f.conn).
		Query()
	if err != nil {
		return nil, err
	}
	return runIDsAffected(rows)
}

func runIDsAffected(rows *sql.Rows) ([]string, error) {
	defer Close(rows)

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
