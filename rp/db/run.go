package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Run

// Run is the durable representation of one research run. Status mutations
// are conditional updates; a run never leaves a terminal status.
type Run interface {
	ID() string
	IdeaVersionID() string
	UserID() string
	ConversationID() string
	ParentRunID() string
	Status() rp.RunStatus
	InitializationStatus() string
	PodID() string
	PodName() string
	GPUType() string
	CostPerHour() float64
	PublicIP() string
	SSHPort() int
	PodHostID() string
	ContainerDiskGB() int
	VolumeDiskGB() int
	RestartCount() int
	ErrorMessage() string
	LastHeartbeatAt() time.Time
	StartDeadlineAt() time.Time
	StartedRunningAt() time.Time
	CreatedAt() time.Time

	Reload() (bool, error)
	ToWire() rp.Run

	// Started transitions pending to running and stamps started_running_at
	// exactly once. Returns false without error when the run is already
	// running or terminal.
	Started() (bool, error)

	// Finish moves the run to a terminal status. The status update and the
	// audit event are a single transaction. Returns false when the run is
	// already terminal.
	Finish(to rp.RunStatus, reason, message string) (bool, error)

	SetPodIdentity(podID, podName, gpuType string, costPerHour float64) error
	SetPodConnection(publicIP string, sshPort int, podHostID string) error
	UpdateInitializationStatus(message string) error
	Heartbeat() error

	SaveEvent(ev event.Event) error

	// LatestEvent returns the most recent audit event of the given type,
	// regardless of how much traffic the run accumulated before it.
	LatestEvent(eventType string) (rp.RunEventRow, bool, error)

	// TerminalEventTime returns the wall-clock time of the first audit
	// event that moved the run to a terminal status, for hardware cost
	// capping.
	TerminalEventTime() (time.Time, bool, error)
}

type run struct {
	conn DbConn

	id                   string
	ideaVersionID        string
	userID               string
	conversationID       string
	parentRunID          string
	status               rp.RunStatus
	initializationStatus string
	podID                string
	podName              string
	gpuType              string
	costPerHour          float64
	publicIP             string
	sshPort              int
	podHostID            string
	containerDiskGB      int
	volumeDiskGB         int
	restartCount         int
	errorMessage         string
	lastHeartbeatAt      time.Time
	heartbeatFailures    int
	startDeadlineAt      time.Time
	startedRunningAt     time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

func (r *run) ID() string                   { return r.id }
func (r *run) IdeaVersionID() string        { return r.ideaVersionID }
func (r *run) UserID() string               { return r.userID }
func (r *run) ConversationID() string       { return r.conversationID }
func (r *run) ParentRunID() string          { return r.parentRunID }
func (r *run) Status() rp.RunStatus         { return r.status }
func (r *run) InitializationStatus() string { return r.initializationStatus }
func (r *run) PodID() string                { return r.podID }
func (r *run) PodName() string              { return r.podName }
func (r *run) GPUType() string              { return r.gpuType }
func (r *run) CostPerHour() float64         { return r.costPerHour }
func (r *run) PublicIP() string             { return r.publicIP }
func (r *run) SSHPort() int                 { return r.sshPort }
func (r *run) PodHostID() string            { return r.podHostID }
func (r *run) ContainerDiskGB() int         { return r.containerDiskGB }
func (r *run) VolumeDiskGB() int            { return r.volumeDiskGB }
func (r *run) RestartCount() int            { return r.restartCount }
func (r *run) ErrorMessage() string         { return r.errorMessage }
func (r *run) LastHeartbeatAt() time.Time   { return r.lastHeartbeatAt }
func (r *run) StartDeadlineAt() time.Time   { return r.startDeadlineAt }
func (r *run) StartedRunningAt() time.Time  { return r.startedRunningAt }
func (r *run) CreatedAt() time.Time         { return r.createdAt }

func (r *run) Reload() (bool, error) {
	row := runsQuery.Where(sq.Eq{"r.run_id": r.id}).
		RunWith(r.conn).
		QueryRow()

	err := scanRun(r, row)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *run) ToWire() rp.Run {
	wire := rp.Run{
		ID:                   r.id,
		IdeaVersionID:        r.ideaVersionID,
		UserID:               r.userID,
		ConversationID:       r.conversationID,
		ParentRunID:          r.parentRunID,
		Status:               r.status,
		InitializationStatus: r.initializationStatus,
		PodID:                r.podID,
		PodName:              r.podName,
		GPUType:              r.gpuType,
		CostPerHour:          r.costPerHour,
		PublicIP:             r.publicIP,
		SSHPort:              r.sshPort,
		PodHostID:            r.podHostID,
		ContainerDiskGB:      r.containerDiskGB,
		VolumeDiskGB:         r.volumeDiskGB,
		RestartCount:         r.restartCount,
		ErrorMessage:         r.errorMessage,
		CreatedAt:            r.createdAt.Unix(),
	}
	if !r.lastHeartbeatAt.IsZero() {
		wire.LastHeartbeatAt = r.lastHeartbeatAt.Unix()
	}
	if !r.startDeadlineAt.IsZero() {
		wire.StartDeadlineAt = r.startDeadlineAt.Unix()
	}
	if !r.startedRunningAt.IsZero() {
		wire.StartedRunningAt = r.startedRunningAt.Unix()
	}
	return wire
}

func (r *run) Started() (bool, error) {
	tx, err := r.conn.Begin()
	if err != nil {
		return false, err
	}
	defer Rollback(tx)

	result, err := psql.Update("runs").
		Set("status", string(rp.RunStatusRunning)).
		Set("started_running_at", sq.Expr("COALESCE(started_running_at, NOW())")).
		Set("start_deadline_at", sq.Expr("NOW() + '5 minutes'::INTERVAL")).
		Set("last_heartbeat_at", sq.Expr("NOW()")).
		Set("heartbeat_failures", 0).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"run_id": r.id,
			"status": string(rp.RunStatusPending),
		}).
		RunWith(tx).
		Exec()
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		// Duplicate run-started. Still proof of life, so refresh the
		// heartbeat when the run is already running.
		_, err = psql.Update("runs").
			Set("last_heartbeat_at", sq.Expr("NOW()")).
			Set("heartbeat_failures", 0).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{
				"run_id": r.id,
				"status": string(rp.RunStatusRunning),
			}).
			RunWith(tx).
			Exec()
		if err != nil {
			return false, err
		}
		return false, tx.Commit()
	}

	err = saveEvent(tx, r.id, event.StatusChanged{
		From: rp.RunStatusPending,
		To:   rp.RunStatusRunning,
		Time: time.Now().Unix(),
	})
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	r.status = rp.RunStatusRunning
	return true, nil
}

func (r *run) Finish(to rp.RunStatus, reason, message string) (bool, error) {
	if !to.Terminal() {
		return false, fmt.Errorf("finish requires a terminal status, got %q", to)
	}

	tx, err := r.conn.Begin()
	if err != nil {
		return false, err
	}
	defer Rollback(tx)

	var current string
	err = psql.Select("status").
		From("runs").
		Where(sq.Eq{"run_id": r.id}).
		Suffix("FOR UPDATE").
		RunWith(tx).
		QueryRow().
		Scan(&current)
	if err != nil {
		return false, err
	}

	if rp.RunStatus(current).Terminal() {
		return false, tx.Commit()
	}

	update := psql.Update("runs").
		Set("status", string(to)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"run_id": r.id})
	if message != "" {
		update = update.Set("error_message", message)
	}

	if _, err := update.RunWith(tx).Exec(); err != nil {
		return false, err
	}

	err = saveEvent(tx, r.id, event.StatusChanged{
		From:   rp.RunStatus(current),
		To:     to,
		Reason: reason,
		Time:   time.Now().Unix(),
	})
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	r.status = to
	if message != "" {
		r.errorMessage = message
	}
	return true, nil
}

func (r *run) SetPodIdentity(podID, podName, gpuType string, costPerHour float64) error {
	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer Rollback(tx)

	// Idempotent on first success: a pod identity, once set, is immutable.
	result, err := psql.Update("runs").
		Set("pod_id", podID).
		Set("pod_name", podName).
		Set("gpu_type", gpuType).
		Set("cost_per_hour", costPerHour).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"run_id": r.id}).
		Where(sq.Expr("pod_id IS NULL")).
		RunWith(tx).
		Exec()
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return tx.Commit()
	}

	err = saveEvent(tx, r.id, event.PodInfoUpdated{
		PodID:       podID,
		PodName:     podName,
		GPUType:     gpuType,
		CostPerHour: costPerHour,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.podID = podID
	r.podName = podName
	r.gpuType = gpuType
	r.costPerHour = costPerHour
	return nil
}

func (r *run) SetPodConnection(publicIP string, sshPort int, podHostID string) error {
	_, err := psql.Update("runs").
		Set("public_ip", publicIP).
		Set("ssh_port", sshPort).
		Set("pod_host_id", podHostID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"run_id": r.id}).
		RunWith(r.conn).
		Exec()
	if err != nil {
		return err
	}

	r.publicIP = publicIP
	r.sshPort = sshPort
	r.podHostID = podHostID
	return nil
}

func (r *run) UpdateInitializationStatus(message string) error {
	_, err := psql.Update("runs").
		Set("initialization_status", message).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"run_id": r.id}).
		RunWith(r.conn).
		Exec()
	if err != nil {
		return err
	}

	r.initializationStatus = message
	return nil
}

func (r *run) Heartbeat() error {
	_, err := psql.Update("runs").
		Set("last_heartbeat_at", sq.Expr("NOW()")).
		Set("heartbeat_failures", 0).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"run_id": r.id}).
		RunWith(r.conn).
		Exec()
	return err
}

func (r *run) SaveEvent(ev event.Event) error {
	return saveEvent(r.conn, r.id, ev)
}

func (r *run) LatestEvent(eventType string) (rp.RunEventRow, bool, error) {
	var (
		row        rp.RunEventRow
		occurredAt time.Time
	)

	err := psql.Select("event_type", "metadata", "occurred_at").
		From("run_events").
		Where(sq.Eq{
			"run_id":     r.id,
			"event_type": eventType,
		}).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(1).
		RunWith(r.conn).
		QueryRow().
		Scan(&row.EventType, &row.Metadata, &occurredAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return rp.RunEventRow{}, false, nil
		}
		return rp.RunEventRow{}, false, err
	}

	row.OccurredAt = occurredAt.Unix()
	return row, true, nil
}

func (r *run) TerminalEventTime() (time.Time, bool, error) {
	var at sql.NullTime
	err := psql.Select("MIN(occurred_at)").
		From("run_events").
		Where(sq.Eq{"run_id": r.id, "event_type": string(event.TypeStatusChanged)}).
		Where(sq.Eq{"metadata->>'to_status'": []string{
			string(rp.RunStatusCompleted),
			string(rp.RunStatusFailed),
			string(rp.RunStatusCancelled),
		}}).
		RunWith(r.conn).
		QueryRow().
		Scan(&at)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	if !at.Valid {
		return time.Time{}, false, nil
	}
	return at.Time, true, nil
}

// saveEvent appends one audit row. The runner may be a transaction so that
// status changes and their audit entries commit together.
func saveEvent(runner sq.BaseRunner, runID string, ev event.Event) error {
	metadata, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, err = psql.Insert("run_events").
		Columns("run_id", "event_type", "metadata", "occurred_at").
		Values(runID, string(ev.EventType()), metadata, sq.Expr("NOW()")).
		RunWith(runner).
		Exec()
	return err
}

func scanRun(r *run, row scannable) error {
	var (
		parentRunID          sql.NullString
		initializationStatus sql.NullString
		podID                sql.NullString
		podName              sql.NullString
		gpuType              sql.NullString
		publicIP             sql.NullString
		sshPort              sql.NullInt64
		podHostID            sql.NullString
		errorMessage         sql.NullString
		lastHeartbeatAt      sql.NullTime
		startDeadlineAt      sql.NullTime
		startedRunningAt     sql.NullTime
		status               string
	)

	err := row.Scan(
		&r.id,
		&r.ideaVersionID,
		&r.userID,
		&r.conversationID,
		&parentRunID,
		&status,
		&initializationStatus,
		&podID,
		&podName,
		&gpuType,
		&r.costPerHour,
		&publicIP,
		&sshPort,
		&podHostID,
		&r.containerDiskGB,
		&r.volumeDiskGB,
		&r.restartCount,
		&errorMessage,
		&lastHeartbeatAt,
		&r.heartbeatFailures,
		&startDeadlineAt,
		&startedRunningAt,
		&r.createdAt,
		&r.updatedAt,
	)
	if err != nil {
		return err
	}

	r.status = rp.RunStatus(status)
	r.parentRunID = parentRunID.String
	r.initializationStatus = initializationStatus.String
	r.podID = podID.String
	r.podName = podName.String
	r.gpuType = gpuType.String
	r.publicIP = publicIP.String
	r.sshPort = int(sshPort.Int64)
	r.podHostID = podHostID.String
	r.errorMessage = errorMessage.String
	r.lastHeartbeatAt = lastHeartbeatAt.Time
	r.startDeadlineAt = startDeadlineAt.Time
	r.startedRunningAt = startedRunningAt.Time

	return nil
}

func interval(d time.Duration) string {
	return fmt.Sprintf("%d seconds", int(d.Seconds()))
}
