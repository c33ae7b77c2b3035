package rp

// RunStatus is the lifecycle state of a research run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// Terminal reports whether the status is sticky; a run never leaves a
// terminal status.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	default:
		return false
	}
}

// Run is the wire representation of a research run, as returned by the
// snapshot and list endpoints. Timestamps are unix seconds.
type Run struct {
	ID                   string    `json:"run_id"`
	IdeaVersionID        string    `json:"idea_version_id"`
	UserID               string    `json:"user_id"`
	ConversationID       string    `json:"conversation_id"`
	ParentRunID          string    `json:"parent_run_id,omitempty"`
	Status               RunStatus `json:"status"`
	InitializationStatus string    `json:"initialization_status,omitempty"`
	PodID                string    `json:"pod_id,omitempty"`
	PodName              string    `json:"pod_name,omitempty"`
	GPUType              string    `json:"gpu_type,omitempty"`
	CostPerHour          float64   `json:"cost_per_hour"`
	PublicIP             string    `json:"public_ip,omitempty"`
	SSHPort              int       `json:"ssh_port,omitempty"`
	PodHostID            string    `json:"pod_host_id,omitempty"`
	ContainerDiskGB      int       `json:"container_disk_gb"`
	VolumeDiskGB         int       `json:"volume_disk_gb"`
	RestartCount         int       `json:"restart_count"`
	ErrorMessage         string    `json:"error_message,omitempty"`
	LastHeartbeatAt      int64     `json:"last_heartbeat_at,omitempty"`
	StartDeadlineAt      int64     `json:"start_deadline_at,omitempty"`
	StartedRunningAt     int64     `json:"started_running_at,omitempty"`
	CreatedAt            int64     `json:"created_at"`
}

// TerminationStatus is the state of a run's post-pipeline cleanup job.
type TerminationStatus string

const (
	TerminationStatusRequested  TerminationStatus = "requested"
	TerminationStatusInProgress TerminationStatus = "in_progress"
	TerminationStatusTerminated TerminationStatus = "terminated"
	TerminationStatusFailed     TerminationStatus = "failed"
)

// Termination triggers, recorded on the cleanup row and surfaced in the
// run's error message when the run ends unsuccessfully.
const (
	TerminationTriggerPipelineFinish = "pipeline_event_finish"
	TerminationTriggerGPUShortage    = "gpu_shortage"
	TerminationTriggerUserStop       = "user_stop"
	TerminationTriggerHeartbeatStale = "heartbeat_stale"
	TerminationTriggerStartDeadline  = "start_deadline_expired"
)

// FailureReasonLaunchError marks runs whose pod never came up; there is no
// cleanup job for them because no pod identity was recorded.
const FailureReasonLaunchError = "launch_error"

// Termination is the wire representation of a cleanup job.
type Termination struct {
	RunID               string            `json:"run_id"`
	Status              TerminationStatus `json:"status"`
	Trigger             string            `json:"trigger"`
	Attempts            int               `json:"attempts"`
	ArtifactsUploadedAt int64             `json:"artifacts_uploaded_at,omitempty"`
	PodTerminatedAt     int64             `json:"pod_terminated_at,omitempty"`
	LastError           string            `json:"last_error,omitempty"`
	ScheduledAt         int64             `json:"scheduled_at"`
}
