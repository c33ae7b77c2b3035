package event

import (
	"encoding/json"

	"github.com/ae-scientist/tower/rp"
)

// Type identifies a stream or audit event. Stream frames carry the type
// alongside the event payload; the audit log stores it as the event_type
// column.
type Type string

const (
	TypeInitial                Type = "initial"
	TypeStatusChanged          Type = "status_changed"
	TypeInitializationProgress Type = "initialization_progress"
	TypeStageProgress          Type = "stage_progress"
	TypeSubstageCompleted      Type = "substage_completed"
	TypeSubstageSummary        Type = "substage_summary"
	TypePaperProgress          Type = "paper_generation_progress"
	TypeTreeViz                Type = "tree_viz_stored"
	TypeStageSkipWindow        Type = "stage_skip_window"
	TypeLog                    Type = "run_log"
	TypeBestNode               Type = "best_node_selection"
	TypeCodex                  Type = "codex_event"
	TypeCodeExecution          Type = "code_execution"
	TypeArtifactUploaded       Type = "artifact_uploaded"
	TypeReviewCompleted        Type = "review_completed"
	TypeFigureReviews          Type = "figure_reviews"
	TypeHWStats                Type = "hw_stats"
	TypeGPUShortage            Type = "gpu_shortage"
	TypeGPUShortageRetry       Type = "gpu_shortage_retry"
	TypePodInfoUpdated         Type = "pod_info_updated"
	TypePodBillingSummary      Type = "pod_billing_summary"
	TypeTerminationStatus      Type = "termination_status"
	TypeHeartbeat              Type = "heartbeat"
	TypeHWCostEstimate         Type = "hw_cost_estimate"
	TypeHWCostActual           Type = "hw_cost_actual"
	TypeComplete               Type = "complete"
	TypeError                  Type = "error"
)

// Event is implemented by every stream/audit event.
type Event interface {
	EventType() Type
}

// Initial is the rehydrated snapshot emitted as the first stream frame.
type Initial struct {
	rp.RunSnapshot
}

func (Initial) EventType() Type { return TypeInitial }

// StatusChanged records a run status transition. Times are unix seconds.
type StatusChanged struct {
	From   rp.RunStatus `json:"from_status,omitempty"`
	To     rp.RunStatus `json:"to_status"`
	Reason string       `json:"reason,omitempty"`
	Time   int64        `json:"time"`
}

func (StatusChanged) EventType() Type { return TypeStatusChanged }

type InitializationProgress struct {
	Message string `json:"message"`
}

func (InitializationProgress) EventType() Type { return TypeInitializationProgress }

type StageProgress struct {
	rp.StageProgressEvent
	Time int64 `json:"time"`
}

func (StageProgress) EventType() Type { return TypeStageProgress }

type SubstageCompleted struct {
	rp.SubstageCompletedEvent
	Time int64 `json:"time"`
}

func (SubstageCompleted) EventType() Type { return TypeSubstageCompleted }

type SubstageSummary struct {
	rp.SubstageSummaryEvent
	Time int64 `json:"time"`
}

func (SubstageSummary) EventType() Type { return TypeSubstageSummary }

type PaperProgress struct {
	rp.PaperGenerationProgressEvent
	Time int64 `json:"time"`
}

func (PaperProgress) EventType() Type { return TypePaperProgress }

type TreeViz struct {
	rp.TreeVizEvent
	Time int64 `json:"time"`
}

func (TreeViz) EventType() Type { return TypeTreeViz }

type StageSkipWindow struct {
	rp.StageSkipWindowEvent
	Time int64 `json:"time"`
}

func (StageSkipWindow) EventType() Type { return TypeStageSkipWindow }

type Log struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Time    int64  `json:"time"`
}

func (Log) EventType() Type { return TypeLog }

type BestNode struct {
	rp.BestNodeSelectionEvent
	Time int64 `json:"time"`
}

func (BestNode) EventType() Type { return TypeBestNode }

// Codex carries an opaque pipeline agent event, stored and forwarded as-is.
type Codex struct {
	Payload json.RawMessage `json:"payload"`
}

func (Codex) EventType() Type { return TypeCodex }

// CodeExecution covers both the running-code and run-completed webhook
// events; the row status distinguishes them.
type CodeExecution struct {
	rp.CodeExecutionRow
}

func (CodeExecution) EventType() Type { return TypeCodeExecution }

type ArtifactUploaded struct {
	rp.ArtifactRow
}

func (ArtifactUploaded) EventType() Type { return TypeArtifactUploaded }

type ReviewCompleted struct {
	ID int `json:"id"`
	rp.LlmReviewEvent
}

func (ReviewCompleted) EventType() Type { return TypeReviewCompleted }

type FigureReviews struct {
	Reviews []rp.VlmFigureReview `json:"reviews"`
}

func (FigureReviews) EventType() Type { return TypeFigureReviews }

// PartitionSpace is one partition's usage with the capacity resolved from
// the run's provisioned disk sizes.
type PartitionSpace struct {
	Partition     string `json:"partition"`
	UsedBytes     int64  `json:"used_bytes"`
	CapacityBytes int64  `json:"capacity_bytes"`
	FreeBytes     int64  `json:"free_bytes"`
}

type HWStats struct {
	Partitions []PartitionSpace `json:"partitions"`
	Time       int64            `json:"time"`
}

func (HWStats) EventType() Type { return TypeHWStats }

type GPUShortage struct {
	rp.GPUShortageEvent
	Time int64 `json:"time"`
}

func (GPUShortage) EventType() Type { return TypeGPUShortage }

type GPUShortageRetry struct {
	RetryRunID string `json:"retry_run_id"`
	Attempt    int    `json:"attempt"`
}

func (GPUShortageRetry) EventType() Type { return TypeGPUShortageRetry }

type PodInfoUpdated struct {
	PodID       string  `json:"pod_id"`
	PodName     string  `json:"pod_name"`
	GPUType     string  `json:"gpu_type"`
	CostPerHour float64 `json:"cost_per_hour"`
}

func (PodInfoUpdated) EventType() Type { return TypePodInfoUpdated }

// PodBillingSummary is recorded once per pod after termination, from the
// provider's billing API.
type PodBillingSummary struct {
	AmountUSD    float64         `json:"total_amount_usd"`
	TimeBilledMS int64           `json:"time_billed_ms"`
	Records      json.RawMessage `json:"records,omitempty"`
	Context      string          `json:"context,omitempty"`
}

func (PodBillingSummary) EventType() Type { return TypePodBillingSummary }

type TerminationStatus struct {
	Status    rp.TerminationStatus `json:"status"`
	LastError string               `json:"last_error,omitempty"`
}

func (TerminationStatus) EventType() Type { return TypeTerminationStatus }

// Heartbeat keeps the stream connection alive; its frame data is null.
type Heartbeat struct{}

func (Heartbeat) EventType() Type { return TypeHeartbeat }

func (Heartbeat) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (*Heartbeat) UnmarshalJSON([]byte) error { return nil }

type HWCostEstimate struct {
	rp.HWCostEstimate
}

func (HWCostEstimate) EventType() Type { return TypeHWCostEstimate }

type HWCostActual struct {
	HWActualCostCents int64 `json:"hw_actual_cost_cents"`
}

func (HWCostActual) EventType() Type { return TypeHWCostActual }

// Complete is the final stream frame; readers exit after observing it.
type Complete struct {
	Status  rp.RunStatus `json:"status"`
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
}

func (Complete) EventType() Type { return TypeComplete }

// Error tells a stream reader its subscription was invalidated and it
// should reconnect.
type Error struct {
	Message string `json:"message"`
}

func (Error) EventType() Type { return TypeError }
