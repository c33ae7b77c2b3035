package rp

import "encoding/json"

// Durable projection rows, as persisted by the store and rehydrated into
// snapshots. Timestamps are unix seconds.

type StageProgressRow struct {
	StageProgressEvent
	OccurredAt int64 `json:"occurred_at"`
}

type SubstageCompletedRow struct {
	SubstageCompletedEvent
	OccurredAt int64 `json:"occurred_at"`
}

type SubstageSummaryRow struct {
	SubstageSummaryEvent
	OccurredAt int64 `json:"occurred_at"`
}

type PaperProgressRow struct {
	PaperGenerationProgressEvent
	OccurredAt int64 `json:"occurred_at"`
}

type TreeVizRow struct {
	StageID    string         `json:"stage_id"`
	Viz        map[string]any `json:"viz"`
	Version    int            `json:"version"`
	OccurredAt int64          `json:"occurred_at"`
}

type StageSkipWindowRow struct {
	StageSkipWindowEvent
	OccurredAt int64 `json:"occurred_at"`
}

type RunLogRow struct {
	Level      string `json:"level"`
	Message    string `json:"message"`
	OccurredAt int64  `json:"occurred_at"`
}

type BestNodeRow struct {
	BestNodeSelectionEvent
	OccurredAt int64 `json:"occurred_at"`
}

type CodeExecutionRow struct {
	ExecutionID   string  `json:"execution_id"`
	StageName     string  `json:"stage_name"`
	RunType       string  `json:"run_type"`
	ExecutionType string  `json:"execution_type"`
	Status        string  `json:"status"`
	Code          string  `json:"code,omitempty"`
	ExecTime      float64 `json:"exec_time,omitempty"`
	NodeIndex     *int    `json:"node_index,omitempty"`
	StartedAt     string  `json:"started_at,omitempty"`
	CompletedAt   string  `json:"completed_at,omitempty"`
}

type ArtifactRow struct {
	S3Key        string `json:"s3_key"`
	ArtifactType string `json:"artifact_type"`
	Filename     string `json:"filename"`
	FileSize     int64  `json:"file_size"`
	FileType     string `json:"file_type"`
	CreatedAt    string `json:"created_at"`
}

type LlmReviewRow struct {
	ID int `json:"id"`
	LlmReviewEvent
	OccurredAt int64 `json:"occurred_at"`
}

type RunEventRow struct {
	EventType  string          `json:"event_type"`
	Metadata   json.RawMessage `json:"metadata"`
	OccurredAt int64           `json:"occurred_at"`
}

// RunSnapshot is the rehydrated initial view of a run, emitted as the first
// stream event and returned by the snapshot endpoint.
type RunSnapshot struct {
	Run                 Run                    `json:"run"`
	StageProgress       []StageProgressRow     `json:"stage_progress"`
	Substages           []SubstageCompletedRow `json:"substages"`
	SubstageSummaries   []SubstageSummaryRow   `json:"substage_summaries"`
	PaperProgress       []PaperProgressRow     `json:"paper_generation_progress"`
	Logs                []RunLogRow            `json:"logs"`
	Artifacts           []ArtifactRow          `json:"artifacts"`
	TreeViz             []TreeVizRow           `json:"tree_viz"`
	BestNodes           []BestNodeRow          `json:"best_nodes"`
	SkipWindows         []StageSkipWindowRow   `json:"stage_skip_windows"`
	LatestCodeExecution *CodeExecutionRow      `json:"latest_code_execution,omitempty"`
	TerminationStatus   *Termination           `json:"termination,omitempty"`
	HWCost              *HWCostEstimate        `json:"hw_cost_estimate,omitempty"`
}

// HWCostEstimate is the synthesized hardware cost tick carried in the stream
// and embedded in snapshots.
type HWCostEstimate struct {
	HWEstimatedCostCents int64 `json:"hw_estimated_cost_cents"`
	HWCostPerHourCents   int64 `json:"hw_cost_per_hour_cents"`
	HWStartedRunningAt   int64 `json:"hw_started_running_at"`
}
