package rp

import "encoding/json"

// Payload shapes for the webhook surface. Most endpoints wrap their payload
// in an {"event": {...}} envelope; the ingress handlers unwrap it.

type StageProgressEvent struct {
	Stage         string   `json:"stage"`
	Iteration     int      `json:"iteration"`
	MaxIterations int      `json:"max_iterations"`
	Progress      float64  `json:"progress"`
	TotalNodes    int      `json:"total_nodes"`
	BuggyNodes    int      `json:"buggy_nodes"`
	GoodNodes     int      `json:"good_nodes"`
	BestMetric    *float64 `json:"best_metric,omitempty"`

	// IsSeedNode is informational only; it is persisted but not carried
	// into stream events.
	IsSeedNode bool `json:"is_seed_node,omitempty"`
}

type SubstageCompletedEvent struct {
	Stage           string         `json:"stage"`
	MainStageNumber int            `json:"main_stage_number"`
	Reason          string         `json:"reason"`
	Summary         map[string]any `json:"summary"`
}

type SubstageSummaryEvent struct {
	Stage   string         `json:"stage"`
	Summary map[string]any `json:"summary"`
}

type PaperGenerationProgressEvent struct {
	Step         string  `json:"step"`
	Substep      string  `json:"substep,omitempty"`
	Progress     float64 `json:"progress"`
	StepProgress float64 `json:"step_progress"`
	Details      string  `json:"details,omitempty"`
}

type TreeVizEvent struct {
	StageID string         `json:"stage_id"`
	Viz     map[string]any `json:"viz"`
	Version int            `json:"version"`
}

type StageSkipWindowEvent struct {
	Stage     string `json:"stage"`
	State     string `json:"state"`
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason,omitempty"`
}

type ArtifactUploadedEvent struct {
	ArtifactType string `json:"artifact_type"`
	Filename     string `json:"filename"`
	FileSize     int64  `json:"file_size"`
	FileType     string `json:"file_type"`
	CreatedAt    string `json:"created_at"`
}

// LlmReviewEvent is the full paper review produced by the pipeline's LLM
// reviewer, mirroring the conference-style review form.
type LlmReviewEvent struct {
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Questions        []string `json:"questions"`
	Limitations      []string `json:"limitations"`
	Originality      int      `json:"originality"`
	Quality          int      `json:"quality"`
	Clarity          int      `json:"clarity"`
	Significance     int      `json:"significance"`
	Soundness        int      `json:"soundness"`
	Presentation     int      `json:"presentation"`
	Contribution     int      `json:"contribution"`
	Overall          int      `json:"overall"`
	Confidence       int      `json:"confidence"`
	EthicalConcerns  bool            `json:"ethical_concerns"`
	Decision         string          `json:"decision"`
	PaperName        string          `json:"paper_name,omitempty"`
	ReviewerModel    string          `json:"reviewer_model,omitempty"`
	ReviewRound      int             `json:"review_round,omitempty"`
	RawReviewPayload json.RawMessage `json:"raw_review_payload,omitempty"`
}

type VlmFigureReview struct {
	FigureName     string `json:"figure_name"`
	ImgDescription string `json:"img_description"`
	ImgReview      string `json:"img_review"`
	CaptionReview  string `json:"caption_review"`
	FigrefsReview  string `json:"figrefs_review"`
	SourcePath     string `json:"source_path,omitempty"`
}

type FigureReviewsEvent struct {
	Reviews []VlmFigureReview `json:"reviews"`
}

type RunningCodeEvent struct {
	ExecutionID   string `json:"execution_id"`
	StageName     string `json:"stage_name"`
	RunType       string `json:"run_type"`
	ExecutionType string `json:"execution_type"`
	Code          string `json:"code"`
	StartedAt     string `json:"started_at"`
	NodeIndex     *int   `json:"node_index,omitempty"`
}

type CodeRunCompletedEvent struct {
	ExecutionID   string  `json:"execution_id"`
	StageName     string  `json:"stage_name"`
	RunType       string  `json:"run_type"`
	ExecutionType string  `json:"execution_type"`
	Status        string  `json:"status"`
	ExecTime      float64 `json:"exec_time"`
	CompletedAt   string  `json:"completed_at"`
	NodeIndex     *int    `json:"node_index,omitempty"`
}

type RunLogEvent struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type BestNodeSelectionEvent struct {
	Stage     string   `json:"stage"`
	NodeIndex int      `json:"node_index"`
	Metric    *float64 `json:"metric,omitempty"`
	Reason    string   `json:"reason,omitempty"`
}

type InitializationProgressEvent struct {
	Message string `json:"message"`
}

type RunFinishedEvent struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type PartitionUsage struct {
	Partition string `json:"partition"`
	UsedBytes int64  `json:"used_bytes"`
}

type HWStatsEvent struct {
	Partitions []PartitionUsage `json:"partitions"`
}

type GPUShortageEvent struct {
	RequiredGPUs  int    `json:"required_gpus"`
	AvailableGPUs int    `json:"available_gpus"`
	Message       string `json:"message,omitempty"`
}

// TokenUsageEvent reports LLM token consumption. Model carries the provider
// prefix, e.g. "openai:gpt-5".
type TokenUsageEvent struct {
	Model             string `json:"model"`
	InputTokens       int64  `json:"input_tokens"`
	CachedInputTokens int64  `json:"cached_input_tokens"`
	OutputTokens      int64  `json:"output_tokens"`
}

// Presign request/response shapes for the file upload surface.

type PresignUploadRequest struct {
	ArtifactType string            `json:"artifact_type"`
	Filename     string            `json:"filename"`
	ContentType  string            `json:"content_type,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type PresignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	S3Key     string `json:"s3_key"`
	ExpiresIn int    `json:"expires_in"`
}

type MultipartInitRequest struct {
	ArtifactType string `json:"artifact_type"`
	Filename     string `json:"filename"`
	ContentType  string `json:"content_type,omitempty"`
	Parts        int    `json:"parts"`
}

type MultipartInitResponse struct {
	UploadID string   `json:"upload_id"`
	S3Key    string   `json:"s3_key"`
	PartURLs []string `json:"part_urls"`
}

type MultipartCompletedPart struct {
	PartNumber int    `json:"part_number"`
	ETag       string `json:"etag"`
}

type MultipartCompleteRequest struct {
	UploadID string                   `json:"upload_id"`
	S3Key    string                   `json:"s3_key"`
	Parts    []MultipartCompletedPart `json:"parts"`
}

type MultipartAbortRequest struct {
	UploadID string `json:"upload_id"`
	S3Key    string `json:"s3_key"`
}

type ArtifactExistsResponse struct {
	Exists bool   `json:"exists"`
	S3Key  string `json:"s3_key"`
	Size   int64  `json:"size,omitempty"`
}

type StoredFile struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified int64  `json:"last_modified"`
	DownloadURL  string `json:"download_url,omitempty"`
}
