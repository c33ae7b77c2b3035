package rp

import "github.com/tedsuo/rata"

// Webhook surface, inbound from the pipeline pod. All routes require a
// Bearer token matching the run's stored credential hash.
const (
	IngestRunStarted             = "IngestRunStarted"
	IngestHeartbeat              = "IngestHeartbeat"
	IngestInitializationProgress = "IngestInitializationProgress"
	IngestStageProgress          = "IngestStageProgress"
	IngestSubstageCompleted      = "IngestSubstageCompleted"
	IngestSubstageSummary        = "IngestSubstageSummary"
	IngestPaperProgress          = "IngestPaperProgress"
	IngestTreeVizStored          = "IngestTreeVizStored"
	IngestStageSkipWindow        = "IngestStageSkipWindow"
	IngestRunLog                 = "IngestRunLog"
	IngestBestNodeSelection      = "IngestBestNodeSelection"
	IngestCodexEvent             = "IngestCodexEvent"
	IngestRunningCode            = "IngestRunningCode"
	IngestRunCompleted           = "IngestRunCompleted"
	IngestArtifactUploaded       = "IngestArtifactUploaded"
	IngestReviewCompleted        = "IngestReviewCompleted"
	IngestFigureReviews          = "IngestFigureReviews"
	IngestTokenUsage             = "IngestTokenUsage"
	IngestHWStats                = "IngestHWStats"
	IngestGPUShortage            = "IngestGPUShortage"
	IngestRunFinished            = "IngestRunFinished"

	PresignUploadURL        = "PresignUploadURL"
	ArtifactExists          = "ArtifactExists"
	MultipartUploadInit     = "MultipartUploadInit"
	MultipartUploadComplete = "MultipartUploadComplete"
	MultipartUploadAbort    = "MultipartUploadAbort"
	ParentRunFiles          = "ParentRunFiles"
	ListDatasets            = "ListDatasets"
	DatasetUploadURL        = "DatasetUploadURL"
)

var WebhookRoutes = rata.Routes{
	{Path: "/rp/:run_id/run-started", Method: "POST", Name: IngestRunStarted},
	{Path: "/rp/:run_id/heartbeat", Method: "POST", Name: IngestHeartbeat},
	{Path: "/rp/:run_id/initialization-progress", Method: "POST", Name: IngestInitializationProgress},
	{Path: "/rp/:run_id/stage-progress", Method: "POST", Name: IngestStageProgress},
	{Path: "/rp/:run_id/substage-completed", Method: "POST", Name: IngestSubstageCompleted},
	{Path: "/rp/:run_id/substage-summary", Method: "POST", Name: IngestSubstageSummary},
	{Path: "/rp/:run_id/paper-generation-progress", Method: "POST", Name: IngestPaperProgress},
	{Path: "/rp/:run_id/tree-viz-stored", Method: "POST", Name: IngestTreeVizStored},
	{Path: "/rp/:run_id/stage-skip-window", Method: "POST", Name: IngestStageSkipWindow},
	{Path: "/rp/:run_id/run-log", Method: "POST", Name: IngestRunLog},
	{Path: "/rp/:run_id/best-node-selection", Method: "POST", Name: IngestBestNodeSelection},
	{Path: "/rp/:run_id/codex-event", Method: "POST", Name: IngestCodexEvent},
	{Path: "/rp/:run_id/running-code", Method: "POST", Name: IngestRunningCode},
	{Path: "/rp/:run_id/run-completed", Method: "POST", Name: IngestRunCompleted},
	{Path: "/rp/:run_id/artifact-uploaded", Method: "POST", Name: IngestArtifactUploaded},
	{Path: "/rp/:run_id/review-completed", Method: "POST", Name: IngestReviewCompleted},
	{Path: "/rp/:run_id/figure-reviews", Method: "POST", Name: IngestFigureReviews},
	{Path: "/rp/:run_id/token-usage", Method: "POST", Name: IngestTokenUsage},
	{Path: "/rp/:run_id/hw-stats", Method: "POST", Name: IngestHWStats},
	{Path: "/rp/:run_id/gpu-shortage", Method: "POST", Name: IngestGPUShortage},
	{Path: "/rp/:run_id/run-finished", Method: "POST", Name: IngestRunFinished},

	{Path: "/rp/:run_id/presigned-upload-url", Method: "POST", Name: PresignUploadURL},
	{Path: "/rp/:run_id/artifact-exists", Method: "POST", Name: ArtifactExists},
	{Path: "/rp/:run_id/multipart-upload-init", Method: "POST", Name: MultipartUploadInit},
	{Path: "/rp/:run_id/multipart-upload-complete", Method: "POST", Name: MultipartUploadComplete},
	{Path: "/rp/:run_id/multipart-upload-abort", Method: "POST", Name: MultipartUploadAbort},
	{Path: "/rp/:run_id/parent-run-files", Method: "POST", Name: ParentRunFiles},
	{Path: "/rp/:run_id/list-datasets", Method: "POST", Name: ListDatasets},
	{Path: "/rp/:run_id/dataset-upload-url", Method: "POST", Name: DatasetUploadURL},
}

// Client surface, consumed by the dashboard on behalf of an already
// authenticated user.
const (
	LaunchRun       = "LaunchRun"
	ListRuns        = "ListRuns"
	GetRunSnapshot  = "GetRunSnapshot"
	StreamRunEvents = "StreamRunEvents"
	StopRun         = "StopRun"
	SkipStage       = "SkipStage"
)

var ClientRoutes = rata.Routes{
	{Path: "/conversations/:conversation_id/idea/research-run", Method: "POST", Name: LaunchRun},
	{Path: "/conversations/:conversation_id/idea/research-runs", Method: "GET", Name: ListRuns},
	{Path: "/conversations/:conversation_id/idea/research-run/:run_id/snapshot", Method: "GET", Name: GetRunSnapshot},
	{Path: "/conversations/:conversation_id/idea/research-run/:run_id/events", Method: "GET", Name: StreamRunEvents},
	{Path: "/conversations/:conversation_id/idea/research-run/:run_id/stop", Method: "POST", Name: StopRun},
	{Path: "/conversations/:conversation_id/idea/research-run/:run_id/skip-stage", Method: "POST", Name: SkipStage},
}
