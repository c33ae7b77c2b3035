package api

import (
	"net/http"

	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/api/runserver"
	"github.com/ae-scientist/tower/rp/api/webhookserver"
	"github.com/tedsuo/rata"
)

// Wrappa decorates every route handler; implementations layer in metrics
// or logging without the servers knowing.
type Wrappa interface {
	Wrap(rata.Handlers) rata.Handlers
}

// NewHandler assembles the full HTTP surface: pod-facing webhook ingress
// and the client-facing run endpoints, on one router.
func NewHandler(
	webhookServer *webhookserver.Server,
	runServer *runserver.Server,
	wrappas ...Wrappa,
) (http.Handler, error) {
	handlers := rata.Handlers{
		rp.IngestRunStarted:             webhookServer.RunStartedHandler(),
		rp.IngestHeartbeat:              webhookServer.HeartbeatHandler(),
		rp.IngestInitializationProgress: webhookServer.InitializationProgressHandler(),
		rp.IngestStageProgress:          webhookServer.StageProgressHandler(),
		rp.IngestSubstageCompleted:      webhookServer.SubstageCompletedHandler(),
		rp.IngestSubstageSummary:        webhookServer.SubstageSummaryHandler(),
		rp.IngestPaperProgress:          webhookServer.PaperProgressHandler(),
		rp.IngestTreeVizStored:          webhookServer.TreeVizHandler(),
		rp.IngestStageSkipWindow:        webhookServer.StageSkipWindowHandler(),
		rp.IngestRunLog:                 webhookServer.RunLogHandler(),
		rp.IngestBestNodeSelection:      webhookServer.BestNodeHandler(),
		rp.IngestCodexEvent:             webhookServer.CodexEventHandler(),
		rp.IngestRunningCode:            webhookServer.RunningCodeHandler(),
		rp.IngestRunCompleted:           webhookServer.RunCompletedHandler(),
		rp.IngestArtifactUploaded:       webhookServer.ArtifactUploadedHandler(),
		rp.IngestReviewCompleted:        webhookServer.ReviewCompletedHandler(),
		rp.IngestFigureReviews:          webhookServer.FigureReviewsHandler(),
		rp.IngestTokenUsage:             webhookServer.TokenUsageHandler(),
		rp.IngestHWStats:                webhookServer.HWStatsHandler(),
		rp.IngestGPUShortage:            webhookServer.GPUShortageHandler(),
		rp.IngestRunFinished:            webhookServer.RunFinishedHandler(),

		rp.PresignUploadURL:        webhookServer.PresignUploadHandler(),
		rp.ArtifactExists:          webhookServer.ArtifactExistsHandler(),
		rp.MultipartUploadInit:     webhookServer.MultipartInitHandler(),
		rp.MultipartUploadComplete: webhookServer.MultipartCompleteHandler(),
		rp.MultipartUploadAbort:    webhookServer.MultipartAbortHandler(),
		rp.ParentRunFiles:          webhookServer.ParentRunFilesHandler(),
		rp.ListDatasets:            webhookServer.ListDatasetsHandler(),
		rp.DatasetUploadURL:        webhookServer.DatasetUploadURLHandler(),

		rp.LaunchRun:       runServer.LaunchRunHandler(),
		rp.ListRuns:        runServer.ListRunsHandler(),
		rp.GetRunSnapshot:  runServer.GetSnapshotHandler(),
		rp.StreamRunEvents: runServer.StreamEventsHandler(),
		rp.StopRun:         runServer.StopRunHandler(),
		rp.SkipStage:       runServer.SkipStageHandler(),
	}

	for _, wrappa := range wrappas {
		handlers = wrappa.Wrap(handlers)
	}

	routes := append(rata.Routes{}, rp.WebhookRoutes...)
	routes = append(routes, rp.ClientRoutes...)

	return rata.NewRouter(routes, handlers)
}
