package webhookserver

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/tedsuo/rata"
)

func (s *Server) RunStartedHandler() http.Handler {
	return s.ingest("run-started", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		moved, err := run.Started()
		if err != nil {
			logger.Error("failed-to-start-run", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if moved {
			s.bus.Publish(run.ID(), event.StatusChanged{
				From: rp.RunStatusPending,
				To:   rp.RunStatusRunning,
				Time: s.clock.Now().Unix(),
			})
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// HeartbeatHandler is deliberately lax: a heartbeat for a run the store
// does not know gets a 204 and a warning, so a pod outliving its row does
// not spin on errors.
func (s *Server) HeartbeatHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("heartbeat")
		runID := rata.Param(r, "run_id")

		_, found, err := s.storedTokenHash(runID)
		if err != nil {
			logger.Error("failed-to-load-token-hash", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !found {
			logger.Info("heartbeat-for-unknown-run", lager.Data{"run": runID})
			w.WriteHeader(http.StatusNoContent)
			return
		}

		authorized, err := s.authorize(r, runID)
		if err != nil {
			logger.Error("failed-to-check-credential", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !authorized {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		run, found, err := s.runs.GetRun(runID)
		if err != nil {
			logger.Error("failed-to-load-run", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !found {
			logger.Info("heartbeat-for-unknown-run", lager.Data{"run": runID})
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := run.Heartbeat(); err != nil {
			logger.Error("failed-to-record-heartbeat", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(runID, event.Heartbeat{})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) InitializationProgressHandler() http.Handler {
	return s.ingest("initialization-progress", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body rp.InitializationProgressEvent
		if err := decodeBody(r, &body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := run.UpdateInitializationStatus(body.Message); err != nil {
			logger.Error("failed-to-update-initialization-status", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.InitializationProgress{Message: body.Message})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) StageProgressHandler() http.Handler {
	return s.ingest("stage-progress", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.StageProgressEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Stage == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.InsertStageProgress(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-stage-progress", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// The seed-node marker is persisted but not streamed.
		streamed := body.Event
		streamed.IsSeedNode = false
		s.bus.Publish(run.ID(), event.StageProgress{StageProgressEvent: streamed, Time: now.Unix()})

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) SubstageCompletedHandler() http.Handler {
	return s.ingest("substage-completed", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.SubstageCompletedEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Stage == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.InsertSubstageCompleted(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-substage-completed", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.SubstageCompleted{SubstageCompletedEvent: body.Event, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) SubstageSummaryHandler() http.Handler {
	return s.ingest("substage-summary", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.SubstageSummaryEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Stage == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.InsertSubstageSummary(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-substage-summary", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.SubstageSummary{SubstageSummaryEvent: body.Event, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) PaperProgressHandler() http.Handler {
	return s.ingest("paper-generation-progress", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.PaperGenerationProgressEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Step == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.InsertPaperProgress(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-paper-progress", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.PaperProgress{PaperGenerationProgressEvent: body.Event, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) TreeVizHandler() http.Handler {
	return s.ingest("tree-viz-stored", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.TreeVizEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.StageID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.UpsertTreeViz(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-tree-viz", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.TreeViz{TreeVizEvent: body.Event, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) StageSkipWindowHandler() http.Handler {
	return s.ingest("stage-skip-window", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.StageSkipWindowEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Stage == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.UpsertStageSkipWindow(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-skip-window", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.StageSkipWindow{StageSkipWindowEvent: body.Event, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) RunLogHandler() http.Handler {
	return s.ingest("run-log", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.RunLogEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Message == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.InsertRunLog(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-run-log", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.Log{Level: body.Event.Level, Message: body.Event.Message, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) BestNodeHandler() http.Handler {
	return s.ingest("best-node-selection", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.BestNodeSelectionEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Stage == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		if err := s.projections.InsertBestNode(run.ID(), body.Event, now); err != nil {
			logger.Error("failed-to-save-best-node", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.BestNode{BestNodeSelectionEvent: body.Event, Time: now.Unix()})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) CodexEventHandler() http.Handler {
	return s.ingest("codex-event", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event json.RawMessage `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || len(body.Event) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := s.projections.InsertCodexEvent(run.ID(), body.Event, s.clock.Now()); err != nil {
			logger.Error("failed-to-save-codex-event", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.Codex{Payload: body.Event})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) RunningCodeHandler() http.Handler {
	return s.ingest("running-code", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.RunningCodeEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.ExecutionID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := s.projections.UpsertCodeExecutionStarted(run.ID(), body.Event); err != nil {
			logger.Error("failed-to-save-code-execution", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.CodeExecution{CodeExecutionRow: rp.CodeExecutionRow{
			ExecutionID:   body.Event.ExecutionID,
			StageName:     body.Event.StageName,
			RunType:       body.Event.RunType,
			ExecutionType: body.Event.ExecutionType,
			Status:        "running",
			Code:          body.Event.Code,
			NodeIndex:     body.Event.NodeIndex,
			StartedAt:     body.Event.StartedAt,
		}})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) RunCompletedHandler() http.Handler {
	return s.ingest("run-completed", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.CodeRunCompletedEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.ExecutionID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Event.Status != "success" && body.Event.Status != "failed" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := s.projections.UpsertCodeExecutionCompleted(run.ID(), body.Event); err != nil {
			logger.Error("failed-to-save-code-execution", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.CodeExecution{CodeExecutionRow: rp.CodeExecutionRow{
			ExecutionID:   body.Event.ExecutionID,
			StageName:     body.Event.StageName,
			RunType:       body.Event.RunType,
			ExecutionType: body.Event.ExecutionType,
			Status:        body.Event.Status,
			ExecTime:      body.Event.ExecTime,
			NodeIndex:     body.Event.NodeIndex,
			CompletedAt:   body.Event.CompletedAt,
		}})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) ArtifactUploadedHandler() http.Handler {
	return s.ingest("artifact-uploaded", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.ArtifactUploadedEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Filename == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s3Key := s.artifactKey(run.ID(), body.Event.ArtifactType, body.Event.Filename)
		if err := s.projections.UpsertArtifact(run.ID(), s3Key, body.Event); err != nil {
			logger.Error("failed-to-save-artifact", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.ArtifactUploaded{ArtifactRow: rp.ArtifactRow{
			S3Key:        s3Key,
			ArtifactType: body.Event.ArtifactType,
			Filename:     body.Event.Filename,
			FileSize:     body.Event.FileSize,
			FileType:     body.Event.FileType,
			CreatedAt:    body.Event.CreatedAt,
		}})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) ReviewCompletedHandler() http.Handler {
	return s.ingest("review-completed", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var review rp.LlmReviewEvent
		if err := decodeBody(r, &review); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		id, err := s.projections.InsertLlmReview(run.ID(), review, s.clock.Now())
		if err != nil {
			logger.Error("failed-to-save-review", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.ReviewCompleted{ID: id, LlmReviewEvent: review})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) FigureReviewsHandler() http.Handler {
	return s.ingest("figure-reviews", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.FigureReviewsEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || len(body.Event.Reviews) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := s.projections.InsertFigureReviews(run.ID(), body.Event.Reviews, s.clock.Now()); err != nil {
			logger.Error("failed-to-save-figure-reviews", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), event.FigureReviews{Reviews: body.Event.Reviews})
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) TokenUsageHandler() http.Handler {
	return s.ingest("token-usage", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body struct {
			Event rp.TokenUsageEvent `json:"event"`
		}
		if err := decodeBody(r, &body); err != nil || body.Event.Model == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		provider, model := rp.SplitModelRef(body.Event.Model)

		err := s.tokenUsage.Insert(db.TokenUsage{
			ConversationID:    run.ConversationID(),
			RunID:             run.ID(),
			Provider:          provider,
			Model:             model,
			InputTokens:       body.Event.InputTokens,
			CachedInputTokens: body.Event.CachedInputTokens,
			OutputTokens:      body.Event.OutputTokens,
			OccurredAt:        s.clock.Now(),
		})
		if err != nil {
			logger.Error("failed-to-save-token-usage", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = s.guard.ChargeForLLMUsage(billing.LLMUsage{
			UserID:            run.UserID(),
			ConversationID:    run.ConversationID(),
			RunID:             run.ID(),
			Provider:          provider,
			Model:             model,
			InputTokens:       body.Event.InputTokens,
			CachedInputTokens: body.Event.CachedInputTokens,
			OutputTokens:      body.Event.OutputTokens,
			Description:       "research pipeline LLM usage",
		})
		if err != nil {
			logger.Error("failed-to-charge-usage", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) HWStatsHandler() http.Handler {
	return s.ingest("hw-stats", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body rp.HWStatsEvent
		if err := decodeBody(r, &body); err != nil || len(body.Partitions) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stats := event.HWStats{Time: s.clock.Now().Unix()}
		for _, usage := range body.Partitions {
			capacity := s.partitionCapacity(run, usage.Partition)
			space := event.PartitionSpace{
				Partition:     usage.Partition,
				UsedBytes:     usage.UsedBytes,
				CapacityBytes: capacity,
			}
			if capacity > 0 {
				space.FreeBytes = capacity - usage.UsedBytes
				if space.FreeBytes < lowDiskThresholdBytes {
					logger.Info("low-disk-space", lager.Data{
						"partition":  usage.Partition,
						"free-bytes": space.FreeBytes,
					})
					s.notifier.Alert("research run low on disk", map[string]any{
						"run_id":     run.ID(),
						"partition":  usage.Partition,
						"free_bytes": space.FreeBytes,
					})
				}
			}
			stats.Partitions = append(stats.Partitions, space)
		}

		if err := run.SaveEvent(stats); err != nil {
			logger.Error("failed-to-save-hw-stats", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		s.bus.Publish(run.ID(), stats)
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) partitionCapacity(run db.Run, partition string) int64 {
	const gib = int64(1) << 30
	switch partition {
	case "/", "container":
		return int64(run.ContainerDiskGB()) * gib
	case "/workspace", "volume":
		return int64(run.VolumeDiskGB()) * gib
	default:
		return 0
	}
}

func (s *Server) GPUShortageHandler() http.Handler {
	return s.ingest("gpu-shortage", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body rp.GPUShortageEvent
		if err := decodeBody(r, &body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := s.clock.Now()
		shortage := event.GPUShortage{GPUShortageEvent: body, Time: now.Unix()}
		if err := run.SaveEvent(shortage); err != nil {
			logger.Error("failed-to-save-gpu-shortage", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.bus.Publish(run.ID(), shortage)

		_, retried, err := s.launcher.RetryForGPUShortage(run)
		if err != nil {
			logger.Error("failed-to-retry-run", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if !retried {
			message := launcher.ExhaustedShortageMessage(body.Message, run.RestartCount())
			if err := s.finishRun(logger, run, rp.RunStatusFailed, rp.TerminationTriggerGPUShortage, message); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) RunFinishedHandler() http.Handler {
	return s.ingest("run-finished", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var body rp.RunFinishedEvent
		if err := decodeBody(r, &body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		status := rp.RunStatusCompleted
		if !body.Success {
			status = rp.RunStatusFailed
		}

		if err := s.finishRun(logger, run, status, rp.TerminationTriggerPipelineFinish, body.Message); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// finishRun moves the run terminal, queues cleanup, and nudges the worker.
// Terminal stickiness lives in the store; a redundant finish is a no-op. A
// failed write surfaces as an error so the caller answers 5xx and the pod
// retries the webhook.
func (s *Server) finishRun(logger lager.Logger, run db.Run, status rp.RunStatus, trigger, message string) error {
	from := run.Status()
	moved, err := run.Finish(status, trigger, message)
	if err != nil {
		logger.Error("failed-to-finish-run", err)
		return err
	}

	if moved {
		s.bus.Publish(run.ID(), event.StatusChanged{
			From:   from,
			To:     status,
			Reason: trigger,
			Time:   s.clock.Now().Unix(),
		})
	}

	if _, err := s.terminations.Enqueue(run.ID(), trigger); err != nil {
		logger.Error("failed-to-enqueue-termination", err)
		return err
	}
	s.waker.Wake()
	return nil
}
