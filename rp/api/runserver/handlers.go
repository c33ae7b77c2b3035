package runserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/remoteshell"
	"github.com/tedsuo/rata"
)

func (s *Server) LaunchRunHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("launch-run")

		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body struct {
			IdeaVersionID  string   `json:"idea_version_id"`
			RequesterName  string   `json:"requester_name,omitempty"`
			ParentRunID    string   `json:"parent_run_id,omitempty"`
			GPUPreferences []string `json:"gpu_preferences,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IdeaVersionID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		prefs := body.GPUPreferences
		if len(prefs) == 0 {
			prefs = rp.SupportedGPUTypes
		}

		runID, err := s.launcher.Submit(launcher.SubmitRequest{
			IdeaVersionID:  body.IdeaVersionID,
			UserID:         userID,
			ConversationID: rata.Param(r, "conversation_id"),
			ParentRunID:    body.ParentRunID,
			RequesterName:  body.RequesterName,
			GPUPreferences: prefs,
		})
		if err != nil {
			var denied billing.ErrInsufficientCredits
			if errors.As(err, &denied) {
				writeJSON(logger, w, http.StatusPaymentRequired, map[string]string{
					"error": denied.Error(),
				})
				return
			}

			logger.Error("failed-to-submit-run", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusCreated, map[string]string{"run_id": runID})
	})
}

func (s *Server) ListRunsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("list-runs")

		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		runs, err := s.runs.RunsForConversation(rata.Param(r, "conversation_id"))
		if err != nil {
			logger.Error("failed-to-list-runs", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		wire := []rp.Run{}
		for _, run := range runs {
			if run.UserID() != userID {
				continue
			}
			wire = append(wire, run.ToWire())
		}

		writeJSON(logger, w, http.StatusOK, wire)
	})
}

// StopRunHandler cancels provisioning when the pod is still coming up, and
// otherwise finishes the run and queues cleanup.
func (s *Server) StopRunHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("stop-run")

		run, ok := s.resolveRun(logger, w, r)
		if !ok {
			return
		}

		if run.Status().Terminal() {
			w.WriteHeader(http.StatusConflict)
			return
		}

		// The provisioning task owns the cleanup when it is still running:
		// it observes the cancel, deletes its pod, and fails the run.
		if s.launcher.StopProvisioning(run.ID()) {
			writeJSON(logger, w, http.StatusAccepted, map[string]string{"status": "stopping"})
			return
		}

		from := run.Status()
		moved, err := run.Finish(rp.RunStatusFailed, rp.TerminationTriggerUserStop, "stopped by user")
		if err != nil {
			logger.Error("failed-to-stop-run", err, lager.Data{"run": run.ID()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if moved {
			s.bus.Publish(run.ID(), event.StatusChanged{
				From:   from,
				To:     rp.RunStatusFailed,
				Reason: rp.TerminationTriggerUserStop,
				Time:   s.clock.Now().Unix(),
			})
		}

		if _, err := s.terminations.Enqueue(run.ID(), rp.TerminationTriggerUserStop); err != nil {
			logger.Error("failed-to-enqueue-termination", err, lager.Data{"run": run.ID()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.waker.Wake()

		writeJSON(logger, w, http.StatusAccepted, map[string]string{"status": "stopping"})
	})
}

// SkipStageHandler forwards a skip request to the pod's control server
// while a skip window is open.
func (s *Server) SkipStageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session("skip-stage")

		run, ok := s.resolveRun(logger, w, r)
		if !ok {
			return
		}

		if run.PublicIP() == "" || run.SSHPort() == 0 {
			w.WriteHeader(http.StatusConflict)
			return
		}

		var body struct {
			Reason string `json:"reason,omitempty"`
		}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&body)
		}

		result, err := s.shell.RequestSkipStage(r.Context(), run.PublicIP(), run.SSHPort(), body.Reason)
		if err != nil {
			logger.Error("failed-to-request-skip-stage", err, lager.Data{"run": run.ID()})
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		switch result {
		case remoteshell.SkipStageAccepted:
			w.WriteHeader(http.StatusNoContent)
		case remoteshell.SkipStageNotFound:
			w.WriteHeader(http.StatusNotFound)
		case remoteshell.SkipStageConflict:
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})
}

func writeJSON(logger lager.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed-to-write-response", err)
	}
}
