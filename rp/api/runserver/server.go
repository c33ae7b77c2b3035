package runserver

import (
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/remoteshell"
	"github.com/ae-scientist/tower/rp/termination"
	"github.com/tedsuo/rata"
)

// userIDHeader carries the already-authenticated user identity resolved by
// the edge; the control plane only checks ownership against it.
const userIDHeader = "X-User-Id"

// Server is the client-facing surface: launch, list, snapshot, stream,
// stop, skip-stage.
type Server struct {
	logger lager.Logger
	clock  clock.Clock

	runs         db.RunFactory
	projections  db.ProjectionRepository
	terminations db.TerminationRepository

	bus      *eventbus.Bus
	launcher *launcher.Launcher
	shell    remoteshell.Shell
	waker    termination.Waker
}

func NewServer(
	logger lager.Logger,
	clk clock.Clock,
	runs db.RunFactory,
	projections db.ProjectionRepository,
	terminations db.TerminationRepository,
	bus *eventbus.Bus,
	launch *launcher.Launcher,
	shell remoteshell.Shell,
	waker termination.Waker,
) *Server {
	return &Server{
		logger:       logger,
		clock:        clk,
		runs:         runs,
		projections:  projections,
		terminations: terminations,
		bus:          bus,
		launcher:     launch,
		shell:        shell,
		waker:        waker,
	}
}

// resolveRun loads the run and verifies the caller owns it within the
// conversation in the path.
func (s *Server) resolveRun(logger lager.Logger, w http.ResponseWriter, r *http.Request) (db.Run, bool) {
	runID := rata.Param(r, "run_id")
	conversationID := rata.Param(r, "conversation_id")
	userID := r.Header.Get(userIDHeader)

	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	run, found, err := s.runs.GetRun(runID)
	if err != nil {
		logger.Error("failed-to-load-run", err, lager.Data{"run": runID})
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}

	if run.UserID() != userID || run.ConversationID() != conversationID {
		w.WriteHeader(http.StatusForbidden)
		return nil, false
	}

	return run, true
}
