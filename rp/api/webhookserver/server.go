package webhookserver

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/notifier"
	"github.com/ae-scientist/tower/rp/objectstore"
	"github.com/ae-scientist/tower/rp/termination"
	gocache "github.com/patrickmn/go-cache"
	"github.com/tedsuo/rata"
)

const (
	// tokenHashTTL bounds how long an authenticated pod can keep posting
	// without a fresh hash lookup.
	tokenHashTTL = 5 * time.Minute

	maxBodyBytes = 4 << 20

	lowDiskThresholdBytes = 50 << 30
)

// Server is the telemetry ingress for pipeline pods. Every route under
// /rp/{run_id}/ authenticates with the run's bearer credential; persistence
// always precedes the bus publish so live subscribers never outrun the
// durable row.
type Server struct {
	logger lager.Logger
	clock  clock.Clock

	runs         db.RunFactory
	projections  db.ProjectionRepository
	terminations db.TerminationRepository
	tokenUsage   db.TokenUsageRepository

	guard    billing.Guard
	launcher *launcher.Launcher
	bus      *eventbus.Bus
	store    objectstore.Store
	notifier notifier.Notifier
	waker    termination.Waker

	tokenHashes *gocache.Cache
}

func NewServer(
	logger lager.Logger,
	clk clock.Clock,
	runs db.RunFactory,
	projections db.ProjectionRepository,
	terminations db.TerminationRepository,
	tokenUsage db.TokenUsageRepository,
	guard billing.Guard,
	launch *launcher.Launcher,
	bus *eventbus.Bus,
	store objectstore.Store,
	notify notifier.Notifier,
	waker termination.Waker,
) *Server {
	return &Server{
		logger:       logger,
		clock:        clk,
		runs:         runs,
		projections:  projections,
		terminations: terminations,
		tokenUsage:   tokenUsage,
		guard:        guard,
		launcher:     launch,
		bus:          bus,
		store:        store,
		notifier:     notify,
		waker:        waker,
		tokenHashes:  gocache.New(tokenHashTTL, 2*tokenHashTTL),
	}
}

type ingestFunc func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request)

// ingest wraps an endpoint with bearer auth and run resolution. Handlers
// only run with a verified credential for an existing run.
func (s *Server) ingest(name string, handle ingestFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.Session(name)
		runID := rata.Param(r, "run_id")

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
			w.WriteHeader(http.StatusNotFound)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		handle(logger.WithData(lager.Data{"run": runID}), run, w, r)
	})
}

// authorize compares SHA256 of the presented bearer token against the
// stored hash in constant time. The raw token is never logged.
func (s *Server) authorize(r *http.Request, runID string) (bool, error) {
	token, ok := bearerToken(r)
	if !ok {
		return false, nil
	}

	storedHash, found, err := s.storedTokenHash(runID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	sum := sha256.Sum256([]byte(token))
	presented := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(presented), []byte(storedHash)) == 1, nil
}

func (s *Server) storedTokenHash(runID string) (string, bool, error) {
	if cached, found := s.tokenHashes.Get(runID); found {
		return cached.(string), true, nil
	}

	hash, found, err := s.runs.GetWebhookTokenHash(runID)
	if err != nil || !found {
		return "", found, err
	}

	s.tokenHashes.SetDefault(runID, hash)
	return hash, true, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func decodeBody(r *http.Request, into any) error {
	return json.NewDecoder(r.Body).Decode(into)
}

func writeJSON(logger lager.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed-to-write-response", err)
	}
}
