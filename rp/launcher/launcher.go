package launcher

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/google/uuid"
)

// Config is the operator-supplied launch policy.
type Config struct {
	WebhookBaseURL  string
	PodImage        string
	ContainerDiskGB int
	VolumeDiskGB    int

	// StartupGrace bounds how long a pending run may wait for its first
	// run-started ingest.
	StartupGrace time.Duration

	PodReadyPollInterval time.Duration

	MinimumCredits float64
	MaxGPURetries  int
}

func (c Config) withDefaults() Config {
	if c.StartupGrace == 0 {
		c.StartupGrace = 10 * time.Minute
	}
	if c.PodReadyPollInterval == 0 {
		c.PodReadyPollInterval = 10 * time.Second
	}
	if c.MaxGPURetries == 0 {
		c.MaxGPURetries = 3
	}
	return c
}

// SubmitRequest carries everything needed to launch one research run.
type SubmitRequest struct {
	IdeaVersionID  string
	UserID         string
	ConversationID string
	ParentRunID    string
	RequesterName  string
	GPUPreferences []string

	restartCount  int
	skipAdmission bool
}

// Launcher reserves run identity, seeds the durable row, and provisions the
// pod in a supervised background task. Transition to running happens via
// webhook ingest, never here.
type Launcher struct {
	logger   lager.Logger
	clock    clock.Clock
	cfg      Config
	runs     db.RunFactory
	ideas    db.IdeaRepository
	provider podprovider.Provider
	guard    billing.Guard
	bus      *eventbus.Bus

	mu          sync.Mutex
	provisioner map[string]context.CancelFunc
}

func NewLauncher(
	logger lager.Logger,
	clk clock.Clock,
	cfg Config,
	runs db.RunFactory,
	ideas db.IdeaRepository,
	provider podprovider.Provider,
	guard billing.Guard,
	bus *eventbus.Bus,
) *Launcher {
	return &Launcher{
		logger:      logger,
		clock:       clk,
		cfg:         cfg.withDefaults(),
		runs:        runs,
		ideas:       ideas,
		provider:    provider,
		guard:       guard,
		bus:         bus,
		provisioner: make(map[string]context.CancelFunc),
	}
}

// Submit admits, seeds, and returns the new run id synchronously; pod
// provisioning continues in the background.
func (l *Launcher) Submit(req SubmitRequest) (string, error) {
	logger := l.logger.Session("submit", lager.Data{
		"idea-version": req.IdeaVersionID,
		"conversation": req.ConversationID,
	})

	if !req.skipAdmission {
		err := l.guard.EnforceMinimum(req.UserID, l.cfg.MinimumCredits, "research_run")
		if err != nil {
			return "", err
		}
	}

	idea, found, err := l.ideas.GetIdeaVersion(req.IdeaVersionID)
	if err != nil {
		return "", fmt.Errorf("load idea version: %w", err)
	}
	if !found {
		return "", fmt.Errorf("idea version %s not found", req.IdeaVersionID)
	}

	runID := uuid.NewString()

	// The raw token travels only into the pod environment; the store sees
	// its hash and nothing else.
	token, tokenHash, err := newWebhookCredential()
	if err != nil {
		return "", fmt.Errorf("generate webhook credential: %w", err)
	}

	run, err := l.runs.CreateRun(db.RunSpec{
		ID:               runID,
		IdeaVersionID:    req.IdeaVersionID,
		UserID:           req.UserID,
		ConversationID:   req.ConversationID,
		ParentRunID:      req.ParentRunID,
		WebhookTokenHash: tokenHash,
		ContainerDiskGB:  l.cfg.ContainerDiskGB,
		VolumeDiskGB:     l.cfg.VolumeDiskGB,
		RestartCount:     req.restartCount,
		StartDeadline:    l.clock.Now().Add(l.cfg.StartupGrace),
	})
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}

	ctx := l.register(runID)
	go l.provision(ctx, logger.Session("provision", lager.Data{"run": runID}), run, idea, req, token)

	return runID, nil
}

// StopProvisioning cancels an in-flight provisioning task. It reports
// whether a task was there to cancel.
func (l *Launcher) StopProvisioning(runID string) bool {
	l.mu.Lock()
	cancel, found := l.provisioner[runID]
	l.mu.Unlock()

	if found {
		cancel()
	}
	return found
}

func (l *Launcher) register(runID string) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.provisioner[runID] = cancel
	l.mu.Unlock()
	return ctx
}

func (l *Launcher) deregister(runID string) {
	l.mu.Lock()
	cancel, found := l.provisioner[runID]
	delete(l.provisioner, runID)
	l.mu.Unlock()
	if found {
		cancel()
	}
}

func (l *Launcher) provision(
	ctx context.Context,
	logger lager.Logger,
	run db.Run,
	idea db.IdeaVersion,
	req SubmitRequest,
	token string,
) {
	defer l.deregister(run.ID())

	script, err := buildStartupScript(startupParams{
		RunID:         run.ID(),
		WebhookURL:    fmt.Sprintf("%s/rp/%s", l.cfg.WebhookBaseURL, run.ID()),
		WebhookToken:  token,
		RequesterName: req.RequesterName,
		IdeaJSON:      idea.Content,
	})
	if err != nil {
		logger.Error("failed-to-build-startup-script", err)
		l.failLaunch(logger, run, err)
		return
	}

	if ctx.Err() != nil {
		l.failStopped(logger, run)
		return
	}

	pod, err := l.provider.CreatePod(ctx, podprovider.PodSpec{
		Name:            fmt.Sprintf("rp-%s", run.ID()),
		Image:           l.cfg.PodImage,
		GPUPreferences:  req.GPUPreferences,
		StartupCommand:  script,
		ContainerDiskGB: l.cfg.ContainerDiskGB,
		VolumeDiskGB:    l.cfg.VolumeDiskGB,
	})
	if err != nil {
		logger.Error("failed-to-create-pod", err)
		l.failLaunch(logger, run, err)
		return
	}

	if ctx.Err() != nil {
		// Stop arrived while the pod was coming up; release it before
		// marking the run failed.
		if deleteErr := l.provider.DeletePod(context.Background(), pod.ID); deleteErr != nil && deleteErr != podprovider.ErrPodNotFound {
			logger.Error("failed-to-delete-cancelled-pod", deleteErr, lager.Data{"pod-id": pod.ID})
		}
		l.failStopped(logger, run)
		return
	}

	err = run.SetPodIdentity(pod.ID, pod.Name, pod.GPUType, pod.CostPerHour)
	if err != nil {
		logger.Error("failed-to-record-pod-identity", err, lager.Data{"pod-id": pod.ID})
		l.failLaunch(logger, run, err)
		return
	}

	l.bus.Publish(run.ID(), event.PodInfoUpdated{
		PodID:       pod.ID,
		PodName:     pod.Name,
		GPUType:     pod.GPUType,
		CostPerHour: pod.CostPerHour,
	})

	endpoint, err := l.provider.WaitForPodReady(ctx, pod.ID, l.cfg.PodReadyPollInterval, l.cfg.StartupGrace)
	if err != nil {
		if ctx.Err() != nil {
			if deleteErr := l.provider.DeletePod(context.Background(), pod.ID); deleteErr != nil && deleteErr != podprovider.ErrPodNotFound {
				logger.Error("failed-to-delete-cancelled-pod", deleteErr, lager.Data{"pod-id": pod.ID})
			}
			l.failStopped(logger, run)
			return
		}

		// Connection details are best-effort; run-started ingest still
		// drives the status, and the janitor handles a dead pod.
		logger.Error("pod-never-ready", err, lager.Data{"pod-id": pod.ID})
		return
	}

	err = run.SetPodConnection(endpoint.PublicIP, endpoint.SSHPort, endpoint.PodHostID)
	if err != nil {
		logger.Error("failed-to-record-pod-connection", err, lager.Data{"pod-id": pod.ID})
		return
	}

	logger.Info("provisioned", lager.Data{"pod-id": pod.ID, "gpu-type": pod.GPUType})
}

func (l *Launcher) failLaunch(logger lager.Logger, run db.Run, cause error) {
	l.finishFailed(logger, run, rp.FailureReasonLaunchError, cause.Error())
}

func (l *Launcher) failStopped(logger lager.Logger, run db.Run) {
	l.finishFailed(logger, run, rp.TerminationTriggerUserStop, "stopped by user during provisioning")
}

func (l *Launcher) finishFailed(logger lager.Logger, run db.Run, reason, message string) {
	moved, err := run.Finish(rp.RunStatusFailed, reason, message)
	if err != nil {
		logger.Error("failed-to-mark-run-failed", err)
		return
	}

	if moved {
		l.bus.Publish(run.ID(), event.StatusChanged{
			To:     rp.RunStatusFailed,
			Reason: reason,
			Time:   l.clock.Now().Unix(),
		})
	}
}

func newWebhookCredential() (token, hash string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}

	token = hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(token))
	return token, hex.EncodeToString(sum[:]), nil
}
