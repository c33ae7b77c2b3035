package remoteshell

import (
	"context"
)

// On-pod layout the adapter knows about.
const (
	RunLogPath    = "/workspace/research_pipeline.log"
	WorkspacesDir = "/workspace/AE-Scientist/research_pipeline"

	// ControlPort is the loopback port of the control server running inside
	// the pod.
	ControlPort = 8765
)

// SkipStageResult is the control server's answer to a skip request.
type SkipStageResult string

const (
	SkipStageAccepted SkipStageResult = "accepted"
	SkipStageNotFound SkipStageResult = "not_found"
	SkipStageConflict SkipStageResult = "conflict"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Shell

// Shell reaches into a running pod over SSH. Both operations raise on
// connection or command failure; retry policy lives in callers, beyond a
// small bounded transient retry on file transfer.
type Shell interface {
	// UploadArtifacts streams the pipeline log and the workspace archive off
	// the pod into the object store under the run's deterministic keys.
	// Re-uploads overwrite, so repeating after a partial failure is safe.
	UploadArtifacts(ctx context.Context, host string, port int, runID, trigger string) error

	// RequestSkipStage forwards a skip command to the in-pod control server.
	RequestSkipStage(ctx context.Context, host string, port int, reason string) (SkipStageResult, error)
}
