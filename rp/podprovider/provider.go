package podprovider

import (
	"context"
	"errors"
	"time"
)

// ErrPodNotFound is returned when the provider no longer knows the pod.
// Callers performing cleanup treat it as success.
var ErrPodNotFound = errors.New("pod not found")

// ErrGPUUnavailable signals that the provider has no capacity for the
// requested GPU type. CreatePod uses it internally to advance through the
// preference list and returns it only once every type is exhausted.
var ErrGPUUnavailable = errors.New("no instances available for gpu type")

// PodSpec describes the pod to create. GPUPreferences is tried in order;
// the first type with capacity wins.
type PodSpec struct {
	Name            string
	Image           string
	GPUPreferences  []string
	Env             map[string]string
	StartupCommand  string
	ContainerDiskGB int
	VolumeDiskGB    int
}

// Pod is the identity the provider assigns on creation.
type Pod struct {
	ID          string
	Name        string
	GPUType     string
	CostPerHour float64
}

// Endpoint is the reachable address of a ready pod.
type Endpoint struct {
	PublicIP  string
	SSHPort   int
	PodHostID string
}

// BillingSummary aggregates the provider's charges for a pod. Records is
// kept opaque; the stream surfaces it as-is.
type BillingSummary struct {
	AmountUSD    float64          `json:"total_amount_usd"`
	TimeBilledMS int64            `json:"time_billed_ms"`
	Records      []map[string]any `json:"records"`
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Provider

type Provider interface {
	// CreatePod tries each GPU preference once, in order, and returns the
	// first successful pod. When every type is unavailable it returns
	// ErrGPUUnavailable.
	CreatePod(ctx context.Context, spec PodSpec) (Pod, error)

	// WaitForPodReady polls until the pod reports RUNNING with a mapped SSH
	// port, or the deadline passes.
	WaitForPodReady(ctx context.Context, podID string, pollInterval, deadline time.Duration) (Endpoint, error)

	// DeletePod releases the pod. A pod the provider no longer knows yields
	// ErrPodNotFound.
	DeletePod(ctx context.Context, podID string) error

	// GetBillingSummary returns nil without error when the provider has no
	// billing records for the pod yet.
	GetBillingSummary(ctx context.Context, podID string) (*BillingSummary, error)
}
