package podprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-retryablehttp"
)

// CloudPodConfig carries the REST endpoint and credential for the hosted
// GPU pod service.
type CloudPodConfig struct {
	BaseURL  string
	APIToken string
}

type cloudPodProvider struct {
	logger lager.Logger
	clock  clock.Clock
	cfg    CloudPodConfig
	client *retryablehttp.Client
}

func NewCloudPodProvider(logger lager.Logger, clk clock.Clock, cfg CloudPodConfig) Provider {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	// 503 is the provider's capacity signal, not a transient fault; retry
	// only on transport errors and generic server errors.
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return true, nil
		}
		switch resp.StatusCode {
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout:
			return true, nil
		}
		return false, nil
	}

	return &cloudPodProvider{
		logger: logger,
		clock:  clk,
		cfg:    cfg,
		client: client,
	}
}

type createPodRequest struct {
	Name            string            `json:"name"`
	Image           string            `json:"image"`
	GPUType         string            `json:"gpu_type"`
	GPUCount        int               `json:"gpu_count"`
	Env             map[string]string `json:"env,omitempty"`
	StartupCommand  string            `json:"startup_command,omitempty"`
	ContainerDiskGB int               `json:"container_disk_gb"`
	VolumeDiskGB    int               `json:"volume_disk_gb"`
}

type podResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GPUType     string  `json:"gpu_type"`
	CostPerHour float64 `json:"cost_per_hour"`
	Status      string  `json:"desired_status"`
	PublicIP    string  `json:"public_ip"`
	PodHostID   string  `json:"pod_host_id"`
	Ports       []struct {
		PrivatePort int  `json:"private_port"`
		PublicPort  int  `json:"public_port"`
		IsIPPublic  bool `json:"is_ip_public"`
	} `json:"ports"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (p *cloudPodProvider) CreatePod(ctx context.Context, spec PodSpec) (Pod, error) {
	logger := p.logger.Session("create-pod", lager.Data{"name": spec.Name})

	for _, gpuType := range spec.GPUPreferences {
		pod, err := p.attemptCreate(ctx, spec, gpuType)
		if err == nil {
			logger.Info("created", lager.Data{"pod-id": pod.ID, "gpu-type": gpuType})
			return pod, nil
		}

		if err == ErrGPUUnavailable {
			logger.Info("gpu-type-unavailable", lager.Data{"gpu-type": gpuType})
			continue
		}

		return Pod{}, fmt.Errorf("create pod on %s: %w", gpuType, err)
	}

	return Pod{}, ErrGPUUnavailable
}

func (p *cloudPodProvider) attemptCreate(ctx context.Context, spec PodSpec, gpuType string) (Pod, error) {
	body, err := json.Marshal(createPodRequest{
		Name:            spec.Name,
		Image:           spec.Image,
		GPUType:         gpuType,
		GPUCount:        1,
		Env:             spec.Env,
		StartupCommand:  spec.StartupCommand,
		ContainerDiskGB: spec.ContainerDiskGB,
		VolumeDiskGB:    spec.VolumeDiskGB,
	})
	if err != nil {
		return Pod{}, err
	}

	var created podResponse
	err = p.do(ctx, http.MethodPost, "/v1/pods", bytes.NewReader(body), &created)
	if err != nil {
		return Pod{}, err
	}

	return Pod{
		ID:          created.ID,
		Name:        created.Name,
		GPUType:     created.GPUType,
		CostPerHour: created.CostPerHour,
	}, nil
}

func (p *cloudPodProvider) WaitForPodReady(ctx context.Context, podID string, pollInterval, deadline time.Duration) (Endpoint, error) {
	logger := p.logger.Session("wait-for-pod-ready", lager.Data{"pod-id": podID})

	timeout := p.clock.NewTimer(deadline)
	defer timeout.Stop()

	ticker := p.clock.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		var pod podResponse
		err := p.do(ctx, http.MethodGet, "/v1/pods/"+podID, nil, &pod)
		if err != nil {
			return Endpoint{}, err
		}

		if pod.Status == "RUNNING" {
			for _, port := range pod.Ports {
				if port.PrivatePort == 22 && port.IsIPPublic {
					return Endpoint{
						PublicIP:  pod.PublicIP,
						SSHPort:   port.PublicPort,
						PodHostID: pod.PodHostID,
					}, nil
				}
			}
			logger.Debug("running-without-ssh-mapping")
		}

		select {
		case <-ctx.Done():
			return Endpoint{}, ctx.Err()
		case <-timeout.C():
			return Endpoint{}, fmt.Errorf("pod %s not ready after %s", podID, deadline)
		case <-ticker.C():
		}
	}
}

func (p *cloudPodProvider) DeletePod(ctx context.Context, podID string) error {
	err := p.do(ctx, http.MethodDelete, "/v1/pods/"+podID, nil, nil)
	if err != nil {
		return err
	}
	return nil
}

func (p *cloudPodProvider) GetBillingSummary(ctx context.Context, podID string) (*BillingSummary, error) {
	var summary BillingSummary
	err := p.do(ctx, http.MethodGet, "/v1/pods/"+podID+"/billing", nil, &summary)
	if err != nil {
		if err == ErrPodNotFound {
			return nil, nil
		}
		return nil, err
	}

	if len(summary.Records) == 0 {
		return nil, nil
	}
	return &summary, nil
}

func (p *cloudPodProvider) do(ctx context.Context, method, path string, body io.Reader, result any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, p.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return ErrPodNotFound

	case resp.StatusCode >= 400:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Code == "gpu_unavailable" {
			return ErrGPUUnavailable
		}
		if resp.StatusCode == http.StatusServiceUnavailable {
			return ErrGPUUnavailable
		}

		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, respBody)
	}

	if result == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
