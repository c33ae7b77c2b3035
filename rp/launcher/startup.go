package launcher

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ae-scientist/tower/rp/remoteshell"
	"sigs.k8s.io/yaml"
)

type startupParams struct {
	RunID         string
	WebhookURL    string
	WebhookToken  string
	RequesterName string
	IdeaJSON      json.RawMessage
}

// pipelineConfig is the YAML file the pipeline reads at startup.
type pipelineConfig struct {
	RunID         string `json:"run_id"`
	WebhookURL    string `json:"webhook_url"`
	RequesterName string `json:"requester_name,omitempty"`
	ControlPort   int    `json:"control_port"`
}

// buildStartupScript renders the pod's boot script. The idea payload and
// config travel base64-encoded so arbitrary content survives shell quoting;
// the webhook token appears only here, in the pod's environment.
func buildStartupScript(params startupParams) (string, error) {
	configYAML, err := yaml.Marshal(pipelineConfig{
		RunID:         params.RunID,
		WebhookURL:    params.WebhookURL,
		RequesterName: params.RequesterName,
		ControlPort:   remoteshell.ControlPort,
	})
	if err != nil {
		return "", fmt.Errorf("marshal pipeline config: %w", err)
	}

	ideaB64 := base64.StdEncoding.EncodeToString(params.IdeaJSON)
	configB64 := base64.StdEncoding.EncodeToString(configYAML)

	var script strings.Builder
	script.WriteString("#!/bin/bash\nset -euo pipefail\n\n")

	fmt.Fprintf(&script, "export RP_RUN_ID=%s\n", params.RunID)
	fmt.Fprintf(&script, "export RP_WEBHOOK_URL=%s\n", params.WebhookURL)
	fmt.Fprintf(&script, "export RP_WEBHOOK_TOKEN=%s\n\n", params.WebhookToken)

	script.WriteString("mkdir -p /workspace\n")
	fmt.Fprintf(&script, "echo %s | base64 -d > /workspace/idea.json\n", ideaB64)
	fmt.Fprintf(&script, "echo %s | base64 -d > /workspace/rp_config.yaml\n\n", configB64)

	script.WriteString("cd /workspace/AE-Scientist\n")
	fmt.Fprintf(&script,
		"exec python -m research_pipeline.run --idea /workspace/idea.json --config /workspace/rp_config.yaml >> %s 2>&1\n",
		remoteshell.RunLogPath,
	)

	return script.String(), nil
}
