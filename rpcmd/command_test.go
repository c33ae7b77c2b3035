package rpcmd_test

import (
	"testing"

	"github.com/ae-scientist/tower/rpcmd"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type towerCommand struct {
	Run rpcmd.RunCommand `command:"run"`
}

type CommandSuite struct {
	suite.Suite
	*require.Assertions
}

func (s *CommandSuite) parser() *flags.Parser {
	parser := flags.NewParser(&towerCommand{}, flags.Default)
	parser.NamespaceDelimiter = "-"
	return parser
}

func (s *CommandSuite) TestDefaults() {
	runCmd := s.parser().Find("run")
	s.NotNil(runCmd)

	for flag, def := range map[string]string{
		"bind-ip":                      "0.0.0.0",
		"bind-port":                    "8080",
		"postgres-max-open-conns":      "32",
		"object-store-region":          "us-east-1",
		"ssh-user":                     "root",
		"launch-container-disk-gb":     "40",
		"launch-volume-disk-gb":        "500",
		"launch-startup-grace":         "10m",
		"launch-minimum-credits":       "1",
		"launch-max-gpu-retries":       "3",
		"worker-poll-interval":         "1s",
		"worker-concurrency":           "4",
		"worker-heartbeat-timeout":     "10m",
		"worker-sweep-interval":        "1m",
		"metrics-prometheus-bind-port": "9090",
		"log-level":                    "info",
	} {
		opt := runCmd.FindOptionByLongName(flag)
		s.NotNil(opt, "--%s flag should exist", flag)
		s.Equal([]string{def}, opt.Default, "--%s default", flag)
	}
}

func (s *CommandSuite) TestRequiredFlags() {
	runCmd := s.parser().Find("run")

	for _, flag := range []string{
		"external-url",
		"postgres-data-source",
		"object-store-bucket",
		"pod-provider-base-url",
		"pod-provider-api-token",
		"ssh-private-key",
		"launch-pod-image",
	} {
		opt := runCmd.FindOptionByLongName(flag)
		s.NotNil(opt, "--%s flag should exist", flag)
		s.True(opt.Required, "--%s should be required", flag)
	}
}

func (s *CommandSuite) TestPrometheusDisabledByDefault() {
	cmd := &rpcmd.RunCommand{}
	s.Equal("", cmd.Metrics.PrometheusBindIP, "scrape endpoint should be off unless bound")
}

func TestSuite(t *testing.T) {
	suite.Run(t, &CommandSuite{
		Assertions: require.New(t),
	})
}
