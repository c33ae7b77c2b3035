package rpcmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/api"
	"github.com/ae-scientist/tower/rp/api/runserver"
	"github.com/ae-scientist/tower/rp/api/webhookserver"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/metric"
	"github.com/ae-scientist/tower/rp/notifier"
	"github.com/ae-scientist/tower/rp/objectstore"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/ae-scientist/tower/rp/remoteshell"
	"github.com/ae-scientist/tower/rp/termination"
	"github.com/ae-scientist/tower/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"
	sigsyaml "sigs.k8s.io/yaml"
)

// RunCommand is the `run` subcommand: the whole control plane in one
// process. Every dependency is wired here and handed to the runner group.
type RunCommand struct {
	Logger LagerFlag

	BindIP   string `long:"bind-ip"   default:"0.0.0.0" description:"IP address on which to listen for HTTP traffic."`
	BindPort uint16 `long:"bind-port" default:"8080"    description:"Port on which to listen for HTTP traffic."`

	ExternalURL string `long:"external-url" required:"true" description:"Base URL reachable from pods; webhook URLs are derived from it."`

	Postgres struct {
		DataSource   string `long:"data-source" required:"true" description:"PostgreSQL connection string."`
		MaxOpenConns int    `long:"max-open-conns" default:"32" description:"Maximum number of open database connections."`
	} `group:"PostgreSQL Configuration" namespace:"postgres"`

	ObjectStore struct {
		Bucket          string `long:"bucket" required:"true" description:"Bucket holding run artifacts and datasets."`
		Region          string `long:"region" default:"us-east-1" description:"Object store region."`
		Endpoint        string `long:"endpoint" description:"Custom S3-compatible endpoint. Leave empty for AWS."`
		AccessKeyID     string `long:"access-key-id" description:"Static access key. Falls back to the ambient credential chain."`
		SecretAccessKey string `long:"secret-access-key" description:"Static secret key."`
	} `group:"Object Store Configuration" namespace:"object-store"`

	PodProvider struct {
		BaseURL  string `long:"base-url" required:"true" description:"Base URL of the GPU pod provider API."`
		APIToken string `long:"api-token" required:"true" description:"Bearer token for the pod provider API."`
	} `group:"Pod Provider Configuration" namespace:"pod-provider"`

	SSH struct {
		User           string `long:"user" default:"root" description:"SSH user on provisioned pods."`
		PrivateKeyPath string `long:"private-key" required:"true" description:"Path to the private key for pod SSH access."`
	} `group:"Pod SSH Configuration" namespace:"ssh"`

	Launch struct {
		PodImage        string        `long:"pod-image" required:"true" description:"Container image run on every pod."`
		ContainerDiskGB int           `long:"container-disk-gb" default:"40" description:"Container disk size in GiB."`
		VolumeDiskGB    int           `long:"volume-disk-gb" default:"500" description:"Workspace volume size in GiB."`
		StartupGrace    time.Duration `long:"startup-grace" default:"10m" description:"How long a pending run may wait for its first startup report."`
		MinimumCredits  float64       `long:"minimum-credits" default:"1" description:"Minimum credit balance required to launch a run."`
		MaxGPURetries   int           `long:"max-gpu-retries" default:"3" description:"Restart attempts when the provider is out of GPUs."`
	} `group:"Launch Policy" namespace:"launch"`

	Worker struct {
		PollInterval     time.Duration `long:"poll-interval" default:"1s" description:"Termination queue poll interval."`
		Concurrency      int           `long:"concurrency" default:"4" description:"Concurrent termination jobs."`
		HeartbeatTimeout time.Duration `long:"heartbeat-timeout" default:"10m" description:"Silence after which a running run is presumed dead."`
		SweepInterval    time.Duration `long:"sweep-interval" default:"1m" description:"Janitor sweep interval."`
	} `group:"Background Worker Configuration" namespace:"worker"`

	PricingFile string `long:"pricing-file" description:"YAML file mapping provider:model to per-million-token rates. Empty disables LLM usage billing."`

	Metrics struct {
		tracing.MetricsConfig
		PrometheusBindIP   string `long:"prometheus-bind-ip" description:"IP to listen on for the prometheus scrape endpoint. Empty disables it."`
		PrometheusBindPort uint16 `long:"prometheus-bind-port" default:"9090" description:"Port for the prometheus scrape endpoint."`
	} `group:"Metrics Configuration" namespace:"metrics"`
}

func (cmd *RunCommand) Execute(args []string) error {
	runner, err := cmd.Runner(args)
	if err != nil {
		return err
	}

	return <-ifrit.Invoke(sigmon.New(runner)).Wait()
}

// Runner assembles the process group: the API server, the termination
// worker, the janitor, and optionally the prometheus endpoint.
func (cmd *RunCommand) Runner(args []string) (ifrit.Runner, error) {
	logger, _ := cmd.Logger.Logger("tower")

	mp, shutdownMetrics, err := cmd.Metrics.MeterProvider()
	if err != nil {
		return nil, fmt.Errorf("configure metrics: %w", err)
	}
	if mp != nil {
		tracing.ConfigureMeterProvider(mp)
	}

	conn, err := db.Open(logger.Session("db"), cmd.Postgres.DataSource, cmd.Postgres.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	runs := db.NewRunFactory(conn)
	projections := db.NewProjectionRepository(conn)
	terminations := db.NewTerminationRepository(conn)
	tokenUsage := db.NewTokenUsageRepository(conn)
	ledger := db.NewCreditLedger(conn)
	ideas := db.NewIdeaRepository(conn)

	pricing, err := cmd.loadPricing()
	if err != nil {
		return nil, err
	}

	clk := clock.NewClock()
	bus := eventbus.NewBus(logger.Session("bus"), eventbus.DefaultSubscriberBuffer)
	guard := billing.NewGuard(logger.Session("billing"), ledger, pricing)
	notify := notifier.NewLogNotifier(logger.Session("ops"))

	store, err := objectstore.NewS3Store(context.Background(), logger.Session("object-store"), objectstore.S3Config{
		Bucket:          cmd.ObjectStore.Bucket,
		Region:          cmd.ObjectStore.Region,
		Endpoint:        cmd.ObjectStore.Endpoint,
		AccessKeyID:     cmd.ObjectStore.AccessKeyID,
		SecretAccessKey: cmd.ObjectStore.SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("configure object store: %w", err)
	}

	provider := podprovider.NewCloudPodProvider(logger.Session("pod-provider"), clk, podprovider.CloudPodConfig{
		BaseURL:  cmd.PodProvider.BaseURL,
		APIToken: cmd.PodProvider.APIToken,
	})

	privateKey, err := os.ReadFile(cmd.SSH.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read ssh private key: %w", err)
	}

	shell, err := remoteshell.NewSSHShell(logger.Session("remote-shell"), store, cmd.SSH.User, privateKey)
	if err != nil {
		return nil, fmt.Errorf("configure remote shell: %w", err)
	}

	launch := launcher.NewLauncher(
		logger.Session("launcher"),
		clk,
		launcher.Config{
			WebhookBaseURL:  cmd.ExternalURL,
			PodImage:        cmd.Launch.PodImage,
			ContainerDiskGB: cmd.Launch.ContainerDiskGB,
			VolumeDiskGB:    cmd.Launch.VolumeDiskGB,
			StartupGrace:    cmd.Launch.StartupGrace,
			MinimumCredits:  cmd.Launch.MinimumCredits,
			MaxGPURetries:   cmd.Launch.MaxGPURetries,
		},
		runs,
		ideas,
		provider,
		guard,
		bus,
	)

	worker := termination.NewWorker(
		logger.Session("termination"),
		clk,
		runs,
		terminations,
		shell,
		provider,
		bus,
		notify,
		cmd.Worker.PollInterval,
		cmd.Worker.Concurrency,
	)

	janitor := termination.NewJanitor(
		logger.Session("janitor"),
		clk,
		conn,
		runs,
		terminations,
		bus,
		worker,
		cmd.Worker.HeartbeatTimeout,
		cmd.Worker.SweepInterval,
	)

	webhookServer := webhookserver.NewServer(
		logger.Session("webhooks"),
		clk,
		runs,
		projections,
		terminations,
		tokenUsage,
		guard,
		launch,
		bus,
		store,
		notify,
		worker,
	)

	runServer := runserver.NewServer(
		logger.Session("api"),
		clk,
		runs,
		projections,
		terminations,
		bus,
		launch,
		shell,
		worker,
	)

	monitor, err := metric.NewMonitor()
	if err != nil {
		return nil, fmt.Errorf("configure monitor: %w", err)
	}

	handler, err := api.NewHandler(webhookServer, runServer, metric.NewHTTPWrappa(monitor))
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	members := grouper.Members{
		{Name: "api", Runner: http_server.New(
			fmt.Sprintf("%s:%d", cmd.BindIP, cmd.BindPort),
			handler,
		)},
		{Name: "termination-worker", Runner: worker},
		{Name: "janitor", Runner: janitor},
	}

	if cmd.Metrics.PrometheusBindIP != "" {
		members = append(members, grouper.Member{
			Name: "prometheus",
			Runner: http_server.New(
				fmt.Sprintf("%s:%d", cmd.Metrics.PrometheusBindIP, cmd.Metrics.PrometheusBindPort),
				promhttp.Handler(),
			),
		})
	}

	group := onReady(grouper.NewParallel(os.Interrupt, members), func() {
		logger.Info("listening", lager.Data{
			"bind": fmt.Sprintf("%s:%d", cmd.BindIP, cmd.BindPort),
		})
	})

	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		err := group.Run(signals, ready)

		if shutdownMetrics != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if flushErr := shutdownMetrics(ctx); flushErr != nil {
				logger.Error("failed-to-flush-metrics", flushErr)
			}
		}

		_ = conn.Close()

		return err
	}), nil
}

func (cmd *RunCommand) loadPricing() (rp.PricingTable, error) {
	if cmd.PricingFile == "" {
		return rp.PricingTable{}, nil
	}

	raw, err := os.ReadFile(cmd.PricingFile)
	if err != nil {
		return nil, fmt.Errorf("read pricing file: %w", err)
	}

	var table rp.PricingTable
	if err := sigsyaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}

	return table, nil
}

func onReady(runner ifrit.Runner, cb func()) ifrit.Runner {
	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		process := ifrit.Background(runner)

		subExited := process.Wait()
		select {
		case <-process.Ready():
			cb()
			close(ready)
		case err := <-subExited:
			return err
		}

		for {
			select {
			case s := <-signals:
				process.Signal(s)
			case err := <-subExited:
				return err
			}
		}
	})
}
