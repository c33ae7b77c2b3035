package remoteshell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp/objectstore"
	"github.com/cenkalti/backoff/v5"
	"golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
)

const (
	dialTimeout      = 15 * time.Second
	transferAttempts = 3
)

type sshShell struct {
	logger lager.Logger
	store  objectstore.Store
	user   string
	signer ssh.Signer
}

// NewSSHShell builds the adapter from PEM-encoded private key material. The
// key is held only as a parsed signer.
func NewSSHShell(logger lager.Logger, store objectstore.Store, user string, privateKeyPEM []byte) (Shell, error) {
	signer, err := ssh.ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse ssh private key: %w", err)
	}

	return &sshShell{
		logger: logger,
		store:  store,
		user:   user,
		signer: signer,
	}, nil
}

func (s *sshShell) UploadArtifacts(ctx context.Context, host string, port int, runID, trigger string) error {
	logger := s.logger.Session("upload-artifacts", lager.Data{
		"run":     runID,
		"trigger": trigger,
	})

	transfers := []struct {
		name        string
		command     string
		key         string
		contentType string
	}{
		{
			name:        "run-log",
			command:     "cat " + RunLogPath,
			key:         objectstore.ArtifactKey(runID, "run_log", "research_pipeline.log"),
			contentType: "text/plain",
		},
		{
			name:        "workspace-archive",
			command:     fmt.Sprintf("tar -czf - -C %s workspaces", WorkspacesDir),
			key:         objectstore.ArtifactKey(runID, "workspace_archive", "workspaces.tar.gz"),
			contentType: "application/gzip",
		},
	}

	grp, ctx := errgroup.WithContext(ctx)
	for _, transfer := range transfers {
		grp.Go(func() error {
			_, err := backoff.Retry(ctx, func() (struct{}, error) {
				return struct{}{}, s.transfer(ctx, host, port, transfer.command, transfer.key, transfer.contentType)
			},
				backoff.WithBackOff(backoff.NewExponentialBackOff()),
				backoff.WithMaxTries(transferAttempts),
			)
			if err != nil {
				return fmt.Errorf("upload %s: %w", transfer.name, err)
			}

			logger.Debug("uploaded", lager.Data{"name": transfer.name, "key": transfer.key})
			return nil
		})
	}

	return grp.Wait()
}

// transfer runs a streaming command on the pod and pipes its stdout
// straight into the object store.
func (s *sshShell) transfer(ctx context.Context, host string, port int, command, key, contentType string) error {
	client, err := s.dial(ctx, host, port)
	if err != nil {
		return err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	stdout, err := session.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	var stderr bytes.Buffer
	session.Stderr = &stderr

	if err := session.Start(command); err != nil {
		return fmt.Errorf("start %q: %w", command, err)
	}

	if err := s.store.Upload(ctx, key, stdout, contentType); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}

	if err := session.Wait(); err != nil {
		return fmt.Errorf("%q failed: %w: %s", command, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

func (s *sshShell) RequestSkipStage(ctx context.Context, host string, port int, reason string) (SkipStageResult, error) {
	client, err := s.dial(ctx, host, port)
	if err != nil {
		return "", err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	body, err := json.Marshal(map[string]string{"reason": reason})
	if err != nil {
		return "", err
	}

	command := fmt.Sprintf(
		"curl -s -o /dev/null -w '%%{http_code}' -X POST -H 'Content-Type: application/json' -d %s http://127.0.0.1:%d/skip-stage",
		shellQuote(string(body)), ControlPort,
	)

	output, err := session.Output(command)
	if err != nil {
		return "", fmt.Errorf("skip-stage command: %w", err)
	}

	switch strings.TrimSpace(string(output)) {
	case "200", "202":
		return SkipStageAccepted, nil
	case "404":
		return SkipStageNotFound, nil
	case "409":
		return SkipStageConflict, nil
	default:
		return "", fmt.Errorf("control server returned %s", strings.TrimSpace(string(output)))
	}
}

func (s *sshShell) dial(ctx context.Context, host string, port int) (*ssh.Client, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, &ssh.ClientConfig{
		User:            s.user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(s.signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         dialTimeout,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}

	return ssh.NewClient(sshConn, chans, reqs), nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
