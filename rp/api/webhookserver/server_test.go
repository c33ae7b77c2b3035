package webhookserver_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/api"
	"github.com/ae-scientist/tower/rp/api/runserver"
	"github.com/ae-scientist/tower/rp/api/webhookserver"
	"github.com/ae-scientist/tower/rp/billing/billingfakes"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/notifier/notifierfakes"
	"github.com/ae-scientist/tower/rp/objectstore/objectstorefakes"
	"github.com/ae-scientist/tower/rp/podprovider/podproviderfakes"
	"github.com/ae-scientist/tower/rp/remoteshell/remoteshellfakes"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testRunID = "11111111-2222-3333-4444-555555555555"
	testToken = "f00dfeedf00dfeedf00dfeedf00dfeedf00dfeedf00dfeedf00dfeedf00dfeed"
)

type spyWaker struct{ wakes int32 }

func (w *spyWaker) Wake() { atomic.AddInt32(&w.wakes, 1) }

func (w *spyWaker) count() int { return int(atomic.LoadInt32(&w.wakes)) }

type WebhookSuite struct {
	suite.Suite
	*require.Assertions

	fakeClock        *fakeclock.FakeClock
	fakeRuns         *dbfakes.FakeRunFactory
	fakeProjections  *dbfakes.FakeProjectionRepository
	fakeTerminations *dbfakes.FakeTerminationRepository
	fakeTokenUsage   *dbfakes.FakeTokenUsageRepository
	fakeGuard        *billingfakes.FakeGuard
	fakeStore        *objectstorefakes.FakeStore
	fakeNotifier     *notifierfakes.FakeNotifier
	fakeProvider     *podproviderfakes.FakeProvider
	fakeIdeas        *dbfakes.FakeIdeaRepository
	waker            *spyWaker
	bus              *eventbus.Bus

	fakeRun *dbfakes.FakeRun

	server *httptest.Server
}

func (s *WebhookSuite) SetupTest() {
	s.Assertions = require.New(s.T())

	s.fakeClock = fakeclock.NewFakeClock(time.Date(2025, 6, 3, 5, 30, 0, 0, time.UTC))
	s.fakeRuns = new(dbfakes.FakeRunFactory)
	s.fakeProjections = new(dbfakes.FakeProjectionRepository)
	s.fakeTerminations = new(dbfakes.FakeTerminationRepository)
	s.fakeTokenUsage = new(dbfakes.FakeTokenUsageRepository)
	s.fakeGuard = new(billingfakes.FakeGuard)
	s.fakeStore = new(objectstorefakes.FakeStore)
	s.fakeNotifier = new(notifierfakes.FakeNotifier)
	s.fakeProvider = new(podproviderfakes.FakeProvider)
	s.fakeIdeas = new(dbfakes.FakeIdeaRepository)
	s.waker = &spyWaker{}
	s.bus = eventbus.NewBus(lagertest.NewTestLogger("bus"), 16)

	s.fakeRun = new(dbfakes.FakeRun)
	s.fakeRun.IDReturns(testRunID)
	s.fakeRun.UserIDReturns("user-1")
	s.fakeRun.ConversationIDReturns("conv-1")
	s.fakeRun.StatusReturns(rp.RunStatusRunning)
	s.fakeRun.ContainerDiskGBReturns(40)
	s.fakeRun.VolumeDiskGBReturns(500)
	s.fakeRun.StartedReturns(true, nil)
	s.fakeRun.FinishReturns(true, nil)
	s.fakeRuns.GetRunReturns(s.fakeRun, true, nil)

	sum := sha256.Sum256([]byte(testToken))
	s.fakeRuns.GetWebhookTokenHashReturns(hex.EncodeToString(sum[:]), true, nil)

	logger := lagertest.NewTestLogger("test")

	launch := launcher.NewLauncher(
		logger.Session("launcher"),
		s.fakeClock,
		launcher.Config{MaxGPURetries: 3, MinimumCredits: 1},
		s.fakeRuns,
		s.fakeIdeas,
		s.fakeProvider,
		s.fakeGuard,
		s.bus,
	)

	webhookServer := webhookserver.NewServer(
		logger.Session("webhooks"),
		s.fakeClock,
		s.fakeRuns,
		s.fakeProjections,
		s.fakeTerminations,
		s.fakeTokenUsage,
		s.fakeGuard,
		launch,
		s.bus,
		s.fakeStore,
		s.fakeNotifier,
		s.waker,
	)

	runServer := runserver.NewServer(
		logger.Session("api"),
		s.fakeClock,
		s.fakeRuns,
		s.fakeProjections,
		s.fakeTerminations,
		s.bus,
		launch,
		new(remoteshellfakes.FakeShell),
		s.waker,
	)

	handler, err := api.NewHandler(webhookServer, runServer)
	s.NoError(err)

	s.server = httptest.NewServer(handler)
}

func (s *WebhookSuite) TearDownTest() {
	s.server.Close()
}

func (s *WebhookSuite) post(path string, token string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		s.NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest("POST", s.server.URL+"/rp/"+testRunID+path, &buf)
	s.NoError(err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	s.NoError(err)
	s.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *WebhookSuite) TestRejectsMissingToken() {
	resp := s.post("/run-started", "", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal(0, s.fakeRun.StartedCallCount())
}

func (s *WebhookSuite) TestRejectsWrongToken() {
	resp := s.post("/run-started", "not-the-right-token", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *WebhookSuite) TestRejectsTokenForUnknownRun() {
	s.fakeRuns.GetWebhookTokenHashReturns("", false, nil)
	resp := s.post("/run-started", testToken, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *WebhookSuite) TestRunStartedFlipsPendingToRunning() {
	resp := s.post("/run-started", testToken, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal(1, s.fakeRun.StartedCallCount())
}

func (s *WebhookSuite) TestRunStartedIsIdempotent() {
	s.fakeRun.StartedReturns(false, nil)

	resp := s.post("/run-started", testToken, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *WebhookSuite) TestHeartbeatForKnownRun() {
	resp := s.post("/heartbeat", testToken, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal(1, s.fakeRun.HeartbeatCallCount())
}

func (s *WebhookSuite) TestHeartbeatForUnknownRunIsAccepted() {
	s.fakeRuns.GetWebhookTokenHashReturns("", false, nil)

	resp := s.post("/heartbeat", testToken, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal(0, s.fakeRun.HeartbeatCallCount())
}

func (s *WebhookSuite) TestStageProgressRequiresStage() {
	resp := s.post("/stage-progress", testToken, map[string]any{
		"event": map[string]any{"iteration": 3},
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(0, s.fakeProjections.InsertStageProgressCallCount())
}

func (s *WebhookSuite) TestStageProgressPersistsThenPublishes() {
	sub := s.bus.Subscribe(testRunID)
	defer s.bus.Unsubscribe(sub)

	resp := s.post("/stage-progress", testToken, map[string]any{
		"event": map[string]any{
			"stage":        "2_baseline_tuning",
			"iteration":    3,
			"is_seed_node": true,
		},
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)

	s.Equal(1, s.fakeProjections.InsertStageProgressCallCount())
	runID, ev, _ := s.fakeProjections.InsertStageProgressArgsForCall(0)
	s.Equal(testRunID, runID)
	s.Equal("2_baseline_tuning", ev.Stage)
	s.True(ev.IsSeedNode)
}

func (s *WebhookSuite) TestTokenUsageRecordsAndCharges() {
	resp := s.post("/token-usage", testToken, map[string]any{
		"event": map[string]any{
			"model":               "openai:gpt-5",
			"input_tokens":        1200,
			"cached_input_tokens": 200,
			"output_tokens":       450,
		},
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)

	s.Equal(1, s.fakeTokenUsage.InsertCallCount())
	usage := s.fakeTokenUsage.InsertArgsForCall(0)
	s.Equal("openai", usage.Provider)
	s.Equal("gpt-5", usage.Model)
	s.Equal(int64(1200), usage.InputTokens)

	s.Equal(1, s.fakeGuard.ChargeForLLMUsageCallCount())
	charged := s.fakeGuard.ChargeForLLMUsageArgsForCall(0)
	s.Equal("user-1", charged.UserID)
	s.Equal("gpt-5", charged.Model)
}

func (s *WebhookSuite) TestHWStatsAlertsOnLowDisk() {
	resp := s.post("/hw-stats", testToken, map[string]any{
		"partitions": []map[string]any{
			// 500 GiB volume with ~10 GiB free
			{"partition": "/workspace", "used_bytes": int64(490) << 30},
		},
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)

	s.Equal(1, s.fakeRun.SaveEventCallCount())
	s.Equal(1, s.fakeNotifier.AlertCallCount())
	subject, data := s.fakeNotifier.AlertArgsForCall(0)
	s.Contains(subject, "low on disk")
	s.Equal(testRunID, data["run_id"])
}

func (s *WebhookSuite) TestHWStatsStaysQuietWithHeadroom() {
	resp := s.post("/hw-stats", testToken, map[string]any{
		"partitions": []map[string]any{
			{"partition": "/workspace", "used_bytes": int64(100) << 30},
		},
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal(0, s.fakeNotifier.AlertCallCount())
}

func (s *WebhookSuite) TestGPUShortageExhaustedFailsTheRun() {
	s.fakeRun.RestartCountReturns(3)

	resp := s.post("/gpu-shortage", testToken, map[string]any{
		"message": "no A40 capacity",
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)

	s.Equal(1, s.fakeRun.FinishCallCount())
	to, trigger, message := s.fakeRun.FinishArgsForCall(0)
	s.Equal(rp.RunStatusFailed, to)
	s.Equal(rp.TerminationTriggerGPUShortage, trigger)
	s.Contains(message, "no A40 capacity")
	s.Contains(message, "3 restart attempt(s)")

	s.Equal(1, s.fakeTerminations.EnqueueCallCount())
	s.Equal(1, s.waker.count())
}

func (s *WebhookSuite) TestRunFinishedSuccess() {
	resp := s.post("/run-finished", testToken, map[string]any{"success": true})
	s.Equal(http.StatusNoContent, resp.StatusCode)

	s.Equal(1, s.fakeRun.FinishCallCount())
	to, trigger, _ := s.fakeRun.FinishArgsForCall(0)
	s.Equal(rp.RunStatusCompleted, to)
	s.Equal(rp.TerminationTriggerPipelineFinish, trigger)

	s.Equal(1, s.fakeTerminations.EnqueueCallCount())
	runID, enqTrigger := s.fakeTerminations.EnqueueArgsForCall(0)
	s.Equal(testRunID, runID)
	s.Equal(rp.TerminationTriggerPipelineFinish, enqTrigger)
	s.Equal(1, s.waker.count())
}

func (s *WebhookSuite) TestRunFinishedFailure() {
	resp := s.post("/run-finished", testToken, map[string]any{
		"success": false,
		"message": "stage 3 crashed",
	})
	s.Equal(http.StatusNoContent, resp.StatusCode)

	to, _, message := s.fakeRun.FinishArgsForCall(0)
	s.Equal(rp.RunStatusFailed, to)
	s.Equal("stage 3 crashed", message)
}

func (s *WebhookSuite) TestRunFinishedAnswers500WhenFinishFails() {
	s.fakeRun.FinishReturns(false, errors.New("db connection lost"))

	resp := s.post("/run-finished", testToken, map[string]any{"success": true})
	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	s.Equal(0, s.fakeTerminations.EnqueueCallCount())
	s.Equal(0, s.waker.count())
}

func (s *WebhookSuite) TestRunFinishedAnswers500WhenEnqueueFails() {
	s.fakeTerminations.EnqueueReturns(rp.Termination{}, errors.New("db connection lost"))

	resp := s.post("/run-finished", testToken, map[string]any{"success": true})
	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	s.Equal(1, s.fakeRun.FinishCallCount())
	s.Equal(0, s.waker.count())
}

func (s *WebhookSuite) TestGPUShortageExhaustedAnswers500WhenFinishFails() {
	s.fakeRun.RestartCountReturns(3)
	s.fakeRun.FinishReturns(false, errors.New("db connection lost"))

	resp := s.post("/gpu-shortage", testToken, map[string]any{
		"message": "no A40 capacity",
	})
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal(0, s.fakeTerminations.EnqueueCallCount())
}

func (s *WebhookSuite) TestPresignUpload() {
	s.fakeStore.PresignUploadReturns("https://bucket.example.com/signed", nil)

	resp := s.post("/presigned-upload-url", testToken, map[string]any{
		"artifact_type": "figures",
		"filename":      "loss_curve.png",
		"content_type":  "image/png",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var out rp.PresignUploadResponse
	s.NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Equal("https://bucket.example.com/signed", out.UploadURL)
	s.Equal("research-pipeline/"+testRunID+"/figures/loss_curve.png", out.S3Key)
	s.Equal(3600, out.ExpiresIn)
}

func (s *WebhookSuite) TestPresignUploadStripsPathTraversal() {
	s.fakeStore.PresignUploadReturns("https://bucket.example.com/signed", nil)

	resp := s.post("/presigned-upload-url", testToken, map[string]any{
		"filename": "../../etc/passwd",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var out rp.PresignUploadResponse
	s.NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Equal("research-pipeline/"+testRunID+"/misc/passwd", out.S3Key)
}

func (s *WebhookSuite) TestParentRunFilesWithoutParent() {
	resp := s.post("/parent-run-files", testToken, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var files []rp.StoredFile
	s.NoError(json.NewDecoder(resp.Body).Decode(&files))
	s.Empty(files)
	s.Equal(0, s.fakeStore.ListCallCount())
}

func (s *WebhookSuite) TestParentRunFilesArePresigned() {
	s.fakeRun.ParentRunIDReturns("parent-run")
	s.fakeStore.ListReturns([]rp.StoredFile{{Key: "research-pipeline/parent-run/misc/a.txt", Size: 12}}, nil)
	s.fakeStore.PresignDownloadReturns("https://bucket.example.com/a.txt", nil)

	resp := s.post("/parent-run-files", testToken, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var files []rp.StoredFile
	s.NoError(json.NewDecoder(resp.Body).Decode(&files))
	s.Len(files, 1)
	s.Equal("https://bucket.example.com/a.txt", files[0].DownloadURL)

	_, prefix := s.fakeStore.ListArgsForCall(0)
	s.Equal("research-pipeline/parent-run/", prefix)
}

func (s *WebhookSuite) TestMultipartInit() {
	s.fakeStore.MultipartInitReturns("upload-1", []string{"u1", "u2"}, nil)

	resp := s.post("/multipart-upload-init", testToken, map[string]any{
		"artifact_type": "workspace_archive",
		"filename":      "workspaces.tar.gz",
		"parts":         2,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var out rp.MultipartInitResponse
	s.NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Equal("upload-1", out.UploadID)
	s.Len(out.PartURLs, 2)
}

func TestWebhookSuite(t *testing.T) {
	suite.Run(t, &WebhookSuite{})
}
