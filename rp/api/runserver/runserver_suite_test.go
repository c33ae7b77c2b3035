package runserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/api/runserver"
	"github.com/ae-scientist/tower/rp/billing/billingfakes"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/ae-scientist/tower/rp/podprovider/podproviderfakes"
	"github.com/ae-scientist/tower/rp/remoteshell/remoteshellfakes"
	"github.com/tedsuo/rata"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRunServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RunServer Suite")
}

type spyWaker struct{ wakes int32 }

func (w *spyWaker) Wake() { atomic.AddInt32(&w.wakes, 1) }

func (w *spyWaker) Count() int { return int(atomic.LoadInt32(&w.wakes)) }

var (
	fakeClock        *fakeclock.FakeClock
	fakeRuns         *dbfakes.FakeRunFactory
	fakeIdeas        *dbfakes.FakeIdeaRepository
	fakeProjections  *dbfakes.FakeProjectionRepository
	fakeTerminations *dbfakes.FakeTerminationRepository
	fakeProvider     *podproviderfakes.FakeProvider
	fakeGuard        *billingfakes.FakeGuard
	fakeShell        *remoteshellfakes.FakeShell
	waker            *spyWaker
	bus              *eventbus.Bus

	fakeRun *dbfakes.FakeRun

	launch *launcher.Launcher
	server *httptest.Server
)

var _ = BeforeEach(func() {
	fakeClock = fakeclock.NewFakeClock(time.Date(2025, 6, 3, 5, 30, 0, 0, time.UTC))
	fakeRuns = new(dbfakes.FakeRunFactory)
	fakeIdeas = new(dbfakes.FakeIdeaRepository)
	fakeProjections = new(dbfakes.FakeProjectionRepository)
	fakeTerminations = new(dbfakes.FakeTerminationRepository)
	fakeProvider = new(podproviderfakes.FakeProvider)
	fakeGuard = new(billingfakes.FakeGuard)
	fakeShell = new(remoteshellfakes.FakeShell)
	waker = &spyWaker{}
	bus = eventbus.NewBus(lagertest.NewTestLogger("bus"), 16)

	fakeRun = new(dbfakes.FakeRun)
	fakeRun.IDReturns("run-1")
	fakeRun.UserIDReturns("user-1")
	fakeRun.ConversationIDReturns("conv-1")
	fakeRun.StatusReturns(rp.RunStatusRunning)
	fakeRun.FinishReturns(true, nil)
	fakeRuns.GetRunReturns(fakeRun, true, nil)
	fakeRuns.CreateRunStub = func(spec db.RunSpec) (db.Run, error) {
		fakeRun.IDReturns(spec.ID)
		return fakeRun, nil
	}

	fakeIdeas.GetIdeaVersionReturns(db.IdeaVersion{
		ID:      "iv-1",
		IdeaID:  "idea-1",
		UserID:  "user-1",
		Content: json.RawMessage(`{"title":"q-learning ablation"}`),
	}, true, nil)
	fakeProvider.CreatePodReturns(podprovider.Pod{ID: "pod-1"}, nil)

	logger := lagertest.NewTestLogger("test")

	launch = launcher.NewLauncher(
		logger.Session("launcher"),
		fakeClock,
		launcher.Config{
			WebhookBaseURL: "https://tower.example.com/webhooks",
			PodImage:       "registry.example.com/rp:latest",
			StartupGrace:   10 * time.Minute,
			MinimumCredits: 1,
			MaxGPURetries:  3,
		},
		fakeRuns,
		fakeIdeas,
		fakeProvider,
		fakeGuard,
		bus,
	)

	runServer := runserver.NewServer(
		logger.Session("api"),
		fakeClock,
		fakeRuns,
		fakeProjections,
		fakeTerminations,
		bus,
		launch,
		fakeShell,
		waker,
	)

	router, err := rata.NewRouter(rp.ClientRoutes, rata.Handlers{
		rp.LaunchRun:       runServer.LaunchRunHandler(),
		rp.ListRuns:        runServer.ListRunsHandler(),
		rp.GetRunSnapshot:  runServer.GetSnapshotHandler(),
		rp.StreamRunEvents: runServer.StreamEventsHandler(),
		rp.StopRun:         runServer.StopRunHandler(),
		rp.SkipStage:       runServer.SkipStageHandler(),
	})
	Expect(err).ToNot(HaveOccurred())

	server = httptest.NewServer(router)
	DeferCleanup(server.Close)
})

func doRequest(method, path, userID string, body any) *http.Response {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		Expect(err).ToNot(HaveOccurred())
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	Expect(err).ToNot(HaveOccurred())
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	Expect(err).ToNot(HaveOccurred())
	DeferCleanup(resp.Body.Close)
	return resp
}
