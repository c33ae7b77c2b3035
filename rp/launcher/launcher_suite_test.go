package launcher_test

import (
	"encoding/json"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp/billing/billingfakes"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/ae-scientist/tower/rp/podprovider/podproviderfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLauncher(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Launcher Suite")
}

var (
	fakeClock    *fakeclock.FakeClock
	fakeRuns     *dbfakes.FakeRunFactory
	fakeIdeas    *dbfakes.FakeIdeaRepository
	fakeProvider *podproviderfakes.FakeProvider
	fakeGuard    *billingfakes.FakeGuard
	bus          *eventbus.Bus

	fakeRun *dbfakes.FakeRun

	launch *launcher.Launcher
)

var _ = BeforeEach(func() {
	fakeClock = fakeclock.NewFakeClock(time.Date(2025, 6, 3, 5, 30, 0, 0, time.UTC))
	fakeRuns = new(dbfakes.FakeRunFactory)
	fakeIdeas = new(dbfakes.FakeIdeaRepository)
	fakeProvider = new(podproviderfakes.FakeProvider)
	fakeGuard = new(billingfakes.FakeGuard)
	bus = eventbus.NewBus(lagertest.NewTestLogger("bus"), 16)

	fakeRun = new(dbfakes.FakeRun)
	fakeRun.FinishReturns(true, nil)
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

	fakeProvider.CreatePodReturns(podprovider.Pod{
		ID:          "pod-1",
		Name:        "rp-pod",
		GPUType:     "NVIDIA A40",
		CostPerHour: 0.79,
	}, nil)
	fakeProvider.WaitForPodReadyReturns(podprovider.Endpoint{
		PublicIP:  "203.0.113.7",
		SSHPort:   22022,
		PodHostID: "host-1",
	}, nil)

	launch = launcher.NewLauncher(
		lagertest.NewTestLogger("test"),
		fakeClock,
		launcher.Config{
			WebhookBaseURL:  "https://tower.example.com/webhooks",
			PodImage:        "registry.example.com/rp:latest",
			ContainerDiskGB: 40,
			VolumeDiskGB:    500,
			StartupGrace:    10 * time.Minute,
			MinimumCredits:  1,
			MaxGPURetries:   3,
		},
		fakeRuns,
		fakeIdeas,
		fakeProvider,
		fakeGuard,
		bus,
	)
})
