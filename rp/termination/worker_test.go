package termination_test

import (
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/eventbus"
	"github.com/ae-scientist/tower/rp/notifier/notifierfakes"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/ae-scientist/tower/rp/podprovider/podproviderfakes"
	"github.com/ae-scientist/tower/rp/remoteshell/remoteshellfakes"
	"github.com/ae-scientist/tower/rp/termination"
	"github.com/tedsuo/ifrit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Worker", func() {
	var (
		fakeClock        *fakeclock.FakeClock
		fakeRuns         *dbfakes.FakeRunFactory
		fakeTerminations *dbfakes.FakeTerminationRepository
		fakeShell        *remoteshellfakes.FakeShell
		fakeProvider     *podproviderfakes.FakeProvider
		fakeNotifier     *notifierfakes.FakeNotifier
		bus              *eventbus.Bus

		fakeRun *dbfakes.FakeRun

		worker  *termination.Worker
		process ifrit.Process
	)

	BeforeEach(func() {
		fakeClock = fakeclock.NewFakeClock(time.Date(2025, 6, 3, 5, 30, 0, 0, time.UTC))
		fakeRuns = new(dbfakes.FakeRunFactory)
		fakeTerminations = new(dbfakes.FakeTerminationRepository)
		fakeShell = new(remoteshellfakes.FakeShell)
		fakeProvider = new(podproviderfakes.FakeProvider)
		fakeNotifier = new(notifierfakes.FakeNotifier)
		bus = eventbus.NewBus(lagertest.NewTestLogger("bus"), 16)

		fakeRun = new(dbfakes.FakeRun)
		fakeRun.IDReturns("run-1")
		fakeRun.PodIDReturns("pod-1")
		fakeRun.PublicIPReturns("203.0.113.7")
		fakeRun.SSHPortReturns(22022)
		fakeRun.StatusReturns(rp.RunStatusCompleted)
		fakeRuns.GetRunReturns(fakeRun, true, nil)

		worker = termination.NewWorker(
			lagertest.NewTestLogger("test"),
			fakeClock,
			fakeRuns,
			fakeTerminations,
			fakeShell,
			fakeProvider,
			bus,
			fakeNotifier,
			time.Second,
			1,
		)
	})

	claimOnce := func(job rp.Termination) {
		fakeTerminations.ClaimNextReturnsOnCall(0, job, true, nil)
		fakeTerminations.ClaimNextReturns(rp.Termination{}, false, nil)
	}

	start := func() {
		process = ifrit.Invoke(worker)
	}

	AfterEach(func() {
		if process != nil {
			process.Signal(os.Interrupt)
			Eventually(process.Wait()).Should(Receive(BeNil()))
			process = nil
		}
	})

	It("uploads artifacts, releases the pod, and marks the job terminated", func() {
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish"})
		start()

		Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))

		Expect(fakeShell.UploadArtifactsCallCount()).To(Equal(1))
		_, host, port, runID, trigger := fakeShell.UploadArtifactsArgsForCall(0)
		Expect(host).To(Equal("203.0.113.7"))
		Expect(port).To(Equal(22022))
		Expect(runID).To(Equal("run-1"))
		Expect(trigger).To(Equal("pipeline_finish"))

		Expect(fakeTerminations.MarkArtifactsUploadedCallCount()).To(Equal(1))

		Expect(fakeProvider.DeletePodCallCount()).To(Equal(1))
		_, podID := fakeProvider.DeletePodArgsForCall(0)
		Expect(podID).To(Equal("pod-1"))

		terminatedRunID, attempts := fakeTerminations.MarkTerminatedArgsForCall(0)
		Expect(terminatedRunID).To(Equal("run-1"))
		Expect(attempts).To(Equal(1))

		Eventually(fakeRun.SaveEventCallCount).Should(BeNumerically(">=", 1))
	})

	It("skips the upload when a prior attempt already finished it", func() {
		claimOnce(rp.Termination{
			RunID:               "run-1",
			Trigger:             "user_stop",
			Attempts:            1,
			ArtifactsUploadedAt: fakeClock.Now().Unix(),
		})
		start()

		Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))
		Expect(fakeShell.UploadArtifactsCallCount()).To(Equal(0))
	})

	It("reschedules when the upload fails with attempts remaining", func() {
		fakeShell.UploadArtifactsReturns(errors.New("connection refused"))
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish"})
		start()

		Eventually(fakeTerminations.RescheduleCallCount).Should(Equal(1))

		runID, attempts, lastError := fakeTerminations.RescheduleArgsForCall(0)
		Expect(runID).To(Equal("run-1"))
		Expect(attempts).To(Equal(1))
		Expect(lastError).To(ContainSubstring("connection refused"))

		Expect(fakeProvider.DeletePodCallCount()).To(Equal(0))
		Expect(fakeTerminations.MarkTerminatedCallCount()).To(Equal(0))
	})

	It("treats a run with no SSH connection info as an upload failure", func() {
		fakeRun.PublicIPReturns("")
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "heartbeat_stale"})
		start()

		Eventually(fakeTerminations.RescheduleCallCount).Should(Equal(1))
		Expect(fakeShell.UploadArtifactsCallCount()).To(Equal(0))
	})

	It("releases the pod anyway once upload attempts are exhausted", func() {
		fakeShell.UploadArtifactsReturns(errors.New("connection refused"))
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish", Attempts: 2})
		start()

		Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))

		Expect(fakeProvider.DeletePodCallCount()).To(Equal(1))
		Expect(fakeNotifier.AlertCallCount()).To(Equal(1))
		subject, data := fakeNotifier.AlertArgsForCall(0)
		Expect(subject).To(ContainSubstring("artifact upload"))
		Expect(data).To(HaveKeyWithValue("run_id", "run-1"))
	})

	It("treats a pod the provider no longer knows as released", func() {
		fakeProvider.DeletePodReturns(podprovider.ErrPodNotFound)
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish"})
		start()

		Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))
		Expect(fakeTerminations.MarkFailedCallCount()).To(Equal(0))
	})

	It("reschedules a failed pod delete with attempts remaining", func() {
		fakeProvider.DeletePodReturns(errors.New("provider 500"))
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish"})
		start()

		Eventually(fakeTerminations.RescheduleCallCount).Should(Equal(1))
		Expect(fakeTerminations.MarkTerminatedCallCount()).To(Equal(0))
	})

	It("marks the job failed when the final pod delete attempt errors", func() {
		fakeProvider.DeletePodReturns(errors.New("provider 500"))
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish", Attempts: 2})
		start()

		Eventually(fakeTerminations.MarkFailedCallCount).Should(Equal(1))

		runID, attempts, lastError := fakeTerminations.MarkFailedArgsForCall(0)
		Expect(runID).To(Equal("run-1"))
		Expect(attempts).To(Equal(3))
		Expect(lastError).To(ContainSubstring("provider 500"))
	})

	It("fails a job whose run no longer exists", func() {
		fakeRuns.GetRunReturns(nil, false, nil)
		claimOnce(rp.Termination{RunID: "run-gone", Trigger: "user_stop"})
		start()

		Eventually(fakeTerminations.MarkFailedCallCount).Should(Equal(1))
		runID, _, lastError := fakeTerminations.MarkFailedArgsForCall(0)
		Expect(runID).To(Equal("run-gone"))
		Expect(lastError).To(ContainSubstring("run not found"))
	})

	It("skips pod release entirely for runs that never got a pod", func() {
		fakeRun.PodIDReturns("")
		fakeRun.PublicIPReturns("")
		claimOnce(rp.Termination{RunID: "run-1", Trigger: "user_stop", ArtifactsUploadedAt: 1})
		start()

		Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))
		Expect(fakeProvider.DeletePodCallCount()).To(Equal(0))
		Expect(fakeProvider.GetBillingSummaryCallCount()).To(Equal(0))
	})

	Describe("billing capture", func() {
		It("saves and publishes the provider's billing summary", func() {
			fakeProvider.GetBillingSummaryReturns(&podprovider.BillingSummary{
				AmountUSD:    1.25,
				TimeBilledMS: 1800000,
			}, nil)

			sub := bus.Subscribe("run-1")
			defer bus.Unsubscribe(sub)

			claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish", ArtifactsUploadedAt: 1})
			start()

			Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))

			Expect(fakeProvider.GetBillingSummaryCallCount()).To(Equal(1))
			// billing summary + complete
			Eventually(fakeRun.SaveEventCallCount).Should(Equal(2))
		})

		It("carries on when the provider has no billing records yet", func() {
			fakeProvider.GetBillingSummaryReturns(nil, nil)

			claimOnce(rp.Termination{RunID: "run-1", Trigger: "pipeline_finish", ArtifactsUploadedAt: 1})
			start()

			Eventually(fakeTerminations.MarkTerminatedCallCount).Should(Equal(1))
			// only the complete event
			Eventually(fakeRun.SaveEventCallCount).Should(Equal(1))
		})
	})

	It("wakes out of the poll sleep on demand", func() {
		fakeTerminations.ClaimNextReturns(rp.Termination{}, false, nil)
		start()

		Eventually(fakeTerminations.ClaimNextCallCount).Should(Equal(1))

		worker.Wake()
		Eventually(fakeTerminations.ClaimNextCallCount).Should(Equal(2))
	})
})
