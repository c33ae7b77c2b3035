package launcher_test

import (
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/event"
	"github.com/ae-scientist/tower/rp/launcher"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GPU shortage retries", func() {
	newShortRun := func(restartCount int) *dbfakes.FakeRun {
		run := new(dbfakes.FakeRun)
		run.IDReturns("run-short")
		run.IdeaVersionIDReturns("iv-1")
		run.UserIDReturns("user-1")
		run.ConversationIDReturns("conv-1")
		run.GPUTypeReturns("NVIDIA L40S")
		run.RestartCountReturns(restartCount)
		return run
	}

	It("relaunches as a fresh run without re-admitting the user", func() {
		shortRun := newShortRun(0)

		retryRunID, retried, err := launch.RetryForGPUShortage(shortRun)
		Expect(err).ToNot(HaveOccurred())
		Expect(retried).To(BeTrue())
		Expect(retryRunID).ToNot(BeEmpty())
		Expect(retryRunID).ToNot(Equal("run-short"))

		Expect(fakeGuard.EnforceMinimumCallCount()).To(Equal(0))

		Expect(fakeRuns.CreateRunCallCount()).To(Equal(1))
		spec := fakeRuns.CreateRunArgsForCall(0)
		Expect(spec.ID).To(Equal(retryRunID))
		Expect(spec.RestartCount).To(Equal(1))

		// the retry keeps the original GPU type at the head of the list
		Eventually(fakeProvider.CreatePodCallCount).Should(Equal(1))
		_, podSpec := fakeProvider.CreatePodArgsForCall(0)
		Expect(podSpec.GPUPreferences[0]).To(Equal("NVIDIA L40S"))

		// the original run's audit trail records the relaunch
		Expect(shortRun.SaveEventCallCount()).To(Equal(1))
		saved := shortRun.SaveEventArgsForCall(0)
		Expect(saved).To(Equal(event.GPUShortageRetry{RetryRunID: retryRunID, Attempt: 1}))
	})

	It("declines once the restart budget is spent", func() {
		shortRun := newShortRun(3)

		_, retried, err := launch.RetryForGPUShortage(shortRun)
		Expect(err).ToNot(HaveOccurred())
		Expect(retried).To(BeFalse())
		Expect(fakeRuns.CreateRunCallCount()).To(Equal(0))
	})
})

var _ = Describe("ExhaustedShortageMessage", func() {
	It("appends the spent restart budget", func() {
		Expect(launcher.ExhaustedShortageMessage("no A40 capacity", 3)).
			To(Equal("no A40 capacity (after 3 restart attempt(s))"))
	})

	It("falls back to a generic message", func() {
		Expect(launcher.ExhaustedShortageMessage("", 2)).
			To(Equal("no GPUs available (after 2 restart attempt(s))"))
	})
})

var _ = Describe("RetryGPUPreferences", func() {
	It("keeps a supported original type at the head without duplicating it", func() {
		prefs := rp.RetryGPUPreferences("NVIDIA L40S", rp.SupportedGPUTypes)
		Expect(prefs[0]).To(Equal("NVIDIA L40S"))
		Expect(prefs).To(HaveLen(len(rp.SupportedGPUTypes)))
		Expect(prefs).To(ConsistOf(rp.SupportedGPUTypes))
	})

	It("prepends an unsupported original type", func() {
		prefs := rp.RetryGPUPreferences("NVIDIA B200", rp.SupportedGPUTypes)
		Expect(prefs[0]).To(Equal("NVIDIA B200"))
		Expect(prefs).To(HaveLen(len(rp.SupportedGPUTypes) + 1))
	})

	It("returns the supported list unchanged when no original type is known", func() {
		Expect(rp.RetryGPUPreferences("", rp.SupportedGPUTypes)).To(Equal(rp.SupportedGPUTypes))
	})
})
