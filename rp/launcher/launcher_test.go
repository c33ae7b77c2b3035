package launcher_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"time"

	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/podprovider"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Launcher", func() {
	submit := func() string {
		runID, err := launch.Submit(launcher.SubmitRequest{
			IdeaVersionID:  "iv-1",
			UserID:         "user-1",
			ConversationID: "conv-1",
			RequesterName:  "Sam",
			GPUPreferences: rp.SupportedGPUTypes,
		})
		Expect(err).ToNot(HaveOccurred())
		return runID
	}

	Describe("Submit", func() {
		It("admits against the minimum balance before creating anything", func() {
			fakeGuard.EnforceMinimumReturns(billing.ErrInsufficientCredits{Action: "research_run", Required: 1, Balance: 0.2})

			_, err := launch.Submit(launcher.SubmitRequest{IdeaVersionID: "iv-1", UserID: "user-1"})
			Expect(errors.As(err, &billing.ErrInsufficientCredits{})).To(BeTrue())
			Expect(fakeRuns.CreateRunCallCount()).To(Equal(0))
		})

		It("rejects an unknown idea version", func() {
			fakeIdeas.GetIdeaVersionReturns(db.IdeaVersion{}, false, nil)

			_, err := launch.Submit(launcher.SubmitRequest{IdeaVersionID: "iv-missing", UserID: "user-1"})
			Expect(err).To(MatchError(ContainSubstring("not found")))
		})

		It("seeds the run with a hashed credential and a start deadline", func() {
			runID := submit()

			Expect(fakeRuns.CreateRunCallCount()).To(Equal(1))
			spec := fakeRuns.CreateRunArgsForCall(0)
			Expect(spec.ID).To(Equal(runID))
			Expect(spec.UserID).To(Equal("user-1"))
			Expect(spec.ConversationID).To(Equal("conv-1"))
			Expect(spec.StartDeadline).To(Equal(fakeClock.Now().Add(10 * time.Minute)))

			// the stored hash must never equal a raw token shape; it is a
			// sha-256 hex digest
			Expect(spec.WebhookTokenHash).To(HaveLen(64))

			// the raw token appears only in the pod's startup environment,
			// and its digest matches what was stored
			Eventually(fakeProvider.CreatePodCallCount).Should(Equal(1))
			_, podSpec := fakeProvider.CreatePodArgsForCall(0)

			match := regexp.MustCompile(`RP_WEBHOOK_TOKEN=(\w+)`).FindStringSubmatch(podSpec.StartupCommand)
			Expect(match).To(HaveLen(2))
			Expect(match[1]).ToNot(Equal(spec.WebhookTokenHash))

			sum := sha256.Sum256([]byte(match[1]))
			Expect(hex.EncodeToString(sum[:])).To(Equal(spec.WebhookTokenHash))
		})

		It("renders the startup script with the run's webhook URL and idea payload", func() {
			runID := submit()

			Eventually(fakeProvider.CreatePodCallCount).Should(Equal(1))
			_, podSpec := fakeProvider.CreatePodArgsForCall(0)

			Expect(podSpec.Image).To(Equal("registry.example.com/rp:latest"))
			Expect(podSpec.GPUPreferences).To(Equal(rp.SupportedGPUTypes))
			Expect(podSpec.ContainerDiskGB).To(Equal(40))
			Expect(podSpec.VolumeDiskGB).To(Equal(500))

			Expect(podSpec.StartupCommand).To(ContainSubstring("set -euo pipefail"))
			Expect(podSpec.StartupCommand).To(ContainSubstring("https://tower.example.com/webhooks/rp/" + runID))
			Expect(podSpec.StartupCommand).To(ContainSubstring("base64 -d > /workspace/idea.json"))
			Expect(podSpec.StartupCommand).To(ContainSubstring("research_pipeline.run"))
		})

		It("records pod identity and connection details as they arrive", func() {
			submit()

			Eventually(fakeRun.SetPodIdentityCallCount).Should(Equal(1))
			podID, podName, gpuType, costPerHour := fakeRun.SetPodIdentityArgsForCall(0)
			Expect(podID).To(Equal("pod-1"))
			Expect(podName).To(Equal("rp-pod"))
			Expect(gpuType).To(Equal("NVIDIA A40"))
			Expect(costPerHour).To(Equal(0.79))

			Eventually(fakeRun.SetPodConnectionCallCount).Should(Equal(1))
			publicIP, sshPort, podHostID := fakeRun.SetPodConnectionArgsForCall(0)
			Expect(publicIP).To(Equal("203.0.113.7"))
			Expect(sshPort).To(Equal(22022))
			Expect(podHostID).To(Equal("host-1"))

			// provisioning never flips the run to running
			Expect(fakeRun.StartedCallCount()).To(Equal(0))
		})

		It("fails the run when pod creation errors", func() {
			fakeProvider.CreatePodReturns(podprovider.Pod{}, errors.New("quota exceeded"))

			submit()

			Eventually(fakeRun.FinishCallCount).Should(Equal(1))
			to, reason, message := fakeRun.FinishArgsForCall(0)
			Expect(to).To(Equal(rp.RunStatusFailed))
			Expect(reason).To(Equal(rp.FailureReasonLaunchError))
			Expect(message).To(ContainSubstring("quota exceeded"))
		})

		It("leaves the run pending when the pod never reports ready", func() {
			fakeProvider.WaitForPodReadyReturns(podprovider.Endpoint{}, errors.New("deadline passed"))

			submit()

			Eventually(fakeRun.SetPodIdentityCallCount).Should(Equal(1))
			Consistently(fakeRun.FinishCallCount).Should(Equal(0))
			Expect(fakeRun.SetPodConnectionCallCount()).To(Equal(0))
		})
	})

	Describe("StopProvisioning", func() {
		It("reports false when no provisioning task is in flight", func() {
			Expect(launch.StopProvisioning("run-unknown")).To(BeFalse())
		})

		It("cancels an in-flight task, which releases its pod and fails the run", func() {
			fakeProvider.CreatePodStub = func(ctx context.Context, spec podprovider.PodSpec) (podprovider.Pod, error) {
				<-ctx.Done()
				return podprovider.Pod{ID: "pod-1"}, nil
			}

			runID := submit()

			Eventually(func() bool { return launch.StopProvisioning(runID) }).Should(BeTrue())

			Eventually(fakeProvider.DeletePodCallCount).Should(Equal(1))
			_, podID := fakeProvider.DeletePodArgsForCall(0)
			Expect(podID).To(Equal("pod-1"))

			Eventually(fakeRun.FinishCallCount).Should(Equal(1))
			to, reason, _ := fakeRun.FinishArgsForCall(0)
			Expect(to).To(Equal(rp.RunStatusFailed))
			Expect(reason).To(Equal(rp.TerminationTriggerUserStop))

			// the task deregisters itself once done
			Eventually(func() bool { return launch.StopProvisioning(runID) }).Should(BeFalse())
		})
	})
})
