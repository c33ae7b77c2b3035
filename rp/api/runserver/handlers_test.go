package runserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/launcher"
	"github.com/ae-scientist/tower/rp/podprovider"
	"github.com/ae-scientist/tower/rp/remoteshell"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func wireRun(id, userID string) db.Run {
	run := new(dbfakes.FakeRun)
	run.IDReturns(id)
	run.UserIDReturns(userID)
	run.ToWireReturns(rp.Run{ID: id, UserID: userID})
	return run
}

var _ = Describe("LaunchRunHandler", func() {
	launchPath := "/conversations/conv-1/idea/research-run"

	It("requires an authenticated user", func() {
		resp := doRequest("POST", launchPath, "", map[string]string{"idea_version_id": "iv-1"})
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a launch without an idea version", func() {
		resp := doRequest("POST", launchPath, "user-1", map[string]string{})
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("maps an admission denial to 402", func() {
		fakeGuard.EnforceMinimumReturns(billing.ErrInsufficientCredits{
			Action: "research_run", Required: 1, Balance: 0.2,
		})

		resp := doRequest("POST", launchPath, "user-1", map[string]string{"idea_version_id": "iv-1"})
		Expect(resp.StatusCode).To(Equal(http.StatusPaymentRequired))

		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(body["error"]).ToNot(BeEmpty())
	})

	It("creates a run scoped to the conversation in the path", func() {
		resp := doRequest("POST", launchPath, "user-1", map[string]string{"idea_version_id": "iv-1"})
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))

		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(body["run_id"]).ToNot(BeEmpty())

		Expect(fakeRuns.CreateRunCallCount()).To(Equal(1))
		spec := fakeRuns.CreateRunArgsForCall(0)
		Expect(spec.ID).To(Equal(body["run_id"]))
		Expect(spec.UserID).To(Equal("user-1"))
		Expect(spec.ConversationID).To(Equal("conv-1"))
	})

	It("falls back to the supported GPU list when the caller names none", func() {
		resp := doRequest("POST", launchPath, "user-1", map[string]string{"idea_version_id": "iv-1"})
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))

		Eventually(fakeProvider.CreatePodCallCount).Should(Equal(1))
		_, podSpec := fakeProvider.CreatePodArgsForCall(0)
		Expect(podSpec.GPUPreferences).To(Equal(rp.SupportedGPUTypes))
	})
})

var _ = Describe("ListRunsHandler", func() {
	listPath := "/conversations/conv-1/idea/research-runs"

	It("requires an authenticated user", func() {
		resp := doRequest("GET", listPath, "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("returns only the caller's runs", func() {
		fakeRuns.RunsForConversationReturns([]db.Run{
			wireRun("run-mine", "user-1"),
			wireRun("run-theirs", "user-2"),
		}, nil)

		resp := doRequest("GET", listPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var runs []rp.Run
		Expect(json.NewDecoder(resp.Body).Decode(&runs)).To(Succeed())
		Expect(runs).To(HaveLen(1))
		Expect(runs[0].ID).To(Equal("run-mine"))

		Expect(fakeRuns.RunsForConversationCallCount()).To(Equal(1))
		Expect(fakeRuns.RunsForConversationArgsForCall(0)).To(Equal("conv-1"))
	})

	It("returns an empty array rather than null for no runs", func() {
		fakeRuns.RunsForConversationReturns(nil, nil)

		resp := doRequest("GET", listPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var raw json.RawMessage
		Expect(json.NewDecoder(resp.Body).Decode(&raw)).To(Succeed())
		Expect(string(raw)).To(Equal("[]"))
	})
})

var _ = Describe("StopRunHandler", func() {
	stopPath := "/conversations/conv-1/idea/research-run/run-1/stop"

	It("rejects a caller who does not own the run", func() {
		resp := doRequest("POST", stopPath, "user-2", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
	})

	It("404s an unknown run", func() {
		fakeRuns.GetRunReturns(nil, false, nil)
		resp := doRequest("POST", stopPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("conflicts when the run is already terminal", func() {
		fakeRun.StatusReturns(rp.RunStatusCompleted)

		resp := doRequest("POST", stopPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusConflict))
		Expect(fakeRun.FinishCallCount()).To(Equal(0))
	})

	It("finishes a running run and queues cleanup", func() {
		resp := doRequest("POST", stopPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusAccepted))

		Expect(fakeRun.FinishCallCount()).To(Equal(1))
		to, trigger, message := fakeRun.FinishArgsForCall(0)
		Expect(to).To(Equal(rp.RunStatusFailed))
		Expect(trigger).To(Equal(rp.TerminationTriggerUserStop))
		Expect(message).To(Equal("stopped by user"))

		Expect(fakeTerminations.EnqueueCallCount()).To(Equal(1))
		runID, enqTrigger := fakeTerminations.EnqueueArgsForCall(0)
		Expect(runID).To(Equal("run-1"))
		Expect(enqTrigger).To(Equal(rp.TerminationTriggerUserStop))
		Expect(waker.Count()).To(Equal(1))
	})

	It("hands the stop to the provisioning task when one is in flight", func() {
		fakeRun.StatusReturns(rp.RunStatusPending)
		fakeProvider.CreatePodStub = func(ctx context.Context, spec podprovider.PodSpec) (podprovider.Pod, error) {
			<-ctx.Done()
			return podprovider.Pod{ID: "pod-1"}, nil
		}

		runID, err := launch.Submit(launcher.SubmitRequest{
			IdeaVersionID:  "iv-1",
			UserID:         "user-1",
			ConversationID: "conv-1",
		})
		Expect(err).ToNot(HaveOccurred())

		resp := doRequest("POST", "/conversations/conv-1/idea/research-run/"+runID+"/stop", "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusAccepted))

		// the cancelled task owns pod cleanup; the handler enqueues nothing
		Expect(fakeTerminations.EnqueueCallCount()).To(Equal(0))
		Eventually(fakeProvider.DeletePodCallCount).Should(Equal(1))
	})
})

var _ = Describe("SkipStageHandler", func() {
	skipPath := "/conversations/conv-1/idea/research-run/run-1/skip-stage"

	BeforeEach(func() {
		fakeRun.PublicIPReturns("203.0.113.7")
		fakeRun.SSHPortReturns(22022)
	})

	It("conflicts before the pod has connection details", func() {
		fakeRun.PublicIPReturns("")

		resp := doRequest("POST", skipPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusConflict))
		Expect(fakeShell.RequestSkipStageCallCount()).To(Equal(0))
	})

	It("forwards the skip to the pod's control server", func() {
		fakeShell.RequestSkipStageReturns(remoteshell.SkipStageAccepted, nil)

		resp := doRequest("POST", skipPath, "user-1", map[string]string{"reason": "stage stuck"})
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		Expect(fakeShell.RequestSkipStageCallCount()).To(Equal(1))
		_, host, port, reason := fakeShell.RequestSkipStageArgsForCall(0)
		Expect(host).To(Equal("203.0.113.7"))
		Expect(port).To(Equal(22022))
		Expect(reason).To(Equal("stage stuck"))
	})

	It("maps a closed skip window to 409", func() {
		fakeShell.RequestSkipStageReturns(remoteshell.SkipStageConflict, nil)

		resp := doRequest("POST", skipPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusConflict))
	})

	It("maps an unknown stage to 404", func() {
		fakeShell.RequestSkipStageReturns(remoteshell.SkipStageNotFound, nil)

		resp := doRequest("POST", skipPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("surfaces a pod connection failure as a bad gateway", func() {
		fakeShell.RequestSkipStageReturns("", errors.New("dial tcp: connection refused"))

		resp := doRequest("POST", skipPath, "user-1", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))
	})
})
