package runserver

import (
	"time"

	"github.com/ae-scientist/tower/rp/db/dbfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("costTracker", func() {
	var (
		server  *Server
		started time.Time
	)

	BeforeEach(func() {
		server = &Server{}
		started = time.Date(2025, 6, 3, 5, 0, 0, 0, time.UTC)
	})

	newTracker := func(costPerHour float64, startedAt time.Time) *costTracker {
		run := new(dbfakes.FakeRun)
		run.CostPerHourReturns(costPerHour)
		run.StartedRunningAtReturns(startedAt)
		return server.newCostTracker(run)
	}

	It("yields no estimate before the run starts running", func() {
		tracker := newTracker(2.50, time.Time{})
		Expect(tracker.estimate(started)).To(BeNil())
	})

	It("accrues cost from the running transition", func() {
		tracker := newTracker(2.50, started)

		est := tracker.estimate(started.Add(30 * time.Minute))
		Expect(est).ToNot(BeNil())
		Expect(est.HWCostPerHourCents).To(Equal(int64(250)))
		Expect(est.HWEstimatedCostCents).To(Equal(int64(125)))
		Expect(est.HWStartedRunningAt).To(Equal(started.Unix()))
	})

	It("caps elapsed time at the terminal transition", func() {
		tracker := newTracker(2.50, started)
		tracker.stop(started.Add(time.Hour).Unix())

		est := tracker.estimate(started.Add(3 * time.Hour))
		Expect(est.HWEstimatedCostCents).To(Equal(int64(250)))
	})

	It("keeps the earliest stop it observes", func() {
		tracker := newTracker(2.50, started)
		tracker.stop(started.Add(2 * time.Hour).Unix())
		tracker.stop(started.Add(time.Hour).Unix())

		est := tracker.estimate(started.Add(3 * time.Hour))
		Expect(est.HWEstimatedCostCents).To(Equal(int64(250)))
	})

	It("never reports negative elapsed time", func() {
		tracker := newTracker(2.50, started)

		est := tracker.estimate(started.Add(-time.Minute))
		Expect(est.HWEstimatedCostCents).To(Equal(int64(0)))
	})

	It("rounds the hourly rate to whole cents", func() {
		tracker := newTracker(0.79, started)

		est := tracker.estimate(started.Add(time.Hour))
		Expect(est.HWCostPerHourCents).To(Equal(int64(79)))
		Expect(est.HWEstimatedCostCents).To(Equal(int64(79)))
	})
})

var _ = Describe("actualCents", func() {
	It("rounds half up", func() {
		Expect(actualCents(0.125)).To(Equal(int64(13)))
		Expect(actualCents(0.124)).To(Equal(int64(12)))
		Expect(actualCents(1.25)).To(Equal(int64(125)))
		Expect(actualCents(0)).To(Equal(int64(0)))
	})
})
