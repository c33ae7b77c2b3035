package runserver

import (
	"encoding/json"

	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db/dbfakes"
	"github.com/ae-scientist/tower/rp/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("latestBillingSummary", func() {
	var billedRun *dbfakes.FakeRun

	BeforeEach(func() {
		billedRun = new(dbfakes.FakeRun)
	})

	It("loads the recorded summary by event type rather than scanning history", func() {
		metadata, err := json.Marshal(event.PodBillingSummary{
			AmountUSD:    1.25,
			TimeBilledMS: 3600000,
		})
		Expect(err).ToNot(HaveOccurred())

		billedRun.LatestEventReturns(rp.RunEventRow{
			EventType: string(event.TypePodBillingSummary),
			Metadata:  metadata,
		}, true, nil)

		summary, err := latestBillingSummary(billedRun)
		Expect(err).ToNot(HaveOccurred())
		Expect(summary).ToNot(BeNil())
		Expect(summary.AmountUSD).To(Equal(1.25))
		Expect(summary.TimeBilledMS).To(Equal(int64(3600000)))

		Expect(billedRun.LatestEventCallCount()).To(Equal(1))
		Expect(billedRun.LatestEventArgsForCall(0)).To(Equal(string(event.TypePodBillingSummary)))
	})

	It("returns nil when no summary was recorded", func() {
		summary, err := latestBillingSummary(billedRun)
		Expect(err).ToNot(HaveOccurred())
		Expect(summary).To(BeNil())
	})

	It("rejects a summary it cannot decode", func() {
		billedRun.LatestEventReturns(rp.RunEventRow{
			EventType: string(event.TypePodBillingSummary),
			Metadata:  json.RawMessage(`{`),
		}, true, nil)

		_, err := latestBillingSummary(billedRun)
		Expect(err).To(HaveOccurred())
	})
})
