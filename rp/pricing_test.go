package rp_test

import (
	"github.com/ae-scientist/tower/rp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PricingTable", func() {
	table := rp.PricingTable{
		"openai:gpt-5":              {InputPerMTok: 1.25, CachedInputPerMTok: 0.125, OutputPerMTok: 10},
		"anthropic:claude-sonnet-4": {InputPerMTok: 3, OutputPerMTok: 15},
	}

	It("looks up rates by provider and model", func() {
		pricing, found := table.Lookup("openai", "gpt-5")
		Expect(found).To(BeTrue())
		Expect(pricing.OutputPerMTok).To(Equal(10.0))

		_, found = table.Lookup("openai", "gpt-unknown")
		Expect(found).To(BeFalse())
	})

	Describe("Cost", func() {
		pricing := rp.ModelPricing{InputPerMTok: 1.25, CachedInputPerMTok: 0.125, OutputPerMTok: 10}

		It("prices cached input separately from fresh input", func() {
			cost := pricing.Cost(2_000_000, 1_000_000, 100_000)
			Expect(cost).To(BeNumerically("~", 1.25+0.125+1.0, 1e-9))
		})

		It("never prices negative fresh input", func() {
			// some providers report cached tokens outside the input count
			cost := pricing.Cost(100, 200, 0)
			Expect(cost).To(BeNumerically("~", float64(200)*0.125/1e6, 1e-12))
		})
	})
})

var _ = Describe("SplitModelRef", func() {
	It("splits a provider-qualified reference", func() {
		provider, model := rp.SplitModelRef("openai:gpt-5")
		Expect(provider).To(Equal("openai"))
		Expect(model).To(Equal("gpt-5"))
	})

	It("attributes an unqualified reference to the unknown provider", func() {
		provider, model := rp.SplitModelRef("gpt-5")
		Expect(provider).To(Equal("unknown"))
		Expect(model).To(Equal("gpt-5"))
	})
})

var _ = Describe("RunStatus", func() {
	It("treats completed, failed, and cancelled as terminal", func() {
		Expect(rp.RunStatusCompleted.Terminal()).To(BeTrue())
		Expect(rp.RunStatusFailed.Terminal()).To(BeTrue())
		Expect(rp.RunStatusCancelled.Terminal()).To(BeTrue())
		Expect(rp.RunStatusPending.Terminal()).To(BeFalse())
		Expect(rp.RunStatusRunning.Terminal()).To(BeFalse())
	})
})
