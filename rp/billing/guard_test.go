package billing_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/billing"
	"github.com/ae-scientist/tower/rp/db/dbfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Guard", func() {
	var (
		fakeLedger *dbfakes.FakeCreditLedger
		pricing    rp.PricingTable
		guard      billing.Guard
	)

	BeforeEach(func() {
		fakeLedger = new(dbfakes.FakeCreditLedger)
		pricing = rp.PricingTable{
			"openai:gpt-5": {
				InputPerMTok:       1.25,
				CachedInputPerMTok: 0.125,
				OutputPerMTok:      10,
			},
		}
		guard = billing.NewGuard(lagertest.NewTestLogger("test"), fakeLedger, pricing)
	})

	Describe("EnforceMinimum", func() {
		It("admits a balance at or above the threshold", func() {
			fakeLedger.BalanceReturns(1.0, nil)
			Expect(guard.EnforceMinimum("user-1", 1.0, "research_run")).To(Succeed())
		})

		It("denies a balance below the threshold", func() {
			fakeLedger.BalanceReturns(0.2, nil)

			err := guard.EnforceMinimum("user-1", 1.0, "research_run")

			var denied billing.ErrInsufficientCredits
			Expect(errors.As(err, &denied)).To(BeTrue())
			Expect(denied.Action).To(Equal("research_run"))
			Expect(denied.Required).To(Equal(1.0))
			Expect(denied.Balance).To(Equal(0.2))
			Expect(denied.Error()).To(ContainSubstring("insufficient credits"))
		})

		It("propagates a ledger failure", func() {
			fakeLedger.BalanceReturns(0, errors.New("connection reset"))

			err := guard.EnforceMinimum("user-1", 1.0, "research_run")
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
			Expect(errors.As(err, &billing.ErrInsufficientCredits{})).To(BeFalse())
		})
	})

	Describe("ChargeForLLMUsage", func() {
		usage := func() billing.LLMUsage {
			return billing.LLMUsage{
				UserID:            "user-1",
				ConversationID:    "conv-1",
				RunID:             "run-1",
				Provider:          "openai",
				Model:             "gpt-5",
				InputTokens:       2_000_000,
				CachedInputTokens: 1_000_000,
				OutputTokens:      100_000,
				Description:       "research pipeline LLM usage",
			}
		}

		It("debits the cached-aware cost with full usage metadata", func() {
			Expect(guard.ChargeForLLMUsage(usage())).To(Succeed())

			Expect(fakeLedger.DebitCallCount()).To(Equal(1))
			userID, amount, action, description, metadata := fakeLedger.DebitArgsForCall(0)
			Expect(userID).To(Equal("user-1"))
			// 1M fresh at 1.25 + 1M cached at 0.125 + 0.1M out at 10
			Expect(amount).To(BeNumerically("~", 2.375, 1e-9))
			Expect(action).To(Equal("llm_usage"))
			Expect(description).To(Equal("research pipeline LLM usage"))
			Expect(metadata).To(HaveKeyWithValue("run_id", "run-1"))
			Expect(metadata).To(HaveKeyWithValue("model", "gpt-5"))
		})

		It("skips the debit when the model has no pricing", func() {
			u := usage()
			u.Model = "gpt-unpriced"

			Expect(guard.ChargeForLLMUsage(u)).To(Succeed())
			Expect(fakeLedger.DebitCallCount()).To(Equal(0))
		})

		It("skips the debit when the cost rounds to zero", func() {
			u := usage()
			u.InputTokens = 0
			u.CachedInputTokens = 0
			u.OutputTokens = 0

			Expect(guard.ChargeForLLMUsage(u)).To(Succeed())
			Expect(fakeLedger.DebitCallCount()).To(Equal(0))
		})

		It("omits run metadata for conversation-only usage", func() {
			u := usage()
			u.RunID = ""

			Expect(guard.ChargeForLLMUsage(u)).To(Succeed())
			_, _, _, _, metadata := fakeLedger.DebitArgsForCall(0)
			Expect(metadata).ToNot(HaveKey("run_id"))
		})
	})

	Describe("ChargeFixed", func() {
		It("debits the flat amount", func() {
			err := guard.ChargeFixed("user-1", 5, "research_run", "run launch", map[string]any{"run_id": "run-1"})
			Expect(err).To(Succeed())

			userID, amount, action, _, _ := fakeLedger.DebitArgsForCall(0)
			Expect(userID).To(Equal("user-1"))
			Expect(amount).To(Equal(5.0))
			Expect(action).To(Equal("research_run"))
		})
	})
})
