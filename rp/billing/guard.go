package billing

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db"
)

// ErrInsufficientCredits is returned by EnforceMinimum when a user's
// balance is below the admission threshold for an action.
type ErrInsufficientCredits struct {
	Action   string
	Required float64
	Balance  float64
}

func (e ErrInsufficientCredits) Error() string {
	return fmt.Sprintf(
		"insufficient credits for %s: need %.2f, have %.2f",
		e.Action, e.Required, e.Balance,
	)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Guard

// Guard is the billing admission and accrual surface. Admission is
// synchronous and only at defined entry points; accrual debits never fail
// a caller on balance.
type Guard interface {
	EnforceMinimum(userID string, requiredCredits float64, action string) error
	ChargeFixed(userID string, amount float64, action, description string, metadata map[string]any) error
	ChargeForLLMUsage(usage LLMUsage) error
}

// LLMUsage carries one token-usage record for post-hoc cost accrual.
type LLMUsage struct {
	UserID            string
	ConversationID    string
	RunID             string
	Provider          string
	Model             string
	InputTokens       int64
	CachedInputTokens int64
	OutputTokens      int64
	Description       string
}

type guard struct {
	logger  lager.Logger
	ledger  db.CreditLedger
	pricing rp.PricingTable
}

func NewGuard(logger lager.Logger, ledger db.CreditLedger, pricing rp.PricingTable) Guard {
	return &guard{
		logger:  logger,
		ledger:  ledger,
		pricing: pricing,
	}
}

func (g *guard) EnforceMinimum(userID string, requiredCredits float64, action string) error {
	balance, err := g.ledger.Balance(userID)
	if err != nil {
		return fmt.Errorf("look up balance: %w", err)
	}

	if balance < requiredCredits {
		return ErrInsufficientCredits{
			Action:   action,
			Required: requiredCredits,
			Balance:  balance,
		}
	}

	return nil
}

func (g *guard) ChargeFixed(userID string, amount float64, action, description string, metadata map[string]any) error {
	return g.ledger.Debit(userID, amount, action, description, metadata)
}

func (g *guard) ChargeForLLMUsage(usage LLMUsage) error {
	pricing, found := g.pricing.Lookup(usage.Provider, usage.Model)
	if !found {
		// Missing pricing skips the debit rather than blocking ingest.
		g.logger.Info("no-pricing-for-model", lager.Data{
			"provider": usage.Provider,
			"model":    usage.Model,
		})
		return nil
	}

	cost := pricing.Cost(usage.InputTokens, usage.CachedInputTokens, usage.OutputTokens)
	if cost == 0 {
		return nil
	}

	metadata := map[string]any{
		"conversation_id":     usage.ConversationID,
		"provider":            usage.Provider,
		"model":               usage.Model,
		"input_tokens":        usage.InputTokens,
		"cached_input_tokens": usage.CachedInputTokens,
		"output_tokens":       usage.OutputTokens,
	}
	if usage.RunID != "" {
		metadata["run_id"] = usage.RunID
	}

	return g.ledger.Debit(usage.UserID, cost, "llm_usage", usage.Description, metadata)
}
