package rp

import "strings"

// ModelPricing holds per-million-token USD rates for one LLM model. Cached
// input tokens are priced separately from fresh input tokens.
type ModelPricing struct {
	InputPerMTok       float64 `json:"input_per_mtok"`
	CachedInputPerMTok float64 `json:"cached_input_per_mtok"`
	OutputPerMTok      float64 `json:"output_per_mtok"`
}

// PricingTable maps "provider:model" to rates. The table contents are
// operator input; missing entries skip billing rather than failing ingest.
type PricingTable map[string]ModelPricing

func (t PricingTable) Lookup(provider, model string) (ModelPricing, bool) {
	p, ok := t[provider+":"+model]
	return p, ok
}

// Cost computes the USD cost of a usage record against this pricing entry.
func (p ModelPricing) Cost(inputTokens, cachedInputTokens, outputTokens int64) float64 {
	fresh := inputTokens - cachedInputTokens
	if fresh < 0 {
		fresh = 0
	}
	return float64(fresh)*p.InputPerMTok/1e6 +
		float64(cachedInputTokens)*p.CachedInputPerMTok/1e6 +
		float64(outputTokens)*p.OutputPerMTok/1e6
}

// SplitModelRef splits a "provider:model-id" reference. A reference without
// a provider prefix is attributed to the "unknown" provider.
func SplitModelRef(ref string) (provider, model string) {
	provider, model, found := strings.Cut(ref, ":")
	if !found {
		return "unknown", ref
	}
	return provider, model
}
