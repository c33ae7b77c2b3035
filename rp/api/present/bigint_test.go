package present_test

import (
	"encoding/json"

	"github.com/ae-scientist/tower/rp/api/present"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sanitized", func() {
	sanitize := func(v any) string {
		raw, err := present.Sanitized(v)
		Expect(err).ToNot(HaveOccurred())
		return string(raw)
	}

	It("passes ordinary payloads through unchanged", func() {
		Expect(sanitize(map[string]any{"count": 42, "name": "stage"})).
			To(MatchJSON(`{"count": 42, "name": "stage"}`))
	})

	It("stringifies integers a double-backed consumer would corrupt", func() {
		Expect(sanitize(map[string]any{"id": int64(9007199254740993)})).
			To(MatchJSON(`{"id": "9007199254740993"}`))
	})

	It("keeps the largest safe integer's neighbours numeric", func() {
		Expect(sanitize(map[string]any{"id": int64(9007199254740991)})).
			To(MatchJSON(`{"id": 9007199254740991}`))
	})

	It("recurses through nested objects and arrays", func() {
		payload := map[string]any{
			"nodes": []any{
				map[string]any{"metric": int64(1) << 60},
				map[string]any{"metric": 7},
			},
		}
		Expect(sanitize(payload)).To(MatchJSON(`{
			"nodes": [
				{"metric": "1152921504606846976"},
				{"metric": 7}
			]
		}`))
	})

	It("leaves fractional numbers alone", func() {
		Expect(sanitize(map[string]any{"score": 0.9182736455463728})).
			To(MatchJSON(`{"score": 0.9182736455463728}`))
	})

	It("handles opaque pre-encoded payloads", func() {
		Expect(sanitize(json.RawMessage(`{"deep": {"big": 18446744073709551615}}`))).
			To(MatchJSON(`{"deep": {"big": "18446744073709551615"}}`))
	})
})
