package present

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// maxSafeInteger is the largest integer a double-backed JSON consumer can
// hold exactly. Anything bigger is transported as a string.
const maxSafeInteger = float64(1 << 53)

// Sanitized marshals v with oversized integers stringified. Opaque pipeline
// payloads (summaries, tree viz) can carry integers beyond what permissive
// clients parse losslessly, so those are rewritten on the way out.
func Sanitized(v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, err
	}

	return json.Marshal(sanitize(decoded))
}

func sanitize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, elem := range val {
			val[k] = sanitize(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = sanitize(elem)
		}
		return val
	case json.Number:
		return sanitizeNumber(val)
	default:
		return v
	}
}

func sanitizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		if math.Abs(float64(i)) >= maxSafeInteger {
			return strconv.FormatInt(i, 10)
		}
		return n
	}

	// Out of int64 range entirely; the textual form is already exact.
	if _, err := n.Float64(); err == nil {
		if looksIntegral(n.String()) {
			return n.String()
		}
	}
	return n
}

func looksIntegral(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return false
		}
	}
	return true
}
