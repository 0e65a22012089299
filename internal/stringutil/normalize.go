package stringutil

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Normalize coerces a cell value to text and strips every whitespace rune,
// including the non-breaking space (U+00A0) and the ideographic space (U+3000).
// It never fails and Normalize(Normalize(v)) == Normalize(v).
func Normalize(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		s = fmt.Sprint(x)
	case float32:
		if math.IsNaN(float64(x)) {
			return ""
		}
		s = fmt.Sprint(x)
	default:
		s = fmt.Sprint(x)
	}

	return strings.Map(func(r rune) rune {
		if r == '\u00a0' || r == '\u3000' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SplitTokens normalizes s and splits it on commas, dropping empty tokens.
// "월, 수,," yields ["월", "수"].
func SplitTokens(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	parts := strings.Split(n, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
