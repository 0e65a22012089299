package schedule

import (
	"fmt"
	"strconv"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/stringutil"
)

// ParsePeriodList parses a user-supplied period list such as "1,2,3".
// Unlike a student's periods field, every token must be a positive number.
func ParsePeriodList(s string) ([]int, error) {
	tokens := stringutil.SplitTokens(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty period list")
	}
	periods := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid period %q (expected a positive number)", tok)
		}
		periods = append(periods, n)
	}
	return periods, nil
}

// ParseWeekdayList parses a comma-separated list of weekday markers.
func ParseWeekdayList(s string) ([]string, error) {
	tokens := stringutil.SplitTokens(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty weekday list")
	}
	for _, tok := range tokens {
		if !IsWeekday(tok) {
			return nil, fmt.Errorf("invalid weekday %q (expected one of 월화수목금토일)", tok)
		}
	}
	return tokens, nil
}
