package schedule

import (
	"strconv"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/stringutil"
)

// Kind classifies a periods field.
type Kind int

const (
	// Numeric specs list bare period numbers ("1,2,3") that apply to every
	// attended weekday.
	Numeric Kind = iota
	// DayQualified specs pair each period with a weekday ("월1,수2").
	DayQualified
)

func (k Kind) String() string {
	if k == DayQualified {
		return "day-qualified"
	}
	return "numeric"
}

// Classify returns DayQualified when the normalized period field contains any weekday
// marker and Numeric otherwise.
func Classify(periods string) Kind {
	s := stringutil.Normalize(periods)
	for _, g := range Weekdays {
		if strings.Contains(s, g) {
			return DayQualified
		}
	}
	return Numeric
}

// PeriodNumbers extracts every maximal digit run from the normalized period field,
// treating any other rune as a separator. Zero and runs that overflow an int
// are dropped.
func PeriodNumbers(periods string) []int {
	s := stringutil.Normalize(periods)
	var nums []int
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if n, err := strconv.Atoi(s[start:end]); err == nil && n > 0 {
			nums = append(nums, n)
		}
		start = -1
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))
	return nums
}

// AttendsOn reports whether weekday is one whole comma-separated token of the
// days field. "월" never matches inside a longer token such as "월수".
func AttendsOn(days, weekday string) bool {
	for _, d := range stringutil.SplitTokens(days) {
		if d == weekday {
			return true
		}
	}
	return false
}

// Matches decides whether a student with the given days and periods fields
// attends the queried weekday and period. Empty or malformed fields never
// match.
func Matches(days, periods, weekday string, period int) bool {
	if period <= 0 || !AttendsOn(days, weekday) {
		return false
	}
	if stringutil.Normalize(periods) == "" {
		return false
	}

	if Classify(periods) == DayQualified {
		want := weekday + strconv.Itoa(period)
		for _, tok := range stringutil.SplitTokens(periods) {
			if tok == want {
				return true
			}
		}
		return false
	}

	for _, n := range PeriodNumbers(periods) {
		if n == period {
			return true
		}
	}
	return false
}
