package roster

import (
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/stringutil"
)

// Status is a student's enrollment state.
type Status int

const (
	Other Status = iota
	Enrolled
	Paused
)

// Status labels as they appear in the snapshot.
const (
	LabelEnrolled = "재원"
	LabelPaused   = "휴원"
)

// ParseStatus maps a normalized status label to a Status. Unknown labels are Other.
func ParseStatus(label string) Status {
	switch strings.ToLower(stringutil.Normalize(label)) {
	case LabelEnrolled, "enrolled":
		return Enrolled
	case LabelPaused, "paused":
		return Paused
	default:
		return Other
	}
}

func (s Status) String() string {
	switch s {
	case Enrolled:
		return "enrolled"
	case Paused:
		return "paused"
	default:
		return "other"
	}
}

// Level is the school level derived from a grade label.
type Level int

const (
	levelUnset Level = iota
	Elementary
	Middle
	High
	OtherLevel
)

func (l Level) String() string {
	switch l {
	case Elementary:
		return "elementary"
	case Middle:
		return "middle"
	case High:
		return "high"
	default:
		return "other"
	}
}

// ClassifyLevel derives the school level from the grade prefix
// ("초" elementary, "중" middle, "고" high).
func ClassifyLevel(grade string) Level {
	g := strings.TrimSpace(grade)
	switch {
	case strings.HasPrefix(g, "초"):
		return Elementary
	case strings.HasPrefix(g, "중"):
		return Middle
	case strings.HasPrefix(g, "고"):
		return High
	default:
		return OtherLevel
	}
}

// GradeOrder is the fixed display order of grade labels.
var GradeOrder = []string{"초1", "초2", "초3", "초4", "초5", "초6", "중1", "중2", "중3", "고1", "고2", "고3"}

var gradeRank = func() map[string]int {
	m := make(map[string]int, len(GradeOrder))
	for i, g := range GradeOrder {
		m[g] = i
	}
	return m
}()

// GradeRank returns the position of grade in GradeOrder, or len(GradeOrder)
// for labels outside the fixed set.
func GradeRank(grade string) int {
	if r, ok := gradeRank[strings.TrimSpace(grade)]; ok {
		return r
	}
	return len(GradeOrder)
}

// Student is one row of the roster snapshot.
type Student struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	School  string `json:"school"`
	Grade   string `json:"grade"`
	Days    string `json:"days"`
	Periods string `json:"periods"`
	Status  string `json:"status"`

	level Level // cached by NewStudent
}

// NewStudent builds a Student from raw cell values, trimming identity fields
// and normalizing the schedule and status fields.
func NewStudent(id, name, school, grade, days, periods, status string) Student {
	s := Student{
		ID:      strings.TrimSpace(id),
		Name:    strings.TrimSpace(name),
		School:  strings.TrimSpace(school),
		Grade:   strings.TrimSpace(grade),
		Days:    stringutil.Normalize(days),
		Periods: stringutil.Normalize(periods),
		Status:  stringutil.Normalize(status),
	}
	s.level = ClassifyLevel(s.Grade)
	return s
}

// Key returns the student's identity in the assignment ledger: the external
// id when present, otherwise name|school|grade.
func (s Student) Key() string {
	id := strings.TrimSpace(s.ID)
	if id != "" && !strings.EqualFold(id, "nan") {
		return "id:" + id
	}
	return "ng:" + strings.TrimSpace(s.Name) + "|" + strings.TrimSpace(s.School) + "|" + strings.TrimSpace(s.Grade)
}

// Level returns the school level of the student's grade. Records not built by
// NewStudent are classified on demand.
func (s Student) Level() Level {
	if s.level != levelUnset {
		return s.level
	}
	return ClassifyLevel(s.Grade)
}

// State returns the parsed enrollment status.
func (s Student) State() Status {
	return ParseStatus(s.Status)
}

// DayCount is the number of weekday tokens in the days field.
func (s Student) DayCount() int {
	return len(stringutil.SplitTokens(s.Days))
}

// AttendsOn reports whether the student comes in on weekday.
func (s Student) AttendsOn(weekday string) bool {
	return schedule.AttendsOn(s.Days, weekday)
}

// Attends reports whether the student is in the given weekday and period.
func (s Student) Attends(weekday string, period int) bool {
	return schedule.Matches(s.Days, s.Periods, weekday, period)
}
