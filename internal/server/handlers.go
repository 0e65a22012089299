package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/sheet"
)

// Assignment is one stored ledger cell as served by the API.
type Assignment struct {
	Period int    `json:"period"`
	Key    string `json:"key"`
	Name   string `json:"name,omitempty"`
	Letter string `json:"letter"`
}

type assignRequest struct {
	Value string `json:"value"`
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (s *Server) students(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	students := snap.Students
	if students == nil {
		students = []roster.Student{}
	}
	c.JSON(http.StatusOK, gin.H{"version": snap.Version, "students": students})
}

// importSnapshot replaces the served snapshot with an uploaded workbook or
// CSV for the rest of the process lifetime.
func (s *Server) importSnapshot(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload field 'file': " + err.Error()})
		return
	}
	defer func() { _ = file.Close() }()

	snap, err := sheet.Read(file, header.Filename, c.PostForm("sheet"))
	if err != nil {
		s.snapshotError(c, err)
		return
	}
	s.replaceSource(NewStaticSource(snap))
	slog.Info("snapshot imported", "file", header.Filename, "students", len(snap.Students), "version", snap.Version)

	c.JSON(http.StatusOK, gin.H{
		"message":  "import successful",
		"students": len(snap.Students),
		"version":  snap.Version,
	})
}

func (s *Server) report(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}

	kind := report.Kind(c.Param("kind"))
	if kind == report.KindDaily {
		s.daily(c, snap)
		return
	}

	build, key, err := s.reportBuilder(kind, c)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errUnknownReport) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if rep, hit := s.cache.get(snap.Version, key); hit {
		c.Header("X-Cache", "hit")
		c.JSON(http.StatusOK, rep)
		return
	}
	rep := build(snap.Students)
	rep.Version = snap.Version
	s.cache.put(snap.Version, key, rep)

	c.Header("X-Cache", "miss")
	c.JSON(http.StatusOK, rep)
}

var errUnknownReport = errors.New("unknown report")

// reportBuilder parses the query for kind and returns the builder plus the
// cache key of the parsed options.
func (s *Server) reportBuilder(kind report.Kind, c *gin.Context) (func([]roster.Student) report.Report, string, error) {
	switch kind {
	case report.KindStudents:
		return report.StudentListReport, string(kind), nil

	case report.KindGrades:
		var opts report.GradeOptions
		opts.Title = c.Query("title")
		if err := queryBools(c, map[string]*bool{"school": &opts.ShowSchool, "count": &opts.ShowCount, "all": &opts.AllStatuses}); err != nil {
			return nil, "", err
		}
		return func(st []roster.Student) report.Report { return report.GradeReport(st, opts) },
			fmt.Sprintf("%s|%+v", kind, opts), nil

	case report.KindMatrix:
		opts := report.MatrixOptions{Footer: c.Query("footer"), Weekdays: s.opts.Weekdays}
		if _, set := c.GetQuery("footer"); !set {
			opts.Footer = s.now().Format("2006-01")
		}
		if v := c.Query("weekdays"); v != "" {
			wds, err := schedule.ParseWeekdayList(v)
			if err != nil {
				return nil, "", err
			}
			opts.Weekdays = wds
		}
		if v := c.Query("periods"); v != "" {
			periods, err := schedule.ParsePeriodList(v)
			if err != nil {
				return nil, "", err
			}
			opts.Periods = periods
		}
		return func(st []roster.Student) report.Report { return report.MatrixReport(st, opts) },
			fmt.Sprintf("%s|%+v", kind, opts), nil

	case report.KindSchools:
		var opts report.SchoolOptions
		opts.Title = c.Query("title")
		if err := queryBools(c, map[string]*bool{"grade": &opts.ShowGrade, "all": &opts.AllStatuses}); err != nil {
			return nil, "", err
		}
		return func(st []roster.Student) report.Report { return report.SchoolReport(st, opts) },
			fmt.Sprintf("%s|%+v", kind, opts), nil
	}
	return nil, "", fmt.Errorf("%w %q", errUnknownReport, kind)
}

// daily is never cached: it reads the mutable ledger.
func (s *Server) daily(c *gin.Context, snap roster.Snapshot) {
	date, err := schedule.ParseDate(c.Query("date"), s.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opts := report.DailyOptions{Periods: s.opts.DailyPeriods}
	if err := queryBools(c, map[string]*bool{"paused": &opts.IncludePaused}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if v := c.Query("periods"); v != "" {
		if opts.Periods, err = schedule.ParsePeriodList(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	rep, err := report.DailyReport(c.Request.Context(), snap.Students, date, opts, s.ledger)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assignments"})
		return
	}
	rep.Version = snap.Version
	c.JSON(http.StatusOK, rep)
}

func (s *Server) assignments(c *gin.Context) {
	date, err := schedule.ParseDate(c.Param("date"), s.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dateKey := ledger.DateKey(date)

	day, err := s.ledger.Day(c.Request.Context(), dateKey)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assignments"})
		return
	}

	// names are best effort: a broken snapshot must not hide stored letters
	var students []roster.Student
	if snap, err := s.currentSource().Snapshot(); err == nil {
		students = snap.Students
	}

	out := make([]Assignment, 0, len(day))
	for cell, letter := range day {
		period, key, ok := ledger.SplitCellKey(cell)
		if !ok || letter == "" {
			continue
		}
		a := Assignment{Period: period, Key: key, Letter: letter}
		if st, found := roster.FindByKey(students, key); found {
			a.Name = st.Name
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].Key < out[j].Key
	})

	c.JSON(http.StatusOK, gin.H{"date": dateKey, "assignments": out})
}

func (s *Server) setAssignment(c *gin.Context) {
	date, err := schedule.ParseDate(c.Param("date"), s.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	period, err := strconv.Atoi(c.Param("period"))
	if err != nil || period <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid period %q", c.Param("period"))})
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if _, found := roster.FindByKey(snap.Students, key); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("student %q not found", key)})
		return
	}

	dateKey := ledger.DateKey(date)
	letter, err := s.ledger.Set(c.Request.Context(), dateKey, period, key, req.Value)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store assignment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateKey, "period": period, "key": key, "letter": letter})
}

// snapshot fetches the current snapshot, writing the error response itself
// when that fails.
func (s *Server) snapshot(c *gin.Context) (roster.Snapshot, bool) {
	snap, err := s.currentSource().Snapshot()
	if err != nil {
		s.snapshotError(c, err)
		return roster.Snapshot{}, false
	}
	return snap, true
}

func (s *Server) snapshotError(c *gin.Context, err error) {
	var verr *sheet.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   verr.Error(),
			"missing": verr.Missing,
			"found":   verr.Found,
		})
	case errors.Is(err, sheet.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
	}
}

func (s *Server) now() time.Time {
	return s.opts.Now().In(s.opts.Location)
}

func queryBools(c *gin.Context, targets map[string]*bool) error {
	for name, dst := range targets {
		raw, set := c.GetQuery(name)
		if !set {
			continue
		}
		if raw == "" {
			*dst = true
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s value %q (expected true or false)", name, raw)
		}
		*dst = v
	}
	return nil
}
