package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const csvHeader = "학생ID,이름,학교,학년,등원요일,수업교시,상태\n"

func sampleSnapshot() roster.Snapshot {
	return roster.NewSnapshot([]roster.Student{
		roster.NewStudent("S1", "김민수", "대치초", "초3", "월,수", "1,2", "재원"),
		roster.NewStudent("S2", "이서연", "대치초", "초3", "화", "2", "휴원"),
		roster.NewStudent("S3", "최유나", "대치중", "중1", "월", "1", "재원"),
	})
}

func newTestServer(t *testing.T, src Source) *Server {
	t.Helper()
	return New(src, ledger.New(ledger.NewMemoryStore()), Options{
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC) },
	})
}

func do(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestPing(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))
	rec := do(t, s, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestStudents(t *testing.T) {
	snap := sampleSnapshot()
	s := newTestServer(t, NewStaticSource(snap))

	rec := do(t, s, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Version  string           `json:"version"`
		Students []roster.Student `json:"students"`
	}](t, rec)
	assert.Equal(t, snap.Version, body.Version)
	require.Len(t, body.Students, 3)
	assert.Equal(t, "김민수", body.Students[0].Name)
}

func TestReportIsCachedPerVersion(t *testing.T) {
	src := NewStaticSource(sampleSnapshot())
	s := newTestServer(t, src)

	rec := do(t, s, http.MethodGet, "/api/reports/grades?school=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "miss", rec.Header().Get("X-Cache"))

	rec = do(t, s, http.MethodGet, "/api/reports/grades?school=true", nil)
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))
	rep := decode[report.Report](t, rec)
	assert.Equal(t, report.KindGrades, rep.Kind)
	assert.Equal(t, "【대치초】김민수", rep.Tables[0].RowsWithRole(report.RoleData)[0].Cells[1].Text)

	rec = do(t, s, http.MethodGet, "/api/reports/grades", nil)
	assert.Equal(t, "miss", rec.Header().Get("X-Cache"))

	src.Set(roster.NewSnapshot([]roster.Student{
		roster.NewStudent("S9", "박지훈", "도곡초", "초3", "월", "1", "재원"),
	}))
	rec = do(t, s, http.MethodGet, "/api/reports/grades?school=true", nil)
	assert.Equal(t, "miss", rec.Header().Get("X-Cache"))
	rep = decode[report.Report](t, rec)
	assert.Equal(t, "【도곡초】박지훈", rep.Tables[0].RowsWithRole(report.RoleData)[0].Cells[1].Text)
	assert.Equal(t, 1, s.cache.len())
}

func TestReportErrors(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/reports/attendance", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/reports/matrix?weekdays=Mon", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/reports/matrix?periods=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/reports/schools?grade=maybe", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/reports/daily?date=someday", nil).Code)
}

func TestMatrixDefaultsFooterToCurrentMonth(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))

	rec := do(t, s, http.MethodGet, "/api/reports/matrix?periods=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rep := decode[report.Report](t, rec)
	require.Len(t, rep.Tables, 1)
	assert.Equal(t, "2025-03", rep.Tables[0].Caption)
}

func TestAssignmentsAndDailyReport(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))

	for key, value := range map[string]string{"id:S1": "a", "id:S3": "bee", "id:S2": "c"} {
		rec := do(t, s, http.MethodPut, "/api/assignments/2025-03-03/1/"+key, []byte(`{"value":"`+value+`"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := do(t, s, http.MethodPut, "/api/assignments/2025-03-03/1/id:S1", []byte(`{"value":"7"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decode[map[string]any](t, rec)["letter"])
	rec = do(t, s, http.MethodPut, "/api/assignments/2025-03-03/1/id:S1", []byte(`{"value":"a"}`))
	assert.Equal(t, "A", decode[map[string]any](t, rec)["letter"])

	rec = do(t, s, http.MethodGet, "/api/assignments/2025-03-03", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Date        string       `json:"date"`
		Assignments []Assignment `json:"assignments"`
	}](t, rec)
	assert.Equal(t, "2025-03-03", body.Date)
	assert.Equal(t, []Assignment{
		{Period: 1, Key: "id:S1", Name: "김민수", Letter: "A"},
		{Period: 1, Key: "id:S2", Name: "이서연", Letter: "C"},
		{Period: 1, Key: "id:S3", Name: "최유나", Letter: "B"},
	}, body.Assignments)

	rec = do(t, s, http.MethodGet, "/api/reports/daily", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
	rep := decode[report.Report](t, rec)
	assert.Equal(t, "3-3 월", rep.Title)

	summary := rep.Tables[0].RowsWithRole(report.RoleSummary)
	require.Len(t, summary, 3)
	assert.Equal(t, "2명", summary[0].Cells[0].Text)
	assert.Equal(t, "A : 1명", summary[1].Cells[0].Text)
	assert.Equal(t, "B : 1명", summary[2].Cells[0].Text)
}

func TestSetAssignmentErrors(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPut, "/api/assignments/today/1/id:S404", []byte(`{"value":"a"}`)).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPut, "/api/assignments/today/zero/id:S1", []byte(`{"value":"a"}`)).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPut, "/api/assignments/today/1/id:S1", []byte(`not json`)).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPut, "/api/assignments/2025-13-40/1/id:S1", []byte(`{"value":"a"}`)).Code)
}

func upload(t *testing.T, s *Server, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestImport(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))

	rec := upload(t, s, "roster.csv", csvHeader+"S7,강도윤,대치초,초1,월,1,재원\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode[map[string]any](t, rec)["students"])

	rec = do(t, s, http.MethodGet, "/api/students", nil)
	assert.Contains(t, rec.Body.String(), "강도윤")
	assert.NotContains(t, rec.Body.String(), "김민수")
}

func TestImportValidation(t *testing.T) {
	s := newTestServer(t, NewStaticSource(sampleSnapshot()))

	rec := upload(t, s, "roster.csv", "이름,학교\n김민수,대치초\n")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[struct {
		Missing []string `json:"missing"`
		Found   []string `json:"found"`
	}](t, rec)
	assert.Equal(t, []string{"학생ID", "학년", "등원요일", "수업교시", "상태"}, body.Missing)
	assert.Equal(t, []string{"이름", "학교"}, body.Found)

	assert.Equal(t, http.StatusBadRequest, upload(t, s, "roster.txt", "x").Code)

	// the previous snapshot is still served
	assert.Contains(t, do(t, s, http.MethodGet, "/api/students", nil).Body.String(), "김민수")
}

func TestFileSourceReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvHeader+"S1,김민수,대치초,초3,월,1,재원\n"), 0644))

	src := NewFileSource(path, "")
	first, err := src.Snapshot()
	require.NoError(t, err)
	require.Len(t, first.Students, 1)

	again, err := src.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, first.Version, again.Version)

	content := csvHeader + "S1,김민수,대치초,초3,월,1,재원\nS2,이서연,대치초,초3,화,2,휴원\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	reloaded, err := src.Snapshot()
	require.NoError(t, err)
	assert.Len(t, reloaded.Students, 2)
	assert.NotEqual(t, first.Version, reloaded.Version)
}

func TestFileSourceErrors(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.csv"), "")
	s := newTestServer(t, src)

	rec := do(t, s, http.MethodGet, "/api/students", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "failed to load snapshot"))
}

func TestReportCache(t *testing.T) {
	c := newReportCache()
	_, ok := c.get("v1", "grades")
	assert.False(t, ok)

	c.put("v1", "grades", report.Report{Title: "a"})
	c.put("v1", "schools", report.Report{Title: "b"})
	r, ok := c.get("v1", "grades")
	require.True(t, ok)
	assert.Equal(t, "a", r.Title)

	_, ok = c.get("v2", "grades")
	assert.False(t, ok)

	c.put("v2", "grades", report.Report{Title: "c"})
	assert.Equal(t, 1, c.len())
	_, ok = c.get("v1", "schools")
	assert.False(t, ok)
}
