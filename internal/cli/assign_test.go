package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/hashutil"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
)

func testKit(confirm bool) PromptKit {
	return PromptKit{Confirm: staticConfirm(confirm), Select: staticSelect(1)}
}

func TestResolveStudent(t *testing.T) {
	students := sampleStudents()

	tests := []struct {
		name     string
		ref      string
		wantName string
		wantID   string
	}{
		{"by key", "id:S3", "최유나", "S3"},
		{"by id", "S2", "이서연", "S2"},
		{"by name-group key", "ng:박지훈|대치중|중1", "박지훈", ""},
		{"by short ref", hashutil.IDFromSeed("ng:박지훈|대치중|중1"), "박지훈", ""},
		{"by unique name", "최유나", "최유나", "S3"},
		{"ambiguous name picks via select", "김민수", "김민수", "S5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStudent(students, tt.ref, staticSelect(1))
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestResolveStudentErrors(t *testing.T) {
	students := sampleStudents()

	_, err := ResolveStudent(students, "", nil)
	assert.Error(t, err)

	_, err = ResolveStudent(students, "홍길동", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = ResolveStudent(students, "김민수", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = ResolveStudent(students, "김민수", func(string, []string) (int, error) {
		return 0, errors.New("cancelled")
	})
	assert.EqualError(t, err, "cancelled")
}

func TestRunAssignSetNew(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	cmd, buf := newTestCmd()

	require.NoError(t, runAssignSet(ctx, cmd, sampleStudents(), l, monday, "S3", "1", "b", testKit(false)))
	assert.Contains(t, buf.String(), "assigned")

	got, err := l.Get(ctx, "2025-03-03", 1, "id:S3")
	require.NoError(t, err)
	assert.Equal(t, "B", got)
}

func TestRunAssignSetUnchanged(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	_, err := l.Set(ctx, "2025-03-03", 1, "id:S3", "B")
	require.NoError(t, err)
	cmd, buf := newTestCmd()

	require.NoError(t, runAssignSet(ctx, cmd, sampleStudents(), l, monday, "S3", "1", "B", testKit(false)))
	assert.Contains(t, buf.String(), "already has")
}

func TestRunAssignSetReplaceDeclined(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	_, err := l.Set(ctx, "2025-03-03", 1, "id:S3", "B")
	require.NoError(t, err)
	cmd, _ := newTestCmd()

	err = runAssignSet(ctx, cmd, sampleStudents(), l, monday, "S3", "1", "C", testKit(false))
	assert.EqualError(t, err, "aborted")

	got, _ := l.Get(ctx, "2025-03-03", 1, "id:S3")
	assert.Equal(t, "B", got)
}

func TestRunAssignSetReplaceConfirmed(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	_, err := l.Set(ctx, "2025-03-03", 1, "id:S3", "B")
	require.NoError(t, err)
	cmd, _ := newTestCmd()

	require.NoError(t, runAssignSet(ctx, cmd, sampleStudents(), l, monday, "S3", "1", "C", testKit(true)))

	got, _ := l.Get(ctx, "2025-03-03", 1, "id:S3")
	assert.Equal(t, "C", got)
}

func TestRunAssignSetClear(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	_, err := l.Set(ctx, "2025-03-03", 1, "id:S3", "B")
	require.NoError(t, err)
	cmd, buf := newTestCmd()

	require.NoError(t, runAssignSet(ctx, cmd, sampleStudents(), l, monday, "S3", "1", "", testKit(true)))
	assert.Contains(t, buf.String(), "cleared")

	got, _ := l.Get(ctx, "2025-03-03", 1, "id:S3")
	assert.Equal(t, "", got)
}

func TestRunAssignSetWarnsWhenNotAttending(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, runAssignSet(context.Background(), cmd, sampleStudents(), newTestLedger(), monday, "S2", "2", "A", testKit(true)))
	assert.Contains(t, buf.String(), "does not attend")
}

func TestRunAssignSetInvalidInput(t *testing.T) {
	ctx := context.Background()
	cmd, _ := newTestCmd()

	err := runAssignSet(ctx, cmd, sampleStudents(), newTestLedger(), monday, "S3", "0", "A", testKit(true))
	assert.ErrorContains(t, err, "invalid period")

	err = runAssignSet(ctx, cmd, sampleStudents(), newTestLedger(), monday, "S3", "1", "7", testKit(true))
	assert.ErrorContains(t, err, "invalid letter")
}

func TestRunAssignShow(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	_, err := l.Set(ctx, "2025-03-03", 2, "ng:박지훈|대치중|중1", "C")
	require.NoError(t, err)
	_, err = l.Set(ctx, "2025-03-03", 1, "id:S3", "A")
	require.NoError(t, err)
	_, err = l.Set(ctx, "2025-03-03", 1, "id:gone", "D")
	require.NoError(t, err)
	cmd, buf := newTestCmd()

	require.NoError(t, runAssignShow(ctx, cmd, sampleStudents(), l, monday))

	out := buf.String()
	assert.Contains(t, out, "2025-03-03 월")
	assert.Contains(t, out, "최유나 (대치중1)")
	assert.Contains(t, out, hashutil.IDFromSeed("ng:박지훈|대치중|중1"))
	assert.Contains(t, out, "id:gone")
}

func TestRunAssignShowEmpty(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, runAssignShow(context.Background(), cmd, sampleStudents(), newTestLedger(), monday))
	assert.Equal(t, "no assignments for "+ledger.DateKey(monday)+"\n", buf.String())
}

func TestRunAssignForm(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	_, err := l.Set(ctx, "2025-03-03", 1, "id:S3", "A")
	require.NoError(t, err)
	cmd, buf := newTestCmd()

	var titles []string
	answers := map[string]string{"김민수": "b", "최유나": "A"}
	letterFn := func(title, current string) (string, error) {
		titles = append(titles, title)
		for name, answer := range answers {
			if strings.Contains(title, name) {
				return answer, nil
			}
		}
		return current, nil
	}

	require.NoError(t, runAssignForm(ctx, cmd, sampleStudents(), l, monday, 1, false, letterFn))
	assert.Len(t, titles, 2)
	assert.Contains(t, buf.String(), "updated 1 of 2")

	got, _ := l.Get(ctx, "2025-03-03", 1, "id:S1")
	assert.Equal(t, "B", got)
}

func TestRunAssignFormEmptySlot(t *testing.T) {
	cmd, buf := newTestCmd()

	err := runAssignForm(context.Background(), cmd, sampleStudents(), newTestLedger(), monday, 3, false, func(string, string) (string, error) {
		return "", fmt.Errorf("should not prompt")
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no students")
}

func TestRunAssignFormPromptError(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runAssignForm(context.Background(), cmd, sampleStudents(), newTestLedger(), monday, 1, false, func(string, string) (string, error) {
		return "", errors.New("interrupted")
	})
	assert.EqualError(t, err, "interrupted")
}
