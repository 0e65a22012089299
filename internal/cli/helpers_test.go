package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

// monday is 2025-03-03, a 월 class day.
var monday = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func sampleStudents() []roster.Student {
	return []roster.Student{
		roster.NewStudent("S1", "김민수", "대치초", "초3", "월,수", "1,2", "재원"),
		roster.NewStudent("S2", "이서연", "대치초", "초3", "화", "2", "휴원"),
		roster.NewStudent("S3", "최유나", "대치중", "중1", "월", "1", "재원"),
		roster.NewStudent("", "박지훈", "대치중", "중1", "월,화", "2", "재원"),
		roster.NewStudent("S5", "김민수", "단대부고", "고1", "수", "3", "재원"),
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.Background())
	return cmd, buf
}

func newTestLedger() *ledger.Ledger {
	return ledger.New(ledger.NewMemoryStore())
}

func staticConfirm(answer bool) ConfirmFunc {
	return func(_ string) (bool, error) { return answer, nil }
}

func staticSelect(idx int) SelectFunc {
	return func(_ string, _ []string) (int, error) { return idx, nil }
}
