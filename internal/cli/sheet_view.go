package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

const sheetHelp = "←/→/↑/↓ move · tab next period · A-Z assign · space clear · esc quit"

// sheetModel is the interactive daily sheet. The cursor addresses a slot of
// the daily roster: cursorCol is the period column, cursorRow the slot.
type sheetModel struct {
	ctx       context.Context
	ledger    *ledger.Ledger
	students  []roster.Student
	date      time.Time
	opts      report.DailyOptions
	layout    roster.DailyRoster
	day       ledger.Day
	cursorRow int
	cursorCol int
	footerMsg string
}

func newSheetModel(ctx context.Context, students []roster.Student, l *ledger.Ledger, date time.Time, opts report.DailyOptions) (sheetModel, error) {
	day, err := l.Day(ctx, ledger.DateKey(date))
	if err != nil {
		return sheetModel{}, fmt.Errorf("load assignments for %s: %w", ledger.DateKey(date), err)
	}
	return sheetModel{
		ctx:      ctx,
		ledger:   l,
		students: students,
		date:     date,
		opts:     opts,
		layout:   roster.BuildDailyRoster(students, schedule.WeekdayOf(date), opts.Periods, opts.IncludePaused),
		day:      day,
	}, nil
}

func (m sheetModel) Init() tea.Cmd {
	return nil
}

func (m sheetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "right":
		if m.cursorCol < len(m.layout.Columns)-1 {
			m.cursorCol++
		}
	case "left":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "down":
		if m.cursorRow < m.layout.Rows-1 {
			m.cursorRow++
		}
	case "up":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "tab":
		if len(m.layout.Columns) > 0 {
			m.cursorCol = (m.cursorCol + 1) % len(m.layout.Columns)
		}
	case "shift+tab":
		if n := len(m.layout.Columns); n > 0 {
			m.cursorCol = (m.cursorCol + n - 1) % n
		}
	case " ", "backspace", "delete":
		return m.assign("")
	default:
		if len(k) == 1 && ledger.Sanitize(k) != "" {
			return m.assign(k)
		}
	}
	return m, nil
}

// current returns the slot under the cursor.
func (m sheetModel) current() (period int, slot roster.Slot, ok bool) {
	if m.cursorCol >= len(m.layout.Columns) {
		return 0, roster.Slot{}, false
	}
	col := m.layout.Columns[m.cursorCol]
	if m.cursorRow >= len(col.Slots) {
		return 0, roster.Slot{}, false
	}
	return col.Period, col.Slots[m.cursorRow], true
}

// assign stores letter for the slot under the cursor. An empty letter clears it.
func (m sheetModel) assign(letter string) (tea.Model, tea.Cmd) {
	period, slot, ok := m.current()
	if !ok || slot.Blank {
		m.footerMsg = "no student in this slot"
		return m, nil
	}

	key := slot.Student.Key()
	stored, err := m.ledger.Set(m.ctx, ledger.DateKey(m.date), period, key, letter)
	if err != nil {
		m.footerMsg = Error(fmt.Sprintf("save failed: %s", err))
		return m, nil
	}

	cell := ledger.CellKey(period, key)
	if stored == "" {
		delete(m.day, cell)
		m.footerMsg = fmt.Sprintf("cleared %s (%d교시)", slot.Student.Name, period)
	} else {
		m.day[cell] = stored
		m.footerMsg = fmt.Sprintf("%s (%d교시) → %s", slot.Student.Name, period, stored)
	}
	return m, nil
}

func (m sheetModel) View() string {
	rep := report.BuildDaily(m.students, m.date, m.opts, m.day)

	var b strings.Builder
	b.WriteString(renderTable(rep.Tables[0], true, func(row, col int) bool {
		return row == m.cursorRow+1 && col/2 == m.cursorCol
	}))
	b.WriteString("\n\n")
	b.WriteString(Silent(sheetHelp))
	if m.footerMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.footerMsg)
	}
	b.WriteString("\n")
	return b.String()
}

func runSheet(ctx context.Context, cmd *cobra.Command, students []roster.Student, l *ledger.Ledger, date time.Time, opts report.DailyOptions) error {
	m, err := newSheetModel(ctx, students, l, date, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	_, err = p.Run()
	return err
}
