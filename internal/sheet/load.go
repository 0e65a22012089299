package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/xuri/excelize/v2"
)

// Load reads a snapshot from an .xlsx or .csv file. For workbooks, sheetName
// selects the worksheet; when it is empty or absent the first sheet is used.
func Load(path, sheetName string) (roster.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, path, sheetName)
}

// Read parses a snapshot stream, choosing the reader from name's extension.
func Read(r io.Reader, name, sheetName string) (roster.Snapshot, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r, sheetName)
	case ".csv":
		return ReadCSV(r)
	default:
		return roster.Snapshot{}, fmt.Errorf("%w: %q (expected .xlsx or .csv)", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ReadXLSX reads the student table from a workbook stream.
func ReadXLSX(r io.Reader, sheetName string) (roster.Snapshot, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing excel file", "error", err)
		}
	}()

	name := resolveSheet(f.GetSheetList(), sheetName)
	if name == "" {
		return roster.Snapshot{}, ErrNoSheet
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to get rows from sheet %s: %w", name, err)
	}
	return Parse(rows)
}

func resolveSheet(sheets []string, want string) string {
	if len(sheets) == 0 {
		return ""
	}
	for _, s := range sheets {
		if s == want {
			return s
		}
	}
	if want != "" {
		slog.Warn("sheet not found, using first sheet", "sheet", want, "using", sheets[0])
	}
	return sheets[0]
}

// ReadCSV reads the student table from CSV. A UTF-8 byte order mark on the
// header row is ignored.
func ReadCSV(r io.Reader) (roster.Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return Parse(rows)
}
