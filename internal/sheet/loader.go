// Package sheet reads the timetable workbook into a raw 2-D grid of
// string cells. It knows nothing about the grid's meaning; parsing is
// the timetable package's job.
package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned when the workbook contains no worksheets.
var ErrNoSheets = errors.New("sheet: workbook has no worksheets")

// Load opens the workbook at path and returns the cell grid of its
// first worksheet. Callers treat a failure as a degraded start (empty
// timetable), not a fatal one.
func Load(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return firstSheetRows(f)
}

// LoadReader reads a workbook from an in-memory source. Used by tests
// and anywhere the workbook does not live on disk.
func LoadReader(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: open reader: %w", err)
	}
	defer func() { _ = f.Close() }()

	return firstSheetRows(f)
}

func firstSheetRows(f *excelize.File) ([][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheet: read rows of %q: %w", sheets[0], err)
	}
	return rows, nil
}
