// Package ingest converts employee-roster spreadsheets into validated
// roster records. It tolerates the usual mess in real exports: missing
// headers, shifted columns, mixed date formats, formula cells, and stray
// invisible whitespace.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"goroster/internal/timeutil"
	"goroster/roster"
)

const DefaultHeaderScanRows = 3

// FallbackWarning is prepended to Result.Errors when no header row was
// detected and the fixed template column order was assumed.
const FallbackWarning = "Warning: header row not detected; positional fallback used (assuming template column order). If columns are shifted, please use the provided template and do not merge header cells."

// Result accumulates one ingestion run: successfully parsed employees in
// sheet order plus one human-readable error per rejected row. Rows that are
// entirely absent produce neither. Not mutated after return.
type Result struct {
	Employees    []roster.Employee
	Errors       []string
	RowsRead     int
	RowsRejected int
	FallbackUsed bool
}

// Ingestor drives workbook and CSV ingestion. The zero value is not usable;
// construct with NewIngestor and override fields as needed.
type Ingestor struct {
	Validator roster.Validator
	Ranking   roster.RankingLookup

	// HeaderScanRows bounds the header search window at the top of the
	// sheet. PositionalFallback enables the fixed template column order
	// when no header row is found.
	HeaderScanRows     int
	PositionalFallback bool

	// Clock is overridable for tests; nil means time.Now.
	Clock func() time.Time
}

func NewIngestor() *Ingestor {
	return &Ingestor{
		Validator:          roster.NewFieldValidator(),
		Ranking:            roster.DefaultRanking(),
		HeaderScanRows:     DefaultHeaderScanRows,
		PositionalFallback: true,
	}
}

// Ingest reads an xlsx workbook from r and parses its first sheet. It never
// returns an error: failures to open or read the workbook become a single
// entry in Result.Errors, per-row failures one entry each.
func (g *Ingestor) Ingest(r io.Reader) *Result {
	result := &Result{}

	file, err := excelize.OpenReader(r)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Fatal parse error: %v", err))
		return result
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Workbook has no sheets")
		return result
	}

	grid, err := readSheet(file, sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Fatal parse error: %v", err))
		return result
	}

	g.run(grid, result)
	return result
}

// IngestFile ingests one roster file, picking the CSV or workbook path from
// the extension, and stamps the source file on every parsed employee.
func (g *Ingestor) IngestFile(path string) *Result {
	file, err := os.Open(path)
	if err != nil {
		return &Result{Errors: []string{fmt.Sprintf("Fatal parse error: %v", err)}}
	}
	defer file.Close()

	var result *Result
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "csv", "tsv", "txt":
		result = g.IngestCSV(file)
	default:
		result = g.Ingest(file)
	}

	for i := range result.Employees {
		result.Employees[i].SourceFile = path
	}
	return result
}

// run is the shared pipeline behind the workbook and CSV entry points:
// header detection, positional fallback, and the row loop.
func (g *Ingestor) run(grid [][]Cell, result *Result) {
	scan := g.HeaderScanRows
	if scan <= 0 {
		scan = DefaultHeaderScanRows
	}

	var columns ColumnMap
	headerRow := 0
	for i := 0; i < scan && i < len(grid); i++ {
		candidate := MapHeader(grid[i])
		if len(candidate) > 0 && candidate.HasRequired() {
			columns = candidate
			headerRow = i
			break
		}
	}

	fallback := false
	if columns == nil {
		if !g.PositionalFallback {
			result.Errors = append(result.Errors, "No usable header row found")
			return
		}
		fallback = true
		columns = PositionalColumns()
		headerRow = 0
	}

	for r := headerRow + 1; r < len(grid); r++ {
		row := grid[r]
		if len(row) == 0 {
			// Absent row: no record, no error.
			continue
		}
		result.RowsRead++

		employee, err := g.parseRow(row, columns)
		if err != nil {
			result.RowsRejected++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", r+1, err))
			continue
		}
		result.Employees = append(result.Employees, employee)
	}

	if fallback {
		result.FallbackUsed = true
		result.Errors = append([]string{FallbackWarning}, result.Errors...)
	}
}

// readSheet materializes one sheet as a cell grid, preserving row positions
// (grid[i] is sheet row i+1; absent rows stay nil).
func readSheet(f *excelize.File, sheet string) ([][]Cell, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheet, err)
	}

	grid := make([][]Cell, len(rows))
	for r, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]Cell, len(row))
		for c, display := range row {
			axis, axisErr := excelize.CoordinatesToCellName(c+1, r+1)
			if axisErr != nil {
				cells[c] = textCell(display)
				continue
			}
			cells[c] = readCell(f, sheet, axis, display)
		}
		grid[r] = cells
	}
	return grid, nil
}

// readCell classifies one cell. Lookup failures never abort ingestion; the
// displayed text is always an acceptable fallback.
func readCell(f *excelize.File, sheet, axis, display string) Cell {
	if isDateCell(f, sheet, axis) {
		if when, ok := rawCellDate(f, sheet, axis); ok {
			return Cell{Kind: CellDate, Date: when}
		}
	}

	if formula, err := f.GetCellFormula(sheet, axis); err == nil && formula != "" {
		// GetRows already resolved the cached formula result into display.
		return Cell{Kind: CellFormula, Text: display}
	}

	return textCell(display)
}

// Built-in number formats that render a serial number as a date or time.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true,
	21: true, 22: true, 27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true, 45: true, 46: true,
	47: true, 50: true, 51: true, 52: true, 53: true, 54: true, 55: true,
	56: true, 57: true, 58: true,
}

// isDateCell reports whether the cell's number format renders it as a
// date. Numeric date cells carry no type marker in the file; the style is
// the only reliable signal.
func isDateCell(f *excelize.File, sheet, axis string) bool {
	if cellType, err := f.GetCellType(sheet, axis); err == nil && cellType == excelize.CellTypeDate {
		return true
	}

	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtInDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return customFormatLooksLikeDate(*style.CustomNumFmt)
	}
	return false
}

// customFormatLooksLikeDate applies the usual heuristic: after dropping
// quoted literals and bracketed sections, any y/d token (or h for times)
// marks a date format.
func customFormatLooksLikeDate(format string) bool {
	var inQuote, inBracket bool
	for _, r := range strings.ToLower(format) {
		switch {
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case r == 'y' || r == 'd' || r == 'h':
			return true
		}
	}
	return false
}

// rawCellDate reads the underlying serial number of a date-formatted cell
// and converts it to a local calendar date.
func rawCellDate(f *excelize.File, sheet, axis string) (time.Time, bool) {
	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return time.Time{}, false
	}
	when, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return timeutil.DateOnly(when), true
}

func textCell(display string) Cell {
	if strings.TrimSpace(display) == "" {
		return Cell{Kind: CellBlank}
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(display), 64); err == nil {
		return Cell{Kind: CellNumber, Text: display}
	}
	return Cell{Kind: CellText, Text: display}
}
