package ingest

import (
	"math"
	"strconv"
	"time"

	"goroster/internal/textnorm"
)

// CellKind tags the underlying type of a spreadsheet cell.
type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
	CellDate
	CellFormula
)

// Cell is one spreadsheet cell reduced to roster terms. Text carries the
// displayed (for formulas: evaluated) value for everything except date
// cells, which carry the calendar date directly and bypass string parsing.
type Cell struct {
	Kind CellKind
	Text string
	Date time.Time
}

// StringValue renders the cell as a normalized string. Blank cells render
// as "", date cells in dd-MM-yyyy, and everything else as cleaned-up text
// with the trailing-".0" integer collapse applied.
func (c Cell) StringValue() string {
	switch c.Kind {
	case CellBlank:
		return ""
	case CellDate:
		return c.Date.Format(layoutDayMonthYear)
	default:
		return normalizeCellText(c.Text)
	}
}

// normalizeCellText cleans whitespace and rewrites decimal renderings of
// integers ("12345.0") as plain integer strings. Spreadsheet engines render
// numeric employee/reference IDs that way and the suffix is never wanted.
func normalizeCellText(value string) string {
	cleaned := textnorm.NormalizeSpace(value)
	if cleaned == "" {
		return ""
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return cleaned
	}
	whole := int64(parsed)
	if math.Abs(parsed-float64(whole)) < 0.0001 {
		return strconv.FormatInt(whole, 10)
	}
	return cleaned
}
