package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"goroster/internal/timeutil"
	"goroster/roster"
)

// parseRow converts one data row into a validated employee. The checks
// short-circuit: the first failure aborts the row and becomes its single
// error message (the caller adds the "Row N: " prefix).
func (g *Ingestor) parseRow(row []Cell, columns ColumnMap) (roster.Employee, error) {
	var e roster.Employee

	empID := stringField(row, columns, keyEmpID)
	if empID == "" {
		return e, errors.New("empid is empty")
	}
	e.EmpID = empID

	e.Name = stringField(row, columns, keyName)
	e.Gender = stringField(row, columns, keyGender)
	e.NSBTBatchNo = stringField(row, columns, keyBatchNo)

	status := strings.TrimSpace(stringField(row, columns, keyStatus))
	if !roster.AllowedStatuses[status] {
		return e, fmt.Errorf("invalid status '%s'", status)
	}
	e.Status = status

	// Captured before date checks so they are available in diagnostics
	// when validation fails later.
	e.Grade = stringField(row, columns, keyGrade)
	e.BU = stringField(row, columns, keyBU)
	e.MPRNo = stringField(row, columns, keyMPRNo)
	e.IOName = stringField(row, columns, keyIOName)

	doj, err := dateField(row, columns, keyDOJ)
	if err != nil {
		return e, fmt.Errorf("invalid date format - %v", err)
	}
	resignationDate, err := dateField(row, columns, keyResignationDate)
	if err != nil {
		return e, fmt.Errorf("invalid date format - %v", err)
	}
	releasedDate, err := dateField(row, columns, keyReleasedDate)
	if err != nil {
		return e, fmt.Errorf("invalid date format - %v", err)
	}

	if doj.IsZero() {
		return e, errors.New("DOJ is required")
	}
	if doj.After(timeutil.StartOfDay(g.now())) {
		return e, errors.New("DOJ cannot be in the future")
	}
	if !resignationDate.IsZero() && resignationDate.Before(doj) {
		return e, errors.New("Resignation date cannot be before DOJ")
	}
	if !releasedDate.IsZero() && releasedDate.Before(doj) {
		return e, errors.New("Release date cannot be before DOJ")
	}

	e.DOJ = doj
	e.ResignationDate = resignationDate
	e.ReleasedDate = releasedDate

	if messages := g.Validator.Validate(e); len(messages) > 0 {
		return e, fmt.Errorf("%s [parsed: EMPID=%s, IO_NAME=%s, BU=%s, MPR_NO=%s]",
			strings.Join(messages, ", "), e.EmpID, e.IOName, e.BU, e.MPRNo)
	}

	roster.DeriveRanking(&e, g.Ranking)
	return e, nil
}

// stringField resolves a canonical key to its normalized cell string, or ""
// when the column is unmapped or the row is short.
func stringField(row []Cell, columns ColumnMap, key string) string {
	idx, ok := columns[key]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx].StringValue()
}

// dateField resolves a canonical key to a calendar date. Date-typed cells
// bypass string parsing entirely; everything else goes through the lenient
// parser. A missing column or blank cell yields the zero time.
func dateField(row []Cell, columns ColumnMap, key string) (time.Time, error) {
	idx, ok := columns[key]
	if !ok || idx < 0 || idx >= len(row) {
		return time.Time{}, nil
	}

	cell := row[idx]
	if cell.Kind == CellDate {
		return cell.Date, nil
	}

	value := cell.StringValue()
	if value == "" {
		return time.Time{}, nil
	}
	return ParseLenientDate(value)
}

func (g *Ingestor) now() time.Time {
	if g.Clock != nil {
		return g.Clock()
	}
	return time.Now()
}
