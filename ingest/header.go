package ingest

import (
	"strings"

	"goroster/internal/textnorm"
)

// Canonical column-map keys. "resiznation date" is a long-standing
// misspelling that downstream consumers key on; it stays verbatim until
// product review signs off on a rename.
const (
	keyEmpID           = "empid"
	keyName            = "name"
	keyGender          = "gender"
	keyDOJ             = "doj"
	keyResignationDate = "resiznation date"
	keyReleasedDate    = "released date"
	keyBatchNo         = "nsbt batchno"
	keyStatus          = "status"
	keyGrade           = "grade"
	keyBU              = "bu"
	keyMPRNo           = "mpr no"
	keyIOName          = "io name"
)

// requiredKeys must all resolve for a header row to be usable.
var requiredKeys = []string{keyEmpID, keyName, keyStatus, keyDOJ}

// ColumnMap maps canonical field keys to zero-based column indices. Built
// once per workbook and read-only during row iteration.
type ColumnMap map[string]int

// MapHeader inspects one candidate header row and maps recognized labels
// to canonical keys. Rules are substring/synonym matches on the compact
// key; several rules may fire for the same cell and the last write per
// canonical key wins. Returns an empty map when nothing is recognized.
func MapHeader(row []Cell) ColumnMap {
	columns := make(ColumnMap)
	for i, cell := range row {
		label := cell.StringValue()
		if label == "" {
			continue
		}
		key := textnorm.CompactKey(label)
		if key == "" {
			continue
		}

		if strings.Contains(key, "empid") || strings.Contains(key, "employeeid") {
			columns[keyEmpID] = i
		}
		if key == "name" || strings.Contains(key, "employeename") {
			columns[keyName] = i
		}
		if strings.Contains(key, "gender") || key == "sex" {
			columns[keyGender] = i
		}
		if strings.Contains(key, "doj") || strings.Contains(key, "dateofjoin") || strings.Contains(key, "dateofjoining") {
			columns[keyDOJ] = i
		}
		if strings.Contains(key, "resign") || strings.Contains(key, "resiz") || strings.Contains(key, "leavingdate") || strings.Contains(key, "resignationdate") {
			columns[keyResignationDate] = i
		}
		if strings.Contains(key, "released") || strings.Contains(key, "releasedate") || strings.Contains(key, "releasedon") {
			columns[keyReleasedDate] = i
		}
		if (strings.Contains(key, "nsbt") || strings.Contains(key, "batch")) && strings.Contains(key, "no") {
			columns[keyBatchNo] = i
		}
		if strings.Contains(key, "status") || strings.Contains(key, "employeestatus") {
			columns[keyStatus] = i
		}
		if strings.Contains(key, "grade") || strings.Contains(key, "employeegrade") {
			columns[keyGrade] = i
		}
		if key == "bu" || strings.Contains(key, "businessunit") {
			columns[keyBU] = i
		}
		// "mpr" and "io" are deliberately broad substring matches; known
		// roster templates do not collide on them.
		if strings.Contains(key, "mpr") || strings.Contains(key, "projectno") {
			columns[keyMPRNo] = i
		}
		if strings.Contains(key, "io") || strings.Contains(key, "immediateofficer") || strings.Contains(key, "supervisor") {
			columns[keyIOName] = i
		}
	}
	return columns
}

// HasRequired reports whether the map resolves every mandatory column.
func (m ColumnMap) HasRequired() bool {
	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			return false
		}
	}
	return true
}

// PositionalColumns is the fixed fallback map matching the roster template
// column order, used when no header row is detected.
func PositionalColumns() ColumnMap {
	return ColumnMap{
		keyEmpID:           0,
		keyName:            1,
		keyGender:          2,
		keyDOJ:             3,
		keyBatchNo:         4,
		keyStatus:          5,
		keyGrade:           6,
		keyBU:              7,
		keyMPRNo:           8,
		keyIOName:          9,
		keyReleasedDate:    10,
		keyResignationDate: 11,
	}
}
