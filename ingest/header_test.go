package ingest

import "testing"

func textRow(labels ...string) []Cell {
	row := make([]Cell, len(labels))
	for i, label := range labels {
		row[i] = textCell(label)
	}
	return row
}

func TestMapHeader_TemplateLabels(t *testing.T) {
	t.Parallel()

	row := textRow(
		"Emp ID", "Name", "Gender", "DOJ", "NSBT Batch No", "Status",
		"Grade", "BU", "MPR No", "IO Name", "Released Date", "Resignation Date",
	)

	columns := MapHeader(row)

	want := map[string]int{
		keyEmpID:           0,
		keyName:            1,
		keyGender:          2,
		keyDOJ:             3,
		keyBatchNo:         4,
		keyStatus:          5,
		keyGrade:           6,
		keyBU:              7,
		keyMPRNo:           8,
		keyReleasedDate:    10,
		keyResignationDate: 11,
	}
	for key, idx := range want {
		if columns[key] != idx {
			t.Fatalf("unexpected index for %q: want %d, got %d", key, idx, columns[key])
		}
	}
	if !columns.HasRequired() {
		t.Fatalf("expected all required keys to resolve")
	}
}

func TestMapHeader_SynonymsAndNoise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		key   string
	}{
		{name: "employee id", label: "Employee_ID", key: keyEmpID},
		{name: "employee name", label: "Employee Name", key: keyName},
		{name: "sex", label: "Sex", key: keyGender},
		{name: "date of joining", label: "Date of Joining", key: keyDOJ},
		{name: "leaving date", label: "Leaving Date", key: keyResignationDate},
		{name: "misspelled resiznation", label: "Resiznation Date", key: keyResignationDate},
		{name: "released on", label: "Released On", key: keyReleasedDate},
		{name: "batch no", label: "Batch No.", key: keyBatchNo},
		{name: "employee status", label: "Employee Status", key: keyStatus},
		{name: "business unit", label: "Business Unit", key: keyBU},
		{name: "project no", label: "Project No", key: keyMPRNo},
		{name: "supervisor", label: "Supervisor", key: keyIOName},
		{name: "bom prefixed", label: "\uFEFFEmp ID", key: keyEmpID},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			columns := MapHeader(textRow(tc.label))
			if _, ok := columns[tc.key]; !ok {
				t.Fatalf("label %q did not map to %q (got %v)", tc.label, tc.key, columns)
			}
		})
	}
}

func TestMapHeader_RequiredKeysOnlyNeedsFour(t *testing.T) {
	t.Parallel()

	columns := MapHeader(textRow("EmpID", "Name", "Status", "DOJ"))
	if !columns.HasRequired() {
		t.Fatalf("header with the four mandatory columns must be valid, got %v", columns)
	}
}

func TestMapHeader_MissingDOJIsNotValid(t *testing.T) {
	t.Parallel()

	columns := MapHeader(textRow("EmpID", "Name", "Status", "Grade"))
	if columns.HasRequired() {
		t.Fatalf("header without DOJ must not be valid, got %v", columns)
	}
}

func TestMapHeader_IgnoresBlankCells(t *testing.T) {
	t.Parallel()

	columns := MapHeader([]Cell{{Kind: CellBlank}, textCell("EmpID")})
	if columns[keyEmpID] != 1 {
		t.Fatalf("expected empid at column 1, got %v", columns)
	}
}

func TestPositionalColumns_TemplateOrder(t *testing.T) {
	t.Parallel()

	columns := PositionalColumns()
	if len(columns) != 12 {
		t.Fatalf("expected 12 template columns, got %d", len(columns))
	}
	if columns[keyEmpID] != 0 || columns[keyDOJ] != 3 || columns[keyResignationDate] != 11 {
		t.Fatalf("unexpected template order: %v", columns)
	}
}
