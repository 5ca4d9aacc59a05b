package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"goroster/roster"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "goroster.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testEmployee(empID string) roster.Employee {
	return roster.Employee{
		EmpID:       empID,
		Name:        "John Smith",
		Gender:      "Male",
		NSBTBatchNo: "NSBT-7",
		Status:      roster.StatusAllocated,
		Grade:       "B",
		Ranking:     "ME",
		BU:          "Engineering",
		MPRNo:       "MPR-77",
		IOName:      "Jane Doe",
		DOJ:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local),
		SourceFile:  "roster.xlsx",
	}
}

func TestUpsertEmployees_InsertThenUpdate(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	inserted, updated, err := store.UpsertEmployees([]roster.Employee{testEmployee("E1001"), testEmployee("E1002")})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if inserted != 2 || updated != 0 {
		t.Fatalf("unexpected counts: inserted=%d updated=%d", inserted, updated)
	}

	changed := testEmployee("E1001")
	changed.Status = roster.StatusResigned
	changed.ResignationDate = time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)

	inserted, updated, err = store.UpsertEmployees([]roster.Employee{changed})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if inserted != 0 || updated != 1 {
		t.Fatalf("unexpected counts: inserted=%d updated=%d", inserted, updated)
	}

	got, err := store.GetEmployee("E1001")
	if err != nil {
		t.Fatalf("get employee: %v", err)
	}
	if got.Status != roster.StatusResigned {
		t.Fatalf("expected updated status, got %q", got.Status)
	}
	if !got.ResignationDate.Equal(changed.ResignationDate) {
		t.Fatalf("unexpected resignation date: %s", got.ResignationDate)
	}
}

func TestListEmployees_OrderedByEmpID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if _, _, err := store.UpsertEmployees([]roster.Employee{testEmployee("E2000"), testEmployee("E1001")}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	employees, err := store.ListEmployees()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].EmpID != "E1001" || employees[1].EmpID != "E2000" {
		t.Fatalf("unexpected order: %s, %s", employees[0].EmpID, employees[1].EmpID)
	}
}

func TestListEmployees_RoundTripsOptionalDates(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	employee := testEmployee("E1001")
	if _, _, err := store.UpsertEmployees([]roster.Employee{employee}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.GetEmployee("E1001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.ResignationDate.IsZero() || !got.ReleasedDate.IsZero() {
		t.Fatalf("expected absent optional dates, got %+v", got)
	}
	if !got.DOJ.Equal(employee.DOJ) {
		t.Fatalf("unexpected doj: %s", got.DOJ)
	}
	if !roster.Equivalent(got, employee) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, employee)
	}
}

func TestGetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	_, err := store.GetEmployee("E9999")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if _, _, err := store.UpsertEmployees([]roster.Employee{testEmployee("E1001")}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	deleted, err := store.DeleteEmployee("E1001")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("expected row to be deleted")
	}

	deleted, err = store.DeleteEmployee("E1001")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatalf("expected no row on second delete")
	}
}

func TestCountByStatus(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	a := testEmployee("E1001")
	b := testEmployee("E1002")
	c := testEmployee("E1003")
	c.Status = roster.StatusUnderTraining
	c.Grade = ""
	c.Ranking = ""

	if _, _, err := store.UpsertEmployees([]roster.Employee{a, b, c}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	counts, err := store.CountByStatus()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[roster.StatusAllocated] != 2 || counts[roster.StatusUnderTraining] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
