package web

import (
	"testing"
	"time"

	"goroster/roster"
)

func TestBuildRosterView(t *testing.T) {
	t.Parallel()

	employees := []roster.Employee{
		{
			EmpID:  "E1001",
			Name:   "Alice Example",
			Status: roster.StatusAllocated,
			DOJ:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local),
		},
		{
			EmpID:           "E1002",
			Name:            "Bob Example",
			Status:          roster.StatusResigned,
			DOJ:             time.Date(2023, time.March, 1, 0, 0, 0, 0, time.Local),
			ResignationDate: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.Local),
		},
	}
	counts := map[string]int{
		roster.StatusResigned:  1,
		roster.StatusAllocated: 1,
	}

	view := BuildRosterView(employees, counts)

	if view.Total != 2 {
		t.Fatalf("expected total 2, got %d", view.Total)
	}
	if len(view.Employees) != 2 {
		t.Fatalf("expected 2 employee rows, got %d", len(view.Employees))
	}
	if view.Employees[0].DOJ != "10-01-2024" {
		t.Fatalf("unexpected DOJ format: %q", view.Employees[0].DOJ)
	}
	if view.Employees[0].ResignationDate != "" {
		t.Fatalf("expected empty resignation date, got %q", view.Employees[0].ResignationDate)
	}
	if view.Employees[1].ResignationDate != "30-06-2025" {
		t.Fatalf("unexpected resignation date: %q", view.Employees[1].ResignationDate)
	}

	if len(view.Statuses) != 2 {
		t.Fatalf("expected 2 status rows, got %d", len(view.Statuses))
	}
	if view.Statuses[0].Status != roster.StatusAllocated || view.Statuses[1].Status != roster.StatusResigned {
		t.Fatalf("expected status rows sorted by name, got %#v", view.Statuses)
	}
}
