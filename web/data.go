package web

import (
	"sort"
	"time"

	"goroster/roster"
)

// EmployeeRow is the display form of one stored employee. Dates are already
// formatted; optional values render as empty strings.
type EmployeeRow struct {
	EmpID           string
	Name            string
	Gender          string
	DOJ             string
	NSBTBatchNo     string
	Status          string
	Grade           string
	Ranking         string
	BU              string
	MPRNo           string
	IOName          string
	ResignationDate string
	ReleasedDate    string
	SourceFile      string
}

type StatusRow struct {
	Status string
	Count  int
}

type RosterView struct {
	Employees []EmployeeRow
	Statuses  []StatusRow
	Total     int
}

// BuildRosterView converts stored employees and status counts into the
// roster page model. Status rows are sorted by name for stable rendering.
func BuildRosterView(employees []roster.Employee, counts map[string]int) RosterView {
	view := RosterView{
		Employees: make([]EmployeeRow, 0, len(employees)),
		Statuses:  make([]StatusRow, 0, len(counts)),
		Total:     len(employees),
	}

	for _, employee := range employees {
		view.Employees = append(view.Employees, EmployeeRow{
			EmpID:           employee.EmpID,
			Name:            employee.Name,
			Gender:          employee.Gender,
			DOJ:             formatViewDate(employee.DOJ),
			NSBTBatchNo:     employee.NSBTBatchNo,
			Status:          employee.Status,
			Grade:           employee.Grade,
			Ranking:         employee.Ranking,
			BU:              employee.BU,
			MPRNo:           employee.MPRNo,
			IOName:          employee.IOName,
			ResignationDate: formatViewDate(employee.ResignationDate),
			ReleasedDate:    formatViewDate(employee.ReleasedDate),
			SourceFile:      employee.SourceFile,
		})
	}

	for status, count := range counts {
		view.Statuses = append(view.Statuses, StatusRow{Status: status, Count: count})
	}
	sort.Slice(view.Statuses, func(i, j int) bool {
		return view.Statuses[i].Status < view.Statuses[j].Status
	})

	return view
}

func formatViewDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("02-01-2006")
}
