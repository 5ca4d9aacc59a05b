// Package roster defines the normalized employee record produced by the
// ingestion pipeline, plus the collaborator interfaces used to validate it
// and to derive the ranking attribute.
package roster

import "time"

// Employee statuses accepted during ingestion. Matching is exact and
// case-sensitive; anything else rejects the row.
const (
	StatusAllocated      = "Allocated"
	StatusUnderTraining  = "Under Training"
	StatusResigned       = "Resigned"
	StatusTerminated     = "Terminated"
	StatusTempAllocation = "Temp Allocation"
	StatusWaitingAlloc   = "Waiting for Allocation"
)

var AllowedStatuses = map[string]bool{
	StatusAllocated:      true,
	StatusUnderTraining:  true,
	StatusResigned:       true,
	StatusTerminated:     true,
	StatusTempAllocation: true,
	StatusWaitingAlloc:   true,
}

// Employee is the normalized roster record used across ingestion, storage,
// and outputs. Optional string fields use "" for absent values; optional
// dates use the zero time.Time. All dates are local midnights.
type Employee struct {
	ID              int64
	EmpID           string
	Name            string
	Gender          string
	NSBTBatchNo     string
	Status          string
	Grade           string
	Ranking         string
	BU              string
	MPRNo           string
	IOName          string
	DOJ             time.Time
	ResignationDate time.Time
	ReleasedDate    time.Time
	SourceFile      string
}

// DeriveRanking applies the status-driven ranking branch to e. Exactly one
// branch applies: employees under training carry neither grade nor ranking,
// terminated employees are pinned to grade D / ranking NI, and everyone
// else gets the lookup result for their grade and status.
func DeriveRanking(e *Employee, lookup RankingLookup) {
	switch e.Status {
	case StatusUnderTraining:
		e.Grade = ""
		e.Ranking = ""
	case StatusTerminated:
		e.Grade = "D"
		e.Ranking = "NI"
	default:
		e.Ranking = lookup.Rank(e.Grade, e.Status)
	}
}

// Equivalent reports whether two records carry the same roster data,
// ignoring storage identity and provenance.
func Equivalent(a, b Employee) bool {
	return a.EmpID == b.EmpID &&
		a.Name == b.Name &&
		a.Gender == b.Gender &&
		a.NSBTBatchNo == b.NSBTBatchNo &&
		a.Status == b.Status &&
		a.Grade == b.Grade &&
		a.Ranking == b.Ranking &&
		a.BU == b.BU &&
		a.MPRNo == b.MPRNo &&
		a.IOName == b.IOName &&
		a.DOJ.Equal(b.DOJ) &&
		a.ResignationDate.Equal(b.ResignationDate) &&
		a.ReleasedDate.Equal(b.ReleasedDate)
}
