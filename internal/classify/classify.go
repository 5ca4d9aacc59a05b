package classify

import "goroster/roster"

// ClassifyEmployees splits a freshly parsed batch against the stored
// roster: unknown IDs are inserts, known IDs with changed data are
// updates, and identical records just bump the unchanged counter.
func ClassifyEmployees(incoming, existing []roster.Employee) ([]roster.Employee, []roster.Employee, int) {
	byEmpID := make(map[string]roster.Employee, len(existing))
	for _, employee := range existing {
		byEmpID[employee.EmpID] = employee
	}

	toInsert := make([]roster.Employee, 0, len(incoming))
	toUpdate := make([]roster.Employee, 0)
	unchanged := 0

	for _, candidate := range incoming {
		stored, known := byEmpID[candidate.EmpID]
		if !known {
			toInsert = append(toInsert, candidate)
			continue
		}
		if roster.Equivalent(stored, candidate) {
			unchanged++
			continue
		}
		toUpdate = append(toUpdate, candidate)
	}

	return toInsert, toUpdate, unchanged
}
