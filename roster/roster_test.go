package roster

import (
	"testing"
	"time"
)

func TestDeriveRanking_UnderTrainingClearsGradeAndRanking(t *testing.T) {
	t.Parallel()

	e := Employee{EmpID: "E1001", Status: StatusUnderTraining, Grade: "A"}
	DeriveRanking(&e, DefaultRanking())

	if e.Grade != "" || e.Ranking != "" {
		t.Fatalf("expected cleared grade and ranking, got grade=%q ranking=%q", e.Grade, e.Ranking)
	}
}

func TestDeriveRanking_TerminatedForcesGradeDAndNI(t *testing.T) {
	t.Parallel()

	e := Employee{EmpID: "E1001", Status: StatusTerminated, Grade: "A+"}
	DeriveRanking(&e, DefaultRanking())

	if e.Grade != "D" {
		t.Fatalf("expected grade D, got %q", e.Grade)
	}
	if e.Ranking != "NI" {
		t.Fatalf("expected ranking NI, got %q", e.Ranking)
	}
}

func TestDeriveRanking_DefaultBranchUsesLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grade string
		want  string
	}{
		{grade: "A+", want: "O"},
		{grade: "A", want: "EE"},
		{grade: "B", want: "ME"},
		{grade: "C", want: "PE"},
		{grade: "D", want: "NI"},
		{grade: "X", want: ""},
		{grade: "", want: ""},
	}

	for _, tc := range tests {
		e := Employee{EmpID: "E1001", Status: StatusAllocated, Grade: tc.grade}
		DeriveRanking(&e, DefaultRanking())
		if e.Ranking != tc.want {
			t.Fatalf("unexpected ranking for grade %q: want %q, got %q", tc.grade, tc.want, e.Ranking)
		}
		if e.Grade != tc.grade {
			t.Fatalf("default branch must not rewrite grade: want %q, got %q", tc.grade, e.Grade)
		}
	}
}

func TestFieldValidator_NameRequired(t *testing.T) {
	t.Parallel()

	messages := NewFieldValidator().Validate(Employee{EmpID: "E1001", Status: StatusAllocated})
	if len(messages) != 1 {
		t.Fatalf("expected one message, got %v", messages)
	}
	if messages[0] != "name is required" {
		t.Fatalf("unexpected message: %q", messages[0])
	}
}

func TestFieldValidator_ValidRecordPasses(t *testing.T) {
	t.Parallel()

	e := Employee{
		EmpID:  "E1001",
		Name:   "John Smith",
		Gender: "Male",
		Status: StatusAllocated,
		Grade:  "B",
		BU:     "Engineering",
		MPRNo:  "MPR-77",
		IOName: "Jane Doe",
	}
	if messages := NewFieldValidator().Validate(e); len(messages) != 0 {
		t.Fatalf("expected no messages, got %v", messages)
	}
}

func TestFieldValidator_CollectsMultipleMessages(t *testing.T) {
	t.Parallel()

	e := Employee{EmpID: "E1001", Gender: "Unknown", Grade: "Z"}
	messages := NewFieldValidator().Validate(e)
	if len(messages) != 3 {
		t.Fatalf("expected three messages, got %v", messages)
	}
}

func TestEquivalent_IgnoresIdentityAndProvenance(t *testing.T) {
	t.Parallel()

	doj := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	a := Employee{ID: 1, EmpID: "E1001", Name: "John Smith", Status: StatusAllocated, DOJ: doj, SourceFile: "a.xlsx"}
	b := Employee{ID: 9, EmpID: "E1001", Name: "John Smith", Status: StatusAllocated, DOJ: doj, SourceFile: "b.xlsx"}

	if !Equivalent(a, b) {
		t.Fatalf("expected records to be equivalent")
	}

	b.Name = "John T. Smith"
	if Equivalent(a, b) {
		t.Fatalf("expected records to differ after name change")
	}
}
