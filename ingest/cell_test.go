package ingest

import (
	"testing"
	"time"
)

func TestCellStringValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{name: "blank", cell: Cell{Kind: CellBlank}, want: ""},
		{name: "plain text", cell: Cell{Kind: CellText, Text: "John Smith"}, want: "John Smith"},
		{name: "whitespace cleanup", cell: Cell{Kind: CellText, Text: "  John \u00A0 Smith "}, want: "John Smith"},
		{name: "formula result", cell: Cell{Kind: CellFormula, Text: " E1001 "}, want: "E1001"},
		{name: "integer collapse", cell: Cell{Kind: CellNumber, Text: "45000.0"}, want: "45000"},
		{name: "integer stays", cell: Cell{Kind: CellNumber, Text: "45000"}, want: "45000"},
		{name: "true decimal stays", cell: Cell{Kind: CellNumber, Text: "45000.5"}, want: "45000.5"},
		{name: "date renders day month year", cell: Cell{Kind: CellDate, Date: time.Date(2025, 9, 2, 0, 0, 0, 0, time.Local)}, want: "02-09-2025"},
		{name: "only invisible chars is blank", cell: Cell{Kind: CellText, Text: "\u200B\uFEFF"}, want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.cell.StringValue(); got != tc.want {
				t.Fatalf("unexpected value: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeCellTextIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"E1001", "45000", "John Smith", ""}
	for _, input := range inputs {
		if got := normalizeCellText(input); got != input {
			t.Fatalf("expected %q unchanged, got %q", input, got)
		}
	}
}
