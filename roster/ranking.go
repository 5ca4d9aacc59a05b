package roster

import "strings"

// RankingLookup maps an employee grade and status to a ranking code.
type RankingLookup interface {
	Rank(grade, status string) string
}

// TableRanking is the static grade-to-ranking table used when no external
// lookup is wired in. Unknown grades rank as "".
type TableRanking struct {
	table map[string]string
}

func DefaultRanking() *TableRanking {
	return &TableRanking{table: map[string]string{
		"A+": "O",
		"A":  "EE",
		"B":  "ME",
		"C":  "PE",
		"D":  "NI",
	}}
}

func (t *TableRanking) Rank(grade, _ string) string {
	return t.table[strings.TrimSpace(grade)]
}
