package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// IngestCSV parses a CSV roster export through the same header/row pipeline
// as workbook ingestion. HR tools export these as UTF-8 with or without a
// BOM and occasionally as UTF-16, so the input is decoded with BOM override
// before parsing.
func (g *Ingestor) IngestCSV(r io.Reader) *Result {
	result := &Result{}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(r, decoder))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid [][]Cell
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fatal parse error: %v", err))
			return result
		}

		cells := make([]Cell, len(record))
		for i, value := range record {
			cells[i] = textCell(value)
		}
		grid = append(grid, cells)
	}

	g.run(grid, result)
	return result
}
