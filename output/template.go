package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateHeaders is the canonical roster upload column order. It must
// stay aligned with the positional fallback used during ingestion.
var TemplateHeaders = []string{
	"Emp ID", "Name", "Gender", "DOJ", "NSBT Batch No", "Status",
	"Grade", "BU", "MPR No", "IO Name", "Released Date", "Resignation Date",
}

// WriteTemplate writes an empty roster upload workbook with the canonical
// header row, for distribution to HR teams.
func WriteTemplate(path string) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range TemplateHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set template header %s: %w", cell, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save template %s: %w", path, err)
	}

	return nil
}
