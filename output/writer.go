package output

import (
	"fmt"
	"strings"
	"time"

	"goroster/roster"
)

type Writer interface {
	Write(path string, employees []roster.Employee) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

var exportHeaders = []string{
	"EmpID", "Name", "Gender", "DOJ", "NSBTBatchNo", "Status", "Grade",
	"Ranking", "BU", "MPRNo", "IOName", "ReleasedDate", "ResignationDate", "SourceFile",
}

func exportRow(employee roster.Employee) []string {
	return []string{
		employee.EmpID,
		employee.Name,
		employee.Gender,
		formatDate(employee.DOJ),
		employee.NSBTBatchNo,
		employee.Status,
		employee.Grade,
		employee.Ranking,
		employee.BU,
		employee.MPRNo,
		employee.IOName,
		formatDate(employee.ReleasedDate),
		formatDate(employee.ResignationDate),
		employee.SourceFile,
	}
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("02-01-2006")
}
