package cmd

import (
	"fmt"
	"goroster/output"
	"goroster/storage"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the consolidated roster from SQLite to CSV/Excel",
	Long: `Export all stored employees ordered by EMPID.

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export to CSV
  goroster export --db ./goroster.db --output ./roster.csv

  # Export to Excel
  goroster export --db ./goroster.db --output ./roster.xlsx

  # Force Excel format independent of extension
  goroster export --format excel --db ./goroster.db --output ./roster.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		employees, err := store.ListEmployees()
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, employees); err != nil {
			return err
		}
		fmt.Printf("Export completed. Rows: %d, Format: %s, File: %s\n", len(employees), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./goroster.db", "Path to local SQLite database")

	_ = exportCmd.MarkFlagRequired("output")
}
