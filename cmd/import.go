package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goroster/config"
	"goroster/ingest"
	"goroster/internal/classify"
	"goroster/roster"
	"goroster/storage"

	"github.com/spf13/cobra"
)

var (
	importInputs []string
	importFormat string
	importDBPath string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV/Excel roster files into a local SQLite database",
	Long: `Read roster files, normalize and validate each employee row, and persist
results in SQLite keyed by EMPID.

When --format is omitted, format is inferred from each input file extension.
Rows that fail parsing or validation are reported and skipped; valid rows are
classified against the stored roster and inserted or updated accordingly.`,
	Example: `
  # Import multiple roster workbooks
  goroster import -i HRExport202608.xlsx -i Trainees202608.xlsx --db ./goroster.db

  # Import a CSV roster
  goroster import -i roster.csv --format csv --db ./goroster.db

  # Preview changes without writing to the database
  goroster import -i HRExport202608.xlsx --dry-run

  # Import with custom config file
  goroster --configFile ./custom-goroster.yaml import -i HRExport202608.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		ing := ingest.NewIngestor()
		ing.HeaderScanRows = cfg.Import.HeaderScanRows
		ing.PositionalFallback = cfg.Import.PositionalFallback

		dbPath := importDBPath
		if strings.TrimSpace(dbPath) == "" {
			dbPath = cfg.Storage.DBPath
		}

		var (
			incoming     []roster.Employee
			rowsRead     int
			rowsRejected int
		)
		for _, input := range importInputs {
			result, err := ingestRosterFile(ing, input, importFormat)
			if err != nil {
				return err
			}
			for _, message := range result.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", input, message)
			}
			incoming = append(incoming, result.Employees...)
			rowsRead += result.RowsRead
			rowsRejected += result.RowsRejected
		}

		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		existing, err := store.ListEmployees()
		if err != nil {
			return err
		}
		toInsert, toUpdate, unchanged := classify.ClassifyEmployees(incoming, existing)

		if importDryRun {
			fmt.Printf("Dry run. Files: %d, Rows read: %d, Rows parsed: %d, Rows rejected: %d, Would insert: %d, Would update: %d, Unchanged: %d\n",
				len(importInputs), rowsRead, len(incoming), rowsRejected, len(toInsert), len(toUpdate), unchanged)
			return nil
		}

		inserted, updated, err := store.UpsertEmployees(incoming)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Files: %d, Rows read: %d, Rows parsed: %d, Rows rejected: %d, Inserted: %d, Updated: %d, Unchanged: %d\n",
			len(importInputs), rowsRead, len(incoming), rowsRejected, inserted, updated, unchanged)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default: storage.db_path from config)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Classify rows against the stored roster without persisting")

	_ = importCmd.MarkFlagRequired("input")
}

func resolveInputFormat(format, path string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		switch ext {
		case "csv", "tsv", "txt":
			return "csv", nil
		default:
			return "excel", nil
		}
	case "csv":
		return "csv", nil
	case "excel", "xlsx":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported input format: %s (supported: csv, excel)", format)
	}
}

func ingestRosterFile(ing *ingest.Ingestor, path, format string) (*ingest.Result, error) {
	resolved, err := resolveInputFormat(format, path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	var result *ingest.Result
	if resolved == "csv" {
		result = ing.IngestCSV(file)
	} else {
		result = ing.Ingest(file)
	}
	for i := range result.Employees {
		result.Employees[i].SourceFile = path
	}
	return result, nil
}
