package cmd

import (
	"fmt"

	"goroster/output"

	"github.com/spf13/cobra"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an empty roster upload template workbook",
	Long: `Write an Excel workbook containing only the expected header row.

Files filled from this template keep the columns in the order the importer
assumes when no header row can be detected.`,
	Example: `
  # Write the upload template
  goroster template --output ./roster-template.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := output.WriteTemplate(templateOutput); err != nil {
			return err
		}
		fmt.Printf("Template written: %s\n", templateOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "./roster-template.xlsx", "Output file path for the template workbook")
}
