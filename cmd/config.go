package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage goroster configuration file values.",
	Long: `Create, edit, display, and delete the goroster configuration file.

The configuration stores application-wide values:
- storage.db_path
- import.header_scan_rows
- import.positional_fallback`,
	Example: `
  # Create default config in $HOME/.goroster.yaml
  goroster config create

  # Show active config and source file
  goroster config show

  # Open active config in editor (creates example if missing)
  goroster config edit

  # Delete active config file
  goroster config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
