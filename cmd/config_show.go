package cmd

import (
	"fmt"
	"github.com/spf13/viper"

	"github.com/spf13/cobra"
	"goroster/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  goroster config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
			fmt.Println("Configuration:")
			fmt.Printf("storage.db_path: %s\n", cfg.Storage.DBPath)
			fmt.Printf("import.header_scan_rows: %d\n", cfg.Import.HeaderScanRows)
			fmt.Printf("import.positional_fallback: %t\n", cfg.Import.PositionalFallback)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
