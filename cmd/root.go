/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/spf13/viper"
	"os"

	"github.com/spf13/cobra"
	"goroster/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goroster",
	Short: "Import, validate, and export employee roster spreadsheets.",
	Long: `
**********************************************
*               GO ROSTER GO                 *
**********************************************

This CLI imports employee roster files (Excel, CSV), normalizes each row into a
local SQLite database, and exports the consolidated roster to CSV or Excel.

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv, .tsv, .txt
`,
	Example: `
  # Create configuration file
  goroster config create

  # Import roster workbooks
  goroster import -i HRExport202608.xlsx -i Trainees202608.xlsx

  # Import a CSV roster
  goroster import -i roster.csv --format csv

  # Preview changes without persisting
  goroster import -i HRExport202608.xlsx --dry-run

  # Export the consolidated roster
  goroster export --output ./roster.csv

  # Write an empty upload template
  goroster template --output ./roster-template.xlsx

  # Start the local web UI
  goroster serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.goroster.yaml, then ./.goroster.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd.Name() == "import" || cmd.Name() == "serve"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".goroster" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".goroster")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: goroster config create")
	}
}
