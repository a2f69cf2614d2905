// Package commands implements the CLI commands for kustomd.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/kustomd/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kustomd",
	Short: "Convert Kusto Explorer clipboard content to markdown",
	Long: `Kustomd reads the HTML that Kusto Explorer places on the clipboard
when you copy a query with its results, and converts it to a markdown
document: the KQL query as a fenced code block, the result grid as an
aligned table, and the cluster/deep-link metadata as a small header.

When no Kusto HTML is present, plain clipboard text is treated as
tab-separated values and rendered as a table.

Examples:
  # Copy in Kusto Explorer, then:
  kustomd

  # Convert a saved clipboard dump instead of the live clipboard
  kustomd convert --input dump.html --output out.md

  # Pipe tab-separated results through the fallback path
  kusto-cli query ... | kustomd convert --input - --text --output -

  # Emit the located regions as JSON
  kustomd convert --format json --output -`,
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.kustomd.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	}

	// Bare `kustomd` runs a conversion; give it the convert flags too.
	addConvertFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".kustomd")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("KUSTOMD")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
