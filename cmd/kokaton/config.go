package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML.

Save it to ~/.kokaton/configs/kokaton.yaml or ./configs/kokaton.yaml and
edit the keys you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(config.GetDefaultYAML(kokaton.ID))
}
