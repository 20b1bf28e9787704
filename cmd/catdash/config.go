package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feliform/catdash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration to stdout.

Save it, tweak it, and pass it back with --config:

  catdash config > my-catdash.yaml
  catdash play --config ./my-catdash.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
