package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the effective level table",
	Long: `Print the level table the games will use, as YAML.

The table comes from --config if given, otherwise from
~/.arcade/configs/levels.yaml, ./configs/levels.yaml or the built-in
defaults, in that order. The output is a valid levels file to start
customising from.

Examples:
  arcade levels > my-levels.yaml
  arcade levels --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels, err := config.LoadLevels(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Showing built-in defaults.")
	}

	data, err := levels.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding levels: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
