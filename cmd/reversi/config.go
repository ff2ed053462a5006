package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the way a game would and print it as YAML,
preceded by the file it came from.

Search order when --config is not given:
  $XDG_CONFIG_HOME/arcade/reversi.yaml (and $XDG_CONFIG_DIRS)
  ~/.arcade/configs/reversi.yaml
  ./configs/reversi.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadReversi(flagConfig)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", config.Source(flagConfig))
	_, err = os.Stdout.Write(out)
	return err
}
