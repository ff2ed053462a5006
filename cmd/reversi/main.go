// reversi is a two-player Reversi (Othello) game for the terminal.
//
// Usage:
//
//	reversi list              - List available boards
//	reversi play [game]       - Play a game (default: reversi)
//	reversi menu              - Start menu to pick a board interactively
//	reversi serve             - Start SSH server for remote play
//	reversi scores [game]     - Show match history and standings
//	reversi config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Use a specific config YAML
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi - play Othello in your terminal",
	Long: `Reversi is a two-player board game for the terminal. Players take turns
placing discs; every line of opposing discs closed off by the new disc flips
colour. When neither side can move, the player with more discs wins.

Available commands:
  list     - Show all available boards
  play     - Play a game directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View match history
  config   - Print the effective configuration

Examples:
  reversi play
  reversi play reversi_mini
  reversi menu
  reversi serve --ssh :2222
  reversi scores reversi`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}

		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "reversi",
			Level:           level,
		})
		reversi.SetLogger(logger)
		reversi.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom reversi config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
