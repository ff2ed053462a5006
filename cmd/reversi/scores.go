package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/registry"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show match history for a game",
	Long: `Display recent matches and win standings for the specified game.
Without a game, prints a summary line for every game with stored results.

Examples:
  reversi scores
  reversi scores reversi
  reversi scores reversi_mini --limit 5
  reversi scores reversi --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent matches to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete stored results for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printAllStats(store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'reversi list' to see available games)", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("results cleared", "game", gameID)
		fmt.Printf("Cleared results for %s.\n", game.Title())
		return nil
	}

	matches, err := store.RecentMatches(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	st, err := store.Standings(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Match History - %s\n", game.Title())
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'reversi play %s' to record the first one!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-3s  %-6s  %5s  %5s  %6s  %-5s  %s\n", "#", "Winner", "Black", "White", "Margin", "Board", "Date")
	fmt.Printf("  %-3s  %-6s  %5s  %5s  %6s  %-5s  %s\n", "--", "------", "-----", "-----", "------", "-----", "----")

	for i, r := range matches {
		fmt.Printf("  %-3d  %-6s  %5d  %5d  %6d  %-5s  %s\n",
			i+1, r.Winner, r.Black, r.White, r.Margin(),
			fmt.Sprintf("%dx%d", r.BoardW, r.BoardH),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Played: %d  Black wins: %d  White wins: %d  Draws: %d\n",
		st.Games, st.BlackWins, st.WhiteWins, st.Draws)

	best, err := store.TopScores(gameID, 3)
	if err != nil || len(best) == 0 {
		return nil
	}
	margins := make([]string, len(best))
	for i, e := range best {
		margins[i] = strconv.Itoa(e.Score)
	}
	fmt.Printf("Best margins: %s", strings.Join(margins, ", "))
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("  (average %.1f over %d decisive games)", stats.AvgScore, stats.GamesCount)
	}
	fmt.Println()
	return nil
}

// printAllStats lists every game that has stored scores.
func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %8s  %11s  %s\n", "Game", "Decisive", "Best margin", "Last played")
	fmt.Printf("  %-14s  %8s  %11s  %s\n", "----", "--------", "-----------", "-----------")
	for _, id := range ids {
		s := all[id]
		best, err := store.HighScore(id)
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s  %8d  %11d  %s\n", id, s.GamesCount, best, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
