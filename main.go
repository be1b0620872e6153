// purplenight is a small side-scrolling action game: clear the level of
// slimes and bats before they wear your sword down.
//
// Usage:
//
//	purplenight                 - Play the default level
//	purplenight runs [level]    - Show recent runs and the win record
//	purplenight levels          - List embedded levels
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/levels"
	"github.com/milk9111/purplenight/records"
)

var (
	flagSeed     uint64
	flagLevel    string
	flagDBPath   string
	flagWatch    bool
	flagScale    int
	flagLogLevel string
	flagMute     bool
	flagDebug    bool
	flagLimit    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "purplenight",
	Short: "Purple Night - a tiny side-scrolling sword game",
	Long: `Purple Night drops you into a moonlit level full of slimes and bats.
Walk with A/D or the arrow keys, jump with Space or Z, swing with X or J.
Taking a hit shortens your sword; a hit with the short sword ends the run.

Examples:
  purplenight
  purplenight --level playground --seed 42
  purplenight runs playground`,
	SilenceUsage: true,
	RunE:         runPlay,
}

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show recent runs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range levels.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.purplenight/runs.db", "Path to run history database (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLevel, "level", "playground", "Embedded level name")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Hot reload ./prefabs tuning and palette")
	rootCmd.Flags().IntVar(&flagScale, "scale", 4, "Window scale")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show frame and actor counters")

	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")

	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "purplenight",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	if flagScale < 1 {
		return fmt.Errorf("--scale must be at least 1, got %d", flagScale)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game, err := NewGame(runConfig{
		level:  flagLevel,
		seed:   seed,
		dbPath: flagDBPath,
		watch:  flagWatch,
		mute:   flagMute,
		debug:  flagDebug,
	}, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	logger.Info("starting", "level", flagLevel, "seed", seed)

	ebiten.SetWindowSize(common.ScreenWidth*flagScale, common.ScreenHeight*flagScale)
	ebiten.SetWindowTitle("Purple Night")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}

func runRuns(cmd *cobra.Command, args []string) error {
	var level string
	if len(args) == 1 {
		level = args[0]
	}

	store, err := records.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(level, flagLimit)
	if err != nil {
		return err
	}
	summary, err := store.Summarize(level)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-12s  %-8s  %8s  %6s  %4s  %s\n", "Date", "Level", "Outcome", "Time", "Slimes", "Bats", "Seed")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-16s  %-12s  %-8s  %7.1fs  %6d  %4d  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Level, r.Outcome,
			float64(r.Frames)/60, r.SlimesKilled, r.BatsKilled, r.Seed)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Wins: %d of %d", summary.Wins, summary.Runs)
	if summary.BestWin > 0 {
		fmt.Fprintf(out, ", best %.1fs", float64(summary.BestWin)/60)
	}
	fmt.Fprintln(out)
	return nil
}
