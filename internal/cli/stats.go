package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik/internal/analysis"
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <session-id>",
	Short: "Show statistics for a session",
	Long: `Compute move statistics for a recorded session: totals, turns per
second, face usage, and the most repeated move sequences.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	moves, err := storage.NewMoveRepository(db).GetBySession(args[0])
	if err != nil {
		return err
	}

	summary := analysis.Summarize(sess, moves)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session:       %s\n", summary.SessionID)
	fmt.Fprintf(out, "Total moves:   %d (%d manual, %d shuffle)\n",
		summary.TotalMoves, summary.ManualMoves, summary.ShuffleMoves)
	if summary.DurationMs > 0 {
		fmt.Fprintf(out, "Duration:      %s\n",
			(time.Duration(summary.DurationMs) * time.Millisecond).Round(time.Second))
		fmt.Fprintf(out, "TPS:           %.2f\n", summary.TPS)
	}
	if summary.LongestPauseMs > 0 {
		fmt.Fprintf(out, "Longest pause: %s\n",
			(time.Duration(summary.LongestPauseMs) * time.Millisecond).Round(time.Millisecond))
	}
	if summary.MostUsedFace != "" {
		fmt.Fprintf(out, "Most used:     %s (%d times)\n",
			summary.MostUsedFace, summary.FaceCounts[summary.MostUsedFace])
	}

	ngrams := analysis.MineNGrams(moves, 2, 4, 3)
	if len(ngrams) > 0 {
		fmt.Fprintln(out, "\nRepeated sequences:")
		for n := 2; n <= 4; n++ {
			for _, ng := range ngrams[n] {
				fmt.Fprintf(out, "  %-12s x%d\n", strings.Join(ng.Sequence, " "), ng.Count)
			}
		}
	}

	return nil
}
