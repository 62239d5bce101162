package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/notation"
)

var (
	scrambleSeed   int64
	scrambleLayout bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble sequence",
	Long: `Run one shuffle on a fresh cube and print the resulting sequence.

A non-zero --seed makes the sequence reproducible: the same seed always
yields the same moves and the same final layout.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleLayout, "layout", false, "Also print the scrambled layout")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, cubik.WithAnimation(false))
	if scrambleSeed != 0 {
		opts = append(opts, cubik.WithRandSeed(scrambleSeed))
	}

	engine, err := cubik.New(opts...)
	if err != nil {
		return err
	}

	if !engine.StartShuffle() {
		return fmt.Errorf("failed to start shuffle")
	}
	// Drain the whole schedule. Delays are virtual, so this is instant.
	engine.Advance(time.Hour)
	if !engine.Idle() {
		return fmt.Errorf("shuffle did not finish")
	}

	moves := engine.Moves()
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", cubik.FormatMoves(moves))
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  (canonical, %d moves)\n",
			notation.CanonicalSequence(moves), len(moves))
	}

	if scrambleLayout {
		printLayout(cmd, engine)
	}
	return nil
}

// printLayout dumps the three layers as plain text, top layer first.
func printLayout(cmd *cobra.Command, engine *cubik.Engine) {
	layout := engine.Layout()
	for _, z := range []int{1, 0, -1} {
		for y := 1; y >= -1; y-- {
			for x := -1; x <= 1; x++ {
				tag, ok := layout[cubik.GridPos{X: x, Y: y, Z: z}]
				if !ok {
					tag = "."
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s", tag)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
}
