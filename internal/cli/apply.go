package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/notation"
)

var applyCmd = &cobra.Command{
	Use:   "apply <sequence>",
	Short: "Apply a Singmaster sequence to a solved cube",
	Long: `Apply a move sequence in Singmaster notation (U D L R F B and the
slices M E S, with ' for counterclockwise) to a solved cube and print
the resulting layout.

Example: cubik apply "U R' F M E' S"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	seq := strings.Join(args, " ")
	moves, ok := notation.ParseSequence(seq)
	if !ok {
		return fmt.Errorf("invalid sequence %q", seq)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, cubik.WithAnimation(false))

	engine, err := cubik.New(opts...)
	if err != nil {
		return err
	}

	for _, mv := range moves {
		mv.Key = engine.Faces()[mv.Face].Key
		if ack := engine.Attempt(mv.KeyForm()); ack != cubik.AckRotating {
			return fmt.Errorf("move %s not applied: %s", notation.Canonical(mv), ack)
		}
		engine.Advance(time.Second)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", notation.CanonicalSequence(engine.Moves()))
	printLayout(cmd, engine)
	return nil
}
