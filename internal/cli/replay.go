package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a recorded session",
	Long: `Apply a session's recorded moves to a fresh cube and print the
resulting layout. Replays run with animation off.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := storage.NewMoveRepository(db).GetBySession(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("session %s has no moves", args[0])
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

	for _, rec := range records {
		key, err := keyForRecord(engine, rec)
		if err != nil {
			return err
		}
		if ack := engine.Attempt(key); ack != cubik.AckRotating {
			return fmt.Errorf("move %d (%s) not applied: %s", rec.MoveIndex, rec.Notation, ack)
		}
		engine.Advance(time.Second)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Replayed %d moves\n", len(records))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", cubik.FormatMoves(engine.Moves()))
	printLayout(cmd, engine)
	return nil
}

// keyForRecord resolves a recorded move to the keystroke that produces
// it on this engine, honoring any rebound keys.
func keyForRecord(engine *cubik.Engine, rec storage.MoveRecord) (byte, error) {
	id, ok := cubik.FaceByName(rec.Face)
	if !ok {
		return 0, fmt.Errorf("unknown face %q in move %d", rec.Face, rec.MoveIndex)
	}
	mv := cubik.Move{Face: id, Dir: cubik.Direction(rec.Direction), Key: engine.Faces()[id].Key}
	return mv.KeyForm(), nil
}
