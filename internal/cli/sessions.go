package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/notation"
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	RunE:  runSessions,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session's move log",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum sessions to list")
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-36s  %-20s  %-9s  %s\n", "SESSION", "STARTED", "DURATION", "MOVES")
	for _, s := range sessions {
		duration := "active"
		if s.DurationMs != nil {
			duration = (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second).String()
		}
		count, err := moveRepo.CountBySession(s.SessionID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-36s  %-20s  %-9s  %d\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), duration, count)
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", sess.SessionID)
	fmt.Fprintf(out, "Started: %s\n", sess.StartedAt.Local().Format(time.RFC3339))
	if sess.ShuffleText != nil {
		fmt.Fprintf(out, "Shuffle: %s\n", *sess.ShuffleText)
	}
	fmt.Fprintf(out, "Moves:   %d\n\n", len(moves))

	for _, mv := range moves {
		canon := ""
		if id, ok := cubik.FaceByName(mv.Face); ok {
			canon = notation.Canonical(cubik.Move{Face: id, Dir: cubik.Direction(mv.Direction)})
		}
		fmt.Fprintf(out, "%4d  %-3s  %-3s  %-16s  %s\n", mv.MoveIndex, mv.Notation, canon, mv.Face, mv.Source)
	}
	return nil
}
