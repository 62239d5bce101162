// Package cli implements the command-line interface for cubik.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/config"
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubik",
	Short: "Interactive twisty cube",
	Long: `Cubik - an interactive Rubik's Cube played from the terminal.

Rotate layers with single key presses (lowercase one way, uppercase the
other), shuffle with SPACE, and switch viewpoints with the digit keys.
Every session's moves can be recorded and replayed later.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubik/cubik.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubik/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads the config file named by the flag, or the default.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// openDB opens the database selected by flag, config, or default, and
// runs migrations.
func openDB(cfg *config.Config) (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.Database.Path
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// engineOptions translates the config into engine options.
func engineOptions(cfg *config.Config) ([]cubik.Option, error) {
	opts := []cubik.Option{
		cubik.WithAnimation(cfg.Animation.Enabled),
		cubik.WithAnimationDuration(durationMs(cfg.Animation.DurationMs)),
		cubik.WithShuffleRange(cfg.Shuffle.MinMoves, cfg.Shuffle.MaxMoves),
		cubik.WithShuffleDelays(durationMs(cfg.Shuffle.InitialDelayMs), durationMs(cfg.Shuffle.MoveDelayMs)),
	}

	for name, key := range cfg.KeyBindings() {
		id, ok := cubik.FaceByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown face %q in config", name)
		}
		opts = append(opts, cubik.WithKeyBinding(id, key[0]))
	}

	return opts, nil
}

func durationMs(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
