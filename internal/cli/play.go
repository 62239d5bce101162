package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jaroslaw-wieczorek/cubik"
	"github.com/jaroslaw-wieczorek/cubik/internal/recorder"
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

var (
	playNoRecord bool
	playSeed     int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI session on a solved cube.

Keyboard shortcuts:
  t/d/l/r/f/b - Rotate top, bottom, left, right, front, back
  v/h/c       - Rotate the vertical, horizontal, double center slices
                (uppercase reverses any rotation)
  SPACE       - Shuffle (30-60 random moves)
  1-7         - Camera viewpoints
  u           - Undo the last move
  q/Esc       - Quit

Moves are recorded to the session database unless --no-record is set.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Do not record this session")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Random seed for shuffles (0 = time-based)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	layerTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center)

	// Sticker colors keyed by the first letter of the cubie tag.
	stickerStyles = map[byte]lipgloss.Style{
		'W': lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		'Y': lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		'G': lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		'B': lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		'R': lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		'O': lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// Messages
type frameMsg time.Time

const frameInterval = 33 * time.Millisecond

// Model
type playModel struct {
	engine *cubik.Engine

	// Recording
	session   *recorder.Session
	sessionID string

	// Frame timing
	lastFrame time.Time

	// Last input feedback
	lastKey string
	lastAck cubik.Ack

	shuffles int

	// UI
	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(engine *cubik.Engine, session *recorder.Session, sessionID string) *playModel {
	return &playModel{
		engine:    engine,
		session:   session,
		sessionID: sessionID,
		lastFrame: time.Now(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.frameCmd()
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.session != nil {
				if err := m.session.End(); err != nil {
					m.err = err
				}
			}
			return m, tea.Quit

		case "u":
			m.undo()

		default:
			s := msg.String()
			if len(s) == 1 {
				m.lastKey = s
				m.lastAck = m.engine.Attempt(s[0])
				if m.lastAck == cubik.AckShuffle {
					m.shuffles++
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		now := time.Time(msg)
		m.engine.Advance(now.Sub(m.lastFrame))
		m.lastFrame = now
		return m, m.frameCmd()
	}

	return m, nil
}

// undo replays the last move's inverse. It is dropped like any other
// input while a rotation or shuffle is in flight.
func (m *playModel) undo() {
	moves := m.engine.Moves()
	if len(moves) == 0 {
		return
	}
	inv := moves[len(moves)-1].Inverse()
	m.lastKey = "u"
	m.lastAck = m.engine.Attempt(inv.KeyForm())
}

func (m *playModel) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		if m.sessionID != "" {
			msg += fmt.Sprintf("Session recorded: %s (%d moves)\n", m.sessionID, len(m.engine.Moves()))
		}
		return msg
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cubik"))
	b.WriteString("\n\n")

	// Camera and engine state
	cam := m.engine.Camera()
	b.WriteString(statusStyle.Render(fmt.Sprintf("View: %s", cam.Name)))
	b.WriteString("\n")

	switch {
	case m.engine.Shuffling():
		b.WriteString(stateStyle.Render("SHUFFLING..."))
	case m.engine.State() == cubik.StateRotating:
		b.WriteString(stateStyle.Render("Rotating"))
	default:
		b.WriteString(statusStyle.Render("Ready"))
	}
	b.WriteString("\n\n")

	// The cube, one 3x3 grid per horizontal layer
	b.WriteString(m.renderCube())
	b.WriteString("\n")

	// Input feedback
	if m.lastKey != "" {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Last key: %q (%s)", m.lastKey, m.lastAck)))
		b.WriteString("\n")
	}

	// Move history tail
	moves := m.engine.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d", len(moves)))
	if m.shuffles > 0 {
		b.WriteString(fmt.Sprintf("  Shuffles: %d", m.shuffles))
	}
	b.WriteString("\n")
	if len(moves) > 0 {
		start := 0
		prefix := ""
		if len(moves) > 20 {
			start = len(moves) - 20
			prefix = "... "
		}
		b.WriteString(prefix)
		b.WriteString(moveStyle.Render(cubik.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.sessionID != "" {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Session: %s", m.sessionID[:8])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: t d l r f b v h c (shift=reverse)  SPACE=shuffle  1-7=view  u=undo  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// renderCube draws the top, middle, and bottom layers side by side.
// Within a layer, rows run back to front and columns left to right.
func (m *playModel) renderCube() string {
	layout := m.engine.Layout()

	grids := make([]string, 0, 3)
	names := []string{"top", "middle", "bottom"}
	for i, z := range []int{1, 0, -1} {
		var g strings.Builder
		g.WriteString(layerTitleStyle.Width(14).Render(names[i]))
		g.WriteString("\n")
		for y := 1; y >= -1; y-- {
			for x := -1; x <= 1; x++ {
				tag, ok := layout[cubik.GridPos{X: x, Y: y, Z: z}]
				if !ok {
					tag = "." // hidden core
				}
				g.WriteString(renderSticker(tag))
			}
			g.WriteString("\n")
		}
		grids = append(grids, g.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, grids[0], "  ", grids[1], "  ", grids[2])
}

func renderSticker(tag string) string {
	cell := fmt.Sprintf("%-4s", tag)
	if style, ok := stickerStyles[tag[0]]; ok {
		return style.Render(cell)
	}
	return statusStyle.Render(cell)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	if playSeed != 0 {
		opts = append(opts, cubik.WithRandSeed(playSeed))
	}

	engine, err := cubik.New(opts...)
	if err != nil {
		return err
	}

	var session *recorder.Session
	sessionID := ""
	var db *storage.DB
	if !playNoRecord {
		db, err = openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		stateFile, err := recorder.NewDefaultStateFile()
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}

		session = recorder.NewSession(db, stateFile)
		sessionID, err = session.Start("", version)
		if err != nil {
			return err
		}

		// Manual moves go straight to the database; shuffle moves are
		// batched when the sequence completes.
		engine.OnMove(func(mv cubik.Move) {
			if engine.Shuffling() {
				return
			}
			if err := session.RecordMove(mv); err != nil && verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})
		engine.OnShuffleDone(func(count int) {
			history := engine.Moves()
			if count > len(history) {
				count = len(history)
			}
			if err := session.RecordShuffle(history[len(history)-count:]); err != nil && verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})
	}

	model := newPlayModel(engine, session, sessionID)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
