package tui

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renkel/dotlife/internal/config"
	"github.com/renkel/dotlife/internal/life"
	"github.com/renkel/dotlife/internal/metrics"
	"github.com/renkel/dotlife/internal/render"
)

type TickMsg time.Time

// Model is the control loop: it owns the grid, the frame, and the
// session RNG, and advances one generation per tick while also
// applying key, mouse, and resize events between ticks.
type Model struct {
	grid    *life.Grid
	frame   *render.Frame
	rng     *rand.Rand
	density float64
	tick    time.Duration
	running bool
	pop     *metrics.Population
	logger  *slog.Logger
}

// NewModel builds a model with an empty grid. The grid takes its real
// dimensions from the first window-size message, which the runtime
// delivers before the first tick.
func NewModel(cfg *config.Config, rng *rand.Rand, pop *metrics.Population, logger *slog.Logger) Model {
	return Model{
		grid:    life.New(0, 0),
		frame:   render.NewFrame(0, 0),
		rng:     rng,
		density: cfg.Density,
		tick:    cfg.Tick(),
		running: true,
		pop:     pop,
		logger:  logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update classifies one event. Quit keys stop the program; a resize
// rebuilds the grid from scratch at the new dimensions; a left-button
// press paints the block under the pointer; a tick advances one
// generation unless paused. Everything else is ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.grid.Randomize(m.rng, m.density)
		}
	case tea.WindowSizeMsg:
		m.grid = life.New(msg.Width*render.BlockWidth, msg.Height*render.BlockHeight)
		m.grid.Randomize(m.rng, m.density)
		m.frame = render.NewFrame(msg.Width, msg.Height)
		m.logger.Info("grid rebuilt",
			"cols", msg.Width, "rows", msg.Height,
			"width", m.grid.Width(), "height", m.grid.Height())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			render.PaintBlock(m.grid, msg.X, msg.Y)
		}
	case TickMsg:
		if m.running {
			m.grid.Step()
			m.pop.Observe(m.grid.Population())
		}
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// View draws the current generation into the frame and commits it.
// The whole visible area is automaton content.
func (m Model) View() string {
	render.Draw(m.grid, m.frame)
	m.frame.Flush()
	return m.frame.String()
}

// Run executes the visualizer until quit, a fatal input error, or
// context cancellation, and returns the session's population observer
// for the exit summary.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*metrics.Population, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pop := metrics.NewPopulation()
	m := NewModel(cfg, rng, pop, logger)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return pop, nil
}
