package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/foss-games/blockfall/internal/engine"
	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/replay"
	"github.com/foss-games/blockfall/internal/scoring"
)

// tickMsg drives the engine forward one fixed timestep, the same way the
// arcade platform's own TickMsg drives its games.
type tickMsg time.Time

func tickCmd(msPerTick uint32) tea.Cmd {
	interval := time.Duration(msPerTick) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// holdWindowTicks is how many ticks a key is still considered held after its
// last KeyMsg. Terminals report key presses, not continuous hold state, so a
// physically-held key arrives as a stream of repeat events at the terminal's
// OS repeat rate; this window bridges the gaps between those events.
const holdWindowTicks = 3

type playModel struct {
	eng     *engine.Engine
	opts    engine.Options
	logger  *log.Logger
	tracker *scoring.Tracker

	lastSeenTick map[keys.Set]int64
	tick         int64

	recordedInputs []replay.Input
	lastHeld       keys.Set

	quitting bool
}

func newPlayModel(opts engine.Options, logger *log.Logger) (*playModel, error) {
	eng, err := engine.New(opts)
	if err != nil {
		return nil, err
	}
	return &playModel{
		eng:          eng,
		opts:         opts,
		logger:       logger,
		tracker:      scoring.NewTracker(),
		lastSeenTick: make(map[keys.Set]int64),
	}, nil
}

func (m *playModel) Init() tea.Cmd {
	return tickCmd(m.opts.MsPerTick)
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if k, ok := keyFromMsg(msg); ok {
		m.lastSeenTick[k] = m.tick
	}
	return m, nil
}

func (m *playModel) heldKeys() keys.Set {
	var held keys.Set
	for k, seenAt := range m.lastSeenTick {
		if m.tick-seenAt <= holdWindowTicks {
			held |= k
		}
	}
	return held
}

func (m *playModel) handleTick() (tea.Model, tea.Cmd) {
	if m.eng.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	held := m.heldKeys()
	if held != m.lastHeld {
		m.recordedInputs = append(m.recordedInputs, replay.Input{Tick: uint32(m.tick), Keys: held})
		m.lastHeld = held
	}

	m.eng.Tick(held)
	m.tracker.Observe(m.eng.Snapshot())
	m.tick++

	if m.eng.Quit() {
		m.logger.Info("game ended", "state", m.eng.Snapshot().State.String(), "score", m.tracker.Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.MsPerTick)
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}
	return renderSnapshot(m.eng.Snapshot(), m.tracker)
}

// keyFromMsg maps a terminal key event onto the engine's virtual key
// bitset. Multiple physical bindings may map to the same virtual key.
func keyFromMsg(msg tea.KeyMsg) (keys.Set, bool) {
	switch msg.String() {
	case "left", "a":
		return keys.Left, true
	case "right", "d":
		return keys.Right, true
	case "down", "s":
		return keys.Down, true
	case "up", "w":
		return keys.Up, true
	case "z":
		return keys.RotateLeft, true
	case "x":
		return keys.RotateRight, true
	case "c":
		return keys.RotateHalf, true
	case "shift+left", "shift+right", "tab":
		return keys.Hold, true
	case "enter":
		return keys.Start, true
	case "r":
		return keys.Restart, true
	case "q", "esc":
		return keys.Quit, true
	default:
		return 0, false
	}
}
