//go:build !tinygo

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lcdmenu/config"
	"lcdmenu/lcd"
	"lcdmenu/menu"
)

const tickInterval = 100 * time.Millisecond

var (
	bezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3A3A3A")).
			Padding(0, 1)
	lcdStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#9BBC0F")).
			Foreground(lipgloss.Color("#0F380F"))
	cursorStyle = lcdStyle.Underline(true).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type tickMsg time.Time

// clockFunc reports milliseconds since an arbitrary start.
type clockFunc func() uint64

func (f clockFunc) Millis() uint64 { return f() }

func wallClock() clockFunc {
	start := time.Now()
	return func() uint64 { return uint64(time.Since(start) / time.Millisecond) }
}

// pressSet latches key presses until the menu polls them.
type pressSet map[menu.Button]bool

func (p pressSet) WasPressed(b menu.Button) bool {
	v := p[b]
	delete(p, b)
	return v
}

type model struct {
	grid    *lcd.Grid
	menu    *menu.Menu
	presses pressSet
	store   menu.Storage
	log     *logRing
}

func newModel(tab config.Table, store menu.Storage, log *logRing, clock menu.Clock) (*model, error) {
	grid := lcd.NewGrid(menu.Rows, menu.Columns)
	items, err := tab.Build(grid, store)
	if err != nil {
		return nil, err
	}
	presses := pressSet{}
	opts := append(tab.Options(), menu.WithLogger(log))
	m, err := menu.New(presses, clock, items, opts...)
	if err != nil {
		return nil, err
	}
	return &model{grid: grid, menu: m, presses: presses, store: store, log: log}, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return tick() }

var keyButtons = map[string]menu.Button{
	"left":  menu.ButtonLeft,
	"h":     menu.ButtonLeft,
	"right": menu.ButtonRight,
	"l":     menu.ButtonRight,
	"up":    menu.ButtonUp,
	"k":     menu.ButtonUp,
	"down":  menu.ButtonDown,
	"j":     menu.ButtonDown,
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if b, ok := keyButtons[msg.String()]; ok {
			m.presses[b] = true
			m.menu.Check()
		}
	case tickMsg:
		m.menu.Check()
		return m, tick()
	}
	return m, nil
}

func (m *model) View() string {
	rows, cols := m.grid.Size()
	cr, cc := m.grid.Cursor()

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			cell := string(m.grid.Cell(r, c))
			if r == cr && c == cc {
				b.WriteString(cursorStyle.Render(cell))
			} else {
				b.WriteString(lcdStyle.Render(cell))
			}
		}
		lines[r] = b.String()
	}
	panel := bezelStyle.Render(strings.Join(lines, "\n"))

	status := fmt.Sprintf("item %d/%d", m.menu.Active()+1, m.menu.Len())
	if s, ok := m.store.(interface{ Stats() (int, int) }); ok {
		programs, erases := s.Stats()
		status += fmt.Sprintf("  flash: %d programs, %d erases", programs, erases)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		helpStyle.Render("←/→ move  ↑/↓ change  q quit"),
		helpStyle.Render(status),
		logStyle.Render(strings.Join(m.log.Lines(), "\n")),
	) + "\n"
}

// logRing keeps the most recent log lines for display.
type logRing struct {
	lines []string
	max   int
}

func newLogRing(max int) *logRing { return &logRing{max: max} }

func (l *logRing) WriteLineString(s string) {
	l.lines = append(l.lines, s)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

func (l *logRing) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *logRing) Lines() []string { return l.lines }
