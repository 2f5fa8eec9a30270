// Package tui is an interactive terminal board of shift dials.
//
// Dials are turned with the mouse (press, drag around the dial centre,
// release to snap) or the keyboard (←/→ turn, enter snaps or sets a typed
// number). The message is typed into a text field and ciphered with ctrl+e
// or deciphered with ctrl+d using the active dials.
package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shiftdial/internal/dial"
	"shiftdial/internal/domain"
)

// keyStep is how far one ←/→ press turns a dial, in degrees.
const keyStep = 5.0

// dialTop is the first screen row of the dial cells (title, blank line).
const dialTop = 2

// resultMsg carries a finished cipher request back into Update.
type resultMsg struct {
	dir domain.Direction
	res domain.CipherResult
	err error
}

// Model is the bubbletea model for the dial board.
type Model struct {
	board    *dial.Board
	ciphers  domain.CipherService
	indexing domain.Indexing
	focus    int // 0..n-1 dials, n is the text field
	dragging int // dial under the mouse, -1 when none
	entry    string
	input    textinput.Model

	output      string
	fingerprint domain.Fingerprint
	lastDir     domain.Direction
	err         error

	keys   keyMap
	help   help.Model
	styles styles
}

// New returns a board of n dials that ciphers through svc, counting the
// schedule with idx.
func New(svc domain.CipherService, n int, idx domain.Indexing) Model {
	ti := textinput.New()
	ti.Placeholder = "message"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 60

	m := Model{
		board:    dial.NewBoard(n),
		ciphers:  svc,
		indexing: idx,
		dragging: -1,
		input:    ti,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
	}
	m.setFocus(m.board.Len()) // start in the text field
	return m
}

// Board returns the dial board.
func (m Model) Board() *dial.Board { return m.board }

// Output returns the last cipher output.
func (m Model) Output() string { return m.output }

// Err returns the last cipher error.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.lastDir = msg.dir
		m.err = msg.err
		if msg.err == nil {
			m.output = msg.res.Output
			m.fingerprint = msg.res.Fingerprint
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-4)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Encode):
			return m, m.apply(domain.Encode)
		case key.Matches(msg, m.keys.Decode):
			return m, m.apply(domain.Decode)
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % (m.board.Len() + 1))
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + m.board.Len()) % (m.board.Len() + 1))
			return m, nil
		}
		if d := m.board.Dial(m.focus); d != nil {
			m.handleDialKey(d, msg)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	if d := m.board.Dial(m.focus); d != nil && d.State() == dial.Dragging {
		d.EndDrag()
	}
	m.focus = i
	m.entry = ""
	if i == m.board.Len() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) handleDialKey(d *dial.Dial, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		d.Rotate(-keyStep)
	case key.Matches(msg, m.keys.Right):
		d.Rotate(keyStep)
	case key.Matches(msg, m.keys.Commit):
		if m.entry != "" {
			if n, err := strconv.Atoi(m.entry); err == nil {
				d.Override(n)
			}
			m.entry = ""
			return
		}
		d.EndDrag()
	case key.Matches(msg, m.keys.Erase):
		if m.entry != "" {
			m.entry = m.entry[:len(m.entry)-1]
		}
	case key.Matches(msg, m.keys.Clear):
		d.Clear()
		m.entry = ""
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			switch {
			case r >= '0' && r <= '9' && len(m.entry) < 4:
				m.entry += string(r)
			case r == '-' && m.entry == "":
				m.entry = "-"
			}
		}
	}
}

// dialCenter returns the screen centre of dial i with rows doubled, since a
// terminal cell is about twice as tall as it is wide.
func dialCenter(i int) (cx, cy float64) {
	return float64(i*cellWidth) + float64(cellWidth)/2, 2 * (float64(dialTop) + float64(cellHeight)/2)
}

// dialAt returns the dial under screen cell (x, y), or -1.
func (m *Model) dialAt(x, y int) int {
	if y < dialTop || y >= dialTop+cellHeight || x < 0 {
		return -1
	}
	i := x / cellWidth
	if i >= m.board.Len() {
		return -1
	}
	return i
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X), 2*float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		i := m.dialAt(msg.X, msg.Y)
		if i < 0 {
			return
		}
		m.setFocus(i)
		cx, cy := dialCenter(i)
		m.board.Dial(i).BeginDrag(x, y, cx, cy)
		m.dragging = i
	case tea.MouseActionMotion:
		if d := m.board.Dial(m.dragging); d != nil {
			cx, cy := dialCenter(m.dragging)
			d.DragTo(x, y, cx, cy)
		}
	case tea.MouseActionRelease:
		if d := m.board.Dial(m.dragging); d != nil {
			d.EndDrag()
		}
		m.dragging = -1
	}
}

func (m Model) apply(dir domain.Direction) tea.Cmd {
	req := domain.CipherRequest{
		Text:      m.input.Value(),
		Slots:     m.board.Slots(),
		Direction: dir,
		Indexing:  m.indexing,
	}
	svc := m.ciphers
	return func() tea.Msg {
		res, err := svc.Apply(context.Background(), req)
		return resultMsg{dir: dir, res: res, err: err}
	}
}

var arrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

func (m Model) viewDial(i int) string {
	d := m.board.Dial(i)
	arrow := arrows[int(math.Round(d.DisplayAngle()/45))%len(arrows)]

	var value string
	switch {
	case i == m.focus && m.entry != "":
		value = m.entry + "_"
	case d.State() == dial.Dragging:
		value = fmt.Sprintf("~%d", d.PreviewShift())
	case d.Active():
		value = m.styles.Active.Render(fmt.Sprintf("%d %c", d.Shift(), 'A'+rune(d.Shift())))
	default:
		value = m.styles.Muted.Render("--")
	}

	body := strings.Join([]string{
		fmt.Sprintf("dial %d", i+1),
		arrow,
		value,
		m.styles.Muted.Render(fmt.Sprintf("%.1f°", d.DisplayAngle())),
	}, "\n")

	style := m.styles.Dial
	if i == m.focus {
		style = m.styles.Focused
	}
	return style.Render(body)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("shiftdial"))
	b.WriteString("\n\n")

	cells := make([]string, m.board.Len())
	for i := range cells {
		cells[i] = m.viewDial(i)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	out := m.output
	if out == "" {
		out = m.styles.Muted.Render("(no output)")
	}
	b.WriteString(m.styles.Output.Render(out))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
	case m.fingerprint != "":
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s with key %s", m.lastDir, m.fingerprint)))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the board full screen with mouse support until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
