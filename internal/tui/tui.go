package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#800080")).
			Padding(0, 2)
)

const instructions = `Checkers: you play white (o / O), the computer plays black (x / X).

  - pieces move diagonally, only on dark squares
  - pawns move forward one square, kings fly any distance
  - captures are mandatory; pawns may capture backwards
  - reach the far row to crown a king

Enter a move as "from_row from_col to_row to_col", e.g. "5 0 4 1".
Commands: new, help, quit.`

// computerMsg 电脑思考结束后送回 Update
type computerMsg struct {
	res engine.SearchResult
	err error
}

type Model struct {
	game   *game.Game
	engine *engine.Engine
	logger zerolog.Logger

	input    textinput.Model
	showHelp bool
	thinking bool
	last     string
	err      error
}

func New(eng *engine.Engine) *Model {
	in := textinput.New()
	in.Placeholder = "5 0 4 1"
	in.CharLimit = 32
	in.Width = 20
	in.Focus()

	return &Model{
		game:     game.New("console"),
		engine:   eng,
		logger:   log.Logger.With().Str("component", "tui").Logger(),
		input:    in,
		showHelp: true,
	}
}

// Run 阻塞直到玩家退出
func Run(eng *engine.Engine) error {
	_, err := tea.NewProgram(New(eng), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) computerTurn() tea.Cmd {
	g, eng := m.game, m.engine
	return func() tea.Msg {
		res, err := g.PlayComputer(eng)
		return computerMsg{res: res, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case computerMsg:
		m.thinking = false
		switch {
		case msg.err == nil:
			m.last = fmt.Sprintf("computer played %s (score %d, %d nodes)", msg.res.BestMove, msg.res.Score, msg.res.Nodes)
		case errors.Is(msg.err, game.ErrNoMoves), errors.Is(msg.err, game.ErrGameOver):
		default:
			m.err = msg.err
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.showHelp {
				m.showHelp = false
				m.input.Reset()
				return m, nil
			}
			if m.thinking {
				return m, nil
			}
			text := m.input.Value()
			m.input.Reset()
			return m, m.submit(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(text string) tea.Cmd {
	m.err = nil
	c, from, to, err := parseInput(text)
	if err != nil {
		m.err = err
		return nil
	}

	switch c {
	case cmdQuit:
		return tea.Quit
	case cmdHelp:
		m.showHelp = true
		return nil
	case cmdNew:
		m.game.Reset()
		m.last = "new game"
		return nil
	}

	mv, err := m.game.PlayHuman(from, to)
	if err != nil {
		m.err = err
		return nil
	}
	m.last = "you played " + mv.String()
	m.logger.Debug().Stringer("move", mv).Msg("human move")

	if m.game.Status().Over {
		return nil
	}
	m.thinking = true
	return m.computerTurn()
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("CHECKERS") + "\n\n")

	if m.showHelp {
		sb.WriteString(instructions + "\n\n")
		sb.WriteString(infoStyle.Render("press enter to continue") + "\n")
		return sb.String()
	}

	b := m.game.Board()
	st := m.game.Status()
	sb.WriteString(boardStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("white %d  black %d", st.WhitePieces, st.BlackPieces)) + "\n")
	if m.last != "" {
		sb.WriteString(m.last + "\n")
	}

	switch {
	case st.Over:
		msg := "Black wins!"
		if st.Winner == checkers.White {
			msg = "White wins!"
		}
		sb.WriteString("\n" + bannerStyle.Render("GAME OVER: "+msg) + "\n")
		sb.WriteString(infoStyle.Render(`type "new" to play again or "quit"`) + "\n")
	case m.thinking:
		sb.WriteString(infoStyle.Render("computer is thinking...") + "\n")
	default:
		sb.WriteString("your move\n")
	}

	sb.WriteString("\n" + m.input.View() + "\n")
	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	return sb.String()
}
