package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/awareness/internal/quiz"
	"github.com/Makepad-fr/awareness/internal/ui"
)

type quizModel struct {
	state  *quiz.State
	cursor int
	keys   quizKeyMap
	help   help.Model
}

func newQuizModel(s *quiz.State) quizModel {
	h := help.New()
	h.Styles.ShortKey = ui.Current().Help
	h.Styles.ShortDesc = ui.Current().Help
	return quizModel{state: s, keys: newQuizKeyMap(), help: h}
}

// RunQuiz drives s until the user quits. The state is left as the user left it.
func RunQuiz(s *quiz.State) error {
	_, err := tea.NewProgram(newQuizModel(s), tea.WithAltScreen()).Run()
	return err
}

func (m quizModel) Init() tea.Cmd { return nil }

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.state.Restart()
			m.cursor = 0
		case m.state.Complete():
			// only restart and quit apply on the summary screen
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if q, ok := m.state.Current(); ok && m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Next) && m.state.Answered():
			m.advance()
		case key.Matches(msg, m.keys.Choose):
			m.choose(msg.String())
		case key.Matches(msg, m.keys.Next):
			m.advance()
		}
	}
	return m, nil
}

func (m *quizModel) choose(k string) {
	option := m.cursor
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		option = int(k[0] - '1')
	}
	if err := m.state.SelectAnswer(option); err != nil {
		log.Printf("quiz: select %d on question %d: %v", option, m.state.Index()+1, err)
		return
	}
	m.cursor = option
}

func (m *quizModel) advance() {
	if err := m.state.Advance(); err != nil {
		log.Printf("quiz: advance from question %d: %v", m.state.Index()+1, err)
		return
	}
	m.cursor = 0
}

func (m quizModel) View() string {
	if m.state.Complete() {
		return ui.PanelString(SummaryView(m.state.Summary()) + "\n\n" + m.help.ShortHelpView([]key.Binding{m.keys.Restart, m.keys.Quit}))
	}
	t := ui.Current()
	q, _ := m.state.Current()
	selected, answered := m.state.Selected()

	var b strings.Builder
	fmt.Fprintf(&b, "%s   %s\n\n",
		t.Title.Render("Security & privacy quiz"),
		t.Accent.Render(fmt.Sprintf("Question %d of %d", m.state.Index()+1, m.state.Len())),
	)
	b.WriteString(t.Title.Render(q.Text) + "\n\n")
	for i, opt := range q.Options {
		prefix := "  "
		if i == m.cursor && !answered {
			prefix = t.Selected.Render(">") + " "
		}
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if answered && i == selected {
			if i == q.CorrectAnswer {
				line = t.Success.Render(line + " " + t.SymOK)
			} else {
				line = t.Error.Render(line + " " + t.SymFail)
			}
		}
		b.WriteString(prefix + line + "\n")
	}
	if m.state.ShowFeedback() {
		b.WriteString("\n" + t.Pending.Render("The correct answer is: "+m.state.CorrectOption()) + "\n")
	}

	next := "Next question"
	if m.state.IsLast() {
		next = "Finish quiz"
	}
	if answered {
		next = t.Accent.Render("[ " + next + " ]")
	} else {
		next = t.Muted.Render("[ " + next + " ]")
	}
	b.WriteString("\n" + next + "\n\n")
	b.WriteString(m.help.View(m.keys))
	return ui.PanelString(b.String())
}

// SummaryView renders the final score screen; the CLI reuses it.
func SummaryView(s quiz.Summary) string {
	t := ui.Current()
	style := t.Error
	switch s.Band {
	case quiz.BandExcellent:
		style = t.Success
	case quiz.BandGood:
		style = t.Pending
	}
	return strings.Join([]string{
		t.Title.Render("Quiz complete!"),
		fmt.Sprintf("You scored %s of %d points", t.Accent.Render(fmt.Sprint(s.Score)), s.Total),
		ui.ProgressBar(s.Score, s.Total, 24),
		"",
		style.Render(s.Band.Message()),
	}, "\n")
}
