package tui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/awareness/internal/checklist"
	"github.com/Makepad-fr/awareness/internal/ui"
)

// row adapts a section header or a checklist item to bubbles/list.Item.
type row struct {
	sectionID string
	itemID    string // empty for section headers
	text      string
}

func (r row) header() bool        { return r.itemID == "" }
func (r row) FilterValue() string { return r.text }

func rows(s *checklist.State) []list.Item {
	var out []list.Item
	for _, sec := range s.Sections() {
		out = append(out, row{sectionID: sec.ID, text: sec.Title})
		if !s.Expanded(sec.ID) {
			continue
		}
		for _, it := range sec.Items {
			out = append(out, row{sectionID: sec.ID, itemID: it.ID, text: it.Text})
		}
	}
	return out
}

// Custom delegate to control how rows render (single line)
type rowDelegate struct {
	state *checklist.State
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}

	if r.header() {
		fold := t.Collapsed
		if d.state.Expanded(r.sectionID) {
			fold = t.Expanded
		}
		sc, _ := d.state.SectionScore(r.sectionID)
		fmt.Fprintf(w, "%s%s %s  %s %s\n", prefix, fold, t.Title.Render(r.text),
			t.Muted.Render(fmt.Sprintf("%d/%d", sc.Checked, sc.Total)),
			t.Muted.Render(ui.ProgressBar(sc.Checked, sc.Total, 10)))
		return
	}

	box := t.Muted.Render(t.BoxUnchecked)
	text := r.text
	if d.state.Checked(r.itemID) {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	fmt.Fprintf(w, "%s  %s %s\n", prefix, box, text)
}

type checklistModel struct {
	state *checklist.State
	list  list.Model
	keys  checklistKeyMap
}

func newChecklistModel(s *checklist.State) checklistModel {
	l := list.New(rows(s), rowDelegate{state: s}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help

	keys := newChecklistKeyMap()
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	m := checklistModel{state: s, list: l, keys: keys}
	m.list.Title = m.title()
	return m
}

// RunChecklist drives s until the user quits.
func RunChecklist(s *checklist.State) error {
	_, err := tea.NewProgram(newChecklistModel(s), tea.WithAltScreen()).Run()
	return err
}

func (m checklistModel) title() string {
	t := ui.Current()
	o := m.state.OverallScore()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Security checklist"),
		t.Success.Render(t.SymOK), o.Checked,
		t.Pending.Render(t.SymPending), o.Total-o.Checked,
		t.Accent.Render("Total"), o.Total,
	)
}

func (m checklistModel) Init() tea.Cmd { return nil }

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-recommendationLines(m.state)-6)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle, m.keys.Expand):
			return m, m.activate()
		case key.Matches(msg, m.keys.Reset):
			m.state.Reset()
			return m, m.refresh()
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// activate acts on the selected row: headers fold, items toggle.
func (m *checklistModel) activate() tea.Cmd {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return nil
	}
	var err error
	if r.header() {
		err = m.state.ToggleSectionExpanded(r.sectionID)
	} else {
		err = m.state.Toggle(r.itemID)
	}
	if err != nil {
		log.Printf("checklist: %v", err)
		return nil
	}
	return m.refresh()
}

func (m *checklistModel) refresh() tea.Cmd {
	items := rows(m.state)
	cmd := m.list.SetItems(items)
	if len(items) > 0 && m.list.Index() >= len(items) {
		m.list.Select(len(items) - 1)
	}
	m.list.Title = m.title()
	return cmd
}

func (m checklistModel) View() string {
	t := ui.Current()
	o := m.state.OverallScore()
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n" + t.Accent.Render("Overall ") + ui.ProgressBar(o.Checked, o.Total, 28) + "\n\n")
	b.WriteString(RecommendationsView(m.state.Recommendations()))
	return ui.PanelString(b.String())
}

func recommendationLines(s *checklist.State) int {
	if n := len(s.Recommendations()); n > 0 {
		return n + 1
	}
	return 1
}

// RecommendationsView lists advice per section, or congratulates when
// there is none left.
func RecommendationsView(recs []checklist.Recommendation) string {
	t := ui.Current()
	if len(recs) == 0 {
		return t.Success.Render(t.SymOK + " " + checklist.AllClearMessage)
	}
	lines := []string{t.Title.Render("Recommendations")}
	for _, r := range recs {
		style := t.Low
		switch r.Severity {
		case checklist.SeverityHigh:
			style = t.High
		case checklist.SeverityMedium:
			style = t.Medium
		}
		lines = append(lines, fmt.Sprintf("%s %s", style.Render(fmt.Sprintf("[%-6s]", r.Severity)), r.Message))
	}
	return strings.Join(lines, "\n")
}
