package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Makepad-fr/awareness/internal/checklist"
	"github.com/Makepad-fr/awareness/internal/quiz"
	"github.com/Makepad-fr/awareness/internal/store/jsonstore"
	"github.com/Makepad-fr/awareness/internal/tui"
	"github.com/Makepad-fr/awareness/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	JSON          bool // machine-readable output for score/status
	QuestionsPath string
	SectionsPath  string

	Out, Err io.Writer // default to stdout/stderr
}

func (o *Options) defaults() {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "quiz":
		return doQuiz(opt)

	case "checklist":
		return doChecklist(opt)

	case "score":
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: awareness score <answer...>")
			return 2
		}
		answers := make([]int, 0, len(a))
		for _, s := range a {
			n, err := strconv.Atoi(s)
			if err != nil {
				ui.Fail(opt.Err, "score: not a number: "+s)
				return 2
			}
			answers = append(answers, n)
		}
		return doScore(answers, opt)

	case "status":
		return doStatus(a, opt)

	case "ls":
		return doList(opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `awareness - security awareness quiz and checklist

Usage:
  awareness [flags] <subcommand> [args]

Subcommands:
  quiz                 Take the quiz (interactive TUI)
  checklist            Work through the security checklist (interactive TUI)
  score <answer...>    Score one 1-based option number per question, in order
  status [item-id...]  Show checklist progress with the given items checked
  ls                   List checklist sections and item ids

Flags:
  -theme classic|neon|mono
  -json                JSON output for score and status
  -questions <file>    Load questions from a JSON file
  -sections <file>     Load checklist sections from a JSON file
  -env <file>          Environment file (default .env)

Examples:
  awareness quiz
  awareness score 3 4 3 3 2 3
  awareness status iam-mfa iam-sso
`)
}

// -------------- subcommand impls ----------------

func newQuiz(opt Options) (*quiz.State, error) {
	qs, err := jsonstore.LoadQuestions(opt.QuestionsPath)
	if err != nil {
		return nil, errors.Wrap(err, "load questions")
	}
	return quiz.New(qs)
}

func newChecklist(opt Options) (*checklist.State, error) {
	ss, err := jsonstore.LoadSections(opt.SectionsPath)
	if err != nil {
		return nil, errors.Wrap(err, "load sections")
	}
	return checklist.New(ss)
}

func doQuiz(opt Options) int {
	s, err := newQuiz(opt)
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	if err := tui.RunQuiz(s); err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	if s.Complete() {
		ui.Panel(opt.Out, []string{tui.SummaryView(s.Summary())})
	}
	return 0
}

func doChecklist(opt Options) int {
	s, err := newChecklist(opt)
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	if err := tui.RunChecklist(s); err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	o := s.OverallScore()
	ui.OK(opt.Out, fmt.Sprintf("checklist %d/%d (%.0f%%)", o.Checked, o.Total, o.Percentage()))
	return 0
}

type scoreResult struct {
	Session string `json:"session"`
	quiz.Summary
	Answers []int `json:"answers"`
}

func doScore(answers []int, opt Options) int {
	s, err := newQuiz(opt)
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	if len(answers) != s.Len() {
		ui.Fail(opt.Err, fmt.Sprintf("score: need %d answers, got %d", s.Len(), len(answers)))
		return 2
	}
	for i, n := range answers {
		if err := s.SelectAnswer(n - 1); err != nil {
			ui.Fail(opt.Err, fmt.Sprintf("score: question %d: %v", i+1, err))
			return 2
		}
		if err := s.Advance(); err != nil {
			ui.Fail(opt.Err, fmt.Sprintf("score: question %d: %v", i+1, err))
			return 1
		}
	}

	if opt.JSON {
		return writeJSON(opt, scoreResult{Session: uuid.NewString(), Summary: s.Summary(), Answers: answers})
	}
	ui.Panel(opt.Out, []string{tui.SummaryView(s.Summary())})
	return 0
}

type statusResult struct {
	Session string `json:"session"`
	checklist.Scores
	Recommendations []checklist.Recommendation `json:"recommendations"`
}

func doStatus(ids []string, opt Options) int {
	s, err := newChecklist(opt)
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	for _, id := range ids {
		if s.Checked(id) {
			continue
		}
		if err := s.Toggle(id); err != nil {
			ui.Fail(opt.Err, "status: "+err.Error())
			fmt.Fprintln(opt.Err, ui.Current().Muted.Render("Hint: run `awareness ls` to see valid ids"))
			return 2
		}
	}

	recs := s.Recommendations()
	if opt.JSON {
		if recs == nil {
			recs = []checklist.Recommendation{}
		}
		return writeJSON(opt, statusResult{Session: uuid.NewString(), Scores: s.Scores(), Recommendations: recs})
	}

	t := ui.Current()
	o := s.OverallScore()
	lines := []string{
		t.Title.Render("Security checklist"),
		t.Muted.Render(ui.ProgressBar(o.Checked, o.Total, 28)),
		"",
	}
	for _, sc := range s.Scores().Sections {
		lines = append(lines, fmt.Sprintf("%-32s %2d/%-2d %s", sc.Title, sc.Checked, sc.Total, ui.ProgressBar(sc.Checked, sc.Total, 12)))
	}
	lines = append(lines, "", tui.RecommendationsView(recs))
	ui.Panel(opt.Out, lines)
	return 0
}

func doList(opt Options) int {
	s, err := newChecklist(opt)
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	t := ui.Current()
	var lines []string
	for i, sec := range s.Sections() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(sec.Title)+" "+t.Muted.Render("("+sec.ID+")"))
		if len(sec.Items) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
		}
		for _, it := range sec.Items {
			lines = append(lines, fmt.Sprintf("  %-24s %s", it.ID, it.Text))
		}
	}
	ui.Panel(opt.Out, lines)
	return 0
}

func writeJSON(opt Options, v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		ui.Fail(opt.Err, "json marshal: "+err.Error())
		return 1
	}
	fmt.Fprintln(opt.Out, string(b))
	return 0
}
