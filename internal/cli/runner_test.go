package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/awareness/internal/checklist"
	"github.com/Makepad-fr/awareness/internal/quiz"
)

func run(t *testing.T, opt Options, args ...string) (code int, out, errOut string) {
	t.Helper()
	var o, e bytes.Buffer
	opt.Out, opt.Err = &o, &e
	code = Run(args, opt)
	return code, o.String(), e.String()
}

func TestHelpAndUnknown(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, Options{}, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Subcommands:")

	code, _, errOut := run(t, Options{}, "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown subcommand: bogus")

	code, _, _ = run(t, Options{})
	assert.Equal(t, 2, code)
}

func TestScoreAllCorrect(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, Options{JSON: true}, "score", "3", "4", "3", "3", "2", "3")
	require.Equal(t, 0, code)

	var res struct {
		Session string `json:"session"`
		quiz.Summary
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	_, err := uuid.Parse(res.Session)
	require.NoError(t, err)
	assert.Equal(t, quiz.Summary{Score: 12, Total: 12, Band: quiz.BandExcellent}, res.Summary)
}

func TestScoreFirstWrongPanel(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, Options{}, "score", "1", "4", "3", "3", "2", "3")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "You scored 10 of 12 points")
	assert.Contains(t, out, quiz.BandExcellent.Message())
}

func TestScoreUsageErrors(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		{"score"},
		{"score", "x"},
		{"score", "1", "2"},
		{"score", "9", "4", "3", "3", "2", "3"},
	} {
		code, _, errOut := run(t, Options{}, args...)
		assert.Equal(t, 2, code, "%v", args)
		assert.NotEmpty(t, errOut)
	}
}

func TestStatusJSON(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, Options{JSON: true}, "status", "iam-mfa", "iam-least-privilege", "iam-password-policy", "iam-offboarding", "iam-mfa")
	require.Equal(t, 0, code)

	var res struct {
		checklist.Scores
		Recommendations []checklist.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Sections)
	assert.Equal(t, "iam", res.Sections[0].SectionID)
	assert.Equal(t, checklist.Score{Checked: 4, Total: 8}, res.Sections[0].Score)
	assert.Equal(t, 4, res.Overall.Checked)
	require.NotEmpty(t, res.Recommendations)
	assert.Equal(t, checklist.SeverityMedium, res.Recommendations[0].Severity)
}

func TestStatusUnknownItem(t *testing.T) {
	t.Parallel()
	code, out, errOut := run(t, Options{}, "status", "nope")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown checklist item")
}

func TestStatusAllChecked(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "sections.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"id":"a","title":"Alpha","items":[{"id":"a1","text":"one"},{"id":"a2","text":"two"}]}]`), 0o644))

	code, out, _ := run(t, Options{SectionsPath: p}, "status", "a1", "a2")
	require.Equal(t, 0, code)
	assert.Contains(t, out, checklist.AllClearMessage)
	assert.Contains(t, out, "Alpha")

	code, out, _ = run(t, Options{SectionsPath: p, JSON: true}, "status")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"severity": "high"`)
}

func TestList(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, Options{}, "ls")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "iam-mfa")
	assert.Contains(t, out, "Identity & Access Management")
}

func TestBadContentPath(t *testing.T) {
	t.Parallel()
	code, _, errOut := run(t, Options{QuestionsPath: filepath.Join(t.TempDir(), "missing.json")}, "score", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "load questions")
}
