package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/awareness/internal/model"
)

func TestDefaultQuestions(t *testing.T) {
	t.Parallel()
	qs, err := LoadQuestions("")
	require.NoError(t, err)
	require.Len(t, qs, 6)
	assert.Equal(t, []int{2, 3, 2, 2, 1, 2}, []int{
		qs[0].CorrectAnswer, qs[1].CorrectAnswer, qs[2].CorrectAnswer,
		qs[3].CorrectAnswer, qs[4].CorrectAnswer, qs[5].CorrectAnswer,
	})
}

func TestDefaultSections(t *testing.T) {
	t.Parallel()
	ss, err := LoadSections("")
	require.NoError(t, err)
	require.NotEmpty(t, ss)
	assert.Equal(t, "iam", ss[0].ID)
	assert.Len(t, ss[0].Items, 8)
	for _, s := range ss {
		assert.NotEmpty(t, s.Items, s.ID)
	}
}

func writeFile(tb testing.TB, content string) string {
	tb.Helper()
	p := filepath.Join(tb.TempDir(), "content.json")
	require.NoError(tb, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadQuestionsFromFile(t *testing.T) {
	t.Parallel()
	p := writeFile(t, `[{"id":7,"questionText":"ok?","options":["yes","no"],"correctAnswer":0}]`)
	qs, err := LoadQuestions(p)
	require.NoError(t, err)
	assert.Equal(t, []model.Question{{ID: 7, Text: "ok?", Options: []string{"yes", "no"}, CorrectAnswer: 0}}, qs)
}

func TestLoadQuestionsInvalid(t *testing.T) {
	t.Parallel()
	p := writeFile(t, `[{"id":1,"questionText":"?","options":["only"],"correctAnswer":0}]`)
	_, err := LoadQuestions(p)
	assert.True(t, errors.Is(err, model.ErrInvalidQuestions))

	_, err = LoadQuestions(writeFile(t, `{not json`))
	assert.Error(t, err)

	_, err = LoadQuestions(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadSectionsInvalid(t *testing.T) {
	t.Parallel()
	p := writeFile(t, `[{"id":"a","title":"A","items":[{"id":"x"}]},{"id":"b","title":"B","items":[{"id":"x"}]}]`)
	_, err := LoadSections(p)
	assert.True(t, errors.Is(err, model.ErrInvalidSections))
}
