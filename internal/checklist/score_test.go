package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/awareness/internal/model"
)

func TestPercentage(t *testing.T) {
	t.Parallel()
	assert.Zero(t, Percentage(0, 0))
	assert.Zero(t, Score{}.Percentage())
	assert.InDelta(t, 50.0, Percentage(4, 8), 1e-9)
	assert.InDelta(t, 100.0, Percentage(3, 3), 1e-9)
	assert.InDelta(t, 66.666, Percentage(2, 3), 1e-3)
}

func TestDeriveScoresEmptySection(t *testing.T) {
	t.Parallel()
	scores := DeriveScores([]model.Section{{ID: "empty", Title: "Empty"}, section("a", 2)}, map[string]bool{"a-1": true})
	require.Len(t, scores.Sections, 2)
	assert.Equal(t, Score{}, scores.Sections[0].Score)
	assert.False(t, scores.Sections[0].Complete())
	assert.Equal(t, Score{Checked: 1, Total: 2}, scores.Overall)
}

func TestDeriveScoresIgnoresForeignKeys(t *testing.T) {
	t.Parallel()
	scores := DeriveScores([]model.Section{section("a", 2)}, map[string]bool{"b-1": true, "a-2": false})
	assert.Equal(t, Score{Checked: 0, Total: 2}, scores.Overall)
}
