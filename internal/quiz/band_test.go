package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score, total int
		band         Band
	}{
		{12, 12, BandExcellent},
		{10, 12, BandExcellent},
		{8, 10, BandExcellent},
		{8, 12, BandGood},
		{6, 10, BandGood},
		{7, 12, BandNeedsImprovement},
		{0, 12, BandNeedsImprovement},
		{0, 0, BandNeedsImprovement},
	}
	for _, c := range cases {
		assert.Equal(t, c.band, BandFor(c.score, c.total), "%d/%d", c.score, c.total)
	}
}

func TestBandsCoverEveryScore(t *testing.T) {
	t.Parallel()
	for total := 2; total <= 40; total += 2 {
		prev := BandNeedsImprovement
		rank := map[Band]int{BandNeedsImprovement: 0, BandGood: 1, BandExcellent: 2}
		for score := 0; score <= total; score++ {
			b := BandFor(score, total)
			_, known := rank[b]
			assert.True(t, known)
			assert.GreaterOrEqual(t, rank[b], rank[prev])
			prev = b
		}
		assert.Equal(t, BandExcellent, prev)
	}
}

func TestBandMessage(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, BandExcellent.Message(), BandGood.Message())
	assert.NotEqual(t, BandGood.Message(), BandNeedsImprovement.Message())
}
