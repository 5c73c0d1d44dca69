package quiz

type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandNeedsImprovement Band = "needs improvement"
)

const (
	excellentPercent = 80
	goodPercent      = 60
)

// Summary is what the final screen shows.
type Summary struct {
	Score int  `json:"score"`
	Total int  `json:"total"`
	Band  Band `json:"band"`
}

// BandFor compares in integers so 80% and 60% land exactly on their band.
func BandFor(score, total int) Band {
	switch {
	case total <= 0:
		return BandNeedsImprovement
	case score*100 >= excellentPercent*total:
		return BandExcellent
	case score*100 >= goodPercent*total:
		return BandGood
	default:
		return BandNeedsImprovement
	}
}

func (b Band) Message() string {
	switch b {
	case BandExcellent:
		return "Well done! You have an excellent grasp of the security and privacy policies."
	case BandGood:
		return "Good! You can still sharpen your knowledge of the security and privacy policies."
	default:
		return "You need to review the security and privacy policies more closely."
	}
}
