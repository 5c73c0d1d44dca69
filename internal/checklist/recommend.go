package checklist

import "fmt"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// AllClearMessage replaces the recommendation list when it is empty.
const AllClearMessage = "Great job! Every security control on the checklist is in place."

type Recommendation struct {
	SectionID    string   `json:"sectionId"`
	SectionTitle string   `json:"sectionTitle"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
}

// Recommend emits one entry per section below 100%, in section order.
// Boundaries belong to the higher band: exactly 50% is medium, exactly 75% is low.
func Recommend(scores []SectionScore) []Recommendation {
	var out []Recommendation
	for _, sc := range scores {
		sev, ok := severityFor(sc.Score)
		if !ok {
			continue
		}
		out = append(out, Recommendation{
			SectionID:    sc.SectionID,
			SectionTitle: sc.Title,
			Severity:     sev,
			Message:      message(sev, sc),
		})
	}
	return out
}

// severityFor works on checked*100 vs threshold*total to keep the
// boundaries exact. An empty section counts as 0%.
func severityFor(s Score) (Severity, bool) {
	if s.Total == 0 {
		return SeverityHigh, true
	}
	pct := s.Checked * 100
	switch {
	case pct < 50*s.Total:
		return SeverityHigh, true
	case pct < 75*s.Total:
		return SeverityMedium, true
	case pct < 100*s.Total:
		return SeverityLow, true
	default:
		return "", false
	}
}

func message(sev Severity, sc SectionScore) string {
	missing := sc.Total - sc.Checked
	switch sev {
	case SeverityHigh:
		return fmt.Sprintf("Critical gaps in %s: %d of %d controls are missing, address them first.", sc.Title, missing, sc.Total)
	case SeverityMedium:
		return fmt.Sprintf("%s is partly covered: plan the remaining %d controls soon.", sc.Title, missing)
	default:
		return fmt.Sprintf("%s is nearly done: finish the last %d control(s).", sc.Title, missing)
	}
}
