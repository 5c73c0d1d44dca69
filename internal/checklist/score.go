package checklist

import (
	"github.com/Makepad-fr/awareness/internal/model"
)

type Score struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
}

func (s Score) Percentage() float64 { return Percentage(s.Checked, s.Total) }

// Complete is false for an empty section, matching its 0%.
func (s Score) Complete() bool { return s.Total > 0 && s.Checked == s.Total }

type SectionScore struct {
	SectionID string `json:"sectionId"`
	Title     string `json:"title"`
	Score
}

type Scores struct {
	Sections []SectionScore `json:"sections"`
	Overall  Score          `json:"overall"`
}

// Percentage is checked/total*100, and 0 for an empty total.
func Percentage(checked, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(checked) / float64(total) * 100
}

// DeriveScores counts checked items per section, in section order,
// and sums them into the overall score.
func DeriveScores(sections []model.Section, checked map[string]bool) Scores {
	out := Scores{Sections: make([]SectionScore, 0, len(sections))}
	for _, sec := range sections {
		sc := SectionScore{SectionID: sec.ID, Title: sec.Title}
		sc.Total = len(sec.Items)
		for _, it := range sec.Items {
			if checked[it.ID] {
				sc.Checked++
			}
		}
		out.Overall.Checked += sc.Checked
		out.Overall.Total += sc.Total
		out.Sections = append(out.Sections, sc)
	}
	return out
}
