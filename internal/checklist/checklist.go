// Package checklist tracks checkbox state over configured sections
// and derives completion scores and recommendations from it.
package checklist

import (
	"github.com/pkg/errors"

	"github.com/Makepad-fr/awareness/internal/model"
)

var (
	ErrUnknownItem    = errors.New("unknown checklist item")
	ErrUnknownSection = errors.New("unknown checklist section")
)

// State holds one checklist session. Scores are re-derived after every
// mutation, so readers never observe stale values.
type State struct {
	sections []model.Section
	owner    map[string]string // item id -> section id

	checked  map[string]bool
	expanded map[string]bool
	scores   Scores
}

func New(sections []model.Section) (*State, error) {
	if err := model.ValidateSections(sections); err != nil {
		return nil, err
	}
	ss := make([]model.Section, len(sections))
	copy(ss, sections)
	s := &State{
		sections: ss,
		owner:    make(map[string]string),
	}
	for _, sec := range ss {
		for _, it := range sec.Items {
			s.owner[it.ID] = sec.ID
		}
	}
	s.Reset()
	return s, nil
}

// Reset unchecks everything and expands every section.
func (s *State) Reset() {
	s.checked = make(map[string]bool, len(s.owner))
	s.expanded = make(map[string]bool, len(s.sections))
	for _, sec := range s.sections {
		s.expanded[sec.ID] = true
	}
	s.scores = DeriveScores(s.sections, s.checked)
}

// Toggle flips an item. Ids outside the configuration are rejected, never inserted.
func (s *State) Toggle(itemID string) error {
	if _, ok := s.owner[itemID]; !ok {
		return errors.Wrapf(ErrUnknownItem, "%q", itemID)
	}
	s.checked[itemID] = !s.checked[itemID]
	s.scores = DeriveScores(s.sections, s.checked)
	return nil
}

// ToggleSectionExpanded only affects rendering.
func (s *State) ToggleSectionExpanded(sectionID string) error {
	if _, ok := s.expanded[sectionID]; !ok {
		return errors.Wrapf(ErrUnknownSection, "%q", sectionID)
	}
	s.expanded[sectionID] = !s.expanded[sectionID]
	return nil
}

func (s *State) Checked(itemID string) bool     { return s.checked[itemID] }
func (s *State) Expanded(sectionID string) bool { return s.expanded[sectionID] }

// Sections returns the configured sections in order.
func (s *State) Sections() []model.Section { return s.sections }

func (s *State) SectionScore(sectionID string) (Score, error) {
	for _, sc := range s.scores.Sections {
		if sc.SectionID == sectionID {
			return sc.Score, nil
		}
	}
	return Score{}, errors.Wrapf(ErrUnknownSection, "%q", sectionID)
}

func (s *State) OverallScore() Score { return s.scores.Overall }

func (s *State) Scores() Scores {
	out := s.scores
	out.Sections = append([]SectionScore(nil), s.scores.Sections...)
	return out
}

func (s *State) Recommendations() []Recommendation {
	return Recommend(s.scores.Sections)
}
