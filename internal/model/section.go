package model

import (
	"strings"

	"github.com/pkg/errors"
)

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Section groups checklist items for sub-scoring.
type Section struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

var ErrInvalidSections = errors.New("invalid sections")

// ValidateSections enforces unique, non-blank section and item ids.
// Item ids are unique across all sections, not just within one.
// A section without items is allowed.
func ValidateSections(sections []Section) error {
	sectionIDs := make(map[string]struct{}, len(sections))
	itemIDs := make(map[string]string)
	for _, s := range sections {
		if strings.TrimSpace(s.ID) == "" {
			return errors.Wrapf(ErrInvalidSections, "section %q: empty id", s.Title)
		}
		if _, dup := sectionIDs[s.ID]; dup {
			return errors.Wrapf(ErrInvalidSections, "duplicate section id %q", s.ID)
		}
		sectionIDs[s.ID] = struct{}{}
		for _, it := range s.Items {
			if strings.TrimSpace(it.ID) == "" {
				return errors.Wrapf(ErrInvalidSections, "section %q: item with empty id", s.ID)
			}
			if owner, dup := itemIDs[it.ID]; dup {
				return errors.Wrapf(ErrInvalidSections, "item id %q used in %q and %q", it.ID, owner, s.ID)
			}
			itemIDs[it.ID] = s.ID
		}
	}
	return nil
}
