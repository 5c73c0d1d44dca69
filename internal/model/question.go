package model

import (
	"github.com/pkg/errors"
)

// Question is one multiple-choice entry of the quiz.
// CorrectAnswer indexes into Options.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

var ErrInvalidQuestions = errors.New("invalid questions")

// ValidateQuestions checks a question set before an engine is built on it.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return errors.Wrap(ErrInvalidQuestions, "no questions")
	}
	seen := make(map[int]struct{}, len(questions))
	for i, q := range questions {
		if _, dup := seen[q.ID]; dup {
			return errors.Wrapf(ErrInvalidQuestions, "duplicate id %d", q.ID)
		}
		seen[q.ID] = struct{}{}
		if len(q.Options) < 2 {
			return errors.Wrapf(ErrInvalidQuestions, "question #%d: need at least 2 options, have %d", i+1, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return errors.Wrapf(ErrInvalidQuestions, "question #%d: correct answer %d out of range [0,%d)", i+1, q.CorrectAnswer, len(q.Options))
		}
	}
	return nil
}
