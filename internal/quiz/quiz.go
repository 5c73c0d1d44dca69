// Package quiz walks a fixed question set, one answer per question,
// and tallies the score.
package quiz

import (
	"github.com/pkg/errors"

	"github.com/Makepad-fr/awareness/internal/model"
)

// PointsPerCorrect is awarded for every correctly answered question.
const PointsPerCorrect = 2

var (
	ErrComplete         = errors.New("quiz is complete")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrNotAnswered      = errors.New("question not answered yet")
	ErrOptionOutOfRange = errors.New("option out of range")
)

// State is one quiz session. The zero value is not usable; build it with New.
// Every rejected operation leaves the state untouched.
type State struct {
	questions []model.Question

	index    int
	score    int
	selected int // -1 when nothing is selected
	answered bool
	feedback bool
	complete bool
}

func New(questions []model.Question) (*State, error) {
	if err := model.ValidateQuestions(questions); err != nil {
		return nil, err
	}
	qs := make([]model.Question, len(questions))
	copy(qs, questions)
	s := &State{questions: qs}
	s.Restart()
	return s, nil
}

// SelectAnswer records the answer for the current question.
// Only the first selection counts.
func (s *State) SelectAnswer(option int) error {
	if s.complete {
		return ErrComplete
	}
	if s.answered {
		return ErrAlreadyAnswered
	}
	q := s.questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return errors.Wrapf(ErrOptionOutOfRange, "option %d, question has %d", option, len(q.Options))
	}
	s.selected = option
	s.answered = true
	if option == q.CorrectAnswer {
		s.score += PointsPerCorrect
	} else {
		s.feedback = true
	}
	return nil
}

// Advance moves past an answered question; past the last one the quiz completes.
func (s *State) Advance() error {
	if s.complete {
		return ErrComplete
	}
	if !s.answered {
		return ErrNotAnswered
	}
	s.selected = -1
	s.answered = false
	s.feedback = false
	if s.index == len(s.questions)-1 {
		s.complete = true
		return nil
	}
	s.index++
	return nil
}

func (s *State) Restart() {
	s.index = 0
	s.score = 0
	s.selected = -1
	s.answered = false
	s.feedback = false
	s.complete = false
}

// Current returns the question being asked; false once the quiz is complete.
func (s *State) Current() (model.Question, bool) {
	if s.complete {
		return model.Question{}, false
	}
	return s.questions[s.index], true
}

func (s *State) Index() int         { return s.index }
func (s *State) Len() int           { return len(s.questions) }
func (s *State) Score() int         { return s.score }
func (s *State) MaxScore() int      { return PointsPerCorrect * len(s.questions) }
func (s *State) Answered() bool     { return s.answered }
func (s *State) ShowFeedback() bool { return s.feedback }
func (s *State) Complete() bool     { return s.complete }

// IsLast reports whether advancing will finish the quiz.
func (s *State) IsLast() bool { return !s.complete && s.index == len(s.questions)-1 }

func (s *State) Selected() (int, bool) {
	if !s.answered {
		return 0, false
	}
	return s.selected, true
}

// CorrectOption is the text shown as corrective feedback after a wrong answer.
func (s *State) CorrectOption() string {
	q, ok := s.Current()
	if !ok {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

func (s *State) Summary() Summary {
	return Summary{
		Score: s.score,
		Total: s.MaxScore(),
		Band:  BandFor(s.score, s.MaxScore()),
	}
}
