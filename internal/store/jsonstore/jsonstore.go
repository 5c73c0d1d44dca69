package jsonstore

import (
	"embed"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/Makepad-fr/awareness/internal/model"
)

// JSON-backed content. The defaults ship inside the binary; a path
// replaces them with a user-supplied file. Nothing is ever written back.

//go:embed defaults/*.json
var defaults embed.FS

const (
	questionsFile = "defaults/questions.json"
	sectionsFile  = "defaults/sections.json"
)

func read(path, fallback string) ([]byte, error) {
	if path == "" {
		b, err := defaults.ReadFile(fallback)
		return b, errors.Wrap(err, "read embedded content")
	}
	b, err := os.ReadFile(path)
	return b, errors.Wrapf(err, "read %s", path)
}

func LoadQuestions(path string) ([]model.Question, error) {
	b, err := read(path, questionsFile)
	if err != nil {
		return nil, err
	}
	var qs []model.Question
	if err := json.Unmarshal(b, &qs); err != nil {
		return nil, errors.Wrap(err, "json unmarshal questions")
	}
	if err := model.ValidateQuestions(qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func LoadSections(path string) ([]model.Section, error) {
	b, err := read(path, sectionsFile)
	if err != nil {
		return nil, err
	}
	var ss []model.Section
	if err := json.Unmarshal(b, &ss); err != nil {
		return nil, errors.Wrap(err, "json unmarshal sections")
	}
	if err := model.ValidateSections(ss); err != nil {
		return nil, err
	}
	return ss, nil
}
