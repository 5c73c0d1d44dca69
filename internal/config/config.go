package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds settings resolved from the environment (and an optional .env).
// Root flags override these in main.
type Config struct {
	Theme         string
	QuestionsPath string
	SectionsPath  string
	LogPath       string
	NoColor       bool
}

// Load reads envFile first (a missing file is fine), then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", envFile)
		}
	}

	theme := strings.TrimSpace(os.Getenv("AWARENESS_THEME"))
	if theme == "" {
		theme = "classic"
	}
	_, noColor := os.LookupEnv("NO_COLOR")

	return &Config{
		Theme:         theme,
		QuestionsPath: strings.TrimSpace(os.Getenv("AWARENESS_QUESTIONS")),
		SectionsPath:  strings.TrimSpace(os.Getenv("AWARENESS_SECTIONS")),
		LogPath:       strings.TrimSpace(os.Getenv("AWARENESS_LOG")),
		NoColor:       noColor,
	}, nil
}
