package tui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// SetupLog routes the standard logger to path, or discards it when path is
// empty; anything printed to stderr would tear the alt screen.
func SetupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "awareness")
	if err != nil {
		return nil, errors.Wrapf(err, "open log %s", path)
	}
	return func() { _ = f.Close() }, nil
}
