package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/awareness/internal/cli"
	"github.com/Makepad-fr/awareness/internal/config"
	"github.com/Makepad-fr/awareness/internal/tui"
	"github.com/Makepad-fr/awareness/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand); they win over the environment.
	envFile := flag.String("env", ".env", "environment file to load")
	theme := flag.String("theme", "", "classic, neon or mono")
	asJSON := flag.Bool("json", false, "JSON output for score and status")
	questions := flag.String("questions", "", "questions JSON file")
	sections := flag.String("sections", "", "checklist sections JSON file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if cfg.NoColor {
		cfg.Theme = "mono"
	}
	if *questions != "" {
		cfg.QuestionsPath = *questions
	}
	if *sections != "" {
		cfg.SectionsPath = *sections
	}
	ui.SetTheme(cfg.Theme)

	closeLog, err := tui.SetupLog(cfg.LogPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		closeLog()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		JSON:          *asJSON,
		QuestionsPath: cfg.QuestionsPath,
		SectionsPath:  cfg.SectionsPath,
	})
	closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
