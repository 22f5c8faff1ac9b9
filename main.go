package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"qtermbloch/internal/sim"
)

// config holds the command-line settings.
type config struct {
	preset       string
	historyLimit int
	logPath      string
	qasmPath     string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.preset, "preset", "zero", "Initial state (zero, one, plus, minus, i_plus, i_minus)")
	flag.IntVar(&cfg.historyLimit, "history", 0, "Maximum undo depth (0 = unbounded)")
	flag.StringVar(&cfg.logPath, "log", "", "Write a JSON log to this file")
	flag.StringVar(&cfg.qasmPath, "qasm", "state.qasm", "Path written by the QASM export key")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	logger, err := newLogger(cfg.logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine, err := sim.New(
		sim.WithLogger(logger.Named("sim")),
		sim.WithHistoryLimit(cfg.historyLimit),
		sim.WithInitialPreset(cfg.preset),
	)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	p := tea.NewProgram(initialModel(engine, logger.Named("tui"), cfg.qasmPath), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
