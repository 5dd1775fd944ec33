package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/contapix/internal/config"
	"github.com/jask/contapix/internal/tui"
)

func main() {
	validate := flag.Bool("validate", false, "run non-TUI validation scenario")
	flag.Parse()

	if *validate {
		if err := runValidation(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "validation failed:", err)
			os.Exit(1)
		}
		fmt.Println("validation ok")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		log.Fatal("log file", "err", err)
	}
	defer closeLog()

	opts, err := tui.OptionsFromConfig(cfg, logger)
	if err != nil {
		log.Fatal("options", "err", err)
	}
	logger.Info("starting", "initial_balance", opts.InitialBalance.StringFixed(2), "id_strategy", cfg.Account.IDStrategy)

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("bye")
}

// openLogger opens the log file named by the config. The terminal belongs
// to the TUI, so nothing is logged to stderr once the program starts.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "contapix",
		ReportTimestamp: true,
	})
	return logger, func() { _ = f.Close() }, nil
}
