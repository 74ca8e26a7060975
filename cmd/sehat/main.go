package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/sehat/internal/cli"
	"github.com/alexanderramin/sehat/internal/config"
	"github.com/alexanderramin/sehat/internal/i18n"
	"github.com/alexanderramin/sehat/internal/symptom"
	"github.com/alexanderramin/sehat/internal/triage"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Metrics are always collected; --metrics or SEHAT_METRICS prints them.
	reg := prometheus.NewRegistry()
	metrics := triage.NewMetrics(reg)

	observers := triage.MultiObserver{metrics.Observer()}
	if cfg.LogCalls {
		observers = append(observers, triage.NewLogObserver(os.Stderr))
	}

	classifier, err := triage.NewClassifier(symptom.Default(), i18n.Default(), triage.WithObserver(observers))
	if err != nil {
		return fmt.Errorf("building classifier: %w", err)
	}

	app := &cli.App{
		Classifier:      classifier,
		Language:        i18n.NewPreference(cfg.Lang()),
		EmergencyNumber: cfg.EmergencyNumber,
		Gatherer:        reg,
		DumpMetrics:     cfg.Metrics,
	}

	// The bare command opens the checker only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
