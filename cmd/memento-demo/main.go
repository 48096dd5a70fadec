// Package main provides the memento demo driver. It walks an
// Originator and a History through a scripted sequence of set, save,
// and restore steps, printing the state observed after each restore.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/entrhq/memento/pkg/logging"
	"github.com/entrhq/memento/pkg/scenario"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ScenarioFile string
	LogDir       string
	ShowVersion  bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("memento-demo v%s\n", version)
		return
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *CLIConfig {
	config := &CLIConfig{}

	flag.StringVar(&config.ScenarioFile, "scenario", "", "Path to a scenario file (YAML); defaults to the built-in two-state walkthrough")
	flag.StringVar(&config.LogDir, "log-dir", "", "Directory for session logs (default ~/.memento/logs)")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Memento Demo - Save/Restore Pattern Walkthrough\n\n")
		fmt.Fprintf(os.Stderr, "Usage: memento-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Run the built-in walkthrough\n")
		fmt.Fprintf(os.Stderr, "  memento-demo\n\n")
		fmt.Fprintf(os.Stderr, "  # Run a custom scenario\n")
		fmt.Fprintf(os.Stderr, "  memento-demo -scenario walkthrough.yaml\n\n")
	}

	flag.Parse()
	return config
}

func run(config *CLIConfig) error {
	logger, err := logging.NewFileLogger("demo", config.LogDir)
	if err != nil {
		// The fallback logger still works; note the degraded mode and continue.
		logger.Warnf("file logging unavailable: %v", err)
	}
	defer logger.Close()

	s := scenario.Default()
	if config.ScenarioFile != "" {
		loaded, err := scenario.Load(config.ScenarioFile)
		if err != nil {
			logger.Errorf("failed to load scenario: %v", err)
			return err
		}
		s = loaded
	}

	logger.Infof("running scenario %q (%d steps)", s.Name, len(s.Steps))

	if err := scenario.Run(s, os.Stdout); err != nil {
		logger.Errorf("scenario failed: %v", err)
		return err
	}

	logger.Infof("scenario complete")
	return nil
}
