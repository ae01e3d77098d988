// Package commands implements the hookdeps subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/hannajonsd/hookdeps/analyzer"
	"github.com/hannajonsd/hookdeps/config"
	"github.com/hannajonsd/hookdeps/logging"
)

const (
	outputFlag     = "output"
	outputShort    = "o"
	stdoutPath     = "-"
	outputFilePerm = 0o644
	levelDebug     = "debug"
	levelError     = "error"
)

// Options holds the persistent flags shared by every subcommand.
type Options struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// LoadConfig reads the configuration named by the --config flag.
func (o *Options) LoadConfig() (*config.Config, error) {
	return config.LoadConfig(o.ConfigPath)
}

// Logger builds the logger for a run. --verbose and --quiet override the configured level.
func (o *Options) Logger(w io.Writer, cfg *config.Config) (*log.Logger, error) {
	level := cfg.Logging.Level
	switch {
	case o.Verbose:
		level = levelDebug
	case o.Quiet:
		level = levelError
	}

	return logging.New(w, level)
}

// newAnalyzer loads the configuration, lets override adjust it and builds the analyzer.
func (o *Options) newAnalyzer(stderr io.Writer, override func(*config.Config)) (*analyzer.HookAnalyzer, *config.Config, error) {
	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if override != nil {
		override(cfg)
	}

	logger, err := o.Logger(stderr, cfg)
	if err != nil {
		return nil, nil, err
	}

	ha, err := analyzer.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return ha, cfg, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, outputFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
