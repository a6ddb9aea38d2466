// Package commands implements the helmscan CLI subcommands. Each command
// is a plain function over io.Writer pairs returning a process exit code,
// so commands are testable without running the binary.
package commands

import (
	"fmt"
	"os"

	"github.com/tmkeel/helmscan/internal/infrastructure/config"
	"github.com/tmkeel/helmscan/internal/infrastructure/logging"
	"github.com/tmkeel/helmscan/internal/nxtimport"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// version is stamped at build time via -ldflags.
var version = "dev"

// setup resolves configuration (file if given, defaults otherwise) and
// builds the logger and parser from it.
func setup(configPath string) (*config.Config, *logging.Logger, *nxtimport.Parser, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, nil, err
		}
		cfg = loaded
	}

	logger := logging.New(cfg.Logging, version)
	parser := &nxtimport.Parser{MaxFileSize: cfg.Import.MaxFileSize}
	return cfg, logger, parser, nil
}

// readProjectFile reads the project export into memory. The configured
// size limit is enforced by the parser, not here.
func readProjectFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return data, nil
}
