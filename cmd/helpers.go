package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/cinematch/internal/catalog"
	"github.com/ziadkadry99/cinematch/internal/config"
	"github.com/ziadkadry99/cinematch/internal/engine"
	"github.com/ziadkadry99/cinematch/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cinematch init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadEngine discovers the catalog files, loads them, and builds the
// recommendation engine. This is the shared startup path of every
// querying command.
func loadEngine(cfg *config.Config) (*engine.Engine, error) {
	files, err := catalog.Discover(cfg.DataDir, cfg.CatalogGlobs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files matching %v under %s", cfg.CatalogGlobs, cfg.DataDir)
	}

	opts := catalog.LoadOptions{
		SkipMalformed: cfg.MissingTitle != config.PolicyFail,
		Reporter:      progress.NewReporter(),
	}
	result, err := catalog.LoadFiles(files, opts)
	if err != nil {
		return nil, err
	}
	if result.Skipped > 0 && verbose {
		fmt.Fprintf(os.Stderr, "Skipped %d row(s) without a title\n", result.Skipped)
	}

	eng, err := engine.Load(result.Entries)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Indexed %d movies from %d file(s)\n", eng.Size(), len(files))
	}
	return eng, nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal, so
// interactive prompts are only offered where someone can answer them.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
