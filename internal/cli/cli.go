// Package cli implements the sortviz command-line interface.
//
// # Commands
//
// The main commands are:
//   - tui: Animate sorts interactively in the terminal
//   - run: Run one sort headless and print the result
//   - export: Write the call tree of a merge or quick sort as DOT, SVG, PDF or PNG
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and handed to the session controller.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/cache"
	"github.com/matzehuels/sortviz/pkg/config"
	"github.com/matzehuels/sortviz/pkg/sequence"
	"github.com/matzehuels/sortviz/pkg/sorts"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "sortviz"

	// defaultValues is the sequence used when --values is not given.
	defaultValues = "5 3 8 1 9 2 7 4 6"

	// renderCacheTTL bounds how long an exported render is reused.
	renderCacheTTL = 7 * 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	// cacheDir overrides the render cache location; empty uses the user
	// cache directory.
	cacheDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Shared Flags
// =============================================================================

// sortFlags are the flags shared by commands that run a sort.
type sortFlags struct {
	algo   string
	values string
	delay  int
}

func (f *sortFlags) register(cmd *cobra.Command, defaultAlgo string) {
	cmd.Flags().StringVarP(&f.algo, "algo", "a", defaultAlgo, "algorithm: "+strings.Join(kindNames(), ", "))
	cmd.Flags().StringVar(&f.values, "values", defaultValues, "whitespace-separated integers to sort")
	cmd.Flags().IntVar(&f.delay, "delay", -1, "frame delay in milliseconds (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("algo", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return kindNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func kindNames() []string {
	names := make([]string, len(sorts.Kinds))
	for i, k := range sorts.Kinds {
		names[i] = string(k)
	}
	return names
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadConfig reads --config and applies the delay override, if any.
func (c *CLI) loadConfig(delay int) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if delay >= 0 {
		cfg.Animation.DelayMs = delay
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// parseInputs resolves the algorithm name and the value list.
func parseInputs(algo, values string, cfg *config.Config) (sorts.Kind, sequence.Sequence, error) {
	kind, err := sorts.ParseKind(algo)
	if err != nil {
		return "", nil, err
	}
	seq, err := sequence.Parse(values, cfg.Input.MaxValues)
	if err != nil {
		return "", nil, err
	}
	return kind, seq, nil
}

// renderCache opens the export cache. Failing to open it only disables
// caching.
func (c *CLI) renderCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir := c.cacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			c.Logger.Debug("render cache disabled", "err", err)
			return cache.NewNullCache()
		}
		dir = filepath.Join(base, appName)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("render cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}
