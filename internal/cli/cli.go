// Package cli implements the bls2brs command-line interface.
//
// Commands are built with cobra and share a [CLI] value that carries the
// logger, the resolved configuration and the standard streams.
//
// # Commands
//
//   - convert: Convert one or more .bls saves (also the root command, so
//     files can be dropped onto the binary)
//   - rules: List the brick names and patterns the converter understands
//   - cache: Manage the conversion cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports each brick mapping the first time it is seen.
package cli

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bls2brs/pkg/buildinfo"
	"github.com/matzehuels/bls2brs/pkg/cache"
	"github.com/matzehuels/bls2brs/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = buildinfo.Name

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// Errors
// =============================================================================

// reportedError marks an error a command has already shown on its output,
// so main only needs to set the exit status.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Reported reports whether err was already printed by the command that
// returned it.
func Reported(err error) bool {
	var r reportedError
	return stderrors.As(err, &r)
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	// In is read by --pause. Out receives reports and tables.
	In  io.Reader
	Out io.Writer

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command with file arguments converts them, so saves can
// be dropped onto the executable.
func (c *CLI) RootCommand() *cobra.Command {
	opts := convertOpts{}

	root := &cobra.Command{
		Use:   appName + " [files...]",
		Short: "bls2brs converts Blockland saves to Brickadia saves",
		Long: `bls2brs converts Blockland .bls saves into Brickadia .brs saves.

Each input is written next to itself with a .brs extension unless --output
is given. Bricks without a Brickadia equivalent are skipped and listed in
the summary.`,
		Args:          cobra.ArbitraryArgs,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Applied first so the config summary below is logged.
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Logger.Debug("loaded config",
				"map", cfg.Map,
				"author", cfg.Author,
				"formats", cfg.Formats,
				"prefix", cfg.prefixEnabled(),
				"cache", cfg.cacheEnabled())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runConvert(cmd, args, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/bls2brs/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging, including each brick mapping")
	opts.bind(root)

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache || !c.Config.cacheEnabled())
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/bls2brs/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/bls2brs/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
