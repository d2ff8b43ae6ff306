// Package cli implements the graphwalk command-line interface.
//
// This package provides commands for running the full analysis pass
// over plain text edge lists (report), single traversals (walk),
// component discovery, cycle detection, DOT/graphviz export, an HTTP
// API server, and cache management. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - report: BFS, DFS, components, and cycle check in one pass
//   - walk: a single BFS or DFS traversal, optionally step-by-step
//   - components: connected component discovery
//   - cycle: cycle detection only
//   - dot: Graphviz DOT/SVG/PNG export
//   - serve: HTTP API for reports
//   - cache: manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/you-dian-tian/graphwalk/pkg/analyze"
	"github.com/you-dian-tian/graphwalk/pkg/buildinfo"
	"github.com/you-dian-tian/graphwalk/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "graphwalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphwalk explores graphs from plain text edge lists",
		Long:         `Graphwalk is a CLI tool for exploring graphs described as plain text edge lists: breadth-first and depth-first traversal, connected component discovery, cycle detection, and Graphviz export.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("load config %s: %w", configPath, err)
				}
				c.Config = cfg
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file with defaults")

	// Register all subcommands
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.cycleCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRunner creates an analysis runner for CLI use.
func (c *CLI) newRunner(noCache bool) *analyze.Runner {
	return analyze.NewRunner(c.newCache(noCache), c.Logger)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warnf("cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the configured cache directory, falling back to the
// XDG standard (~/.cache/graphwalk/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// readInput returns the edge-list bytes for a command: the file named
// by args[0], or stdin when no argument was given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, args[0], nil
}
