// Package cli implements the cliquechain command-line interface.
//
// This package provides commands for enumerating clique configurations,
// printing the breakdown table with its recurrence check, exporting clique
// graphs, browsing configurations interactively and serving the HTTP API.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - enumerate: List all valid configurations for a single n
//   - table: Sweep n = 1..max and verify the recurrence a(n+1) = 3·a(n) − 1
//   - render: Export a configuration's clique graph as DOT or SVG
//   - browse: Interactively scroll through configurations
//   - serve: Run the HTTP API
//   - cache: Manage the local result cache
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquechain/pkg/buildinfo"
	"github.com/matzehuels/cliquechain/pkg/cache"
	"github.com/matzehuels/cliquechain/pkg/config"
	"github.com/matzehuels/cliquechain/pkg/series"
)

// appName is the application name used for directories and display.
const appName = "cliquechain"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the defaults
// from the config file (when one exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		// A broken config file must not make the CLI unusable.
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = config.Default()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cliquechain enumerates clique configurations over 1..n",
		Long: `Cliquechain enumerates the collections of cliques over the integers 1..n
in which every integer belongs to exactly one or two cliques and no clique
is a proper subset of another. It prints breakdowns by ending clique size
and verifies the count recurrence a(n+1) = 3·a(n) − 1.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a series runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*series.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return series.NewRunner(backend, nil, c.Logger), nil
}

// newCache selects the cache backend. Failures to reach the configured
// backend fall back to no caching rather than aborting the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Cache.Redis.Addr,
			Password: c.Config.Cache.Redis.Password,
			DB:       c.Config.Cache.Redis.DB,
		})
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", c.Config.Cache.Redis.Addr, "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the cache directory using XDG standard
// (~/.cache/cliquechain/).
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

// configPath returns the config file path using XDG standard
// (~/.config/cliquechain/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
