// Package cli implements the treedist command-line interface.
//
// The CLI generates trees, decomposes edge-list files, answers distance
// queries and verifies the oracle against a brute-force reference. It is
// built on cobra, logs with charmbracelet/log and reads an optional TOML
// configuration file (internal/config).
//
// # Commands
//
//   - gen:    write a generated tree as an edge list
//   - build:  decompose an edge list and report statistics
//   - query:  answer a:b distance queries on an edge list
//   - verify: compare the oracle with BFS or gonum on random trees
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedist/internal/config"
)

const appName = "treedist"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	cfg        config.Config
	configPath string
}

// New creates a CLI that logs to logw at level and prints results to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The configuration file named by --config is loaded before any subcommand
// runs and its log_level applied.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "treedist answers tree distance queries with a centroid decomposition",
		Long:         `treedist preprocesses an unweighted tree in O(n log n) and then answers the distance between any two vertices in O(log n).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			c.SetLogLevel(level)
			if c.configPath != "" {
				c.Logger.Debug("Loaded config", "path", c.configPath)
			}
			return nil
		},
	}
	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.genCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.verifyCommand())

	return root
}
