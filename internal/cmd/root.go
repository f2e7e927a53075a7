// Package cmd contains all CLI commands for og.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/anthropics/og/internal/config"
	"github.com/anthropics/og/internal/output"
	"github.com/anthropics/og/internal/state"
)

var (
	// Version is the current version of og
	Version = "0.1.0"

	// Global flags
	verbose      bool
	configPath   string
	outputFormat string
	forAgents    bool

	// Resolved at startup by the root PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "og",
	Short: "Organizational knowledge graph toolkit",
	Long: `og builds, stores, and serves organizational knowledge graphs.

A graph holds typed entities (people, departments, systems, vendors,
risks, and two dozen more kinds) connected by typed relationships, with
every relationship checked against a domain/range catalog. Graphs are
generated synthetically at a chosen scale, imported from canonical JSON,
and queried through a tool registry exposed over REST, ATP, and MCP.

Main capabilities:
  - Generate a full synthetic organization from an industry profile
  - Inspect, import, export, shard, and merge graph files
  - Serve the query tools to agents over REST, ATP, or MCP
  - Benchmark the generation pipeline across scales

Global Flags:
  --format    Output format: text (default) | json | yaml
  --config    Path to config file (default: .og/config.yaml, walking up)
  --verbose   Debug-level logging

Examples:
  og demo                            # Generate and export a demo graph
  og generate org --employees 500    # Full pipeline at a chosen scale
  og inspect graph.json              # Load a graph and print statistics
  og serve --rest 127.0.0.1:8420     # REST adapter over the tool registry
  og serve --mcp                     # MCP server on stdio

See 'og <command> --help' for command-specific options.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRoot()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Logger buffers are
// flushed before the process exits.
func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .og/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text|json|yaml)")
	rootCmd.Flags().BoolVar(&forAgents, "for-agents", false, "Output machine-readable capability discovery JSON")

	// Set custom help function to intercept --for-agents flag
	originalHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if forAgents {
			outputAgentHelp(cmd)
			return
		}
		originalHelp(cmd, args)
	})
}

// CommandInfo represents a command for agent discovery
type CommandInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Flags       []FlagInfo    `json:"flags,omitempty"`
	Subcommands []CommandInfo `json:"subcommands,omitempty"`
}

// FlagInfo represents a command flag for agent discovery
type FlagInfo struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

// outputAgentHelp outputs machine-readable JSON describing all commands
func outputAgentHelp(cmd *cobra.Command) {
	root := buildCommandInfo(cmd.Root())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{
		"version":      Version,
		"commands":     root.Subcommands,
		"global_flags": root.Flags,
	})
}

// buildCommandInfo recursively builds command information for agent discovery
func buildCommandInfo(cmd *cobra.Command) CommandInfo {
	info := CommandInfo{
		Name:        cmd.Name(),
		Description: cmd.Short,
		Usage:       cmd.UseLine(),
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		info.Flags = append(info.Flags, FlagInfo{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
		})
	})

	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			info.Subcommands = append(info.Subcommands, buildCommandInfo(sub))
		}
	}

	return info
}

// initRoot builds the process logger and resolves configuration.
// Logs go to stderr so the ATP and MCP stdio transports keep stdout
// clean for the wire protocol.
func initRoot() error {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l

	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			return fmt.Errorf("resolving working directory: %w", werr)
		}
		cfg, err = config.Load(wd)
	}
	if err != nil {
		return err
	}

	_, err = output.ParseFormat(outputFormat)
	return err
}

// printResult renders v on stdout in the selected output format.
func printResult(v any) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	f, err := output.GetFormatter(format)
	if err != nil {
		return err
	}
	return f.FormatToWriter(os.Stdout, v)
}

// graphService builds an empty state service from the resolved config.
func graphService() *state.Service {
	return state.NewService(state.Options{
		Backend: cfg.Graph.Backend,
		Strict:  cfg.Graph.Strict,
		Logger:  logger,
	})
}

// autoLoad opens the default graph: GRAPH_DEFAULT_PATH first, then the
// configured path. A missing file starts the process with no graph; a
// file that exists but fails to import is an error.
func autoLoad(svc *state.Service) error {
	if err := svc.AutoLoad(); err != nil {
		return err
	}
	if svc.Loaded() || cfg.Graph.DefaultPath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.Graph.DefaultPath); os.IsNotExist(err) {
		return nil
	}
	_, err := svc.Load(cfg.Graph.DefaultPath)
	return err
}
