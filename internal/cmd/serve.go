// Package cmd implements the serve command for og CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/serve"
	"github.com/anthropics/og/internal/tools"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve the graph tools over REST, ATP, or MCP",
	Long: `Serve exposes the tool registry to agents over one transport:

  --rest ADDR   HTTP adapter with one route per tool (default transport)
  --atp         line-delimited JSON over stdin/stdout
  --mcp         Model Context Protocol server on stdio

The graph file argument is optional: without it the server starts from
GRAPH_DEFAULT_PATH or the configured default, or empty, and a graph can
be loaded later through the load_graph tool. On the stdio transports
all logging goes to stderr.

Examples:
  og serve graph.json                      # REST on the configured address
  og serve graph.json --rest :8420
  og serve --atp < requests.jsonl
  og serve --mcp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

// Command-line flags
var (
	serveRest string
	serveATP  bool
	serveMCP  bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveRest, "rest", "", "REST listen address (defaults to the configured address)")
	serveCmd.Flags().BoolVar(&serveATP, "atp", false, "Serve line-delimited JSON on stdin/stdout")
	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "Serve MCP on stdio")
}

// runServe implements the serve command logic
func runServe(cmd *cobra.Command, args []string) error {
	modes := 0
	if serveRest != "" {
		modes++
	}
	if serveATP {
		modes++
	}
	if serveMCP {
		modes++
	}
	if modes > 1 {
		return model.Validationf("choose one of --rest, --atp, --mcp")
	}

	svc := graphService()
	if len(args) > 0 {
		if _, err := svc.Load(args[0]); err != nil {
			return err
		}
	} else if err := autoLoad(svc); err != nil {
		return err
	}

	dispatcher := tools.NewDispatcher(svc, logger)
	switch {
	case serveATP:
		logger.Info("atp server on stdio",
			zap.Bool("graph_loaded", svc.Loaded()))
		return tools.ServeATP(dispatcher, os.Stdin, os.Stdout)
	case serveMCP:
		logger.Info("mcp server on stdio",
			zap.Bool("graph_loaded", svc.Loaded()))
		return tools.ServeMCP(dispatcher)
	default:
		addr := serveRest
		if addr == "" {
			addr = cfg.Serve.Addr
		}
		server := serve.NewServer(svc, dispatcher, logger)
		return server.ListenAndServe(addr)
	}
}
