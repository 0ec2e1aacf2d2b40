// Command proxybase-mcp is an MCP server that lets AI agents purchase and
// manage SOCKS5 proxies from the ProxyBase marketplace. It speaks
// line-delimited JSON-RPC 2.0 on stdin/stdout and translates tool calls into
// ProxyBase REST requests; logs go to stderr only.
//
//	PROXYBASE_API_URL=https://api.proxybase.xyz proxybase-mcp
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proxybase/proxybase-mcp/internal/config"
	"github.com/proxybase/proxybase-mcp/internal/logger"
	"github.com/proxybase/proxybase-mcp/internal/mcp"
	"github.com/proxybase/proxybase-mcp/internal/proxybase"
	"github.com/proxybase/proxybase-mcp/internal/tools"
	"github.com/proxybase/proxybase-mcp/internal/tools/market"
	"github.com/proxybase/proxybase-mcp/pkg/version"
)

var showVersion bool

var rootCmd = &cobra.Command{
	Use:           "proxybase-mcp",
	Short:         "MCP server for the ProxyBase proxy marketplace",
	Long:          `proxybase-mcp bridges the Model Context Protocol to the ProxyBase REST API, exposing proxy purchase and management as MCP tools over stdio.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("%s %s\n", version.ServerName, version.Version)
			return nil
		}
		return run()
	},
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger.Init(cfg.LogLevel)
	log := logger.ForComponent("main")
	log.Info().Str("backend", cfg.APIBaseURL).Msg("ProxyBase MCP server starting")

	client := proxybase.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	registry := tools.NewRegistry()
	for _, tool := range market.GetTools(client) {
		if err := registry.Register(tool); err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}

	server := mcp.NewServer(registry)
	if err := server.ProcessStream(context.Background(), os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("stdio transport failed: %w", err)
	}

	log.Info().Msg("ProxyBase MCP server shutting down")
	return nil
}

func main() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Print version and exit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
