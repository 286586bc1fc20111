package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gitgate/internal/config"
	"gitgate/internal/github"
	"gitgate/internal/logging"
	"gitgate/internal/mcpserver"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var mcpFlags struct {
	configPath string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the same five repository
operations as the HTTP gateway. Agent hosts connect via their MCP client
configuration. Requires GITHUB_TOKEN.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlags.configPath, "config", "", "Path to YAML config file (optional)")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(mcpFlags.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	// Stdout carries the MCP transport; logs must stay on stderr.
	logging.Init(level, cfg.LogFormat, os.Stderr)

	svc := github.NewService(cfg.GitHubToken)
	srv := mcpserver.New(svc, version)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.New("mcp").Info("starting gitgate MCP server over stdio")
	return srv.Run(ctx, &sdkmcp.StdioTransport{})
}
