package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gitgate/internal/config"
	"gitgate/internal/gateway"
	"gitgate/internal/github"
	"gitgate/internal/logging"
)

var serveFlags struct {
	configPath string
	bind       string
	port       int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway",
	Long: `Starts the HTTP gateway: REST endpoints under /repos, tool invocation
at /execute, discovery at /metadata, /openapi.json and /.well-known/ai-plugin.json,
and the SSE channel at /sse. Requires GITHUB_TOKEN; refuses to start without it.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.configPath, "config", "", "Path to YAML config file (optional)")
	f.StringVar(&serveFlags.bind, "bind", "", "Bind address (overrides config)")
	f.IntVar(&serveFlags.port, "port", 0, "HTTP port (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveFlags.configPath)
	if err != nil {
		return err
	}
	if serveFlags.bind != "" {
		cfg.Bind = serveFlags.bind
	}
	if serveFlags.port != 0 {
		cfg.Port = serveFlags.port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat)
	log := logging.New("serve")

	// The API key is read for forward compatibility but not enforced:
	// the default authenticator is a pass-through.
	log.Info("starting gateway",
		slog.String("addr", cfg.Addr()),
		slog.Bool("api_key_configured", cfg.APIKey != ""))

	svc := github.NewService(cfg.GitHubToken)
	gw := gateway.New(gateway.Config{
		Addr:    cfg.Addr(),
		Version: version,
	}, svc, gateway.NoopAuthenticator{})

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := gw.Start(ctx); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	return nil
}
