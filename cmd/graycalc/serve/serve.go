package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/graycalc/api"
	"github.com/papercomputeco/graycalc/pkg/config"
	"github.com/papercomputeco/graycalc/pkg/logger"
)

const serveLongDesc string = `Serve the converter page and its JSON API.

Routes:
  GET  /          converter page
  POST /convert   {"type": "bin2dec", "value": "1010"}
  GET  /kinds     supported conversions
  GET  /health    liveness check

Flags override values from the [server] table of the config file.

Examples:
  graycalc serve
  graycalc serve --listen 127.0.0.1:8080 --debug
  graycalc serve --assets-dir ./api/web   # reload the page while editing it`

const serveShortDesc string = "Serve the web converter"

type serveCommander struct {
	configPath string
	listen     string
	debug      bool
	jsonLogs   bool
	assetsDir  string
}

func NewServeCmd() *cobra.Command {
	return newServeCmd(&serveCommander{})
}

func newServeCmd(cmder *serveCommander) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        serveShortDesc,
		Long:         serveLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to config file (default ~/.graycalc/config.toml)")
	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", "", "Address to listen on (default :5000)")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&cmder.jsonLogs, "json-logs", false, "Write logs as JSON lines")
	cmd.Flags().StringVar(&cmder.assetsDir, "assets-dir", "", "Serve page assets from this directory and reload on change")

	return cmd
}

// settings merges the config file with any flags set on the command line.
func (c *serveCommander) settings(cmd *cobra.Command) (config.ServerConfig, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.ServerConfig{}, err
	}

	s := cfg.Server
	flags := cmd.Flags()
	if flags.Changed("listen") {
		s.Listen = c.listen
	}
	if flags.Changed("debug") {
		s.Debug = c.debug
	}
	if flags.Changed("json-logs") {
		s.JSONLogs = c.jsonLogs
	}
	if flags.Changed("assets-dir") {
		s.AssetsDir = c.assetsDir
	}
	if err := s.Validate(); err != nil {
		return config.ServerConfig{}, err
	}
	return s, nil
}

func (c *serveCommander) run(ctx context.Context, cmd *cobra.Command) error {
	s, err := c.settings(cmd)
	if err != nil {
		return err
	}

	log := logger.NewLogger(logger.Options{Debug: s.Debug, JSON: s.JSONLogs})
	defer log.Sync()

	log.Info("graycalc server starting",
		zap.String("listen", s.Listen),
		zap.Bool("debug", s.Debug),
		zap.String("assets_dir", s.AssetsDir),
	)

	srv, err := api.New(api.Config{ListenAddr: s.Listen, AssetsDir: s.AssetsDir}, log)
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go shutdownOnDone(ctx, srv, log)

	if err := srv.Run(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

type shutdowner interface {
	Shutdown() error
}

// shutdownOnDone stops srv once ctx is cancelled.
func shutdownOnDone(ctx context.Context, srv shutdowner, log *zap.Logger) {
	<-ctx.Done()
	log.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		log.Warn("shutdown failed", zap.Error(err))
	}
}
