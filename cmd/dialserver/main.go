package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shiftdial/internal/config"
	"shiftdial/internal/logging"
	"shiftdial/internal/server"
	ciphersvc "shiftdial/internal/services/cipher"
	dialsvc "shiftdial/internal/services/dial"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)
	cmd := &cobra.Command{
		Use:          "dialserver",
		Short:        "Serve the shift-dial cipher over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			logger, err := logging.New(cfg.Logging.Level, cfg.Logging.JSON)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			read, write, shutdown := cfg.Server.Timeouts()
			s := server.New(
				ciphersvc.New(logger, cfg.IndexingMode()),
				dialsvc.New(logger),
				logger,
			)
			err = s.Run(cmd.Context(), server.Options{
				Addr:            cfg.Server.Addr,
				ReadTimeout:     read,
				WriteTimeout:    write,
				ShutdownTimeout: shutdown,
			})
			if err != nil {
				logger.Error("dial server stopped", zap.Error(err))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.shiftdial/config.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
