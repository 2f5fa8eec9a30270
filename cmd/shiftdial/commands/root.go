package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shiftdial/internal/app"
	"shiftdial/internal/config"
	"shiftdial/internal/domain"
	"shiftdial/internal/logging"
)

// skipConfig marks commands that must run without loading the config file.
const skipConfig = "shiftdial/skip-config"

var (
	configPath string
	verbose    bool
	remoteURL  string
	indexing   string

	cfg    *config.Config
	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shiftdial",
		Short:        "Rotary shift-dial substitution cipher",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			if cmd.Annotations[skipConfig] != "" {
				return nil
			}
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if remoteURL != "" {
				cfg.Remote = remoteURL
			}
			if indexing != "" {
				cfg.Indexing = indexing
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			level := cfg.Logging.Level
			if verbose {
				level = "debug"
			}
			logger, err = logging.New(level, cfg.Logging.JSON)
			if err != nil {
				return err
			}

			appCtx, err = app.Wire(app.Config{
				Indexing: cfg.IndexingMode(),
				Remote:   cfg.Remote,
				Logger:   logger,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.shiftdial/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "dialserver base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&indexing, "indexing", "", "schedule counter: position or letter")

	root.AddCommand(
		cipherCmd(domain.Encode),
		cipherCmd(domain.Decode),
		quantizeCmd(),
		overrideCmd(),
		scheduleCmd(),
		fingerprintCmd(),
		configCmd(),
		tuiCmd(),
	)
	return root
}
