package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cointransfer/internal/app"
	"cointransfer/internal/domain"
)

var (
	configPath string
	node       string
	chainID    string
	keyFile    string
	keyEnv     string
	logDir     string
	logLevel   string
	timeout    time.Duration
	jsonOut    bool

	appCtx *app.App
)

// Execute runs the CLI on os.Args and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	receiptPrinted = false
	root := newRootCmd(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		if err != nil {
			appCtx.Log.Error("command failed",
				zap.String("code", domain.Classify(err).Code), zap.Error(err))
		}
		appCtx.Close()
		appCtx = nil
	}
	if err != nil {
		reportError(stdout, stderr, err, jsonOut, receiptPrinted)
	}
	return domain.Classify(err).ExitCode
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "cli-tool [flags] <amount><denom> <address>",
		Short: "Send native tokens from a mnemonic wallet",
		Long: "Send native tokens from the wallet held in --key-file or $" + app.DefaultKeyEnv + ".\n\n" +
			"Example: cli-tool 1000uosmo osmo1...",
		Args:          argsOrInvalid(cobra.ExactArgs(2)),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg)
			if err != nil {
				return err
			}
			appCtx.Log.Debug("configured",
				zap.String("node", cfg.Node),
				zap.String("chain_id", cfg.ChainID),
				zap.String("log_file", appCtx.LogPath),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd.Context(), stdout, args[0], args[1])
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file overriding the built-in network profile")
	pf.StringVar(&node, "node", app.DefaultNode, "REST gateway base URL")
	pf.StringVar(&chainID, "chain-id", app.DefaultChainID, "chain id signed into the transaction")
	pf.StringVar(&keyFile, "key-file", app.DefaultKeyFile, "file holding the wallet mnemonic (takes precedence)")
	pf.StringVar(&keyEnv, "key-env", app.DefaultKeyEnv, "environment variable holding the mnemonic when the key file is absent")
	pf.StringVar(&logDir, "log-dir", app.DefaultLogDir, `directory for the per-run log file ("" disables it)`)
	pf.StringVar(&logLevel, "log-level", app.DefaultLogLevel, "console log level: debug, info, warn, error")
	pf.DurationVar(&timeout, "timeout", app.DefaultInclusionTimeout, "how long to wait for inclusion in a block")
	pf.BoolVar(&jsonOut, "json", false, "print the result as JSON")
	addSendFlags(root)

	root.AddCommand(addressCmd(stdout))
	return root
}

// loadConfig layers defaults, the optional YAML file, and explicitly set flags.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg := app.Default()
	if configPath != "" {
		var err error
		if cfg, err = app.Load(configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("node") {
		cfg.Node = node
	}
	if flags.Changed("chain-id") {
		cfg.ChainID = chainID
	}
	if flags.Changed("key-file") {
		cfg.KeyFile = keyFile
	}
	if flags.Changed("key-env") {
		cfg.KeyEnv = keyEnv
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = logDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("poll-interval") {
		cfg.PollInterval = pollInterval
	}
	if flags.Changed("timeout") {
		cfg.InclusionTimeout = timeout
	}
	return cfg, cfg.Validate()
}

func argsOrInvalid(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v (usage: %s)", domain.ErrInvalidArgument, err, cmd.UseLine())
		}
		return nil
	}
}
