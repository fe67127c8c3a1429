package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cointransfer/internal/devnode"
	"cointransfer/internal/domain"
	"cointransfer/internal/logging"
	"cointransfer/internal/services/txbuilder"
)

var (
	listen       string
	chainID      string
	delay        time.Duration
	neverInclude bool
	funds        []string
	logLevel     string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "devnode",
		Short:        "Run an in-memory chain behind a Cosmos REST gateway",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, _, err := logging.New(logging.Config{Level: logLevel})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			node := devnode.New(devnode.Options{
				ChainID:        chainID,
				InclusionDelay: delay,
				NeverInclude:   neverInclude,
				Log:            log.Named("node"),
			})
			for _, f := range funds {
				addr, coins, err := parseFund(f)
				if err != nil {
					return err
				}
				if err := node.Fund(addr, coins...); err != nil {
					return err
				}
				log.Info("funded", zap.Stringer("address", addr), zap.Stringers("coins", coins))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, log, listen, node.Handler())
		},
	}
	f := cmd.Flags()
	f.StringVar(&listen, "listen", ":1317", "listen address")
	f.StringVar(&chainID, "chain-id", "testing", "chain id transactions must be signed for")
	f.DurationVar(&delay, "delay", 2*time.Second, "time before a queued transaction is included")
	f.BoolVar(&neverInclude, "never-include", false, "accept transactions but never include them")
	f.StringArrayVar(&funds, "fund", nil, "address=coins to credit at start, e.g. osmo1...=1000000uosmo,50uion (repeatable)")
	f.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

// parseFund splits "addr=1000uosmo,5uion".
func parseFund(s string) (domain.Address, []domain.Coin, error) {
	addr, list, ok := strings.Cut(s, "=")
	if !ok || addr == "" || list == "" {
		return "", nil, fmt.Errorf("%w: --fund %q: want address=coins", domain.ErrInvalidArgument, s)
	}
	var coins []domain.Coin
	for _, c := range strings.Split(list, ",") {
		coin, err := txbuilder.ParseCoin(strings.TrimSpace(c))
		if err != nil {
			return "", nil, err
		}
		coins = append(coins, coin)
	}
	return domain.Address(addr), coins, nil
}

func serve(ctx context.Context, log *zap.Logger, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("devnode listening", zap.String("addr", addr), zap.String("chain_id", chainID))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("devnode stopped")
	return nil
}
