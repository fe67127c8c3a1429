package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cointransfer/internal/app"
	"cointransfer/internal/domain"
	"cointransfer/internal/services/txbuilder"
)

var (
	memo         string
	gasLimit     uint64
	noWait       bool
	pollInterval time.Duration

	receiptPrinted bool
)

func addSendFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&memo, "memo", "", "transaction memo")
	f.Uint64Var(&gasLimit, "gas", 0, "gas limit; 0 simulates and applies the gas adjustment")
	f.BoolVar(&noWait, "no-wait", false, "return once the network accepts the transaction")
	f.DurationVar(&pollInterval, "poll-interval", app.DefaultPollInterval, "interval between inclusion checks")
}

// runSend parses the positional arguments and runs the transfer pipeline.
// The receipt is printed even on failure once a hash exists, so a timed out
// transfer can still be looked up.
func runSend(ctx context.Context, w io.Writer, amountArg, recipientArg string) error {
	amount, err := txbuilder.ParseCoin(amountArg)
	if err != nil {
		return err
	}
	receipt, err := appCtx.Wire.Transfer.Transfer(ctx, domain.TransferRequest{
		Recipient: domain.Address(recipientArg),
		Amount:    amount,
		Memo:      memo,
		GasLimit:  gasLimit,
		NoWait:    noWait,
	})
	if receipt.Result.TxHash == "" {
		return err
	}
	perr := printReceipt(w, receipt, err, jsonOut)
	receiptPrinted = perr == nil
	if err == nil {
		return perr
	}
	return err
}
