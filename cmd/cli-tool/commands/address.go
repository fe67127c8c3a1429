package commands

import (
	"io"

	"github.com/spf13/cobra"
)

func addressCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the wallet's address and derivation path",
		Args:  argsOrInvalid(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := appCtx.Wire.Transfer.SenderAddress()
			if err != nil {
				return err
			}
			return printAddress(stdout, addr, appCtx.Wire.Keys.Path().String(), jsonOut)
		},
	}
}
