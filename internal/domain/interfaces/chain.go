package interfaces

//go:generate mockgen -source=chain.go -destination=mocks/chain_mocks.go -package=mocks

import (
	"context"

	domaintypes "cointransfer/internal/domain/types"
)

// AccountInfoProvider looks up the account number and sequence for an address.
type AccountInfoProvider interface {
	AccountInfo(ctx context.Context, address domaintypes.Address) (domaintypes.AccountInfo, error)
}

// BalanceProvider lists the bank balances held by an address.
type BalanceProvider interface {
	Balances(ctx context.Context, address domaintypes.Address) ([]domaintypes.Coin, error)
}

// TransactionSubmitter is the write side of the network endpoint.
type TransactionSubmitter interface {
	// Simulate dry-runs txBytes and returns the gas the network would use.
	Simulate(ctx context.Context, txBytes []byte) (gasUsed uint64, err error)
	// BroadcastSync submits txBytes once and returns the acceptance check result.
	BroadcastSync(ctx context.Context, txBytes []byte) (domaintypes.TxResponse, error)
	// GetTx returns the included transaction, or found=false while it is pending.
	GetTx(ctx context.Context, hash domaintypes.TxHash) (resp domaintypes.TxResponse, found bool, err error)
}

// ChainClient is everything the transfer pipeline needs from the endpoint.
type ChainClient interface {
	AccountInfoProvider
	BalanceProvider
	TransactionSubmitter
}
