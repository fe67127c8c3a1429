package interfaces

import (
	"context"

	domaintypes "cointransfer/internal/domain/types"
)

// KeyDeriver turns a mnemonic into the wallet's signing key.
type KeyDeriver interface {
	Derive(mnemonic *domaintypes.Mnemonic, passphrase string) (domaintypes.KeyPair, error)
	AddressOf(pub domaintypes.Secp256k1Public) (domaintypes.Address, error)
}

// TransactionBuilder validates transfer parameters and assembles the
// unsigned transaction.
type TransactionBuilder interface {
	Build(params domaintypes.TransferParams) (domaintypes.UnsignedTransaction, error)
}

// Signer signs the canonical encoding of a transaction.
type Signer interface {
	Sign(tx domaintypes.UnsignedTransaction, key *domaintypes.KeyPair) (domaintypes.SignedTransaction, error)
}

// Broadcaster submits a signed transaction and reports its fate. Submit is
// Broadcast followed by AwaitInclusion; a transaction is sent at most once.
type Broadcaster interface {
	Submit(ctx context.Context, tx domaintypes.SignedTransaction) (domaintypes.BroadcastResult, error)
	Broadcast(ctx context.Context, tx domaintypes.SignedTransaction) (domaintypes.BroadcastResult, error)
	AwaitInclusion(ctx context.Context, accepted domaintypes.BroadcastResult) (domaintypes.BroadcastResult, error)
}

// TransferService runs the whole secret-to-broadcast pipeline.
type TransferService interface {
	Transfer(ctx context.Context, req domaintypes.TransferRequest) (domaintypes.TransferReceipt, error)
	SenderAddress() (domaintypes.Address, error)
}
