package domain

import (
	interfaces "cointransfer/internal/domain/interfaces"
	types "cointransfer/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Address             = types.Address
	ChainID             = types.ChainID
	TxHash              = types.TxHash
	Fingerprint         = types.Fingerprint
	Secp256k1Private    = types.Secp256k1Private
	Secp256k1Public     = types.Secp256k1Public
	Signature           = types.Signature
	KeyPair             = types.KeyPair
	Mnemonic            = types.Mnemonic
	Coin                = types.Coin
	Fee                 = types.Fee
	AccountInfo         = types.AccountInfo
	UnsignedTransaction = types.UnsignedTransaction
	SignedTransaction   = types.SignedTransaction
	SubmissionState     = types.SubmissionState
	InclusionStatus     = types.InclusionStatus
	TxResponse          = types.TxResponse
	BroadcastResult     = types.BroadcastResult
	TransferParams      = types.TransferParams
	TransferRequest     = types.TransferRequest
	TransferReceipt     = types.TransferReceipt
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SecretSource         = interfaces.SecretSource
	KeyDeriver           = interfaces.KeyDeriver
	TransactionBuilder   = interfaces.TransactionBuilder
	Signer               = interfaces.Signer
	Broadcaster          = interfaces.Broadcaster
	TransferService      = interfaces.TransferService
	AccountInfoProvider  = interfaces.AccountInfoProvider
	BalanceProvider      = interfaces.BalanceProvider
	TransactionSubmitter = interfaces.TransactionSubmitter
	ChainClient          = interfaces.ChainClient
)

// Re-exported constructors and states.
var (
	NewMnemonic          = types.NewMnemonic
	NewCoin              = types.NewCoin
	NewSignedTransaction = types.NewSignedTransaction
	HashTxBytes          = types.HashTxBytes
)

const (
	StateBuilt                  = types.StateBuilt
	StateSigned                 = types.StateSigned
	StateSubmitted              = types.StateSubmitted
	StateAccepted               = types.StateAccepted
	StateRejected               = types.StateRejected
	StateConnectionFailed       = types.StateConnectionFailed
	StateCommitted              = types.StateCommitted
	StateTimedOutPendingUnknown = types.StateTimedOutPendingUnknown

	InclusionPending   = types.InclusionPending
	InclusionCommitted = types.InclusionCommitted
	InclusionRejected  = types.InclusionRejected
)
