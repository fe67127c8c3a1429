package types

// TransferParams is the full input of the transaction builder. Sequence and
// AccountNumber come from the account lookup performed before building.
type TransferParams struct {
	Sender        Address
	Recipient     Address
	Amount        Coin
	Fee           Fee
	AccountNumber uint64
	Sequence      uint64
	ChainID       ChainID
	Memo          string
}

// TransferRequest is what the CLI asks the pipeline to do.
type TransferRequest struct {
	Recipient Address
	Amount    Coin
	Memo      string
	// GasLimit skips simulation when non-zero.
	GasLimit uint64
	// NoWait stops after the network's synchronous acceptance.
	NoWait bool
}

// TransferReceipt reports a finished transfer.
type TransferReceipt struct {
	Sender    Address         `json:"sender"`
	Recipient Address         `json:"recipient"`
	Amount    Coin            `json:"amount"`
	Fee       Fee             `json:"fee"`
	Sequence  uint64          `json:"sequence"`
	Result    BroadcastResult `json:"result"`
}
