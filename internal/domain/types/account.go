package types

// AccountInfo is the on-chain account state needed to sign a transaction.
type AccountInfo struct {
	Address       Address `json:"address"`
	AccountNumber uint64  `json:"account_number"`
	Sequence      uint64  `json:"sequence"`
}
