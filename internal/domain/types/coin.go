package types

import (
	"encoding/json"

	"github.com/holiman/uint256"
)

// Coin is an integer amount of a single denomination, e.g. 1000uosmo.
type Coin struct {
	Denom  string
	Amount uint256.Int
}

// NewCoin returns a coin of amount units of denom.
func NewCoin(denom string, amount uint64) Coin {
	return Coin{Denom: denom, Amount: *uint256.NewInt(amount)}
}

// IsPositive reports whether the amount is greater than zero.
func (c Coin) IsPositive() bool { return !c.Amount.IsZero() }

// AmountString returns the decimal magnitude without the denomination.
func (c Coin) AmountString() string { return c.Amount.Dec() }

// String renders the coin as <amount><denom>.
func (c Coin) String() string { return c.Amount.Dec() + c.Denom }

// MarshalJSON encodes the coin the way the Cosmos REST API does.
func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	}{Denom: c.Denom, Amount: c.Amount.Dec()})
}

// Fee is the fee offered for a transaction and the gas it may consume.
type Fee struct {
	Amount   Coin   `json:"amount"`
	GasLimit uint64 `json:"gas_limit"`
}
