package chain

import (
	"encoding/json"
	"strconv"

	"cointransfer/internal/domain"
)

// Endpoint paths of the REST gateway.
const (
	accountsPath  = "/cosmos/auth/v1beta1/accounts/"
	balancesPath  = "/cosmos/bank/v1beta1/balances/"
	simulatePath  = "/cosmos/tx/v1beta1/simulate"
	txsPath       = "/cosmos/tx/v1beta1/txs"
	broadcastSync = "BROADCAST_MODE_SYNC"
)

// Uint64String is a uint64 carried as a JSON string, the REST gateway's
// encoding of 64-bit integers. Bare numbers are accepted too.
type Uint64String uint64

func (u Uint64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *Uint64String) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	if s == "" || s == "null" {
		*u = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*u = Uint64String(v)
	return nil
}

// BaseAccount is cosmos.auth.v1beta1.BaseAccount as rendered by the gateway.
type BaseAccount struct {
	Address       string       `json:"address"`
	AccountNumber Uint64String `json:"account_number"`
	Sequence      Uint64String `json:"sequence"`
}

// AccountJSON is the "account" object of the accounts endpoint. Vesting and
// module accounts nest the base account.
type AccountJSON struct {
	Type string `json:"@type"`
	BaseAccount
	Base    *BaseAccount `json:"base_account,omitempty"`
	Vesting *struct {
		Base *BaseAccount `json:"base_account,omitempty"`
	} `json:"base_vesting_account,omitempty"`
}

func (a AccountJSON) base() BaseAccount {
	switch {
	case a.Vesting != nil && a.Vesting.Base != nil:
		return *a.Vesting.Base
	case a.Base != nil:
		return *a.Base
	}
	return a.BaseAccount
}

// AccountResponse is the body of GET /cosmos/auth/v1beta1/accounts/{address}.
type AccountResponse struct {
	Account AccountJSON `json:"account"`
}

// CoinJSON is cosmos.base.v1beta1.Coin.
type CoinJSON struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Pagination is the pagination block of list responses.
type Pagination struct {
	NextKey string `json:"next_key,omitempty"`
}

// BalancesResponse is the body of GET /cosmos/bank/v1beta1/balances/{address}.
type BalancesResponse struct {
	Balances   []CoinJSON  `json:"balances"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// TxBytesRequest is the body of the simulate endpoint.
type TxBytesRequest struct {
	TxBytes string `json:"tx_bytes"`
}

// BroadcastRequest is the body of POST /cosmos/tx/v1beta1/txs.
type BroadcastRequest struct {
	TxBytes string `json:"tx_bytes"`
	Mode    string `json:"mode"`
}

// GasInfo is the gas section of a simulation.
type GasInfo struct {
	GasWanted Uint64String `json:"gas_wanted"`
	GasUsed   Uint64String `json:"gas_used"`
}

// SimulateResponse is the body of POST /cosmos/tx/v1beta1/simulate.
type SimulateResponse struct {
	GasInfo GasInfo `json:"gas_info"`
}

// TxResponseJSON is cosmos.base.abci.v1beta1.TxResponse.
type TxResponseJSON struct {
	Height    Uint64String `json:"height"`
	TxHash    string       `json:"txhash"`
	Codespace string       `json:"codespace"`
	Code      uint32       `json:"code"`
	RawLog    string       `json:"raw_log"`
	GasWanted Uint64String `json:"gas_wanted"`
	GasUsed   Uint64String `json:"gas_used"`
}

func (r TxResponseJSON) toDomain() domain.TxResponse {
	return domain.TxResponse{
		TxHash:    domain.TxHash(r.TxHash),
		Height:    int64(r.Height),
		Code:      r.Code,
		Codespace: r.Codespace,
		RawLog:    r.RawLog,
		GasWanted: int64(r.GasWanted),
		GasUsed:   int64(r.GasUsed),
	}
}

// TxResponseFromDomain renders r in gateway form.
func TxResponseFromDomain(r domain.TxResponse) TxResponseJSON {
	return TxResponseJSON{
		Height:    Uint64String(max(r.Height, 0)),
		TxHash:    r.TxHash.String(),
		Codespace: r.Codespace,
		Code:      r.Code,
		RawLog:    r.RawLog,
		GasWanted: Uint64String(max(r.GasWanted, 0)),
		GasUsed:   Uint64String(max(r.GasUsed, 0)),
	}
}

// BroadcastResponse is the body of POST /cosmos/tx/v1beta1/txs.
type BroadcastResponse struct {
	TxResponse *TxResponseJSON `json:"tx_response"`
}

// GetTxResponse is the body of GET /cosmos/tx/v1beta1/txs/{hash}.
type GetTxResponse struct {
	TxResponse *TxResponseJSON `json:"tx_response"`
}

// GatewayError is the body of a non-2xx gateway reply. Code is a gRPC
// status code.
type GatewayError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
	Details []any  `json:"details"`
}

// gRPC status codes that mean the node could not answer.
const (
	grpcNotFound         = 5
	grpcDeadlineExceeded = 4
	grpcUnavailable      = 14
)
