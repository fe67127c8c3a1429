package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
)

// maxBody bounds how much of a response is read.
const maxBody = 4 << 20

// errNotFound marks a gateway NotFound reply; GetTx turns it into found=false.
var errNotFound = errors.New("not found")

// HTTP talks to a Cosmos SDK REST gateway.
type HTTP struct {
	Base string
	HTTP *http.Client
	log  *zap.Logger
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option { return func(h *HTTP) { h.HTTP = c } }

// WithTimeout bounds every single request.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) { h.HTTP = &http.Client{Timeout: d} }
}

// WithLogger logs requests at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(h *HTTP) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHTTP returns a client for the gateway at base, e.g.
// https://lcd.osmotest5.osmosis.zone.
func NewHTTP(base string, opts ...Option) *HTTP {
	h := &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient, log: zap.NewNop()}
	for _, o := range opts {
		o(h)
	}
	return h
}

// AccountInfo returns the account number and next sequence of address.
func (c *HTTP) AccountInfo(ctx context.Context, address domain.Address) (domain.AccountInfo, error) {
	var out AccountResponse
	if err := c.do(ctx, http.MethodGet, accountsPath+url.PathEscape(address.String()), nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			// an address the chain has never seen has no account to sign for
			return domain.AccountInfo{}, &domain.RejectedError{
				Codespace: "sdk",
				Code:      grpcNotFound,
				Log:       fmt.Sprintf("account %s not found; it must receive funds before it can send", address),
			}
		}
		return domain.AccountInfo{}, fmt.Errorf("account %s: %w", address, err)
	}
	base := out.Account.base()
	return domain.AccountInfo{
		Address:       address,
		AccountNumber: uint64(base.AccountNumber),
		Sequence:      uint64(base.Sequence),
	}, nil
}

// Balances returns every balance held by address. An unknown address has
// no balances.
func (c *HTTP) Balances(ctx context.Context, address domain.Address) ([]domain.Coin, error) {
	coins := []domain.Coin{}
	key := ""
	for {
		path := balancesPath + url.PathEscape(address.String())
		if key != "" {
			path += "?pagination.key=" + url.QueryEscape(key)
		}
		var out BalancesResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
			return nil, fmt.Errorf("balances %s: %w", address, err)
		}
		for _, b := range out.Balances {
			amt, err := uint256.FromDecimal(b.Amount)
			if err != nil {
				return nil, fmt.Errorf("balances %s: amount %q of %s: %v", address, b.Amount, b.Denom, err)
			}
			coins = append(coins, domain.Coin{Denom: b.Denom, Amount: *amt})
		}
		if out.Pagination == nil || out.Pagination.NextKey == "" {
			return coins, nil
		}
		key = out.Pagination.NextKey
	}
}

// Simulate dry-runs txBytes and returns the gas it used.
func (c *HTTP) Simulate(ctx context.Context, txBytes []byte) (uint64, error) {
	var out SimulateResponse
	if err := c.do(ctx, http.MethodPost, simulatePath, TxBytesRequest{TxBytes: crypto.B64(txBytes)}, &out); err != nil {
		return 0, fmt.Errorf("simulate: %w", err)
	}
	return uint64(out.GasInfo.GasUsed), nil
}

// BroadcastSync submits txBytes once in BROADCAST_MODE_SYNC. A non-zero
// CheckTx code is returned in the response, not as an error.
func (c *HTTP) BroadcastSync(ctx context.Context, txBytes []byte) (domain.TxResponse, error) {
	var out BroadcastResponse
	req := BroadcastRequest{TxBytes: crypto.B64(txBytes), Mode: broadcastSync}
	if err := c.do(ctx, http.MethodPost, txsPath, req, &out); err != nil {
		return domain.TxResponse{}, fmt.Errorf("broadcast: %w", err)
	}
	if out.TxResponse == nil {
		return domain.TxResponse{}, fmt.Errorf("%w: broadcast: response has no tx_response", domain.ErrConnection)
	}
	return out.TxResponse.toDomain(), nil
}

// GetTx looks up an included transaction. found is false while the
// transaction is not (yet) in a block.
func (c *HTTP) GetTx(ctx context.Context, hash domain.TxHash) (domain.TxResponse, bool, error) {
	var out GetTxResponse
	if err := c.do(ctx, http.MethodGet, txsPath+"/"+url.PathEscape(hash.String()), nil, &out); err != nil {
		if errors.Is(err, errNotFound) {
			return domain.TxResponse{}, false, nil
		}
		return domain.TxResponse{}, false, fmt.Errorf("get tx %s: %w", hash, err)
	}
	if out.TxResponse == nil {
		return domain.TxResponse{}, false, nil
	}
	return out.TxResponse.toDomain(), true, nil
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Debug("gateway request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", domain.ErrConnection, method, path, err)
	}
	defer resp.Body.Close()
	c.log.Debug("gateway request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: %s %s: read body: %v", domain.ErrConnection, method, path, err)
	}
	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: decode response: %v", domain.ErrConnection, method, path, err)
	}
	return nil
}

// statusError classifies a non-2xx reply. Replies without a gateway error
// body (proxies, wrong base URL), server-side failures and rate limiting
// are connection errors; a gateway that refuses the request with a 4xx
// explanation produces a RejectedError.
func statusError(method, path string, resp *http.Response, raw []byte) error {
	var ge GatewayError
	structured := json.Unmarshal(raw, &ge) == nil && (ge.Code != 0 || ge.Message != "")
	serverSide := resp.StatusCode >= http.StatusInternalServerError ||
		resp.StatusCode == http.StatusTooManyRequests

	if structured && !serverSide && (resp.StatusCode == http.StatusNotFound || ge.Code == grpcNotFound) {
		return fmt.Errorf("%s %s: %w", method, path, errNotFound)
	}
	switch {
	case !structured,
		serverSide,
		ge.Code == grpcUnavailable,
		ge.Code == grpcDeadlineExceeded:
		if structured {
			return fmt.Errorf("%w: %s %s: %s: code=%d %s", domain.ErrConnection, method, path, resp.Status, ge.Code, ge.Message)
		}
		return fmt.Errorf("%w: %s %s: %s", domain.ErrConnection, method, path, resp.Status)
	}
	return &domain.RejectedError{Code: ge.Code, Log: ge.Message}
}

var _ domain.ChainClient = (*HTTP)(nil)
