package devnode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"cointransfer/internal/chain"
	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
)

// gRPC status codes carried in gateway error bodies.
const (
	grpcInvalidArgument = 3
	grpcNotFound        = 5
)

// Handler returns the REST gateway routes.
func (n *Node) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(n.accessLog)

	r.Get("/cosmos/auth/v1beta1/accounts/{address}", n.handleAccount)
	r.Get("/cosmos/bank/v1beta1/balances/{address}", n.handleBalances)
	r.Post("/cosmos/tx/v1beta1/simulate", n.handleSimulate)
	r.Post("/cosmos/tx/v1beta1/txs", n.handleBroadcast)
	r.Get("/cosmos/tx/v1beta1/txs/{hash}", n.handleGetTx)
	return r
}

func (n *Node) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		n.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code uint32, msg string) {
	writeJSON(w, status, chain.GatewayError{Code: code, Message: msg, Details: []any{}})
}

func (n *Node) handleAccount(w http.ResponseWriter, r *http.Request) {
	addr := domain.Address(chi.URLParam(r, "address"))
	info, ok := n.AccountInfo(addr)
	if !ok {
		writeError(w, http.StatusNotFound, grpcNotFound,
			fmt.Sprintf("rpc error: code = NotFound desc = account %s not found: key not found", addr))
		return
	}
	writeJSON(w, http.StatusOK, chain.AccountResponse{Account: chain.AccountJSON{
		Type: "/cosmos.auth.v1beta1.BaseAccount",
		BaseAccount: chain.BaseAccount{
			Address:       addr.String(),
			AccountNumber: chain.Uint64String(info.AccountNumber),
			Sequence:      chain.Uint64String(info.Sequence),
		},
	}})
}

func (n *Node) handleBalances(w http.ResponseWriter, r *http.Request) {
	addr := domain.Address(chi.URLParam(r, "address"))
	coins := n.Balances(addr)
	out := chain.BalancesResponse{Balances: make([]chain.CoinJSON, 0, len(coins)), Pagination: &chain.Pagination{}}
	for _, c := range coins {
		out.Balances = append(out.Balances, chain.CoinJSON{Denom: c.Denom, Amount: c.AmountString()})
	}
	writeJSON(w, http.StatusOK, out)
}

func decodeTxBytes(w http.ResponseWriter, r *http.Request, v any, txb func() string) ([]byte, bool) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, grpcInvalidArgument, "invalid request body: "+err.Error())
		return nil, false
	}
	b, err := crypto.FromB64(txb())
	if err != nil || len(b) == 0 {
		writeError(w, http.StatusBadRequest, grpcInvalidArgument, "invalid tx_bytes")
		return nil, false
	}
	return b, true
}

func (n *Node) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req chain.TxBytesRequest
	txBytes, ok := decodeTxBytes(w, r, &req, func() string { return req.TxBytes })
	if !ok {
		return
	}
	gas, rej := n.Simulate(txBytes)
	if rej != nil {
		writeError(w, http.StatusBadRequest, grpcInvalidArgument, rej.Log)
		return
	}
	writeJSON(w, http.StatusOK, chain.SimulateResponse{GasInfo: chain.GasInfo{GasUsed: chain.Uint64String(gas)}})
}

func (n *Node) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	var req chain.BroadcastRequest
	txBytes, ok := decodeTxBytes(w, r, &req, func() string { return req.TxBytes })
	if !ok {
		return
	}
	if req.Mode != "BROADCAST_MODE_SYNC" {
		writeError(w, http.StatusBadRequest, grpcInvalidArgument, "unsupported broadcast mode "+req.Mode)
		return
	}
	resp := chain.TxResponseFromDomain(n.Broadcast(txBytes))
	writeJSON(w, http.StatusOK, chain.BroadcastResponse{TxResponse: &resp})
}

func (n *Node) handleGetTx(w http.ResponseWriter, r *http.Request) {
	hash := domain.TxHash(chi.URLParam(r, "hash"))
	res, ok := n.GetTx(hash)
	if !ok {
		writeError(w, http.StatusNotFound, grpcNotFound, "tx not found: "+hash.String())
		return
	}
	resp := chain.TxResponseFromDomain(res)
	writeJSON(w, http.StatusOK, chain.GetTxResponse{TxResponse: &resp})
}
