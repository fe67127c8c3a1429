package devnode

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
)

// SDK error codes (codespace "sdk") reported by the node.
const (
	CodeOK                uint32 = 0
	CodeTxDecode          uint32 = 2
	CodeUnauthorized      uint32 = 4
	CodeInsufficientFunds uint32 = 5
	CodeInvalidAddress    uint32 = 7
	CodeUnknownAddress    uint32 = 9
	CodeInvalidCoins      uint32 = 10
	CodeOutOfGas          uint32 = 11
	CodeInvalidSequence   uint32 = 32
)

// Gas model: a flat cost plus a per-byte charge.
const (
	baseGas    = 60000
	gasPerByte = 10
)

// Options configure a Node.
type Options struct {
	ChainID        string
	Prefix         string
	Denoms         []string
	InclusionDelay time.Duration
	NeverInclude   bool
	Log            *zap.Logger
	Now            func() time.Time
}

type account struct {
	number   uint64
	sequence uint64 // committed
	checkSeq uint64 // next sequence admitted by broadcast
	pubKey   *domain.Secp256k1Public
	balances map[string]*uint256.Int
}

type pendingTx struct {
	hash    domain.TxHash
	tx      parsedTx
	gasCost uint64
	at      time.Time
}

// Node is the in-memory chain state. It is safe for concurrent use.
type Node struct {
	opts Options
	log  *zap.Logger
	now  func() time.Time

	mu         sync.Mutex
	accounts   map[domain.Address]*account
	nextNumber uint64
	height     int64
	pending    []pendingTx
	included   map[domain.TxHash]domain.TxResponse
}

// New returns an empty node.
func New(opts Options) *Node {
	if opts.ChainID == "" {
		opts.ChainID = "testing"
	}
	if opts.Prefix == "" {
		opts.Prefix = "osmo"
	}
	if len(opts.Denoms) == 0 {
		opts.Denoms = []string{"uosmo", "uion"}
	}
	n := &Node{
		opts:     opts,
		log:      opts.Log,
		now:      opts.Now,
		accounts: make(map[domain.Address]*account),
		included: make(map[domain.TxHash]domain.TxResponse),
		height:   1,
	}
	if n.log == nil {
		n.log = zap.NewNop()
	}
	if n.now == nil {
		n.now = time.Now
	}
	return n
}

// ChainID returns the chain id transactions must be signed for.
func (n *Node) ChainID() string { return n.opts.ChainID }

// Fund credits coins to addr, creating the account if needed.
func (n *Node) Fund(addr domain.Address, coins ...domain.Coin) error {
	if err := crypto.ValidateAddress(addr, n.opts.Prefix); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	acc := n.accountLocked(addr)
	for _, c := range coins {
		bal := acc.balance(c.Denom)
		bal.Add(bal, &c.Amount)
	}
	return nil
}

// AccountInfo returns the committed account number and sequence.
func (n *Node) AccountInfo(addr domain.Address) (domain.AccountInfo, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()
	acc, ok := n.accounts[addr]
	if !ok {
		return domain.AccountInfo{}, false
	}
	return domain.AccountInfo{Address: addr, AccountNumber: acc.number, Sequence: acc.sequence}, true
}

// Balances returns the committed balances of addr sorted by denomination.
func (n *Node) Balances(addr domain.Address) []domain.Coin {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()
	acc, ok := n.accounts[addr]
	if !ok {
		return nil
	}
	out := make([]domain.Coin, 0, len(acc.balances))
	for denom, amt := range acc.balances {
		if !amt.IsZero() {
			out = append(out, domain.Coin{Denom: denom, Amount: *amt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	return out
}

// Height returns the latest block height.
func (n *Node) Height() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()
	return n.height
}

// Pending returns the number of admitted transactions not yet included.
func (n *Node) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()
	return len(n.pending)
}

// Simulate runs the admission checks except the signature and returns the
// gas the transaction would use.
func (n *Node) Simulate(txBytes []byte) (uint64, *domain.RejectedError) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()
	tx, rej := n.checkLocked(txBytes, false)
	if rej != nil {
		return 0, rej
	}
	return gasCost(txBytes, tx), nil
}

// Broadcast runs the admission checks and, if they pass, queues the
// transaction for inclusion. A failed check is reported in the response.
func (n *Node) Broadcast(txBytes []byte) domain.TxResponse {
	hash := domain.HashTxBytes(txBytes)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()

	if _, dup := n.included[hash]; dup || slices.ContainsFunc(n.pending, func(p pendingTx) bool { return p.hash == hash }) {
		return domain.TxResponse{TxHash: hash, Codespace: "sdk", Code: 19, RawLog: "tx already exists in cache"}
	}
	tx, rej := n.checkLocked(txBytes, true)
	if rej != nil {
		n.log.Info("tx refused", zap.Stringer("tx_hash", hash), zap.Uint32("code", rej.Code), zap.String("log", rej.Log))
		return domain.TxResponse{TxHash: hash, Codespace: rej.Codespace, Code: rej.Code, RawLog: rej.Log}
	}
	acc := n.accounts[tx.signer]
	acc.checkSeq++
	if acc.pubKey == nil {
		pk := tx.pubKey
		acc.pubKey = &pk
	}
	n.pending = append(n.pending, pendingTx{hash: hash, tx: tx, gasCost: gasCost(txBytes, tx), at: n.now()})
	n.log.Info("tx admitted", zap.Stringer("tx_hash", hash), zap.Uint64("sequence", tx.sequence))
	return domain.TxResponse{TxHash: hash, GasWanted: int64(tx.gasLimit)}
}

// GetTx returns the inclusion result of hash, or false while it is pending
// or unknown.
func (n *Node) GetTx(hash domain.TxHash) (domain.TxResponse, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanceLocked()
	r, ok := n.included[hash]
	return r, ok
}

func gasCost(txBytes []byte, _ parsedTx) uint64 {
	return baseGas + gasPerByte*uint64(len(txBytes))
}

func (n *Node) accountLocked(addr domain.Address) *account {
	acc, ok := n.accounts[addr]
	if !ok {
		acc = &account{number: n.nextNumber, balances: make(map[string]*uint256.Int)}
		n.nextNumber++
		n.accounts[addr] = acc
	}
	return acc
}

func (a *account) balance(denom string) *uint256.Int {
	b, ok := a.balances[denom]
	if !ok {
		b = new(uint256.Int)
		a.balances[denom] = b
	}
	return b
}

// advanceLocked includes every pending transaction whose delay has passed,
// one block per transaction.
func (n *Node) advanceLocked() {
	if n.opts.NeverInclude {
		return
	}
	now := n.now()
	for len(n.pending) > 0 && !now.Before(n.pending[0].at.Add(n.opts.InclusionDelay)) {
		p := n.pending[0]
		n.pending = n.pending[1:]
		n.height++
		resp := n.deliverLocked(p)
		resp.TxHash = p.hash
		resp.Height = n.height
		n.included[p.hash] = resp
		n.log.Info("tx included",
			zap.Stringer("tx_hash", p.hash),
			zap.Int64("height", n.height),
			zap.Uint32("code", resp.Code),
		)
	}
}

// deliverLocked applies p: the fee and sequence always, the transfer only
// when gas suffices and funds remain.
func (n *Node) deliverLocked(p pendingTx) domain.TxResponse {
	tx := p.tx
	from := n.accounts[tx.signer]
	from.sequence++

	resp := domain.TxResponse{GasWanted: int64(tx.gasLimit), GasUsed: int64(min(p.gasCost, tx.gasLimit))}
	if fee := tx.fee; fee != nil {
		bal := from.balance(fee.Denom)
		if bal.Lt(&fee.Amount) {
			bal.Clear()
		} else {
			bal.Sub(bal, &fee.Amount)
		}
	}
	if p.gasCost > tx.gasLimit {
		resp.Codespace, resp.Code = "sdk", CodeOutOfGas
		resp.RawLog = fmt.Sprintf("out of gas in location: txSize; gasWanted: %d, gasUsed: %d: out of gas", tx.gasLimit, p.gasCost)
		return resp
	}
	for _, c := range tx.amount {
		bal := from.balance(c.Denom)
		if bal.Lt(&c.Amount) {
			resp.Codespace, resp.Code = "sdk", CodeInsufficientFunds
			resp.RawLog = fmt.Sprintf("spendable balance %s%s is smaller than %s: insufficient funds", bal.Dec(), c.Denom, c.String())
			return resp
		}
	}
	to := n.accountLocked(tx.to)
	for _, c := range tx.amount {
		from.balance(c.Denom).Sub(from.balance(c.Denom), &c.Amount)
		to.balance(c.Denom).Add(to.balance(c.Denom), &c.Amount)
	}
	return resp
}
