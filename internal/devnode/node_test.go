package devnode_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cointransfer/internal/chain"
	"cointransfer/internal/devnode"
	"cointransfer/internal/domain"
	"cointransfer/internal/services/broadcast"
	"cointransfer/internal/services/secret"
	"cointransfer/internal/services/signer"
	"cointransfer/internal/services/transfer"
	"cointransfer/internal/services/txbuilder"
	"cointransfer/internal/services/wallet"
)

const (
	testJunk  = "test test test test test test test test test test test junk"
	sender    = domain.Address("osmo15yk64u7zc9g9k2yr2wmzeva5qgwxps6ywful0v")
	recipient = domain.Address("osmo19rl4cm2hmr8afy4kldpxz3fka4jguq0a5m7df8")
)

type harness struct {
	node     *devnode.Node
	client   *chain.HTTP
	builder  *txbuilder.Service
	signer   *signer.Service
	bcast    *broadcast.Service
	transfer *transfer.Service
	key      domain.KeyPair
}

func newHarness(t *testing.T, opts devnode.Options, bopts broadcast.Options) *harness {
	t.Helper()
	node := devnode.New(opts)
	srv := httptest.NewServer(node.Handler())
	t.Cleanup(srv.Close)

	client := chain.NewHTTP(srv.URL, chain.WithTimeout(5*time.Second))
	secrets := secret.New(filepath.Join(t.TempDir(), "wallet.key"), "WALLET_MNEMONIC",
		secret.WithLookupEnv(func(string) (string, bool) { return testJunk, true }))
	keys := wallet.New("osmo")
	builder := txbuilder.New("osmo", []string{"uosmo", "uion"})
	sig := signer.New("osmo", nil)
	bc := broadcast.New(client, bopts, nil)
	price, err := txbuilder.ParseGasPrice("0.025uosmo")
	require.NoError(t, err)

	kp, err := keys.Derive(domain.NewMnemonic([]byte(testJunk)), "")
	require.NoError(t, err)
	t.Cleanup(kp.Wipe)

	return &harness{
		node:    node,
		client:  client,
		builder: builder,
		signer:  sig,
		bcast:   bc,
		transfer: transfer.New(secrets, keys, builder, sig, bc, client, transfer.Config{
			ChainID:       domain.ChainID(node.ChainID()),
			GasPrice:      price,
			GasAdjustment: 1.5,
		}, nil),
		key: kp,
	}
}

var quick = broadcast.Options{InclusionTimeout: 2 * time.Second, PollInterval: 10 * time.Millisecond}

// signAt builds and signs a 1000uosmo transfer with the given sequence and chain id.
func (h *harness) signAt(t *testing.T, seq uint64, chainID domain.ChainID, gas uint64) domain.SignedTransaction {
	t.Helper()
	info, ok := h.node.AccountInfo(sender)
	require.True(t, ok)
	tx, err := h.builder.Build(domain.TransferParams{
		Sender:        sender,
		Recipient:     recipient,
		Amount:        domain.NewCoin("uosmo", 1000),
		Fee:           domain.Fee{Amount: domain.NewCoin("uosmo", 5000), GasLimit: gas},
		AccountNumber: info.AccountNumber,
		Sequence:      seq,
		ChainID:       chainID,
	})
	require.NoError(t, err)
	signed, err := h.signer.Sign(tx, &h.key)
	require.NoError(t, err)
	return signed
}

func balanceOf(coins []domain.Coin, denom string) string {
	for _, c := range coins {
		if c.Denom == denom {
			return c.AmountString()
		}
	}
	return "0"
}

func TestEndToEnd_Committed(t *testing.T) {
	h := newHarness(t, devnode.Options{InclusionDelay: 20 * time.Millisecond}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))

	receipt, err := h.transfer.Transfer(context.Background(), domain.TransferRequest{
		Recipient: recipient,
		Amount:    domain.NewCoin("uosmo", 1000),
		Memo:      "e2e",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateCommitted, receipt.Result.State)
	assert.Equal(t, domain.InclusionCommitted, receipt.Result.Status)
	assert.Positive(t, receipt.Result.Height)
	assert.Positive(t, receipt.Fee.GasLimit)

	assert.Equal(t, "1000", balanceOf(h.node.Balances(recipient), "uosmo"))
	fee := receipt.Fee.Amount.Amount.Uint64()
	assert.Equal(t, domain.NewCoin("uosmo", 1_000_000-1000-fee).AmountString(), balanceOf(h.node.Balances(sender), "uosmo"))

	info, ok := h.node.AccountInfo(sender)
	require.True(t, ok)
	assert.Equal(t, uint64(1), info.Sequence)

	// the next transfer picks up the new sequence
	receipt, err = h.transfer.Transfer(context.Background(), domain.TransferRequest{
		Recipient: recipient,
		Amount:    domain.NewCoin("uosmo", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.Sequence)
	assert.Equal(t, "1001", balanceOf(h.node.Balances(recipient), "uosmo"))
}

func TestEndToEnd_WrongSequenceRejected(t *testing.T) {
	h := newHarness(t, devnode.Options{}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))

	res, err := h.bcast.Submit(context.Background(), h.signAt(t, 5, "testing", 200000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRejectedByNetwork)
	assert.NotErrorIs(t, err, domain.ErrConnection)
	assert.Equal(t, domain.StateRejected, res.State)
	assert.Equal(t, devnode.CodeInvalidSequence, res.Code)
	assert.Contains(t, res.Log, "account sequence mismatch, expected 0, got 5")
}

func TestEndToEnd_WrongChainRejected(t *testing.T) {
	h := newHarness(t, devnode.Options{}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))

	res, err := h.bcast.Submit(context.Background(), h.signAt(t, 0, "osmo-test-5", 200000))
	assert.ErrorIs(t, err, domain.ErrRejectedByNetwork)
	assert.Equal(t, devnode.CodeUnauthorized, res.Code)
}

func TestEndToEnd_NeverIncludedTimesOut(t *testing.T) {
	h := newHarness(t, devnode.Options{NeverInclude: true},
		broadcast.Options{InclusionTimeout: 100 * time.Millisecond, PollInterval: 10 * time.Millisecond})
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))

	res, err := h.bcast.Submit(context.Background(), h.signAt(t, 0, "testing", 200000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimedOutPendingUnknown)
	assert.NotErrorIs(t, err, domain.ErrRejectedByNetwork)
	assert.Equal(t, domain.StateTimedOutPendingUnknown, res.State)
	assert.Equal(t, 1, h.node.Pending())
}

func TestEndToEnd_OutOfGasFailsInBlock(t *testing.T) {
	h := newHarness(t, devnode.Options{}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))

	res, err := h.bcast.Submit(context.Background(), h.signAt(t, 0, "testing", 1000))
	var rej *domain.RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, devnode.CodeOutOfGas, rej.Code)
	assert.Positive(t, rej.Height)
	assert.Equal(t, domain.StateRejected, res.State)

	// the fee is charged and the sequence consumed; the amount stays
	assert.Equal(t, "995000", balanceOf(h.node.Balances(sender), "uosmo"))
	assert.Equal(t, "0", balanceOf(h.node.Balances(recipient), "uosmo"))
	info, _ := h.node.AccountInfo(sender)
	assert.Equal(t, uint64(1), info.Sequence)
}

func TestEndToEnd_DuplicateBroadcastRefused(t *testing.T) {
	h := newHarness(t, devnode.Options{NeverInclude: true}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))
	signed := h.signAt(t, 0, "testing", 200000)

	_, err := h.bcast.Broadcast(context.Background(), signed)
	require.NoError(t, err)
	_, err = h.bcast.Broadcast(context.Background(), signed)
	assert.ErrorIs(t, err, domain.ErrRejectedByNetwork)
}

func TestEndToEnd_UnfundedSender(t *testing.T) {
	h := newHarness(t, devnode.Options{}, quick)
	_, err := h.transfer.Transfer(context.Background(), domain.TransferRequest{
		Recipient: recipient,
		Amount:    domain.NewCoin("uosmo", 1000),
	})
	assert.ErrorIs(t, err, domain.ErrRejectedByNetwork)
}

func TestEndToEnd_SimulationInsufficientFunds(t *testing.T) {
	h := newHarness(t, devnode.Options{}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 10)))

	_, err := h.transfer.Transfer(context.Background(), domain.TransferRequest{
		Recipient: recipient,
		Amount:    domain.NewCoin("uosmo", 1000),
	})
	var rej *domain.RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Contains(t, rej.Log, "insufficient funds")
	assert.Equal(t, "10", balanceOf(h.node.Balances(sender), "uosmo"))
}

func TestEndToEnd_NoWait(t *testing.T) {
	h := newHarness(t, devnode.Options{NeverInclude: true}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 1_000_000)))

	receipt, err := h.transfer.Transfer(context.Background(), domain.TransferRequest{
		Recipient: recipient,
		Amount:    domain.NewCoin("uosmo", 1000),
		NoWait:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateAccepted, receipt.Result.State)
	assert.Equal(t, 1, h.node.Pending())
}

func TestClient_AgainstNode(t *testing.T) {
	h := newHarness(t, devnode.Options{}, quick)
	require.NoError(t, h.node.Fund(sender, domain.NewCoin("uosmo", 5), domain.NewCoin("uion", 7)))

	info, err := h.client.AccountInfo(context.Background(), sender)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), info.AccountNumber)

	coins, err := h.client.Balances(context.Background(), sender)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "7uion", coins[0].String())
	assert.Equal(t, "5uosmo", coins[1].String())

	_, found, err := h.client.GetTx(context.Background(), "ABCDEF")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = h.client.AccountInfo(context.Background(), recipient)
	assert.ErrorIs(t, err, domain.ErrRejectedByNetwork)
}

func TestFund_RejectsForeignAddress(t *testing.T) {
	node := devnode.New(devnode.Options{})
	assert.ErrorIs(t, node.Fund("cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4", domain.NewCoin("uosmo", 1)), domain.ErrInvalidAddress)
}
