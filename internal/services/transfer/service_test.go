package transfer_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
	"cointransfer/internal/domain/interfaces/mocks"
	"cointransfer/internal/protocol/txproto"
	"cointransfer/internal/services/broadcast"
	"cointransfer/internal/services/signer"
	"cointransfer/internal/services/transfer"
	"cointransfer/internal/services/txbuilder"
	"cointransfer/internal/services/wallet"
)

const (
	testJunk  = "test test test test test test test test test test test junk"
	sender    = domain.Address("osmo15yk64u7zc9g9k2yr2wmzeva5qgwxps6ywful0v")
	recipient = domain.Address("osmo19rl4cm2hmr8afy4kldpxz3fka4jguq0a5m7df8")
	senderPub = "0223aa679d6d5344e201e0df9f02ab15a84726eee0dfb4e953c46a9e2cb52349dc"
)

type stubSecrets struct {
	phrase string
	err    error
	last   *domain.Mnemonic
}

func (s *stubSecrets) Load() (*domain.Mnemonic, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.last = domain.NewMnemonic([]byte(s.phrase))
	return s.last, nil
}

type TransferSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	chain   *mocks.MockChainClient
	secrets *stubSecrets
	svc     *transfer.Service
}

func TestTransferSuite(t *testing.T) {
	suite.Run(t, new(TransferSuite))
}

func (s *TransferSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.chain = mocks.NewMockChainClient(s.ctrl)
	s.secrets = &stubSecrets{phrase: testJunk}

	price, err := txbuilder.ParseGasPrice("0.025uosmo")
	s.Require().NoError(err)
	s.svc = transfer.New(
		s.secrets,
		wallet.New("osmo"),
		txbuilder.New("osmo", []string{"uosmo", "uion"}),
		signer.New("osmo", nil),
		broadcast.New(s.chain, broadcast.Options{InclusionTimeout: time.Second, PollInterval: 5 * time.Millisecond}, nil),
		s.chain,
		transfer.Config{ChainID: "testing", GasPrice: price, GasAdjustment: 1.5},
		nil,
	)
}

func (s *TransferSuite) request() domain.TransferRequest {
	return domain.TransferRequest{Recipient: recipient, Amount: domain.NewCoin("uosmo", 1000)}
}

func (s *TransferSuite) expectPreflight(seq uint64) {
	s.chain.EXPECT().AccountInfo(gomock.Any(), sender).
		Return(domain.AccountInfo{Address: sender, AccountNumber: 5, Sequence: seq}, nil)
	s.chain.EXPECT().Balances(gomock.Any(), sender).Return([]domain.Coin{domain.NewCoin("uosmo", 1_000_000)}, nil)
	s.chain.EXPECT().Balances(gomock.Any(), recipient).Return([]domain.Coin{}, nil)
}

// decodeSigned checks txBytes is a valid signature by the test wallet and
// returns its decoded form.
func (s *TransferSuite) decodeSigned(txBytes []byte) txproto.DecodedTx {
	dec, err := txproto.DecodeTx(txBytes)
	s.Require().NoError(err)
	s.Require().Len(dec.Raw.Signatures, 1)
	pub, err := crypto.ParsePublicKey(mustHex(senderPub))
	s.Require().NoError(err)
	doc := dec.SignDoc("testing", 5).Marshal()
	s.True(crypto.VerifySHA256(pub, doc, domain.Signature(dec.Raw.Signatures[0])), "signature must verify")
	return dec
}

func (s *TransferSuite) TestTransfer_Committed() {
	s.expectPreflight(2)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txBytes []byte) (uint64, error) {
		dec, err := txproto.DecodeTx(txBytes)
		s.Require().NoError(err)
		s.Empty(dec.Raw.Signatures[0])
		s.Equal(uint64(2), dec.AuthInfo.SignerInfos[0].Sequence)
		return 80000, nil
	})
	var hash domain.TxHash
	s.chain.EXPECT().BroadcastSync(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txBytes []byte) (domain.TxResponse, error) {
		dec := s.decodeSigned(txBytes)
		s.Equal(uint64(2), dec.AuthInfo.SignerInfos[0].Sequence)
		s.Equal(uint64(120000), dec.AuthInfo.Fee.GasLimit)
		s.Equal([]txproto.Coin{{Denom: "uosmo", Amount: "3000"}}, dec.AuthInfo.Fee.Amount)
		hash = domain.HashTxBytes(txBytes)
		return domain.TxResponse{TxHash: hash}, nil
	})
	s.chain.EXPECT().GetTx(gomock.Any(), gomock.Any()).Return(domain.TxResponse{Height: 100, GasUsed: 79000}, true, nil)

	receipt, err := s.svc.Transfer(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(sender, receipt.Sender)
	s.Equal(recipient, receipt.Recipient)
	s.Equal("1000uosmo", receipt.Amount.String())
	s.Equal("3000uosmo", receipt.Fee.Amount.String())
	s.Equal(uint64(120000), receipt.Fee.GasLimit)
	s.Equal(uint64(2), receipt.Sequence)
	s.Equal(domain.StateCommitted, receipt.Result.State)
	s.Equal(hash, receipt.Result.TxHash)
	s.Equal(int64(100), receipt.Result.Height)
}

func (s *TransferSuite) TestTransfer_ExplicitGasSkipsSimulation() {
	s.expectPreflight(0)
	s.chain.EXPECT().BroadcastSync(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txBytes []byte) (domain.TxResponse, error) {
		dec := s.decodeSigned(txBytes)
		s.Equal(uint64(100000), dec.AuthInfo.Fee.GasLimit)
		return domain.TxResponse{}, nil
	})
	s.chain.EXPECT().GetTx(gomock.Any(), gomock.Any()).Return(domain.TxResponse{Height: 1}, true, nil)

	req := s.request()
	req.GasLimit = 100000
	receipt, err := s.svc.Transfer(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("2500uosmo", receipt.Fee.Amount.String())
}

func (s *TransferSuite) TestTransfer_SimulationUnreachableFallsBack() {
	s.expectPreflight(0)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(uint64(0), fmt.Errorf("%w: timeout", domain.ErrConnection))
	s.chain.EXPECT().BroadcastSync(gomock.Any(), gomock.Any()).Return(domain.TxResponse{}, nil)
	s.chain.EXPECT().GetTx(gomock.Any(), gomock.Any()).Return(domain.TxResponse{Height: 1}, true, nil)

	receipt, err := s.svc.Transfer(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(transfer.DefaultGasLimit, receipt.Fee.GasLimit)
	s.Equal("5000uosmo", receipt.Fee.Amount.String())
}

func (s *TransferSuite) TestTransfer_SimulationRejected() {
	s.expectPreflight(0)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).
		Return(uint64(0), &domain.RejectedError{Code: 2, Log: "insufficient funds"})

	_, err := s.svc.Transfer(context.Background(), s.request())
	s.ErrorIs(err, domain.ErrRejectedByNetwork)
}

func (s *TransferSuite) TestTransfer_WrongSequenceRejected() {
	s.expectPreflight(0)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(uint64(80000), nil)
	s.chain.EXPECT().BroadcastSync(gomock.Any(), gomock.Any()).Return(domain.TxResponse{
		Codespace: "sdk", Code: 32, RawLog: "account sequence mismatch, expected 1, got 0",
	}, nil)

	receipt, err := s.svc.Transfer(context.Background(), s.request())
	s.ErrorIs(err, domain.ErrRejectedByNetwork)
	s.NotErrorIs(err, domain.ErrConnection)
	s.Equal(domain.StateRejected, receipt.Result.State)
	s.Equal(6, domain.Classify(err).ExitCode)
}

func (s *TransferSuite) TestTransfer_NoWait() {
	s.expectPreflight(0)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(uint64(80000), nil)
	s.chain.EXPECT().BroadcastSync(gomock.Any(), gomock.Any()).Return(domain.TxResponse{}, nil)

	req := s.request()
	req.NoWait = true
	receipt, err := s.svc.Transfer(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(domain.StateAccepted, receipt.Result.State)
	s.Equal(domain.InclusionPending, receipt.Result.Status)
}

func (s *TransferSuite) TestTransfer_BroadcastUnreachableKeepsHash() {
	s.expectPreflight(0)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(uint64(80000), nil)
	var sent []byte
	s.chain.EXPECT().BroadcastSync(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txBytes []byte) (domain.TxResponse, error) {
			sent = txBytes
			return domain.TxResponse{}, fmt.Errorf("%w: connection reset", domain.ErrConnection)
		})

	receipt, err := s.svc.Transfer(context.Background(), s.request())
	s.ErrorIs(err, domain.ErrConnection)
	s.Equal(domain.StateConnectionFailed, receipt.Result.State)
	s.Equal(domain.HashTxBytes(sent), receipt.Result.TxHash)
	s.Equal(5, domain.Classify(err).ExitCode)
}

func (s *TransferSuite) TestTransfer_ValidatesBeforeNetwork() {
	cases := []struct {
		name string
		req  domain.TransferRequest
		want error
	}{
		{"bad address", domain.TransferRequest{Recipient: "osmo1exampledestination", Amount: domain.NewCoin("uosmo", 1)}, domain.ErrInvalidAddress},
		{"foreign prefix", domain.TransferRequest{Recipient: "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4", Amount: domain.NewCoin("uosmo", 1)}, domain.ErrInvalidAddress},
		{"unknown denom", domain.TransferRequest{Recipient: recipient, Amount: domain.NewCoin("uatom", 1)}, domain.ErrInvalidDenomination},
		{"zero amount", domain.TransferRequest{Recipient: recipient, Amount: domain.NewCoin("uosmo", 0)}, domain.ErrInvalidArgument},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			// no chain expectations: any network call fails the test
			_, err := s.svc.Transfer(context.Background(), tc.req)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *TransferSuite) TestTransfer_AccountLookupFails() {
	s.chain.EXPECT().AccountInfo(gomock.Any(), sender).Return(domain.AccountInfo{}, fmt.Errorf("%w: refused", domain.ErrConnection))
	s.chain.EXPECT().Balances(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: refused", domain.ErrConnection)).Times(2)

	_, err := s.svc.Transfer(context.Background(), s.request())
	s.ErrorIs(err, domain.ErrConnection)
}

func (s *TransferSuite) TestTransfer_SecretUnavailable() {
	s.secrets.err = fmt.Errorf("%w: no wallet", domain.ErrSecretUnavailable)
	_, err := s.svc.Transfer(context.Background(), s.request())
	s.ErrorIs(err, domain.ErrSecretUnavailable)
	s.Equal(3, domain.Classify(err).ExitCode)
}

func (s *TransferSuite) TestTransfer_InvalidMnemonic() {
	s.secrets.phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	_, err := s.svc.Transfer(context.Background(), s.request())
	s.ErrorIs(err, domain.ErrInvalidMnemonic)
	s.Empty(s.secrets.last.Bytes())
}

func (s *TransferSuite) TestTransfer_WipesMnemonic() {
	s.expectPreflight(0)
	s.chain.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(uint64(0), &domain.RejectedError{Code: 2})

	_, _ = s.svc.Transfer(context.Background(), s.request())
	s.Require().NotNil(s.secrets.last)
	s.Empty(s.secrets.last.Bytes())
}

func (s *TransferSuite) TestSenderAddress() {
	addr, err := s.svc.SenderAddress()
	s.Require().NoError(err)
	s.Equal(sender, addr)
	s.Empty(s.secrets.last.Bytes())
}
