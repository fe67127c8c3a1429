package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
	"cointransfer/internal/services/txbuilder"
)

// DefaultGasLimit is used when simulation is unavailable.
const DefaultGasLimit uint64 = 200000

// Config holds the network parameters of a transfer.
type Config struct {
	ChainID       domain.ChainID
	GasPrice      txbuilder.GasPrice
	GasAdjustment float64
	// FallbackGas is used when the simulate endpoint cannot be reached.
	FallbackGas uint64
}

// Service implements domain.TransferService.
type Service struct {
	secrets domain.SecretSource
	keys    domain.KeyDeriver
	builder domain.TransactionBuilder
	signer  domain.Signer
	bcast   domain.Broadcaster
	chain   domain.ChainClient
	cfg     Config
	log     *zap.Logger
}

// New wires a transfer pipeline. A nil logger is replaced by a no-op logger.
func New(
	secrets domain.SecretSource,
	keys domain.KeyDeriver,
	builder domain.TransactionBuilder,
	signer domain.Signer,
	bcast domain.Broadcaster,
	chain domain.ChainClient,
	cfg Config,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.FallbackGas == 0 {
		cfg.FallbackGas = DefaultGasLimit
	}
	return &Service{
		secrets: secrets,
		keys:    keys,
		builder: builder,
		signer:  signer,
		bcast:   bcast,
		chain:   chain,
		cfg:     cfg,
		log:     log,
	}
}

// unlock loads the mnemonic, derives the key pair and wipes the mnemonic.
// The caller owns the returned pair and must Wipe it.
func (s *Service) unlock() (domain.KeyPair, error) {
	mn, err := s.secrets.Load()
	if err != nil {
		return domain.KeyPair{}, err
	}
	kp, err := s.keys.Derive(mn, "")
	mn.Wipe()
	if err != nil {
		return domain.KeyPair{}, err
	}
	return kp, nil
}

// SenderAddress derives the wallet address without touching the network.
func (s *Service) SenderAddress() (domain.Address, error) {
	kp, err := s.unlock()
	if err != nil {
		return "", err
	}
	defer kp.Wipe()
	return kp.Address, nil
}

// Transfer sends req.Amount from the wallet to req.Recipient.
func (s *Service) Transfer(ctx context.Context, req domain.TransferRequest) (domain.TransferReceipt, error) {
	kp, err := s.unlock()
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	defer kp.Wipe()

	log := s.log.With(zap.Stringer("sender", kp.Address), zap.Stringer("recipient", req.Recipient))
	log.Info("wallet unlocked", zap.Stringer("pubkey_fp", crypto.Fingerprint(kp.Public)))

	provisional, err := s.cfg.GasPrice.Fee(s.cfg.FallbackGas)
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	params := domain.TransferParams{
		Sender:    kp.Address,
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Fee:       provisional,
		ChainID:   s.cfg.ChainID,
		Memo:      req.Memo,
	}
	if _, err := s.builder.Build(params); err != nil {
		return domain.TransferReceipt{}, err
	}

	acct, senderBal, err := s.preflight(ctx, log, kp.Address, req)
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	params.AccountNumber = acct.AccountNumber
	params.Sequence = acct.Sequence

	gas := req.GasLimit
	if gas == 0 {
		if gas, err = s.estimateGas(ctx, log, params, kp.Public); err != nil {
			return domain.TransferReceipt{}, err
		}
	}
	if params.Fee, err = s.cfg.GasPrice.Fee(gas); err != nil {
		return domain.TransferReceipt{}, err
	}
	log.Info("fee computed", zap.Stringer("fee", params.Fee.Amount), zap.Uint64("gas_limit", gas))
	if senderBal != nil && !covers(senderBal, params.Amount, params.Fee.Amount) {
		log.Warn("sender balance looks insufficient for amount plus fee",
			zap.Stringer("amount", params.Amount), zap.Stringer("fee", params.Fee.Amount))
	}

	tx, err := s.builder.Build(params)
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	receipt := domain.TransferReceipt{
		Sender:    tx.Sender,
		Recipient: tx.Recipient,
		Amount:    tx.Amount,
		Fee:       tx.Fee,
		Sequence:  tx.Sequence,
	}
	receipt.Result.SetState(domain.StateBuilt)

	signed, err := s.signer.Sign(tx, &kp)
	if err != nil {
		return receipt, err
	}
	receipt.Result.TxHash = signed.Hash()
	receipt.Result.SetState(domain.StateSigned)
	log.Debug("transaction ready", zap.Stringer("tx_hash", receipt.Result.TxHash), zap.String("state", string(receipt.Result.State)))

	if req.NoWait {
		receipt.Result, err = s.bcast.Broadcast(ctx, signed)
	} else {
		receipt.Result, err = s.bcast.Submit(ctx, signed)
	}
	return receipt, err
}

// preflight fetches the sender's account and both balances. Only the
// account lookup can fail the transfer; the network stays the authority on
// funds.
func (s *Service) preflight(ctx context.Context, log *zap.Logger, sender domain.Address, req domain.TransferRequest) (domain.AccountInfo, []domain.Coin, error) {
	var (
		acct               domain.AccountInfo
		senderBal, destBal []domain.Coin
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		acct, err = s.chain.AccountInfo(gctx, sender)
		return err
	})
	g.Go(func() error {
		var err error
		if senderBal, err = s.chain.Balances(gctx, sender); err != nil {
			log.Warn("sender balance unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if destBal, err = s.chain.Balances(gctx, req.Recipient); err != nil {
			log.Warn("recipient balance unavailable", zap.Error(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.AccountInfo{}, nil, err
	}

	log.Info("account loaded",
		zap.Uint64("account_number", acct.AccountNumber),
		zap.Uint64("sequence", acct.Sequence),
		zap.Stringers("sender_balances", senderBal),
		zap.Stringers("recipient_balances", destBal),
	)
	return acct, senderBal, nil
}

// covers reports whether balances hold amount plus fee.
func covers(balances []domain.Coin, amount, fee domain.Coin) bool {
	need := map[string]*uint256.Int{amount.Denom: new(uint256.Int).Set(&amount.Amount)}
	if fee.IsPositive() {
		if n, ok := need[fee.Denom]; ok {
			if _, overflow := n.AddOverflow(n, &fee.Amount); overflow {
				return false
			}
		} else {
			need[fee.Denom] = new(uint256.Int).Set(&fee.Amount)
		}
	}
	for denom, n := range need {
		have := new(uint256.Int)
		for _, c := range balances {
			if c.Denom == denom {
				have.Set(&c.Amount)
			}
		}
		if have.Lt(n) {
			return false
		}
	}
	return true
}

// estimateGas simulates params with an empty signature and scales the
// result by the configured adjustment.
func (s *Service) estimateGas(ctx context.Context, log *zap.Logger, params domain.TransferParams, pub domain.Secp256k1Public) (uint64, error) {
	tx, err := s.builder.Build(params)
	if err != nil {
		return 0, err
	}
	body := txbuilder.BodyBytes(tx)
	txBytes := txbuilder.TxBytes(body, txbuilder.AuthInfoBytes(tx, pub), nil)

	used, err := s.chain.Simulate(ctx, txBytes)
	switch {
	case errors.Is(err, domain.ErrConnection):
		log.Warn("simulation unavailable, using fallback gas", zap.Uint64("gas_limit", s.cfg.FallbackGas), zap.Error(err))
		return s.cfg.FallbackGas, nil
	case err != nil:
		return 0, fmt.Errorf("simulate transfer: %w", err)
	}
	gas := txbuilder.AdjustGas(used, s.cfg.GasAdjustment)
	log.Debug("gas simulated", zap.Uint64("gas_used", used), zap.Uint64("gas_limit", gas))
	return gas, nil
}

var _ domain.TransferService = (*Service)(nil)
