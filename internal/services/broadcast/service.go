package broadcast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cointransfer/internal/domain"
)

// Defaults applied when Options leaves a field zero.
const (
	DefaultInclusionTimeout = 60 * time.Second
	DefaultPollInterval     = 2 * time.Second
)

// Options bound inclusion polling.
type Options struct {
	InclusionTimeout time.Duration
	PollInterval     time.Duration
}

func (o Options) withDefaults() Options {
	if o.InclusionTimeout <= 0 {
		o.InclusionTimeout = DefaultInclusionTimeout
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	return o
}

// Service implements domain.Broadcaster over a TransactionSubmitter.
type Service struct {
	sub  domain.TransactionSubmitter
	opts Options
	log  *zap.Logger
}

// New returns a broadcaster. A nil logger is replaced by a no-op logger.
func New(sub domain.TransactionSubmitter, opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{sub: sub, opts: opts.withDefaults(), log: log}
}

// Submit broadcasts tx and waits for its inclusion.
func (s *Service) Submit(ctx context.Context, tx domain.SignedTransaction) (domain.BroadcastResult, error) {
	res, err := s.Broadcast(ctx, tx)
	if err != nil {
		return res, err
	}
	return s.AwaitInclusion(ctx, res)
}

// Broadcast sends tx once and returns after the node's acceptance check.
// On success the result is in StateAccepted.
func (s *Service) Broadcast(ctx context.Context, tx domain.SignedTransaction) (domain.BroadcastResult, error) {
	hash := tx.Hash()
	res := newResult(hash, domain.StateSubmitted)
	log := s.log.With(zap.Stringer("tx_hash", hash))
	log.Info("broadcasting transaction", zap.Uint64("sequence", tx.Unsigned().Sequence))

	resp, err := s.sub.BroadcastSync(ctx, tx.TxBytes())
	if err != nil {
		var rej *domain.RejectedError
		if errors.As(err, &rej) {
			if rej.TxHash == "" {
				rej.TxHash = hash
			}
			res = rejected(res, rej)
			log.Warn("broadcast refused", zap.Uint32("code", rej.Code), zap.String("log", rej.Log))
			return res, err
		}
		res.SetState(domain.StateConnectionFailed)
		log.Error("broadcast failed", zap.Error(err))
		if !errors.Is(err, domain.ErrConnection) {
			err = fmt.Errorf("%w: %v", domain.ErrConnection, err)
		}
		return res, err
	}

	if resp.TxHash != "" && resp.TxHash != hash {
		log.Warn("node reported a different tx hash", zap.Stringer("node_hash", resp.TxHash))
	}
	if resp.Code != 0 {
		rej := &domain.RejectedError{TxHash: hash, Codespace: resp.Codespace, Code: resp.Code, Log: resp.RawLog}
		log.Warn("transaction rejected by check",
			zap.String("codespace", resp.Codespace),
			zap.Uint32("code", resp.Code),
			zap.String("raw_log", resp.RawLog),
		)
		return rejected(res, rej), rej
	}

	res.SetState(domain.StateAccepted)
	log.Info("transaction accepted")
	return res, nil
}

// AwaitInclusion polls for an accepted transaction until it is committed,
// fails in its block, or the inclusion timeout passes.
func (s *Service) AwaitInclusion(ctx context.Context, res domain.BroadcastResult) (domain.BroadcastResult, error) {
	if res.State != domain.StateAccepted {
		return res, fmt.Errorf("await inclusion: transaction is %s, not accepted", res.State)
	}
	log := s.log.With(zap.Stringer("tx_hash", res.TxHash))

	waitCtx, cancel := context.WithTimeout(ctx, s.opts.InclusionTimeout)
	defer cancel()
	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-waitCtx.Done():
			res.SetState(domain.StateTimedOutPendingUnknown)
			log.Warn("inclusion not observed", zap.Duration("timeout", s.opts.InclusionTimeout), zap.Int("polls", attempt-1))
			return res, fmt.Errorf("%w: tx %s after %s (%v)",
				domain.ErrTimedOutPendingUnknown, res.TxHash, s.opts.InclusionTimeout, waitCtx.Err())
		case <-ticker.C:
		}

		resp, found, err := s.sub.GetTx(waitCtx, res.TxHash)
		switch {
		case err != nil:
			log.Warn("inclusion poll failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		case !found:
			log.Debug("transaction pending", zap.Int("attempt", attempt))
			continue
		}

		res.Height = resp.Height
		res.GasUsed = resp.GasUsed
		if resp.Code != 0 {
			rej := &domain.RejectedError{
				TxHash:    res.TxHash,
				Codespace: resp.Codespace,
				Code:      resp.Code,
				Log:       resp.RawLog,
				Height:    resp.Height,
			}
			log.Warn("transaction failed in block", zap.Int64("height", resp.Height), zap.Uint32("code", resp.Code))
			return rejected(res, rej), rej
		}
		res.SetState(domain.StateCommitted)
		log.Info("transaction committed", zap.Int64("height", resp.Height), zap.Int64("gas_used", resp.GasUsed))
		return res, nil
	}
}

func newResult(hash domain.TxHash, st domain.SubmissionState) domain.BroadcastResult {
	r := domain.BroadcastResult{TxHash: hash}
	r.SetState(st)
	return r
}

func rejected(res domain.BroadcastResult, rej *domain.RejectedError) domain.BroadcastResult {
	res.Code = rej.Code
	res.Codespace = rej.Codespace
	res.Log = rej.Log
	if rej.Height != 0 {
		res.Height = rej.Height
	}
	res.SetState(domain.StateRejected)
	return res
}

var _ domain.Broadcaster = (*Service)(nil)
