package txbuilder

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
)

// MaxMemoCharacters is the default x/auth limit on memo length.
const MaxMemoCharacters = 256

// Service builds transfers for one network, identified by its address
// prefix and its recognized denominations.
type Service struct {
	hrp    string
	denoms []string
}

// New returns a builder for addresses with prefix hrp that accepts only the
// given denominations.
func New(hrp string, denoms []string) *Service {
	return &Service{hrp: hrp, denoms: slices.Clone(denoms)}
}

// Denoms returns the recognized denominations.
func (s *Service) Denoms() []string { return slices.Clone(s.denoms) }

func (s *Service) recognized(denom string) bool {
	return slices.Contains(s.denoms, denom)
}

// Build validates p and returns the unsigned transaction.
func (s *Service) Build(p domain.TransferParams) (domain.UnsignedTransaction, error) {
	if !p.Amount.IsPositive() {
		return domain.UnsignedTransaction{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}
	if err := crypto.ValidateAddress(p.Sender, s.hrp); err != nil {
		return domain.UnsignedTransaction{}, fmt.Errorf("sender: %w", err)
	}
	if err := crypto.ValidateAddress(p.Recipient, s.hrp); err != nil {
		return domain.UnsignedTransaction{}, fmt.Errorf("recipient: %w", err)
	}
	if !s.recognized(p.Amount.Denom) {
		return domain.UnsignedTransaction{}, fmt.Errorf("%w: %q (recognized: %v)", domain.ErrInvalidDenomination, p.Amount.Denom, s.denoms)
	}
	if p.Fee.Amount.IsPositive() && !s.recognized(p.Fee.Amount.Denom) {
		return domain.UnsignedTransaction{}, fmt.Errorf("%w: fee %q (recognized: %v)", domain.ErrInvalidDenomination, p.Fee.Amount.Denom, s.denoms)
	}
	if p.ChainID == "" {
		return domain.UnsignedTransaction{}, fmt.Errorf("%w: chain id is empty", domain.ErrInvalidArgument)
	}
	if n := utf8.RuneCountInString(p.Memo); n > MaxMemoCharacters {
		return domain.UnsignedTransaction{}, fmt.Errorf("%w: memo has %d characters, limit %d", domain.ErrInvalidArgument, n, MaxMemoCharacters)
	}

	return domain.UnsignedTransaction{
		Sender:        p.Sender,
		Recipient:     p.Recipient,
		Amount:        p.Amount,
		Fee:           p.Fee,
		AccountNumber: p.AccountNumber,
		Sequence:      p.Sequence,
		ChainID:       p.ChainID,
		Memo:          p.Memo,
	}, nil
}

var _ domain.TransactionBuilder = (*Service)(nil)
