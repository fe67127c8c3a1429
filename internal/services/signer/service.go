package signer

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
	"cointransfer/internal/services/txbuilder"
)

// ErrBadSignature is returned by Verify when the signature does not cover
// the transaction's sign bytes.
var ErrBadSignature = errors.New("signature does not verify")

// Service signs for addresses with a fixed bech32 prefix.
type Service struct {
	hrp string
	log *zap.Logger
}

// New returns a signer for addresses with prefix hrp. A nil logger is
// replaced by a no-op logger.
func New(hrp string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{hrp: hrp, log: log}
}

// Sign produces the signed, broadcast-ready form of tx. The key must
// belong to tx.Sender.
func (s *Service) Sign(tx domain.UnsignedTransaction, key *domain.KeyPair) (domain.SignedTransaction, error) {
	if key == nil {
		return domain.SignedTransaction{}, fmt.Errorf("%w: no key", domain.ErrSigning)
	}
	addr, err := crypto.AddressFromPublicKey(s.hrp, key.Public)
	if err != nil {
		return domain.SignedTransaction{}, fmt.Errorf("%w: %v", domain.ErrSigning, err)
	}
	if addr != tx.Sender {
		return domain.SignedTransaction{}, fmt.Errorf("%w: key belongs to %s, not sender %s", domain.ErrSigning, addr, tx.Sender)
	}

	body := txbuilder.BodyBytes(tx)
	auth := txbuilder.AuthInfoBytes(tx, key.Public)
	sig, err := crypto.SignSHA256(&key.Private, txbuilder.SignDocBytes(tx, body, auth))
	if err != nil {
		return domain.SignedTransaction{}, fmt.Errorf("%w: %v", domain.ErrSigning, err)
	}
	signed := domain.NewSignedTransaction(tx, key.Public, sig, body, auth, txbuilder.TxBytes(body, auth, sig[:]))
	if err := s.Verify(signed); err != nil {
		return domain.SignedTransaction{}, fmt.Errorf("%w: %v", domain.ErrSigning, err)
	}

	s.log.Debug("transaction signed",
		zap.Stringer("sender", tx.Sender),
		zap.Stringer("pubkey_fp", crypto.Fingerprint(key.Public)),
		zap.Uint64("sequence", tx.Sequence),
		zap.Stringer("chain_id", tx.ChainID),
		zap.Stringer("tx_hash", signed.Hash()),
	)
	return signed, nil
}

// Verify checks that signed carries a valid signature by its public key
// over its own sign bytes, that the key matches the sender, and that the
// stored bytes still encode the transaction's fields.
func (s *Service) Verify(signed domain.SignedTransaction) error {
	tx := signed.Unsigned()
	pub := signed.PubKey()
	addr, err := crypto.AddressFromPublicKey(s.hrp, pub)
	if err != nil {
		return err
	}
	if addr != tx.Sender {
		return fmt.Errorf("%w: public key belongs to %s, not sender %s", ErrBadSignature, addr, tx.Sender)
	}
	body, auth := signed.BodyBytes(), signed.AuthInfoBytes()
	if !bytes.Equal(body, txbuilder.BodyBytes(tx)) {
		return fmt.Errorf("%w: body bytes do not encode the transaction", ErrBadSignature)
	}
	if !bytes.Equal(auth, txbuilder.AuthInfoBytes(tx, pub)) {
		return fmt.Errorf("%w: auth info bytes do not encode the transaction", ErrBadSignature)
	}
	sig := signed.Signature()
	if !bytes.Equal(signed.TxBytes(), txbuilder.TxBytes(body, auth, sig[:])) {
		return fmt.Errorf("%w: tx bytes do not match body, auth info and signature", ErrBadSignature)
	}
	if !crypto.VerifySHA256(pub, txbuilder.SignDocBytes(tx, body, auth), sig) {
		return ErrBadSignature
	}
	return nil
}

var _ domain.Signer = (*Service)(nil)
