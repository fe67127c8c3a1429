package crypto

import (
	"crypto/sha256"
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"cointransfer/internal/domain"
)

var (
	// ErrInvalidPrivateKey is returned for a scalar outside [1, N-1].
	ErrInvalidPrivateKey = errors.New("invalid secp256k1 private key")
	// ErrInvalidPublicKey is returned for bytes that are not a curve point.
	ErrInvalidPublicKey = errors.New("invalid secp256k1 public key")
)

// PublicKeyOf returns the compressed public key for priv.
func PublicKeyOf(priv *domain.Secp256k1Private) (domain.Secp256k1Public, error) {
	var out domain.Secp256k1Public
	key, err := privateKey(priv)
	if err != nil {
		return out, err
	}
	defer key.Zero()
	copy(out[:], key.PubKey().SerializeCompressed())
	return out, nil
}

// SignSHA256 signs SHA-256(msg) with priv using RFC 6979 nonces and returns
// the low-S r||s signature.
func SignSHA256(priv *domain.Secp256k1Private, msg []byte) (domain.Signature, error) {
	var out domain.Signature
	key, err := privateKey(priv)
	if err != nil {
		return out, err
	}
	defer key.Zero()

	hash := sha256.Sum256(msg)
	der := ecdsa.Sign(key, hash[:]).Serialize()

	var rs struct{ R, S *big.Int }
	if _, err := asn1.Unmarshal(der, &rs); err != nil {
		return out, fmt.Errorf("decode signature: %w", err)
	}
	rs.R.FillBytes(out[:32])
	rs.S.FillBytes(out[32:])
	return out, nil
}

// VerifySHA256 reports whether sig is a valid low-S signature of
// SHA-256(msg) under pub.
func VerifySHA256(pub domain.Secp256k1Public, msg []byte, sig domain.Signature) bool {
	key, err := btcec.ParsePubKey(pub[:])
	if err != nil {
		return false
	}
	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() {
		return false
	}
	// The network rejects malleable high-S signatures.
	if s.IsOverHalfOrder() {
		return false
	}
	hash := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], key)
}

// ParsePublicKey checks that b is a compressed secp256k1 point.
func ParsePublicKey(b []byte) (domain.Secp256k1Public, error) {
	var out domain.Secp256k1Public
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPublicKey, len(out), len(b))
	}
	if _, err := btcec.ParsePubKey(b); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	copy(out[:], b)
	return out, nil
}

func privateKey(priv *domain.Secp256k1Private) (*btcec.PrivateKey, error) {
	var scalar btcec.ModNScalar
	defer scalar.Zero()
	if overflow := scalar.SetByteSlice(priv[:]); overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(priv[:])
	return key, nil
}
