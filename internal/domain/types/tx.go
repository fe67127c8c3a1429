package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// UnsignedTransaction is a validated bank transfer awaiting a signature.
// It is passed by value; holders cannot alter another holder's copy.
type UnsignedTransaction struct {
	Sender        Address
	Recipient     Address
	Amount        Coin
	Fee           Fee
	AccountNumber uint64
	Sequence      uint64
	ChainID       ChainID
	Memo          string
}

// SignedTransaction is an UnsignedTransaction together with the signer's
// public key, the signature, and the canonical bytes the signature covers.
// Its fields are unexported so the signed bytes cannot drift from the
// signature; accessors hand out copies.
type SignedTransaction struct {
	tx            UnsignedTransaction
	pubKey        Secp256k1Public
	signature     Signature
	bodyBytes     []byte
	authInfoBytes []byte
	txBytes       []byte
}

// NewSignedTransaction assembles a SignedTransaction. The byte slices are
// copied.
func NewSignedTransaction(
	tx UnsignedTransaction,
	pubKey Secp256k1Public,
	sig Signature,
	bodyBytes, authInfoBytes, txBytes []byte,
) SignedTransaction {
	return SignedTransaction{
		tx:            tx,
		pubKey:        pubKey,
		signature:     sig,
		bodyBytes:     clone(bodyBytes),
		authInfoBytes: clone(authInfoBytes),
		txBytes:       clone(txBytes),
	}
}

// Unsigned returns the transaction that was signed.
func (s SignedTransaction) Unsigned() UnsignedTransaction { return s.tx }

// PubKey returns the signer's compressed public key.
func (s SignedTransaction) PubKey() Secp256k1Public { return s.pubKey }

// Signature returns the r||s signature.
func (s SignedTransaction) Signature() Signature { return s.signature }

// BodyBytes returns a copy of the encoded TxBody.
func (s SignedTransaction) BodyBytes() []byte { return clone(s.bodyBytes) }

// AuthInfoBytes returns a copy of the encoded AuthInfo.
func (s SignedTransaction) AuthInfoBytes() []byte { return clone(s.authInfoBytes) }

// TxBytes returns a copy of the encoded TxRaw ready for broadcast.
func (s SignedTransaction) TxBytes() []byte { return clone(s.txBytes) }

// Hash returns the hash under which the network will index the transaction.
func (s SignedTransaction) Hash() TxHash { return HashTxBytes(s.txBytes) }

// HashTxBytes computes the transaction hash of raw tx bytes.
func HashTxBytes(txBytes []byte) TxHash {
	sum := sha256.Sum256(txBytes)
	return TxHash(strings.ToUpper(hex.EncodeToString(sum[:])))
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
