package types

// Secp256k1Private is a secp256k1 private scalar in big-endian form.
type Secp256k1Private [32]byte

// Secp256k1Public is a SEC1 compressed secp256k1 public key.
type Secp256k1Public [33]byte

// Slice returns the key as a []byte.
func (p Secp256k1Public) Slice() []byte { return p[:] }

// Signature is a 64-byte r||s ECDSA signature.
type Signature [64]byte
