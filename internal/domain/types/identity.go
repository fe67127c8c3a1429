package types

import "cointransfer/internal/util/memzero"

// KeyPair is the signing key derived from the wallet mnemonic.
//
// The private half must not outlive the invocation that derived it; callers
// defer Wipe as soon as the pair is created.
type KeyPair struct {
	Private Secp256k1Private
	Public  Secp256k1Public
	Address Address
}

// Wipe zeroes the private scalar in place.
func (k *KeyPair) Wipe() {
	if k == nil {
		return
	}
	memzero.Zero(k.Private[:])
}
