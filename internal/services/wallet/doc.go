// Package wallet derives the signing key of the local wallet from its
// BIP-39 mnemonic.
//
// The derivation is fixed: BIP-39 seed (PBKDF2-HMAC-SHA512, 2048 rounds),
// BIP-32 master key, then the BIP-44 path m/44'/118'/0'/0/0 used by Cosmos
// SDK chains. The account address is bech32(hrp, RIPEMD160(SHA256(pubkey))).
// The same mnemonic and passphrase always yield the same key and address.
//
// Seeds, extended keys and intermediate scalars are zeroed before Derive
// returns. The returned KeyPair must be wiped by the caller.
package wallet
