// Package signer signs transfers in SIGN_MODE_DIRECT.
//
// The signature is ECDSA over secp256k1 of SHA-256(SignDoc), with an
// RFC 6979 nonce and a low-S normalized 64-byte r||s encoding, where the
// SignDoc binds the encoded body, the encoded auth info (public key,
// sequence, fee), the chain id and the account number.
package signer
