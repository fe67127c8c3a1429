// Package crypto exposes the minimal primitives used by the transfer tool.
//
// Contents
//
//   - secp256k1 public key derivation, RFC 6979 signing and low-S
//     verification over SHA-256 digests (PublicKeyOf, SignSHA256,
//     VerifySHA256)
//   - Account address derivation and bech32 encoding/validation
//     (AddressHash, AddressFromPublicKey, ValidateAddress)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Keys are passed as the fixed-size array types defined in internal/domain.
// Intermediate btcec key objects are zeroed before returning; callers remain
// responsible for wiping the domain.Secp256k1Private they own.
package crypto
