package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"cointransfer/internal/domain"
)

// Fingerprint identifies pub in logs without printing the key itself:
// the first 10 bytes of SHA-256(pub) in hex.
func Fingerprint(pub domain.Secp256k1Public) domain.Fingerprint {
	sum := sha256.Sum256(pub[:])
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
