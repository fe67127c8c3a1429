package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Cosmos addresses are defined over RIPEMD-160.

	"cointransfer/internal/domain"
)

const (
	// AccountAddressLen is the payload length of a key-derived account address.
	AccountAddressLen = 20
	// ModuleAddressLen is the payload length of module and contract addresses.
	ModuleAddressLen = 32
)

// AddressHash returns RIPEMD160(SHA256(pub)).
func AddressHash(pub domain.Secp256k1Public) []byte {
	sha := sha256.Sum256(pub[:])
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// EncodeAddress bech32-encodes payload under hrp.
func EncodeAddress(hrp string, payload []byte) (domain.Address, error) {
	s, err := bech32.EncodeFromBase256(hrp, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	return domain.Address(s), nil
}

// AddressFromPublicKey derives the account address of pub under hrp.
func AddressFromPublicKey(hrp string, pub domain.Secp256k1Public) (domain.Address, error) {
	return EncodeAddress(hrp, AddressHash(pub))
}

// DecodeAddress returns the prefix and payload of a bech32 address.
func DecodeAddress(addr domain.Address) (hrp string, payload []byte, err error) {
	hrp, payload, err = bech32.DecodeToBase256(addr.String())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidAddress, addr, err)
	}
	return hrp, payload, nil
}

// ValidateAddress checks that addr is a bech32 address under wantHRP with a
// 20- or 32-byte payload.
func ValidateAddress(addr domain.Address, wantHRP string) error {
	hrp, payload, err := DecodeAddress(addr)
	if err != nil {
		return err
	}
	if hrp != wantHRP {
		return fmt.Errorf("%w: %q: prefix %q, want %q", domain.ErrInvalidAddress, addr, hrp, wantHRP)
	}
	if l := len(payload); l != AccountAddressLen && l != ModuleAddressLen {
		return fmt.Errorf("%w: %q: payload is %d bytes", domain.ErrInvalidAddress, addr, l)
	}
	if strings.ToLower(addr.String()) != addr.String() {
		return fmt.Errorf("%w: %q: address must be lower case", domain.ErrInvalidAddress, addr)
	}
	return nil
}
