package wallet

import (
	"bytes"
	"crypto/sha512"
	"fmt"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"

	"cointransfer/internal/domain"
	"cointransfer/internal/util/memzero"
)

const (
	seedIterations = 2048
	seedBytes      = 64
)

// AcceptedWordCounts are the BIP-39 mnemonic lengths.
var AcceptedWordCounts = []int{12, 15, 18, 21, 24}

// ValidWordCount reports whether n is an accepted mnemonic length.
func ValidWordCount(n int) bool {
	for _, c := range AcceptedWordCounts {
		if n == c {
			return true
		}
	}
	return false
}

// ValidateMnemonic checks word count, wordlist membership and the BIP-39
// checksum. Errors identify a bad word by position, never by content.
func ValidateMnemonic(m *domain.Mnemonic) error {
	if m == nil || len(m.Bytes()) == 0 {
		return fmt.Errorf("%w: empty phrase", domain.ErrInvalidMnemonic)
	}
	words := bytes.Fields(m.Bytes())
	if !ValidWordCount(len(words)) {
		return fmt.Errorf("%w: %d words, want one of %v",
			domain.ErrInvalidMnemonic, len(words), AcceptedWordCounts)
	}
	for i, w := range words {
		if _, ok := bip39.GetWordIndex(string(w)); !ok {
			return fmt.Errorf("%w: word %d is not in the BIP-39 English wordlist",
				domain.ErrInvalidMnemonic, i+1)
		}
	}
	// go-bip39 only accepts strings; this copy is short-lived but cannot be wiped.
	if !bip39.IsMnemonicValid(string(m.Bytes())) {
		return fmt.Errorf("%w: checksum mismatch", domain.ErrInvalidMnemonic)
	}
	return nil
}

// Seed stretches the normalized phrase into the 64-byte BIP-39 seed. The
// caller must zero the result.
func Seed(m *domain.Mnemonic, passphrase string) []byte {
	salt := append([]byte("mnemonic"), passphrase...)
	defer memzero.Zero(salt)
	return pbkdf2.Key(m.Bytes(), salt, seedIterations, seedBytes, sha512.New)
}
