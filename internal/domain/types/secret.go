package types

import (
	"bytes"

	"cointransfer/internal/util/memzero"
)

// Mnemonic holds a BIP-39 phrase in a mutable buffer so it can be wiped
// once the key has been derived. It never renders its content through fmt.
type Mnemonic struct {
	phrase []byte
}

// NewMnemonic takes ownership of b; the caller must not reuse it.
func NewMnemonic(b []byte) *Mnemonic {
	return &Mnemonic{phrase: b}
}

// Bytes exposes the backing buffer. It is wiped by Wipe.
func (m *Mnemonic) Bytes() []byte { return m.phrase }

// WordCount returns the number of whitespace-separated words.
func (m *Mnemonic) WordCount() int {
	n := 0
	inWord := false
	for _, c := range m.phrase {
		space := c == ' ' || c == '\t' || c == '\n' || c == '\r'
		if !space && !inWord {
			n++
		}
		inWord = !space
	}
	return n
}

// Normalize collapses runs of whitespace to single spaces in place and
// lowercases ASCII letters, as BIP-39 phrases are compared word by word.
func (m *Mnemonic) Normalize() {
	out := m.phrase[:0]
	for _, w := range bytes.Fields(m.phrase) {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		for _, c := range w {
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			out = append(out, c)
		}
	}
	memzero.Zero(m.phrase[len(out):])
	m.phrase = out
}

// Wipe zeroes the phrase. The Mnemonic is empty afterwards.
func (m *Mnemonic) Wipe() {
	if m == nil {
		return
	}
	memzero.Zero(m.phrase)
	m.phrase = nil
}

// String never reveals the phrase.
func (m *Mnemonic) String() string { return "[REDACTED]" }

// GoString never reveals the phrase.
func (m *Mnemonic) GoString() string { return "[REDACTED]" }
