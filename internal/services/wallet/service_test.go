package wallet_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
	"cointransfer/internal/services/wallet"
)

const (
	abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	junkMnemonic    = "test test test test test test test test test test test junk"
)

func mnemonic(s string) *domain.Mnemonic { return domain.NewMnemonic([]byte(s)) }

func TestDerive_KnownVectors(t *testing.T) {
	cases := []struct {
		name       string
		phrase     string
		passphrase string
		priv       string
		pub        string
		address    domain.Address
	}{
		{
			name:    "abandon about",
			phrase:  abandonMnemonic,
			priv:    "c4a48e2fce1481cd3294b4490f6678090ea98d3d0e5cd984558ab0968741b104",
			pub:     "024f4e2ad99c34d60b9ba6283c9431a8418af8673212961f97a77b6377fcd05b62",
			address: "osmo19rl4cm2hmr8afy4kldpxz3fka4jguq0a5m7df8",
		},
		{
			name:    "test junk",
			phrase:  junkMnemonic,
			priv:    "e64e7928d4f6c06f01fefd31f760c51f59a16426e792761cd00529b76501c8a0",
			pub:     "0223aa679d6d5344e201e0df9f02ab15a84726eee0dfb4e953c46a9e2cb52349dc",
			address: "osmo15yk64u7zc9g9k2yr2wmzeva5qgwxps6ywful0v",
		},
		{
			name:       "abandon about with passphrase",
			phrase:     abandonMnemonic,
			passphrase: "TREZOR",
			address:    "osmo12fdxecq3dp28aaswp2n3yk35p782g3w99ez6dg",
		},
	}

	svc := wallet.New("osmo")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kp, err := svc.Derive(mnemonic(tc.phrase), tc.passphrase)
			require.NoError(t, err)
			defer kp.Wipe()

			if tc.priv != "" {
				assert.Equal(t, tc.priv, hex.EncodeToString(kp.Private[:]))
			}
			if tc.pub != "" {
				assert.Equal(t, tc.pub, hex.EncodeToString(kp.Public[:]))
			}
			assert.Equal(t, tc.address, kp.Address)
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	svc := wallet.New("osmo")

	first, err := svc.Derive(mnemonic(junkMnemonic), "")
	require.NoError(t, err)
	second, err := svc.Derive(mnemonic(junkMnemonic), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NoError(t, crypto.ValidateAddress(first.Address, "osmo"))
}

func TestDerive_NormalizesWhitespaceAndCase(t *testing.T) {
	svc := wallet.New("osmo")
	messy := "  TEST test\ttest test test test\ntest test test test test JUNK \n"

	kp, err := svc.Derive(mnemonic(messy), "")
	require.NoError(t, err)
	assert.Equal(t, domain.Address("osmo15yk64u7zc9g9k2yr2wmzeva5qgwxps6ywful0v"), kp.Address)
}

func TestDerive_InvalidMnemonic(t *testing.T) {
	svc := wallet.New("osmo")
	cases := map[string]string{
		"bad checksum":  strings.Repeat("abandon ", 11) + "abandon",
		"unknown word":  strings.Repeat("abandon ", 11) + "notaword",
		"word count":    strings.Repeat("abandon ", 10) + "about",
		"empty":         "",
		"only spaces":   "   ",
		"thirteen word": strings.Repeat("abandon ", 12) + "about",
	}
	for name, phrase := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Derive(mnemonic(phrase), "")
			require.ErrorIs(t, err, domain.ErrInvalidMnemonic)
			assert.NotContains(t, err.Error(), "notaword", "error must not echo the secret")
		})
	}
}

func TestDerive_NilMnemonic(t *testing.T) {
	_, err := wallet.New("osmo").Derive(nil, "")
	require.ErrorIs(t, err, domain.ErrInvalidMnemonic)
}

func TestAddressOf_UsesPrefix(t *testing.T) {
	kp, err := wallet.New("osmo").Derive(mnemonic(abandonMnemonic), "")
	require.NoError(t, err)

	addr, err := wallet.New("cosmos").AddressOf(kp.Public)
	require.NoError(t, err)
	assert.Equal(t, domain.Address("cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"), addr)
}

func TestCosmosPath(t *testing.T) {
	assert.Equal(t, "m/44'/118'/0'/0/0", wallet.CosmosPath.String())
	assert.Equal(t, wallet.CosmosPath, wallet.New("osmo").Path())
	assert.Equal(t,
		[]uint32{0x8000002c, 0x80000076, 0x80000000, 0, 0},
		wallet.CosmosPath.Indices())
}

func TestValidWordCount(t *testing.T) {
	for _, n := range []int{12, 15, 18, 21, 24} {
		assert.True(t, wallet.ValidWordCount(n), n)
	}
	for _, n := range []int{0, 11, 13, 16, 25} {
		assert.False(t, wallet.ValidWordCount(n), n)
	}
}

func TestKeyPairWipe(t *testing.T) {
	kp, err := wallet.New("osmo").Derive(mnemonic(junkMnemonic), "")
	require.NoError(t, err)
	kp.Wipe()
	assert.Equal(t, domain.Secp256k1Private{}, kp.Private)
}
