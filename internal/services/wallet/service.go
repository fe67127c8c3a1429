package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"cointransfer/internal/crypto"
	"cointransfer/internal/domain"
	"cointransfer/internal/util/memzero"
)

// Service derives the wallet key and its address under a fixed prefix.
//
// It is stateless: nothing derived is cached between calls.
type Service struct {
	hrp  string
	path DerivationPath
}

// New returns a key deriver producing addresses with the given bech32 prefix.
func New(hrp string) *Service {
	return &Service{hrp: hrp, path: CosmosPath}
}

// Path returns the derivation path in use.
func (s *Service) Path() DerivationPath { return s.path }

// Derive validates the mnemonic and derives the key pair at the fixed path.
//
// Steps:
//  1. Normalize whitespace/case and validate the phrase (ErrInvalidMnemonic).
//  2. Stretch it into the BIP-39 seed with the optional passphrase.
//  3. Build the BIP-32 master key and walk the BIP-44 path.
//  4. Compute the compressed public key and bech32 address.
//
// Curve failures along the way are reported as ErrDerivation.
func (s *Service) Derive(m *domain.Mnemonic, passphrase string) (domain.KeyPair, error) {
	var kp domain.KeyPair
	if m != nil {
		m.Normalize()
	}
	if err := ValidateMnemonic(m); err != nil {
		return kp, err
	}

	seed := Seed(m, passphrase)
	defer memzero.Zero(seed)

	// The network params only select the extended-key version bytes, which
	// never leave this function.
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return kp, fmt.Errorf("%w: master key: %v", domain.ErrDerivation, err)
	}
	for _, idx := range s.path.Indices() {
		child, err := key.Derive(idx)
		key.Zero()
		if err != nil {
			return kp, fmt.Errorf("%w: child %d of %s: %v", domain.ErrDerivation, idx, s.path, err)
		}
		key = child
	}
	defer key.Zero()

	ecPriv, err := key.ECPrivKey()
	if err != nil {
		return kp, fmt.Errorf("%w: %v", domain.ErrDerivation, err)
	}
	scalar := ecPriv.Serialize()
	ecPriv.Zero()
	copy(kp.Private[:], scalar)
	memzero.Zero(scalar)

	kp.Public, err = crypto.PublicKeyOf(&kp.Private)
	if err != nil {
		kp.Wipe()
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrDerivation, err)
	}
	kp.Address, err = s.AddressOf(kp.Public)
	if err != nil {
		kp.Wipe()
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrDerivation, err)
	}
	return kp, nil
}

// AddressOf returns the account address of pub.
func (s *Service) AddressOf(pub domain.Secp256k1Public) (domain.Address, error) {
	return crypto.AddressFromPublicKey(s.hrp, pub)
}

// Compile-time assertion that Service implements domain.KeyDeriver.
var _ domain.KeyDeriver = (*Service)(nil)
