package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// BIP-44 constants for Cosmos SDK chains.
const (
	// BIP44Purpose is the purpose level of every BIP-44 path.
	BIP44Purpose uint32 = 44
	// CosmosCoinType is the SLIP-0044 coin type shared by Cosmos SDK chains.
	CosmosCoinType uint32 = 118
)

// DerivationPath is a BIP-44 path m/purpose'/coin'/account'/change/index.
type DerivationPath struct {
	Purpose      uint32
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

// CosmosPath is the path this tool derives. It is not configurable.
var CosmosPath = DerivationPath{
	Purpose:  BIP44Purpose,
	CoinType: CosmosCoinType,
}

// String returns the path in m/44'/118'/0'/0/0 notation.
func (p DerivationPath) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d",
		p.Purpose, p.CoinType, p.Account, p.Change, p.AddressIndex)
}

// Indices returns the child indices with the hardened offset applied to the
// first three levels.
func (p DerivationPath) Indices() []uint32 {
	return []uint32{
		p.Purpose + hdkeychain.HardenedKeyStart,
		p.CoinType + hdkeychain.HardenedKeyStart,
		p.Account + hdkeychain.HardenedKeyStart,
		p.Change,
		p.AddressIndex,
	}
}
