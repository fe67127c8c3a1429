package types

// Address is a bech32-encoded account address, e.g. osmo1....
type Address string

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// ChainID identifies the target network; it is part of every sign doc.
type ChainID string

// String returns the string form of the chain identifier.
func (id ChainID) String() string { return string(id) }

// TxHash is the upper-case hex SHA-256 of the raw transaction bytes.
type TxHash string

// String returns the string form of the hash.
func (h TxHash) String() string { return string(h) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
