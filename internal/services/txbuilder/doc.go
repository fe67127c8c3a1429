// Package txbuilder validates transfer parameters and assembles unsigned
// bank-send transactions.
//
// Building never touches the network. The caller supplies the account
// number and sequence (from an account lookup) and the chain id. The
// canonical encodings of the built transaction, TxBody and AuthInfo in the
// Cosmos SDK protobuf schema, are produced by BodyBytes and AuthInfoBytes
// and are what the signer signs.
//
// The package also parses the user-facing coin notation ("1000uosmo") and
// decimal gas prices ("0.025uosmo").
package txbuilder
