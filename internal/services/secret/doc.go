// Package secret loads the wallet mnemonic from exactly one configured
// source.
//
// Two sources are recognized, checked in this fixed order:
//
//  1. A key file (default wallet/wallet.key) holding the raw phrase.
//  2. An environment variable (default WALLET_MNEMONIC).
//
// The file takes precedence: when it exists the environment variable is not
// consulted. If neither is present, or the phrase does not have a standard
// BIP-39 length (12, 15, 18, 21 or 24 words), Load fails with
// domain.ErrSecretUnavailable. The phrase is never logged or echoed.
package secret
