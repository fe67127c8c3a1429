// Package commands defines the cli-tool CLI and wires dependencies for
// its commands.
//
// Usage
//
//	cli-tool [flags] <amount><denom> <address>   Send a native-token transfer
//	cli-tool address                             Print the wallet address
//
// The wallet mnemonic is read from --key-file (default wallet/wallet.key)
// or, when that file does not exist, from the environment variable named
// by --key-env (default WALLET_MNEMONIC). The file wins when both exist.
//
// # Network profile
//
// Defaults target the Osmosis testnet (chain osmo-test-5, prefix osmo,
// denominations uosmo and uion, gas price 0.025uosmo). Keys derive along
// m/44'/118'/0'/0/0 and transactions are signed in SIGN_MODE_DIRECT.
// A YAML file given with --config overrides the defaults and flags
// override the file.
//
// # Exit status
//
//	0  committed, or accepted with --no-wait
//	1  internal, derivation or signing error
//	2  invalid argument
//	3  secret unavailable or invalid mnemonic
//	4  invalid address or denomination
//	5  network endpoint unreachable
//	6  rejected by the network
//	7  timed out; the transfer may still be included
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (logger, chain client, services) before any command runs, so handlers
// share one app context.
package commands
