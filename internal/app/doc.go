// Package app wires application dependencies for the CLI.
//
// Config carries the network profile (gateway URL, chain id, address
// prefix, denominations, gas price), the secret locations and the
// timeouts. Defaults target the Osmosis testnet; a YAML file loaded with
// Load overrides them and command-line flags override the file.
//
// NewWire builds the chain client and the services from Config and
// exposes them via the Wire struct; New adds the logger.
package app
