// Package main runs devnode, an in-memory chain that speaks the subset of
// the Cosmos REST gateway cli-tool uses. It is meant for local runs and
// demos; the integration tests use the same node through httptest.
//
// HTTP API
//
//	GET  /cosmos/auth/v1beta1/accounts/{address}
//	    Account number and sequence. 404 (gRPC code 5) until funded.
//
//	GET  /cosmos/bank/v1beta1/balances/{address}
//	    Spendable balances.
//
//	POST /cosmos/tx/v1beta1/simulate { "tx_bytes": base64 }
//	    Gas estimate for a signed transaction.
//
//	POST /cosmos/tx/v1beta1/txs { "tx_bytes": base64, "mode": ... }
//	    Check and queue a transaction (sync broadcast).
//
//	GET  /cosmos/tx/v1beta1/txs/{hash}
//	    The included transaction, 404 while pending.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Accounts exist only after --fund credits them.
//   - Queued transactions are included after --delay, each in its own block.
//   - The default listen address is :1317.
package main
