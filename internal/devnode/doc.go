// Package devnode is an in-memory stand-in for a Cosmos SDK REST gateway,
// used for local runs and end-to-end tests.
//
// HTTP API
//
//	GET  /cosmos/auth/v1beta1/accounts/{address}
//	GET  /cosmos/bank/v1beta1/balances/{address}
//	POST /cosmos/tx/v1beta1/simulate      { "tx_bytes": base64 }
//	POST /cosmos/tx/v1beta1/txs           { "tx_bytes": base64, "mode": "BROADCAST_MODE_SYNC" }
//	GET  /cosmos/tx/v1beta1/txs/{hash}
//
// Behaviour
//
//   - Broadcast runs the checks a real node runs before admitting a bank
//     send: decoding, sign mode, recognized denominations, account
//     existence, sequence, signature and spendable balance. A failed
//     check is reported in tx_response with the matching SDK error code.
//   - Admitted transactions are included once InclusionDelay has passed,
//     in submission order, the next time any endpoint is queried. A
//     transaction whose gas limit is below its gas cost fails in its
//     block with code 11 (out of gas) but still pays its fee.
//   - With NeverInclude set, admitted transactions stay pending forever.
//   - All state is held in memory and lost on process exit.
package devnode
