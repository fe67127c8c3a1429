// Package chain provides an HTTP implementation of domain.ChainClient
// against the Cosmos SDK REST gateway.
//
// Supported operations:
//   - Account number and sequence lookup (auth module).
//   - Bank balances of an address.
//   - Transaction simulation for gas estimation.
//   - Synchronous broadcast of signed transaction bytes.
//   - Transaction lookup by hash for inclusion polling.
//
// All requests are JSON over HTTP and accept a context for cancellation
// and deadlines. Failures are mapped onto the domain error kinds: transport
// failures and unavailable gateways become domain.ErrConnection, while
// a gateway that answers with a structured refusal becomes a
// *domain.RejectedError carrying its code and message.
//
// The client never retries a request.
package chain
