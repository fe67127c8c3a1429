// Package broadcast submits signed transactions and follows them to a
// terminal state.
//
// A submission moves through
//
//	Submitted -> {Accepted, Rejected, ConnectionFailed}
//	Accepted  -> {Committed, Rejected, TimedOutPendingUnknown}
//
// The transaction bytes are sent exactly once. After acceptance the
// service only reads: it polls the transaction by hash until it appears
// in a block or the inclusion timeout passes. Lookup failures while
// polling are logged and polling continues. A timeout is never reported
// as a rejection, because the transaction may still be included later.
package broadcast
