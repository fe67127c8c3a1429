package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced to the user wraps exactly one of these.
var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrSecretUnavailable      = errors.New("secret unavailable")
	ErrInvalidMnemonic        = errors.New("invalid mnemonic")
	ErrDerivation             = errors.New("key derivation failed")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidDenomination    = errors.New("invalid denomination")
	ErrSigning                = errors.New("signing failed")
	ErrConnection             = errors.New("network endpoint unreachable")
	ErrRejectedByNetwork      = errors.New("rejected by network")
	ErrTimedOutPendingUnknown = errors.New("inclusion not observed before timeout; outcome unknown")
)

// RejectedError carries the network's machine-readable reason for refusing
// a transaction. It matches ErrRejectedByNetwork under errors.Is.
type RejectedError struct {
	TxHash    TxHash
	Codespace string
	Code      uint32
	Log       string
	Height    int64
}

func (e *RejectedError) Error() string {
	msg := fmt.Sprintf("rejected by network: codespace=%q code=%d", e.Codespace, e.Code)
	if e.TxHash != "" {
		msg += " tx=" + e.TxHash.String()
	}
	if e.Log != "" {
		msg += ": " + e.Log
	}
	return msg
}

func (e *RejectedError) Unwrap() error { return ErrRejectedByNetwork }

// ErrorClass is the stable, user-facing classification of an error.
type ErrorClass struct {
	Code     string
	ExitCode int
}

// ClassOK is reported for a nil error.
var ClassOK = ErrorClass{Code: "OK", ExitCode: 0}

// classes is ordered; the first match wins.
var classes = []struct {
	err   error
	class ErrorClass
}{
	{ErrInvalidArgument, ErrorClass{"INVALID_ARGUMENT", 2}},
	{ErrSecretUnavailable, ErrorClass{"SECRET_UNAVAILABLE", 3}},
	{ErrInvalidMnemonic, ErrorClass{"INVALID_MNEMONIC", 3}},
	{ErrInvalidAddress, ErrorClass{"INVALID_ADDRESS", 4}},
	{ErrInvalidDenomination, ErrorClass{"INVALID_DENOMINATION", 4}},
	{ErrConnection, ErrorClass{"CONNECTION_ERROR", 5}},
	{ErrRejectedByNetwork, ErrorClass{"REJECTED_BY_NETWORK", 6}},
	{ErrTimedOutPendingUnknown, ErrorClass{"TIMED_OUT_PENDING_UNKNOWN", 7}},
	{ErrDerivation, ErrorClass{"DERIVATION_ERROR", 1}},
	{ErrSigning, ErrorClass{"SIGNING_ERROR", 1}},
}

// Classify maps err to its stable code and process exit status. Unknown
// errors are reported as INTERNAL with exit status 1.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassOK
	}
	for _, c := range classes {
		if errors.Is(err, c.err) {
			return c.class
		}
	}
	return ErrorClass{Code: "INTERNAL", ExitCode: 1}
}
