package types

// SubmissionState tracks a transfer through the submission state machine:
//
//	Built -> Signed -> Submitted -> {Accepted, Rejected, ConnectionFailed}
//	Accepted -> {Committed, TimedOutPendingUnknown}
type SubmissionState string

const (
	StateBuilt                  SubmissionState = "built"
	StateSigned                 SubmissionState = "signed"
	StateSubmitted              SubmissionState = "submitted"
	StateAccepted               SubmissionState = "accepted"
	StateRejected               SubmissionState = "rejected"
	StateConnectionFailed       SubmissionState = "connection_failed"
	StateCommitted              SubmissionState = "committed"
	StateTimedOutPendingUnknown SubmissionState = "timed_out_pending_unknown"
)

// Terminal reports whether no further transition is possible.
func (s SubmissionState) Terminal() bool {
	switch s {
	case StateCommitted, StateRejected, StateConnectionFailed, StateTimedOutPendingUnknown:
		return true
	}
	return false
}

// InclusionStatus is the coarse outcome reported to the user.
type InclusionStatus string

const (
	InclusionPending   InclusionStatus = "pending"
	InclusionCommitted InclusionStatus = "committed"
	InclusionRejected  InclusionStatus = "rejected"
)

// Status maps the submission state to the inclusion status.
func (s SubmissionState) Status() InclusionStatus {
	switch s {
	case StateCommitted:
		return InclusionCommitted
	case StateRejected:
		return InclusionRejected
	}
	return InclusionPending
}

// TxResponse is the network's view of a transaction, as returned by the
// broadcast and lookup endpoints.
type TxResponse struct {
	TxHash    TxHash `json:"txhash"`
	Height    int64  `json:"height"`
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace,omitempty"`
	RawLog    string `json:"raw_log,omitempty"`
	GasWanted int64  `json:"gas_wanted"`
	GasUsed   int64  `json:"gas_used"`
}

// BroadcastResult is the outcome of one submission.
type BroadcastResult struct {
	TxHash    TxHash          `json:"tx_hash"`
	State     SubmissionState `json:"state"`
	Status    InclusionStatus `json:"status"`
	Height    int64           `json:"height"`
	Code      uint32          `json:"code"`
	Codespace string          `json:"codespace,omitempty"`
	Log       string          `json:"log,omitempty"`
	GasUsed   int64           `json:"gas_used,omitempty"`
}

// SetState moves the result to st and updates Status to match. A result in
// a terminal state keeps it.
func (r *BroadcastResult) SetState(st SubmissionState) {
	if r.State.Terminal() {
		return
	}
	r.State = st
	r.Status = st.Status()
}
