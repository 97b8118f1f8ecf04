package claim

import "fmt"

// StoreError wraps a failure of the eligibility store. It is distinct from a
// business-rule rejection: once the store misbehaves, no candidate's state
// can be trusted and the enclosing request must abort.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("eligibility store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err with the query that failed.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// BatchTooLargeError reports an admitted candidate whose message cannot fit
// in an empty outbound batch. It must surface to the caller; an admitted
// claim is never silently dropped.
type BatchTooLargeError struct {
	Candidate Candidate
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("claim message for %s/%s exceeds the maximum batch size", e.Candidate.Address, e.Candidate.ItemID)
}

// PublishError reports a queue delivery failure after validation succeeded.
// Published counts the messages already delivered in earlier physical
// batches of the same request, so the caller knows exactly what is and is
// not in flight.
type PublishError struct {
	Published int
	Pending   int
	Err       error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("queue publish failed with %d message(s) published and %d pending: %v", e.Published, e.Pending, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
