package queue

import (
	"encoding/json"

	"github.com/claimgate/backend/internal/domain/claim"
)

// streamBatch accumulates JSON-encoded claim messages up to the
// configured message and byte ceilings for one physical publish.
type streamBatch struct {
	payloads [][]byte
	bytes    int
	maxMsgs  int
	maxBytes int
}

func newStreamBatch(maxMsgs, maxBytes int) *streamBatch {
	return &streamBatch{
		maxMsgs:  maxMsgs,
		maxBytes: maxBytes,
	}
}

// TryAdd encodes the message and adds it if both ceilings still hold.
// It reports false when the batch is full; the caller rolls over to a
// fresh batch.
func (b *streamBatch) TryAdd(msg claim.Message) bool {
	payload, err := json.Marshal(msg)
	if err != nil {
		return false
	}
	if len(b.payloads) >= b.maxMsgs {
		return false
	}
	if b.bytes+len(payload) > b.maxBytes {
		return false
	}
	b.payloads = append(b.payloads, payload)
	b.bytes += len(payload)
	return true
}

// Len returns the number of messages in the batch
func (b *streamBatch) Len() int {
	return len(b.payloads)
}

var _ claim.MessageBatch = (*streamBatch)(nil)
