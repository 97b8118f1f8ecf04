package claim

import "context"

// MessageBatch accumulates outbound messages up to a transport-imposed size
// ceiling. TryAdd returns false when adding the message would exceed the
// ceiling; the message is not added in that case.
type MessageBatch interface {
	TryAdd(msg Message) bool
	Len() int
}

// Publisher delivers batches of admitted claims to the durable fulfillment
// queue. Send is a single logical publish: either the whole batch is handed
// to the transport or none of it is. Delivery is at-least-once; consumers
// must be idempotent.
type Publisher interface {
	NewBatch() MessageBatch
	Send(ctx context.Context, batch MessageBatch) error
}
