// Package claim holds the core claim admission model: the entities read from
// the eligibility store, the candidate/verdict types produced by validation,
// and the outbound message handed to the fulfillment queue.
package claim

import "time"

// ClaimableItem is an item configured as eligible for claiming at all,
// independent of any specific address.
type ClaimableItem struct {
	ItemID      string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Entitlement is the maximum quantity a specific address may claim of a
// specific item. A pair with no entitlement row, or an amount of zero or
// less, has no entitlement.
type Entitlement struct {
	Address   string
	ItemID    string
	Amount    int64
	CreatedAt time.Time
}

// FulfillmentRecord proves that an address has already completed fulfillment
// of an item. Records are written by the downstream fulfillment worker, never
// by this gateway.
type FulfillmentRecord struct {
	Address     string
	ItemID      string
	FulfilledAt time.Time
}

// Candidate is one (address, item) pair submitted for admission.
type Candidate struct {
	Address string
	ItemID  string
}

// Message is the payload published to the fulfillment queue for an admitted
// candidate. It is a request to attempt fulfillment, not a guarantee: the
// consumer must re-verify entitlement and fulfillment state before acting.
type Message struct {
	Address string `json:"address"`
	ItemID  string `json:"item_id"`
	Amount  int64  `json:"amount"`
}

// RedeemableItem is one row of the per-address eligibility projection:
// an entitled, claimable item together with whether it is still outstanding.
type RedeemableItem struct {
	ItemID     string
	Amount     int64
	Redeemable bool
}
