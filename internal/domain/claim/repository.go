package claim

import "context"

// EligibilityRepository is the read-only query layer over the three
// eligibility tables. Implementations must use parameterized queries only and
// must never mutate store state. Methods return counts and row sets rather
// than decisions; the validator owns the exactly-one semantics so that
// duplicate rows (a data-integrity anomaly) are rejected conservatively
// instead of being guessed at.
type EligibilityRepository interface {
	// CountClaimable returns the number of claimable-item rows for itemID.
	// An item is claimable iff exactly one row exists.
	CountClaimable(ctx context.Context, itemID string) (int64, error)

	// FindEntitlements returns every entitlement row for the pair. The
	// store enforces uniqueness; more than one row is an anomaly.
	FindEntitlements(ctx context.Context, address, itemID string) ([]Entitlement, error)

	// HasFulfillment reports whether a fulfillment record exists for the pair.
	HasFulfillment(ctx context.Context, address, itemID string) (bool, error)

	// RedeemableByAddress returns the eligibility projection for an address:
	// entitled claimable items with amount > 0, each flagged with whether a
	// fulfillment record already exists. An unknown address yields an empty
	// slice, not an error.
	RedeemableByAddress(ctx context.Context, address string) ([]RedeemableItem, error)

	// ListClaimableItems returns the full claimable catalog.
	ListClaimableItems(ctx context.Context) ([]ClaimableItem, error)
}
