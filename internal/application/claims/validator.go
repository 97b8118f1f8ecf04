// Package claims implements the claim admission pipeline: per-candidate
// validation against the eligibility store, batch accumulation with the
// partial-admission policy, and publication to the fulfillment queue.
package claims

import (
	"context"

	"github.com/claimgate/backend/internal/domain/claim"
)

// Validator decides whether a single candidate may be admitted to the
// fulfillment queue. It is a pure read-and-decide function over the store
// snapshot: it never mutates state and is safe to call concurrently and
// repeatedly.
type Validator struct {
	repo claim.EligibilityRepository
}

// NewValidator creates a Validator over the given repository.
func NewValidator(repo claim.EligibilityRepository) *Validator {
	return &Validator{repo: repo}
}

// Validate evaluates the admission rules in order and returns the verdict
// plus the entitled amount for an admitted candidate. A store failure is
// returned as *claim.StoreError; the verdict is meaningless in that case.
//
// Duplicate claimable or entitlement rows violate the store's uniqueness
// constraints; they are rejected conservatively rather than picking a row.
func (v *Validator) Validate(ctx context.Context, cand claim.Candidate) (claim.Verdict, int64, error) {
	n, err := v.repo.CountClaimable(ctx, cand.ItemID)
	if err != nil {
		return 0, 0, claim.NewStoreError("count claimable items", err)
	}
	if n != 1 {
		return claim.VerdictItemNotClaimable, 0, nil
	}

	entitlements, err := v.repo.FindEntitlements(ctx, cand.Address, cand.ItemID)
	if err != nil {
		return 0, 0, claim.NewStoreError("find entitlements", err)
	}
	if len(entitlements) != 1 || entitlements[0].Amount <= 0 {
		return claim.VerdictNotEntitled, 0, nil
	}

	fulfilled, err := v.repo.HasFulfillment(ctx, cand.Address, cand.ItemID)
	if err != nil {
		return 0, 0, claim.NewStoreError("check fulfillment record", err)
	}
	if fulfilled {
		return claim.VerdictAlreadyFulfilled, 0, nil
	}

	return claim.VerdictAdmitted, entitlements[0].Amount, nil
}
