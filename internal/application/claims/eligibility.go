package claims

import (
	"context"

	"github.com/claimgate/backend/internal/domain/claim"
	"go.uber.org/zap"
)

// EligibilityService serves the read-only query paths: the per-address
// redeemable projection and the claimable catalog. It never touches the
// admission pipeline.
type EligibilityService struct {
	repo   claim.EligibilityRepository
	logger *zap.Logger
}

// NewEligibilityService creates an EligibilityService.
func NewEligibilityService(repo claim.EligibilityRepository, logger *zap.Logger) *EligibilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EligibilityService{
		repo:   repo,
		logger: logger.Named("eligibility"),
	}
}

// Redeemable returns the outstanding-claim projection for an address.
// Fulfilled pairs are included with Redeemable=false so callers can show
// claim history; an address with no entitlements gets an empty slice.
func (s *EligibilityService) Redeemable(ctx context.Context, address string) ([]claim.RedeemableItem, error) {
	items, err := s.repo.RedeemableByAddress(ctx, address)
	if err != nil {
		return nil, claim.NewStoreError("query redeemable items", err)
	}
	return items, nil
}

// ClaimableItems returns the full claimable catalog.
func (s *EligibilityService) ClaimableItems(ctx context.Context) ([]claim.ClaimableItem, error) {
	items, err := s.repo.ListClaimableItems(ctx)
	if err != nil {
		return nil, claim.NewStoreError("list claimable items", err)
	}
	return items, nil
}
