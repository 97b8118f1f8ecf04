package persistence

import (
	"context"
	"time"

	"github.com/claimgate/backend/internal/domain/claim"
	"github.com/claimgate/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEligibilityRepository implements claim.EligibilityRepository using GORM.
// Errors are returned raw; the application layer wraps them.
type GormEligibilityRepository struct {
	db *gorm.DB
}

// NewGormEligibilityRepository creates a new GormEligibilityRepository
func NewGormEligibilityRepository(db *gorm.DB) *GormEligibilityRepository {
	return &GormEligibilityRepository{db: db}
}

// CountClaimable returns the number of catalog rows for an item. The
// validator needs the count rather than existence so it can reject
// anomalous duplicate rows.
func (r *GormEligibilityRepository) CountClaimable(ctx context.Context, itemID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ClaimableItemModel{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindEntitlements returns all entitlement rows for an (address, item) pair.
func (r *GormEligibilityRepository) FindEntitlements(ctx context.Context, address, itemID string) ([]claim.Entitlement, error) {
	var entitlementModels []models.EntitlementModel
	err := r.db.WithContext(ctx).
		Where("address = ? AND item_id = ?", address, itemID).
		Find(&entitlementModels).Error
	if err != nil {
		return nil, err
	}

	entitlements := make([]claim.Entitlement, len(entitlementModels))
	for i, model := range entitlementModels {
		entitlements[i] = model.ToDomain()
	}
	return entitlements, nil
}

// HasFulfillment reports whether an (address, item) pair was already fulfilled.
func (r *GormEligibilityRepository) HasFulfillment(ctx context.Context, address, itemID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FulfillmentRecordModel{}).
		Where("address = ? AND item_id = ?", address, itemID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// redeemableRow is the scan target for the redeemable projection.
type redeemableRow struct {
	ItemID      string
	Amount      int64
	FulfilledAt *time.Time
}

// RedeemableByAddress returns every positive entitlement for an address
// whose item is in the claimable catalog. Fulfilled pairs are included
// with Redeemable=false; the left join keeps them in the result set.
func (r *GormEligibilityRepository) RedeemableByAddress(ctx context.Context, address string) ([]claim.RedeemableItem, error) {
	var rows []redeemableRow
	err := r.db.WithContext(ctx).
		Table("entitlements AS e").
		Select("e.item_id, e.amount, f.fulfilled_at").
		Joins("JOIN claimable_items AS c ON c.item_id = e.item_id").
		Joins("LEFT JOIN fulfillment_records AS f ON f.address = e.address AND f.item_id = e.item_id").
		Where("e.address = ? AND e.amount > 0", address).
		Order("e.item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]claim.RedeemableItem, len(rows))
	for i, row := range rows {
		items[i] = claim.RedeemableItem{
			ItemID:     row.ItemID,
			Amount:     row.Amount,
			Redeemable: row.FulfilledAt == nil,
		}
	}
	return items, nil
}

// ListClaimableItems returns the full claimable catalog.
func (r *GormEligibilityRepository) ListClaimableItems(ctx context.Context) ([]claim.ClaimableItem, error) {
	var itemModels []models.ClaimableItemModel
	err := r.db.WithContext(ctx).
		Order("item_id").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	items := make([]claim.ClaimableItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = model.ToDomain()
	}
	return items, nil
}
