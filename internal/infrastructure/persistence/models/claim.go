package models

import (
	"time"

	"github.com/claimgate/backend/internal/domain/claim"
)

// ClaimableItemModel is the persistence model for the claimable catalog.
type ClaimableItemModel struct {
	ItemID      string    `gorm:"type:varchar(128);primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

// TableName returns the table name for GORM
func (ClaimableItemModel) TableName() string {
	return "claimable_items"
}

// ToDomain converts the persistence model to a domain ClaimableItem.
func (m *ClaimableItemModel) ToDomain() claim.ClaimableItem {
	return claim.ClaimableItem{
		ItemID:      m.ItemID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// EntitlementModel is the persistence model for an (address, item) grant.
// The composite primary key backs the one-row-per-pair expectation the
// validator relies on.
type EntitlementModel struct {
	Address   string    `gorm:"type:varchar(128);primaryKey"`
	ItemID    string    `gorm:"type:varchar(128);primaryKey"`
	Amount    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// TableName returns the table name for GORM
func (EntitlementModel) TableName() string {
	return "entitlements"
}

// ToDomain converts the persistence model to a domain Entitlement.
func (m *EntitlementModel) ToDomain() claim.Entitlement {
	return claim.Entitlement{
		Address:   m.Address,
		ItemID:    m.ItemID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// FulfillmentRecordModel is the persistence model for a completed claim.
type FulfillmentRecordModel struct {
	Address     string    `gorm:"type:varchar(128);primaryKey"`
	ItemID      string    `gorm:"type:varchar(128);primaryKey"`
	FulfilledAt time.Time `gorm:"not null;default:now()"`
}

// TableName returns the table name for GORM
func (FulfillmentRecordModel) TableName() string {
	return "fulfillment_records"
}

// ToDomain converts the persistence model to a domain FulfillmentRecord.
func (m *FulfillmentRecordModel) ToDomain() claim.FulfillmentRecord {
	return claim.FulfillmentRecord{
		Address:     m.Address,
		ItemID:      m.ItemID,
		FulfilledAt: m.FulfilledAt,
	}
}
