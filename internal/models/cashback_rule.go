package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SpendingTypeOnline  = "online"
	SpendingTypeOffline = "offline"
)

var (
	ErrInvalidCashbackPercent = errors.New("cashback percent must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

// CashbackRule maps a spend condition to a cashback percentage on one card.
// Every condition is optional; an empty condition never matches. Position keeps
// the storage order that breaks ties between rules of the same tier.
type CashbackRule struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CardID               uuid.UUID        `gorm:"type:uuid;not null;index" json:"card_id"`
	Position             int              `gorm:"not null;default:0" json:"position"`
	Category             string           `gorm:"type:varchar(255)" json:"category,omitempty"`
	Subcategory          string           `gorm:"type:varchar(255)" json:"subcategory,omitempty"`
	Platform             string           `gorm:"type:varchar(255)" json:"platform,omitempty"`
	Brand                BrandList        `gorm:"type:text" json:"brand,omitempty"`
	SpendingType         string           `gorm:"type:varchar(50)" json:"spending_type,omitempty"`
	CashbackPercent      decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0" json:"cashback_percent"`
	MonthlyCap           *decimal.Decimal `gorm:"type:decimal(10,2)" json:"monthly_cap,omitempty"`
	MinTransactionAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"min_transaction_amount,omitempty"`
	MaxCashbackPerTxn    *decimal.Decimal `gorm:"column:max_cashback_per_transaction;type:decimal(10,2)" json:"max_cashback_per_transaction,omitempty"`
	AdditionalConditions string           `gorm:"type:text" json:"additional_conditions,omitempty"`
	CreatedAt            time.Time        `gorm:"not null" json:"created_at"`
}

func (r *CashbackRule) TableName() string {
	return "cashback_rules"
}

func (r *CashbackRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return validatePercent(r.CashbackPercent)
}

// DefaultCashback is the card's base rate when no rule matches
type DefaultCashback struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CardID               uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"card_id"`
	CashbackPercent      decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"cashback_percent"`
	MonthlyCap           *decimal.Decimal `gorm:"type:decimal(10,2)" json:"monthly_cap,omitempty"`
	MinTransactionAmount decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0" json:"min_transaction_amount"`
}

func (d *DefaultCashback) TableName() string {
	return "default_cashbacks"
}

func (d *DefaultCashback) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return validatePercent(d.CashbackPercent)
}

func validatePercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return ErrInvalidCashbackPercent
	}
	return nil
}
