package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CardStatusDiscontinued = 0
	CardStatusActive       = 1
	CardStatusComingSoon   = 2

	DefaultCardType = "Credit Card"
)

var (
	ErrCardNameRequired = errors.New("card name is required")
	ErrBankRequired     = errors.New("bank is required")
	ErrInvalidCardFee   = errors.New("card fees cannot be negative")
	ErrInvalidCardState = errors.New("invalid card status")
)

// Bank is a card issuer
type Bank struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Website   string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	LogoURL   string    `gorm:"type:varchar(255)" json:"logo_url,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (b *Bank) TableName() string {
	return "banks"
}

func (b *Bank) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	if b.Name == "" {
		return errors.New("bank name is required")
	}
	return nil
}

// Card is a credit card in the catalog together with its earning rules and benefits.
// Cards are read-only while a recommendation is computed.
type Card struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CardName           string           `gorm:"type:varchar(255);not null" json:"card_name"`
	BankID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"bank_id"`
	CardType           string           `gorm:"type:varchar(50);not null;default:'Credit Card'" json:"card_type"`
	Variant            string           `gorm:"type:varchar(50)" json:"variant,omitempty"`
	Network            StringList       `gorm:"type:text" json:"network"`
	Status             int              `gorm:"not null;default:1" json:"status"`
	AnnualFee          decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0" json:"annual_fee"`
	WaiverOnSpend      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"waiver_on_spend,omitempty"`
	EffectiveAnnualFee decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0" json:"effective_annual_fee"`
	ImageURL           string           `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	PromotionalCard    bool             `gorm:"not null;default:false" json:"promotional_card"`
	PromotionalOrder   int              `gorm:"not null;default:0" json:"promotional_order"`
	ApplyURL           string           `gorm:"type:varchar(255)" json:"apply_url,omitempty"`
	Summary            string           `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`

	Bank             Bank             `gorm:"foreignKey:BankID" json:"bank"`
	CashbackRules    []CashbackRule   `gorm:"foreignKey:CardID" json:"cashback_rules"`
	DefaultCashback  *DefaultCashback `gorm:"foreignKey:CardID" json:"default_cashback,omitempty"`
	WelcomeBenefits  []WelcomeBenefit `gorm:"foreignKey:CardID" json:"welcome_benefits"`
	MilestoneBonuses []MilestoneBonus `gorm:"foreignKey:CardID" json:"milestone_bonuses"`
	CardBenefits     []CardBenefit    `gorm:"foreignKey:CardID" json:"card_benefits"`
}

func (c *Card) TableName() string {
	return "cards"
}

// BeforeCreate hook for Card
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CardType == "" {
		c.CardType = DefaultCardType
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Card
func (c *Card) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the card fields
func (c *Card) Validate() error {
	if c.CardName == "" {
		return ErrCardNameRequired
	}
	if c.BankID == uuid.Nil && c.Bank.ID == uuid.Nil && c.Bank.Name == "" {
		return ErrBankRequired
	}
	if c.AnnualFee.IsNegative() || c.EffectiveAnnualFee.IsNegative() {
		return ErrInvalidCardFee
	}
	if c.Status < CardStatusDiscontinued || c.Status > CardStatusComingSoon {
		return ErrInvalidCardState
	}
	return nil
}

// AnnualCost is the fee used for net benefit: the effective fee when set, otherwise the list fee
func (c *Card) AnnualCost() decimal.Decimal {
	if !c.EffectiveAnnualFee.IsZero() {
		return c.EffectiveAnnualFee
	}
	return c.AnnualFee
}

// Ref returns the compact reference used in recommendation payloads
func (c *Card) Ref() CardRef {
	return CardRef{
		ID:        c.ID,
		CardName:  c.CardName,
		BankName:  c.Bank.Name,
		CardType:  c.CardType,
		AnnualFee: c.AnnualCost(),
		ImageURL:  c.ImageURL,
		ApplyURL:  c.ApplyURL,
	}
}

// DisplayName is the bank and card name, e.g. "HDFC Millennia"
func (c *Card) DisplayName() string {
	if c.Bank.Name == "" {
		return c.CardName
	}
	return c.Bank.Name + " " + c.CardName
}

// CardFilters narrows card listings. MinCashback keeps cards whose default rate
// or any rule pays at least that percent.
type CardFilters struct {
	Bank            string
	CardType        string
	Network         string
	MinFee          *decimal.Decimal
	MaxFee          *decimal.Decimal
	MinEffectiveFee *decimal.Decimal
	MaxEffectiveFee *decimal.Decimal
	MinCashback     *decimal.Decimal
	Status          *int
}
