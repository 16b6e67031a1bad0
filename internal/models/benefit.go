package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WelcomeBenefit is a joining reward such as a voucher or bonus points
type WelcomeBenefit struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	CardID           uuid.UUID    `gorm:"type:uuid;not null;index" json:"card_id"`
	BenefitType      string       `gorm:"type:varchar(50);not null" json:"benefit_type"`
	Description      string       `gorm:"type:text" json:"description"`
	Value            BenefitValue `gorm:"type:varchar(255)" json:"value"`
	SpendRequirement *int         `json:"spend_requirement,omitempty"`
	ValidityDays     *int         `json:"validity_days,omitempty"`
}

func (w *WelcomeBenefit) TableName() string {
	return "welcome_benefits"
}

func (w *WelcomeBenefit) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// MilestoneBonus is a reward paid once an annual spend threshold is crossed
type MilestoneBonus struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CardID         uuid.UUID `gorm:"type:uuid;not null;index" json:"card_id"`
	SpendThreshold int64     `gorm:"not null" json:"spend_threshold"`
	BonusType      string    `gorm:"type:varchar(50);not null" json:"bonus_type"`
	BonusValue     int64     `gorm:"not null" json:"bonus_value"`
	ValidityPeriod string    `gorm:"type:varchar(50)" json:"validity_period,omitempty"`
}

func (m *MilestoneBonus) TableName() string {
	return "milestone_bonuses"
}

func (m *MilestoneBonus) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CardBenefit is a recurring perk such as lounge access or fee waivers
type CardBenefit struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	CardID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"card_id"`
	BenefitType string       `gorm:"type:varchar(50);not null" json:"benefit_type"`
	Description string       `gorm:"type:text" json:"description"`
	Value       BenefitValue `gorm:"type:varchar(255)" json:"value"`
	Frequency   string       `gorm:"type:varchar(50)" json:"frequency,omitempty"`
}

func (b *CardBenefit) TableName() string {
	return "card_benefits"
}

func (b *CardBenefit) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
