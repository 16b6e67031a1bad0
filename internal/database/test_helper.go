package database

import (
	"fmt"
	"testing"

	"card-advisor/internal/config"
	"card-advisor/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// catalogTables lists the catalog tables children first so rows can be deleted in order
var catalogTables = []string{
	"promotional_banners",
	"card_benefits",
	"milestone_bonuses",
	"welcome_benefits",
	"default_cashbacks",
	"cashback_rules",
	"cards",
	"banks",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// each pooled connection to :memory: is its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestBank(t *testing.T, db *DB, name string) *models.Bank {
	t.Helper()

	bank := &models.Bank{Name: name}
	if err := db.Create(bank).Error; err != nil {
		t.Fatalf("failed to create test bank: %v", err)
	}

	return bank
}

// CreateTestCard stores an active card with the given fee and cashback rules in the given order
func CreateTestCard(t *testing.T, db *DB, bank *models.Bank, name string, annualFee int64, rules ...models.CashbackRule) *models.Card {
	t.Helper()

	for i := range rules {
		rules[i].Position = i
	}

	card := &models.Card{
		CardName:      name,
		BankID:        bank.ID,
		CardType:      models.DefaultCardType,
		Status:        models.CardStatusActive,
		AnnualFee:     decimal.NewFromInt(annualFee),
		CashbackRules: rules,
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	return card
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range catalogTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
