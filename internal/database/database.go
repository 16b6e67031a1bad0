package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"card-advisor/internal/config"
	"card-advisor/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the catalog tables from the gorm models
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Bank{},
		&models.Card{},
		&models.CashbackRule{},
		&models.DefaultCashback{},
		&models.WelcomeBenefit{},
		&models.MilestoneBonus{},
		&models.CardBenefit{},
		&models.PromotionalBanner{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the lookup indexes the catalog queries rely on. Failures are logged, not returned.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_cards_bank_id ON cards(bank_id)",
		"CREATE INDEX IF NOT EXISTS idx_cards_status ON cards(status)",
		"CREATE INDEX IF NOT EXISTS idx_cards_card_type ON cards(card_type)",
		"CREATE INDEX IF NOT EXISTS idx_cards_promotional ON cards(promotional_order) WHERE promotional_card",
		"CREATE INDEX IF NOT EXISTS idx_banks_name_lower ON banks(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_cashback_rules_card_position ON cashback_rules(card_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_cashback_rules_category_lower ON cashback_rules(LOWER(category))",
		"CREATE INDEX IF NOT EXISTS idx_cashback_rules_subcategory_lower ON cashback_rules(LOWER(subcategory))",
		"CREATE INDEX IF NOT EXISTS idx_welcome_benefits_card_id ON welcome_benefits(card_id)",
		"CREATE INDEX IF NOT EXISTS idx_milestone_bonuses_card_id ON milestone_bonuses(card_id)",
		"CREATE INDEX IF NOT EXISTS idx_card_benefits_card_id ON card_benefits(card_id)",
		"CREATE INDEX IF NOT EXISTS idx_promotional_banners_order ON promotional_banners(display_order)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", slog.String("query", query), slog.String("error", err.Error()))
		}
	}

	return nil
}

// Initialize connects to postgres and prepares the catalog schema. SQL migrations
// run when enabled; if they fail the gorm models are migrated instead.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, cfg.Migration, log); err != nil {
		log.Warn("migration runner failed, falling back to gorm AutoMigrate", slog.String("error", err.Error()))

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Warn("failed to create some indexes", slog.String("error", err.Error()))
	}

	log.Info("database initialized")

	return db, nil
}
