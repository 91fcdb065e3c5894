package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// OpenPostgres opens a connection with the Postgres DB identified by dsn and
// migrates the preferences table.
func OpenPostgres(ctx context.Context, logger *zap.Logger, dsn string) (*Postgres, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.New(
			zap.NewStdLog(logger),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				Colorful:                  false,
				IgnoreRecordNotFoundError: true,
				LogLevel:                  gormlogger.Warn,
			},
		),
	}

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres; error: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle; error: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres; error: %w", err)
	}
	if err := migratePostgres(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &Postgres{db: db}, nil
}

// Postgres is a Store backed by a Postgres preferences table.
type Postgres struct {
	db *gorm.DB
}

type preference struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (preference) TableName() string { return "preferences" }

// Get implements Store.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var pref preference
	err := p.db.WithContext(ctx).First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyDNE
	}
	if err != nil {
		return nil, fmt.Errorf("get preference; key: %s, error: %w", key, err)
	}
	return pref.Value, nil
}

// Set implements Store.
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	pref := preference{Key: key, Value: value}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
	if err != nil {
		return fmt.Errorf("set preference; key: %s, error: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	if err := p.db.WithContext(ctx).Delete(&preference{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete preference; key: %s, error: %w", key, err)
	}
	return nil
}

// Ping implements Store.
func (p *Postgres) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close implements Store.
func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- helpers ---

func migratePostgres(dbconn *sql.DB) error {
	src, err := iofs.New(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("postgres migrations; error: %w", err)
	}

	driver, err := migratepostgres.WithInstance(dbconn, &migratepostgres.Config{
		MigrationsTable: "preferences_migrations",
	})
	if err != nil {
		return fmt.Errorf("postgres migration driver; error: %w", err)
	}

	migration, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("postgres migration; error: %w", err)
	}

	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply postgres migrations; error: %w", err)
	}
	return nil
}
