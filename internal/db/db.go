package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookit-web/config"
	"bookit-web/internal/model"
	"bookit-web/internal/sample"
)

// Open connects to the database named by cfg.Driver without migrating it.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}
	return db, nil
}

// Init opens the database, runs migrations and, when cfg.Seed is set, loads
// the sample catalog into empty tables.
func Init(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("running database migrations", zap.String("driver", cfg.Driver))
	if err := db.AutoMigrate(
		&model.Amenity{},
		&model.Room{},
		&model.ManagerProfile{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	if cfg.Seed {
		if err := Seed(db); err != nil {
			return nil, err
		}
		log.Info("sample data seeded")
	}

	log.Info("database initialization complete")
	return db, nil
}

// Seed inserts the sample amenities, rooms and manager into tables that are
// still empty. Tables that already hold rows are left alone.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, &model.Amenity{}, sample.Amenities()); err != nil {
			return err
		}
		if err := seedTable(tx, &model.Room{}, sample.Rooms()); err != nil {
			return err
		}
		profile := sample.Profile()
		return seedTable(tx, &model.ManagerProfile{}, []model.ManagerProfile{profile})
	})
}

func seedTable[T any](tx *gorm.DB, table *T, rows []T) error {
	var count int64
	if err := tx.Model(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %T rows: %w", table, err)
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed %T: %w", table, err)
	}
	return nil
}
