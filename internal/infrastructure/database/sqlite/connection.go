package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"drone-fleet-manager/internal/config"
	"drone-fleet-manager/internal/infrastructure/database/sqlite/models"
	"drone-fleet-manager/internal/logger"
)

type DB struct {
	*gorm.DB
}

// NewDB opens (or creates) the embedded SQLite database, enables foreign key
// enforcement, and migrates the schema. Column and foreign key constraints in
// the models are the storage-level line of defense behind application checks.
func NewDB(cfg *config.Config) (*DB, error) {
	path := cfg.Database.Path
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	var gormLogLevel gormLogger.LogLevel
	if cfg.Server.Environment == "production" {
		gormLogLevel = gormLogger.Warn
	} else {
		gormLogLevel = gormLogger.Info
	}

	db, err := open(dsn(path), gormLogLevel)
	if err != nil {
		return nil, err
	}

	logger.Info("Database connection established",
		zap.String("path", path),
	)

	return db, nil
}

func dsn(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

func open(dsn string, logLevel gormLogger.LogLevel) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	// SQLite allows a single writer; keeping one connection avoids
	// SQLITE_BUSY churn under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &DB{DB: db}, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.DroneModel{},
		&models.MedicationModel{},
		&models.BatteryAuditModel{},
	)
	if err != nil {
		return fmt.Errorf("error migrating schema: %w", err)
	}
	return nil
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *DB) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
