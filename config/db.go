package config

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the single-file store and verifies it is reachable. Each call
// returns an independent handle; callers own its lifetime and release it with
// CloseDB on every exit path.
func OpenDB(dbConf DatabaseConfig) (*gorm.DB, error) {
	if dbConf.Driver != "sqlite" {
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrStoreUnavailable, dbConf.Driver)
	}

	logLevel := logger.Silent
	if dbConf.VerboseLogging {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbConf.Location), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	// sqlite allows one writer; a single pooled connection also keeps
	// :memory: handles pointing at the same database in tests.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return db, nil
}

// CloseDB releases the handle's underlying connection.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
