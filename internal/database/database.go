package database

import (
	"errors"
	"fmt"
	"time"

	"privatemarkets/internal/logger"
	"privatemarkets/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// ErrDestructiveOpsDisabled is returned by ClearAll when the manager was
// built without the destructive capability.
var ErrDestructiveOpsDisabled = errors.New("destructive database operations are disabled")

// Manager owns the connection pool and the maintenance operations on it.
type Manager struct {
	db               *gorm.DB
	url              string
	migrationsPath   string
	allowDestructive bool
}

// NewManager opens the connection pool. Call Close on shutdown.
func NewManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: NewLogger(config.SlowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	logger.Get().Infow("database connection initialized",
		"database", config.DBName,
		"host", config.Host+":"+config.Port,
		"max_open_conns", config.MaxOpenConns,
		"destructive_ops", config.AllowDestructive,
	)

	return &Manager{
		db:               db,
		url:              config.URL(),
		migrationsPath:   config.MigrationsPath,
		allowDestructive: config.AllowDestructive,
	}, nil
}

// NewManagerFromDB wraps an already opened GORM handle. Used by tests and
// tools that bring their own connection.
func NewManagerFromDB(db *gorm.DB, allowDestructive bool) *Manager {
	return &Manager{db: db, allowDestructive: allowDestructive}
}

// NewLogger returns a GORM logger that writes through zap and reports
// queries slower than slowThreshold as warnings.
func NewLogger(slowThreshold time.Duration) gormLogger.Interface {
	return gormLogger.New(logger.StdLog(), gormLogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormLogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) RunMigrations() error {
	if m.url == "" {
		return fmt.Errorf("migrations require a postgres connection URL")
	}
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New(m.migrationsPath, m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that a pooled connection can reach the database.
func (m *Manager) Ping() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases every pooled connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	return sqlDB.Close()
}

// ClearAll removes every row from the application tables, children first.
// It refuses to run unless the manager was built with AllowDestructive.
func (m *Manager) ClearAll() error {
	if !m.allowDestructive {
		return ErrDestructiveOpsDisabled
	}

	logger.Get().Warn("Clearing all application tables")
	return m.db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.Investment{},
			&models.AuditLog{},
			&models.Investor{},
			&models.Fund{},
		} {
			if err := all.Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}
		return nil
	})
}
