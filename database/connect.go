package database

import (
	"court_manager/config"
	"court_manager/model"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to Postgres, or to a local SQLite file when DB_DRIVER=sqlite.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "", "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// one writer; an in-memory database also lives only as long as its connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// newGormLogger writes gorm's warnings and slow queries through zap. A lookup
// that finds nothing is a normal outcome, not an error line.
func newGormLogger(log *zap.Logger) gormlogger.Interface {
	return gormlogger.New(zap.NewStdLog(log.Named("gorm")), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.SurfaceType{},
		&model.Court{},
		&model.Customer{},
		&model.Reservation{},
	)
}

// Connect opens, migrates and optionally seeds the database.
func Connect(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("Connection Opened to Database", zap.String("driver", db.Dialector.Name()))

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database Migrated")

	if cfg.DataInit {
		SeedData(db, log)
	}
	return db, nil
}

// OpenMemory returns a migrated private in-memory SQLite database.
func OpenMemory() (*gorm.DB, error) {
	db, err := Open(config.Config{DBDriver: "sqlite", DBPath: ":memory:"}, zap.NewNop())
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
