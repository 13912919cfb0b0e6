package models

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/loan-tracker/backend/internal/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the record store used by the backend.
var DB *gorm.DB

var (
	// ErrStoreUnavailable replaces every error of the record store other
	// than a missing record.
	ErrStoreUnavailable = errors.New("the record store could not process your request")
	ErrResourceNotFound = errors.New("there is no")
)

type LTContext string

const (
	DBContextURL LTContext = "lt-backend-url"
)

// Connect opens the record store configured in cfg.
//
// With a DSN, the store is PostgreSQL. Otherwise, a SQLite file in
// the data directory is used.
func Connect(cfg config.DBConfig) error {
	if cfg.Postgres() {
		log.Debug().Msg("DSN is set, using postgresql")
		return connect(postgres.Open(cfg.DSN), cfg)
	}

	log.Debug().Str("path", cfg.SQLitePath()).Msg("DSN is not set, using sqlite database")
	err := os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return ConnectSQLite(cfg.SQLitePath())
}

// ConnectSQLite opens the SQLite database at path.
func ConnectSQLite(path string) error {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)

	// This is done to prevent SQLITE_BUSY errors.
	return connect(sqlite.Open(dsn), config.DBConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
}

func connect(dialector gorm.Dialector, cfg config.DBConfig) error {
	db, err := gorm.Open(dialector, &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: newQueryLogger(log.Logger),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	err = migrate(db)
	if err != nil {
		return err
	}

	err = seed(db)
	if err != nil {
		return err
	}

	// The callbacks are registered after seeding so that startup errors
	// keep their original message
	err = db.Callback().Query().After("*").Register("loan_tracker:after_query", errorCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("loan_tracker:after_create", errorCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("loan_tracker:after_update", errorCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("loan_tracker:after_delete", errorCallback)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// errorCallback replaces errors returned by the database.
//
// A missing record is reported with the name of the resource, every other
// error is logged and replaced by ErrStoreUnavailable as we cannot provide
// the user with a more helpful message.
func errorCallback(db *gorm.DB) {
	if db.Error == nil || errors.Is(db.Error, ErrResourceNotFound) || errors.Is(db.Error, ErrStoreUnavailable) {
		return
	}

	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
		return
	}

	event := log.Error().Str("table", db.Statement.Table)

	var sqliteErr *go_sqlite.Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(db.Error, &sqliteErr):
		event = event.Int("sqlite-code", sqliteErr.Code())
	case errors.As(db.Error, &pgErr):
		event = event.Str("sqlstate", pgErr.Code)
	}

	event.Msgf("%T: %v", db.Error, db.Error.Error())
	db.Error = ErrStoreUnavailable
}

// resourceName turns a table name into the singular name of the resource.
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")

	switch {
	case strings.HasSuffix(name, "ies"):
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "uses"):
		return strings.TrimSuffix(name, "es")
	default:
		return strings.TrimSuffix(name, "s")
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Category{}, Status{}, Loan{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
