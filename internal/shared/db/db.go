package db

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

type Store struct{ DB *gorm.DB }

// Open connects to Postgres with exponential backoff. The store is the sole
// synchronization point between request units of work, so we fail hard when
// it never comes up.
func Open(dsn string) *Store {
	var last error
	var g *gorm.DB
	for i := 0; i < 8; i++ {
		g, last = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if last == nil {
			sqlDB, _ := g.DB()
			sqlDB.SetMaxOpenConns(40)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			if err := g.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
				log.Printf("gorm tracing plugin: %v", err)
			}
			return &Store{DB: g}
		}
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	log.Fatalf("db connect: %v", last)
	return nil
}

// FromGorm wraps an already opened connection (tests use sqlite here).
func FromGorm(g *gorm.DB) *Store { return &Store{DB: g} }

// retryable reports whether an error looks transient (connection level)
// rather than a domain outcome like a missing row or a violated constraint.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return false
	}
	msg := err.Error()
	for _, sub := range []string{"connection refused", "connection reset", "broken pipe", "bad connection"} {
		if strings.Contains(msg, sub) {
			return true
		}
	}
	return errors.Is(err, gorm.ErrInvalidDB)
}

// IsDuplicate reports whether an error is a unique-constraint violation.
// Covers postgres and the sqlite driver the tests run on.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// Once runs fn, retrying exactly one time on a transient store error. A second
// transient failure surfaces as ErrStoreUnavailable.
func (s *Store) Once(fn func(db *gorm.DB) error) error {
	err := fn(s.DB)
	if !retryable(err) {
		return err
	}
	if err = fn(s.DB); err != nil && retryable(err) {
		return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	return err
}
