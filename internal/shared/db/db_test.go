package db_test

import (
	"errors"
	"testing"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"gorm.io/gorm"
)

var errConnReset = errors.New("read tcp 10.0.0.1:5432: connection reset by peer")

func TestOnceRetriesTransientError(t *testing.T) {
	store := db.FromGorm(nil)
	calls := 0
	err := store.Once(func(g *gorm.DB) error {
		calls++
		if calls == 1 {
			return errConnReset
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected recovery on retry, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestOnceGivesUpAfterSecondFailure(t *testing.T) {
	store := db.FromGorm(nil)
	calls := 0
	err := store.Once(func(g *gorm.DB) error {
		calls++
		return errConnReset
	})
	if calls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", calls)
	}
	if !errors.Is(err, apperr.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestOnceDoesNotRetryDomainErrors(t *testing.T) {
	store := db.FromGorm(nil)
	calls := 0
	err := store.Once(func(g *gorm.DB) error {
		calls++
		return gorm.ErrRecordNotFound
	})
	if calls != 1 {
		t.Fatalf("a missing row must not be retried, got %d attempts", calls)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected the original error, got %v", err)
	}
}

func TestIsDuplicate(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{errors.New("UNIQUE constraint failed: users.handle"), true},
		{errors.New(`duplicate key value violates unique constraint "idx_users_handle"`), true},
		{gorm.ErrRecordNotFound, false},
		{errConnReset, false},
	}
	for _, c := range cases {
		if got := db.IsDuplicate(c.err); got != c.want {
			t.Errorf("IsDuplicate(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
