package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/kv"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

var errDisk = errors.New("disk full")

// switchKV fails every write while failWrites is set.
type switchKV struct {
	*kv.MemoryRepository
	failWrites bool
	writes     int
}

func (s *switchKV) Set(ctx context.Context, key, value string) error {
	s.writes++
	if s.failWrites {
		return errDisk
	}
	return s.MemoryRepository.Set(ctx, key, value)
}

func newStore(t *testing.T) (*storage.Durable, *switchKV) {
	t.Helper()
	backing := &switchKV{MemoryRepository: kv.NewMemoryRepository()}
	return storage.New(backing, logging.Nop()), backing
}

// fixedClock always reports the same instant.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

var testNow = time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)
