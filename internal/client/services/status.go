package services

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/glitterpage/internal/common"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
	"github.com/dmitrijs2005/glitterpage/internal/task"
)

// StatusGenerator turns a mood into a short status. It never fails.
type StatusGenerator interface {
	GenerateStatus(ctx context.Context, mood string) string
}

// StatusService runs at most one status generation at a time.
type StatusService struct {
	gen     StatusGenerator
	sem     *semaphore.Weighted
	pending atomic.Bool
	log     logging.Logger
}

func NewStatusService(gen StatusGenerator, log logging.Logger) *StatusService {
	if log == nil {
		log = logging.Nop()
	}
	return &StatusService{gen: gen, sem: semaphore.NewWeighted(1), log: log.With("service", "status")}
}

func (s *StatusService) Busy() bool {
	return s.pending.Load()
}

// Generate starts a generation for mood in the background. onDone runs
// with the result once the service is idle again. A blank mood yields
// ErrEmptyInput and a pending generation ErrBusy.
func (s *StatusService) Generate(ctx context.Context, mood string, onDone func(status string)) (*task.Handle[string], error) {
	if strings.TrimSpace(mood) == "" {
		return nil, common.ErrEmptyInput
	}
	if !s.sem.TryAcquire(1) {
		return nil, common.ErrBusy
	}
	s.pending.Store(true)
	s.log.Debug(ctx, "status requested")

	call := func(ctx context.Context) (string, error) {
		return s.gen.GenerateStatus(ctx, mood), nil
	}
	done := func(status string, _ error) {
		s.pending.Store(false)
		s.sem.Release(1)
		if onDone != nil {
			onDone(status)
		}
	}
	return task.Go(ctx, call, done), nil
}
