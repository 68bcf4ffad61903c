package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/diary"
	"github.com/dmitrijs2005/glitterpage/internal/common"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

// DiaryService saves snapshots of messages. It keeps no list of its own:
// every Save re-reads the store before prepending.
type DiaryService interface {
	// Save stores text untrimmed. Text that is blank after trimming is a
	// no-op reported as saved == false with ErrEmptyInput.
	Save(ctx context.Context, text string) (entry models.DiaryEntry, saved bool, err error)
	List(ctx context.Context) []models.DiaryEntry
}

type diaryService struct {
	mu   sync.Mutex
	repo diary.Repository
	now  func() time.Time
	log  logging.Logger
}

func NewDiaryService(repo diary.Repository, now func() time.Time, log logging.Logger) DiaryService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Nop()
	}
	return &diaryService{repo: repo, now: now, log: log.With("service", "diary")}
}

func (s *diaryService) Save(ctx context.Context, text string) (models.DiaryEntry, bool, error) {
	if strings.TrimSpace(text) == "" {
		return models.DiaryEntry{}, false, common.ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.repo.Load(ctx)
	at := s.now()
	id := nextID(at, func(id int64) bool {
		return slices.ContainsFunc(stored, func(e models.DiaryEntry) bool { return e.ID == id })
	})
	entry := models.DiaryEntry{ID: id, Text: text, Date: at.Format(models.DiaryDateLayout)}

	if err := s.repo.Save(ctx, append([]models.DiaryEntry{entry}, stored...)); err != nil {
		return models.DiaryEntry{}, false, fmt.Errorf("save diary: %w", err)
	}
	s.log.Debug(ctx, "diary entry saved", "id", entry.ID)
	return entry, true, nil
}

func (s *diaryService) List(ctx context.Context) []models.DiaryEntry {
	return s.repo.Load(ctx)
}
