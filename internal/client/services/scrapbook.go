package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/scrapbook"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
	"github.com/dmitrijs2005/glitterpage/internal/order"
)

// Chooser returns an index in [0, n).
type Chooser func(n int) int

// ScrapbookService owns the ordered scrapbook and the drag gesture over it.
type ScrapbookService interface {
	Load(ctx context.Context) []models.ScrapbookItem
	Items() []models.ScrapbookItem

	// Add prepends a new item. A blank caption becomes models.DefaultCaption.
	Add(ctx context.Context, imageData, caption string) (models.ScrapbookItem, error)

	// Remove drops the item with id, leaving any drag gesture in place.
	Remove(ctx context.Context, id int64) ([]models.ScrapbookItem, error)

	BeginDrag(source int)
	DragOver(target int) bool

	// Drop ends the gesture over target. moved is false when nothing
	// changed; err is ErrNoActiveDrag without a gesture and wraps
	// ErrIndexOutOfRange when the gesture no longer fits the sequence.
	Drop(ctx context.Context, target int) (items []models.ScrapbookItem, moved bool, err error)

	// Move is BeginDrag(from) followed by Drop(to). It never leaves a
	// gesture behind.
	Move(ctx context.Context, from, to int) ([]models.ScrapbookItem, bool, error)

	Dragging() (int, bool)
}

type scrapbookService struct {
	mu     sync.Mutex
	repo   scrapbook.Repository
	items  []models.ScrapbookItem
	drag   order.Drag
	now    func() time.Time
	choose Chooser
	log    logging.Logger
}

// NewScrapbookService builds the service. now defaults to time.Now and
// choose to a uniform pick from math/rand/v2.
func NewScrapbookService(repo scrapbook.Repository, now func() time.Time, choose Chooser, log logging.Logger) ScrapbookService {
	if now == nil {
		now = time.Now
	}
	if choose == nil {
		choose = rand.IntN
	}
	if log == nil {
		log = logging.Nop()
	}
	return &scrapbookService{
		repo:   repo,
		items:  []models.ScrapbookItem{},
		now:    now,
		choose: choose,
		log:    log.With("service", "scrapbook"),
	}
}

func (s *scrapbookService) Load(ctx context.Context) []models.ScrapbookItem {
	items := s.repo.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.drag.Reset()
	return slices.Clone(items)
}

func (s *scrapbookService) Items() []models.ScrapbookItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *scrapbookService) Add(ctx context.Context, imageData, caption string) (models.ScrapbookItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(caption) == "" {
		caption = models.DefaultCaption
	}
	at := s.now()
	item := models.ScrapbookItem{
		ID: nextID(at, func(id int64) bool {
			return slices.ContainsFunc(s.items, func(it models.ScrapbookItem) bool { return it.ID == id })
		}),
		Image:     imageData,
		Caption:   caption,
		Rotate:    models.Rotations[s.choose(len(models.Rotations))],
		TapeColor: models.TapeColors[s.choose(len(models.TapeColors))],
		Date:      at.Format(models.ScrapbookDateLayout),
	}

	next := append([]models.ScrapbookItem{item}, s.items...)
	if err := s.save(ctx, next); err != nil {
		return models.ScrapbookItem{}, err
	}
	s.log.Debug(ctx, "memory added", "id", item.ID)
	return item, nil
}

func (s *scrapbookService) Remove(ctx context.Context, id int64) ([]models.ScrapbookItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.items), func(it models.ScrapbookItem) bool { return it.ID == id })
	if err := s.save(ctx, next); err != nil {
		return slices.Clone(s.items), err
	}
	s.log.Debug(ctx, "memory removed", "id", id)
	return slices.Clone(next), nil
}

func (s *scrapbookService) BeginDrag(source int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Begin(source)
}

func (s *scrapbookService) DragOver(target int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Over(target)
}

func (s *scrapbookService) Dragging() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Active()
}

func (s *scrapbookService) Drop(ctx context.Context, target int) ([]models.ScrapbookItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drop(ctx, target)
}

func (s *scrapbookService) Move(ctx context.Context, from, to int) ([]models.ScrapbookItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Begin(from)
	items, moved, err := s.drop(ctx, to)
	s.drag.Reset()
	return items, moved, err
}

func (s *scrapbookService) drop(ctx context.Context, target int) ([]models.ScrapbookItem, bool, error) {
	from, ok, err := s.drag.Drop(target, len(s.items))
	if err != nil || !ok {
		return slices.Clone(s.items), false, err
	}

	next, err := order.Move(s.items, from, target)
	if err != nil {
		return slices.Clone(s.items), false, err
	}
	if err := s.save(ctx, next); err != nil {
		return slices.Clone(s.items), false, err
	}
	s.log.Debug(ctx, "memory moved", "from", from, "to", target)
	return slices.Clone(next), true, nil
}

// save must be called with mu held.
func (s *scrapbookService) save(ctx context.Context, next []models.ScrapbookItem) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save scrapbook: %w", err)
	}
	s.items = next
	return nil
}

// Layout splits items into rows of at most columns entries, left to right
// and top to bottom. columns below 1 is treated as 1.
func Layout(items []models.ScrapbookItem, columns int) [][]models.ScrapbookItem {
	if columns < 1 {
		columns = 1
	}
	rows := make([][]models.ScrapbookItem, 0, (len(items)+columns-1)/columns)
	for row := range slices.Chunk(items, columns) {
		rows = append(rows, row)
	}
	return rows
}
