package scrapbook

import (
	"context"
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

type DurableRepository struct {
	store *storage.Durable
	now   func() time.Time
}

// NewDurableRepository builds a repository; now stamps the seeded items and
// defaults to time.Now.
func NewDurableRepository(store *storage.Durable, now func() time.Time) *DurableRepository {
	if now == nil {
		now = time.Now
	}
	return &DurableRepository{store: store, now: now}
}

func (r *DurableRepository) Load(ctx context.Context) []models.ScrapbookItem {
	items, ok := storage.ReadJSON[[]models.ScrapbookItem](ctx, r.store, common.KeyScrapbook)
	if !ok {
		return Seed(r.now())
	}
	return items
}

func (r *DurableRepository) Save(ctx context.Context, items []models.ScrapbookItem) error {
	if items == nil {
		items = []models.ScrapbookItem{}
	}
	return r.store.WriteJSON(ctx, common.KeyScrapbook, items)
}

// Seed returns the example memories shown to a new user, dated at.
func Seed(at time.Time) []models.ScrapbookItem {
	date := at.Format(models.ScrapbookDateLayout)
	return []models.ScrapbookItem{
		{ID: 1, Image: "https://picsum.photos/id/64/300/300", Caption: "Besties 4Ever! 👯‍♀️", Rotate: "-rotate-2", TapeColor: "bg-pink-200/80", Date: date},
		{ID: 2, Image: "https://picsum.photos/id/106/300/300", Caption: "Spring Vibes 🌸", Rotate: "rotate-3", TapeColor: "bg-blue-200/80", Date: date},
		{ID: 3, Image: "https://picsum.photos/id/129/300/300", Caption: "So moody... 🌧️", Rotate: "-rotate-1", TapeColor: "bg-purple-200/80", Date: date},
	}
}
