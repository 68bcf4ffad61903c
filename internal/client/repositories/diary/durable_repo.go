package diary

import (
	"context"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

type DurableRepository struct {
	store *storage.Durable
}

func NewDurableRepository(store *storage.Durable) *DurableRepository {
	return &DurableRepository{store: store}
}

// Load always reads the store; it keeps no cache.
func (r *DurableRepository) Load(ctx context.Context) []models.DiaryEntry {
	entries, ok := storage.ReadJSON[[]models.DiaryEntry](ctx, r.store, common.KeyDiaryEntries)
	if !ok {
		return []models.DiaryEntry{}
	}
	return entries
}

func (r *DurableRepository) Save(ctx context.Context, entries []models.DiaryEntry) error {
	if entries == nil {
		entries = []models.DiaryEntry{}
	}
	return r.store.WriteJSON(ctx, common.KeyDiaryEntries, entries)
}
