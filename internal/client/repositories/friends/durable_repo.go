package friends

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

func (r *DurableRepository) Load(ctx context.Context) []models.Friend {
	list, ok := storage.ReadJSON[[]models.Friend](ctx, r.store, common.KeyFriends)
	if !ok {
		return []models.Friend{}
	}
	return list
}

func (r *DurableRepository) Save(ctx context.Context, list []models.Friend) error {
	if list == nil {
		list = []models.Friend{}
	}
	return r.store.WriteJSON(ctx, common.KeyFriends, list)
}
