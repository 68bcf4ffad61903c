package profile

import (
	"context"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// DurableRepository implements Repository over plain-text storage keys.
type DurableRepository struct {
	store *storage.Durable
}

func NewDurableRepository(store *storage.Durable) *DurableRepository {
	return &DurableRepository{store: store}
}

// Load treats an empty picture and an unknown effect token as absent.
func (r *DurableRepository) Load(ctx context.Context) models.Profile {
	p := models.DefaultProfile()

	if v, ok := r.store.ReadText(ctx, common.KeyProfilePicture); ok && v != "" {
		p.Picture = v
	}
	if v, ok := r.store.ReadText(ctx, common.KeyProfileEffect); ok && models.Effect(v).Valid() {
		p.Effect = models.Effect(v)
	}
	if v, ok := r.store.ReadText(ctx, common.KeyAboutMe); ok {
		p.AboutMe = v
	}
	return p
}

func (r *DurableRepository) SavePicture(ctx context.Context, picture string) error {
	return r.store.WriteText(ctx, common.KeyProfilePicture, picture)
}

func (r *DurableRepository) SaveEffect(ctx context.Context, effect models.Effect) error {
	return r.store.WriteText(ctx, common.KeyProfileEffect, string(effect))
}

func (r *DurableRepository) SaveAboutMe(ctx context.Context, text string) error {
	return r.store.WriteText(ctx, common.KeyAboutMe, text)
}
