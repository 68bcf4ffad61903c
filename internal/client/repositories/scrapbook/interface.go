package scrapbook

import (
	"context"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
)

type Repository interface {
	// Load returns the stored sequence, or Seed when nothing usable is stored.
	Load(ctx context.Context) []models.ScrapbookItem

	// Save overwrites the stored sequence, order included.
	Save(ctx context.Context, items []models.ScrapbookItem) error
}
