package friends

import (
	"context"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
)

// Repository persists the friends list as one whole value.
type Repository interface {
	// Load returns the stored list, or an empty list when absent or corrupt.
	Load(ctx context.Context) []models.Friend

	// Save overwrites the stored list.
	Save(ctx context.Context, list []models.Friend) error
}
