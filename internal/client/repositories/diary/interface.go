package diary

import (
	"context"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
)

// Repository persists diary entries, newest first, as one whole value.
type Repository interface {
	Load(ctx context.Context) []models.DiaryEntry
	Save(ctx context.Context, entries []models.DiaryEntry) error
}
