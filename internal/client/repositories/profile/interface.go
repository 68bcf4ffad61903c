package profile

import (
	"context"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
)

// Repository loads and stores profile fields. Each field has its own key
// and is written on its own; there is no combined profile write.
type Repository interface {
	// Load reads all three fields, substituting defaults for absent ones.
	Load(ctx context.Context) models.Profile

	SavePicture(ctx context.Context, picture string) error
	SaveEffect(ctx context.Context, effect models.Effect) error
	SaveAboutMe(ctx context.Context, text string) error
}
