package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/profile"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

func TestProfileService_DefaultsAndWriteThrough(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	svc := NewProfileService(profile.NewDurableRepository(store), nil)

	assert.Equal(t, models.DefaultProfile(), svc.Load(ctx))

	p, err := svc.SetPicture(ctx, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", p.Picture)

	p, err = svc.SetEffect(ctx, models.EffectRainbow)
	require.NoError(t, err)
	assert.Equal(t, models.EffectRainbow, p.Effect)

	reloaded := NewProfileService(profile.NewDurableRepository(store), nil).Load(ctx)
	assert.Equal(t, "data:image/png;base64,AAAA", reloaded.Picture)
	assert.Equal(t, models.EffectRainbow, reloaded.Effect)
}

func TestProfileService_UnknownEffect(t *testing.T) {
	ctx := context.Background()
	store, backing := newStore(t)
	svc := NewProfileService(profile.NewDurableRepository(store), nil)

	p, err := svc.SetEffect(ctx, "glitter")
	assert.ErrorIs(t, err, common.ErrUnknownEffect)
	assert.Equal(t, models.EffectNone, p.Effect)
	assert.Zero(t, backing.writes)
}

func TestProfileService_AboutMeNeedsExplicitSave(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	svc := NewProfileService(profile.NewDurableRepository(store), nil)

	assert.Equal(t, "xoxo", svc.SetAboutMe("xoxo").AboutMe)
	assert.Empty(t, NewProfileService(profile.NewDurableRepository(store), nil).Load(ctx).AboutMe)

	require.NoError(t, svc.SaveAboutMe(ctx))
	assert.Equal(t, "xoxo", NewProfileService(profile.NewDurableRepository(store), nil).Load(ctx).AboutMe)
}

func TestProfileService_WriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store, backing := newStore(t)
	svc := NewProfileService(profile.NewDurableRepository(store), nil)
	backing.failWrites = true

	p, err := svc.SetPicture(ctx, "new")
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, models.DefaultPicture, p.Picture)
	assert.Equal(t, models.DefaultPicture, svc.Profile().Picture)

	_, err = svc.SetEffect(ctx, models.EffectEmo)
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, models.EffectNone, svc.Profile().Effect)

	svc.SetAboutMe("hi")
	assert.ErrorIs(t, svc.SaveAboutMe(ctx), errDisk)
}
