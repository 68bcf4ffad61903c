package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/profile"
	"github.com/dmitrijs2005/glitterpage/internal/common"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

// ProfileService owns the profile.
//
// Picture and effect are written through one field at a time. About-me text
// is edited in memory with SetAboutMe and persisted only by SaveAboutMe.
type ProfileService interface {
	Load(ctx context.Context) models.Profile
	Profile() models.Profile
	SetPicture(ctx context.Context, picture string) (models.Profile, error)
	SetEffect(ctx context.Context, effect models.Effect) (models.Profile, error)
	SetAboutMe(text string) models.Profile
	SaveAboutMe(ctx context.Context) error
}

type profileService struct {
	mu      sync.Mutex
	repo    profile.Repository
	current models.Profile
	log     logging.Logger
}

func NewProfileService(repo profile.Repository, log logging.Logger) ProfileService {
	if log == nil {
		log = logging.Nop()
	}
	return &profileService{repo: repo, current: models.DefaultProfile(), log: log.With("service", "profile")}
}

func (s *profileService) Load(ctx context.Context) models.Profile {
	p := s.repo.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	return p
}

func (s *profileService) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *profileService) SetPicture(ctx context.Context, picture string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SavePicture(ctx, picture); err != nil {
		return s.current, fmt.Errorf("save picture: %w", err)
	}
	s.current.Picture = picture
	s.log.Debug(ctx, "picture updated", "bytes", len(picture))
	return s.current, nil
}

func (s *profileService) SetEffect(ctx context.Context, effect models.Effect) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !effect.Valid() {
		return s.current, fmt.Errorf("%q: %w", effect, common.ErrUnknownEffect)
	}
	if err := s.repo.SaveEffect(ctx, effect); err != nil {
		return s.current, fmt.Errorf("save effect: %w", err)
	}
	s.current.Effect = effect
	s.log.Debug(ctx, "effect updated", "effect", effect)
	return s.current, nil
}

func (s *profileService) SetAboutMe(text string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AboutMe = text
	return s.current
}

func (s *profileService) SaveAboutMe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveAboutMe(ctx, s.current.AboutMe); err != nil {
		return fmt.Errorf("save about me: %w", err)
	}
	s.log.Debug(ctx, "about me saved")
	return nil
}
