package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/friends"
	"github.com/dmitrijs2005/glitterpage/internal/common"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

// FriendService owns the friends list, newest first. Names are unique
// ignoring case.
type FriendService interface {
	Load(ctx context.Context) []models.Friend
	Friends() []models.Friend

	// Add trims name and prepends a new friend. A blank or duplicate name
	// is a no-op reported as added == false with ErrEmptyInput or
	// ErrDuplicateName.
	Add(ctx context.Context, name string) (list []models.Friend, added bool, err error)

	// Remove drops the friend with id. An unknown id still rewrites the
	// unchanged list.
	Remove(ctx context.Context, id int64) ([]models.Friend, error)
}

type friendService struct {
	mu   sync.Mutex
	repo friends.Repository
	list []models.Friend
	now  func() time.Time
	log  logging.Logger
}

func NewFriendService(repo friends.Repository, now func() time.Time, log logging.Logger) FriendService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Nop()
	}
	return &friendService{repo: repo, list: []models.Friend{}, now: now, log: log.With("service", "friends")}
}

func (s *friendService) Load(ctx context.Context) []models.Friend {
	list := s.repo.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list
	return slices.Clone(list)
}

func (s *friendService) Friends() []models.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.list)
}

func (s *friendService) Add(ctx context.Context, name string) ([]models.Friend, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return slices.Clone(s.list), false, common.ErrEmptyInput
	}
	if slices.ContainsFunc(s.list, func(f models.Friend) bool { return strings.EqualFold(f.Name, name) }) {
		return slices.Clone(s.list), false, fmt.Errorf("%q: %w", name, common.ErrDuplicateName)
	}

	id := nextID(s.now(), func(id int64) bool {
		return slices.ContainsFunc(s.list, func(f models.Friend) bool { return f.ID == id })
	})
	f := models.Friend{ID: id, Name: name, Avatar: models.AvatarFor(name)}
	next := append([]models.Friend{f}, s.list...)

	if err := s.repo.Save(ctx, next); err != nil {
		return slices.Clone(s.list), false, fmt.Errorf("save friends: %w", err)
	}
	s.list = next
	s.log.Debug(ctx, "friend added", "id", f.ID, "name", f.Name)
	return slices.Clone(next), true, nil
}

func (s *friendService) Remove(ctx context.Context, id int64) ([]models.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.list), func(f models.Friend) bool { return f.ID == id })
	if err := s.repo.Save(ctx, next); err != nil {
		return slices.Clone(s.list), fmt.Errorf("save friends: %w", err)
	}
	s.list = next
	s.log.Debug(ctx, "friend removed", "id", id)
	return slices.Clone(next), nil
}
