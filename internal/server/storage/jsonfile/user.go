package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
)

// UserStore is a file-backed implementation of storage.UserStorage.
type UserStore struct {
	path  string
	mu    sync.RWMutex
	users []*models.User
}

// NewUserStore loads the users file at path. A missing file yields an
// empty store.
func NewUserStore(path string) (*UserStore, error) {
	s := &UserStore{path: path}
	if err := load(path, &s.users); err != nil {
		return nil, fmt.Errorf("failed to load user store: %w", err)
	}
	return s, nil
}

// CreateUser creates a new user in the storage
func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return storage.ErrUserAlreadyExists
		}
		if user.Email != "" && u.Email == user.Email {
			return storage.ErrEmailAlreadyExists
		}
	}

	stored := *user
	s.users = append(s.users, &stored)

	if err := flush(s.path, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return fmt.Errorf("failed to flush user store: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves user by username
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := *u
			return &user, nil
		}
	}

	return nil, storage.ErrUserNotFound
}

// Empty reports whether the store holds no users. Used to decide whether
// the default accounts need seeding on first run.
func (s *UserStore) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users) == 0
}
