package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
)

// ApplicationStore is a file-backed implementation of
// storage.ApplicationStorage.
type ApplicationStore struct {
	path   string
	mu     sync.RWMutex
	apps   []*models.JobApplication
	nextID int
}

// NewApplicationStore loads the applications file at path. The next
// auto-increment id continues from the highest stored id.
func NewApplicationStore(path string) (*ApplicationStore, error) {
	s := &ApplicationStore{path: path, nextID: 1}
	if err := load(path, &s.apps); err != nil {
		return nil, fmt.Errorf("failed to load application store: %w", err)
	}

	for _, app := range s.apps {
		if app.ID >= s.nextID {
			s.nextID = app.ID + 1
		}
	}

	return s, nil
}

// CreateApplication stores a new application, assigning the next auto-increment id
func (s *ApplicationStore) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = s.nextID

	stored := *app
	s.apps = append(s.apps, &stored)

	if err := flush(s.path, s.apps); err != nil {
		s.apps = s.apps[:len(s.apps)-1]
		return fmt.Errorf("failed to flush application store: %w", err)
	}

	s.nextID++
	return nil
}

// ListByOwner retrieves the applications owned by the given user in insertion order
func (s *ApplicationStore) ListByOwner(ctx context.Context, owner string) ([]*models.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.JobApplication, 0)
	for _, app := range s.apps {
		if app.Owner == owner {
			copied := *app
			result = append(result, &copied)
		}
	}

	return result, nil
}

// UpdateStatus sets the status of one application after checking ownership
func (s *ApplicationStore) UpdateStatus(ctx context.Context, id int, owner string, status models.ApplicationStatus) (*models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.ID != id {
			continue
		}

		if app.Owner != owner {
			return nil, storage.ErrNotOwner
		}

		previous := app.Status
		app.Status = status

		if err := flush(s.path, s.apps); err != nil {
			app.Status = previous
			return nil, fmt.Errorf("failed to flush application store: %w", err)
		}

		updated := *app
		return &updated, nil
	}

	return nil, storage.ErrApplicationNotFound
}
