package storage

import (
	"context"

	"jobcart/internal/models"
)

// ApplicationStorage defines interface for job application persistence.
// Every read is filtered by owner and every mutation checks ownership;
// this is the data-isolation boundary of the tracker service.
type ApplicationStorage interface {
	// CreateApplication stores a new application, assigning the next
	// auto-increment id
	CreateApplication(ctx context.Context, app *models.JobApplication) error

	// ListByOwner retrieves the applications owned by the given user
	// in insertion order. Returns an empty slice when the user has none.
	ListByOwner(ctx context.Context, owner string) ([]*models.JobApplication, error)

	// UpdateStatus sets the status of one application.
	// Returns ErrApplicationNotFound when the id is unknown and
	// ErrNotOwner when the record belongs to a different user.
	UpdateStatus(ctx context.Context, id int, owner string, status models.ApplicationStatus) (*models.JobApplication, error)
}
