package accounts

import (
	"context"

	"github.com/dmitrijs2005/homeowner/internal/models"
)

// Repository persists the complete ordered account set.
type Repository interface {
	// Load returns all persisted accounts in insertion order.
	Load(ctx context.Context) ([]models.Account, error)

	// Save atomically replaces the persisted set with accounts.
	Save(ctx context.Context, accounts []models.Account) error

	// Quarantine moves the persisted data aside so the next Save starts
	// from scratch. It returns where the data was moved to.
	Quarantine(ctx context.Context) (string, error)

	// Path is the location of the durable file.
	Path() string

	// Close releases any open handles.
	Close() error
}
