// Package shares provides storage for share links that stop resolving after
// their expiry
package shares

//go:generate mockgen -destination=mock/mock_repository.go -package=sharesmock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/shares Repository

import (
	"context"
	"time"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// Repository defines the interface for share link persistence
type Repository interface {
	// Create stores a share link expiring TTL from now
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the share ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a share link with its current view count
	// Returns errors.NotFound if the share doesn't exist
	// Returns errors.Expired if the share is past its expiry
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// IncrementViews records one view of a share link
	// Returns errors.NotFound if the share doesn't exist
	IncrementViews(ctx context.Context, input IncrementViewsInput) (*IncrementViewsOutput, error)
}

// CreateInput defines the input for creating a share link
type CreateInput struct {
	ID        string
	MonsterID string
	ShareType string
	TTL       time.Duration
}

// CreateOutput defines the output for creating a share link
type CreateOutput struct {
	Share *entities.Share
}

// GetInput defines the input for getting a share link
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a share link
type GetOutput struct {
	Share *entities.Share
}

// IncrementViewsInput defines the input for recording a view
type IncrementViewsInput struct {
	ID string
}

// IncrementViewsOutput defines the output for recording a view
type IncrementViewsOutput struct {
	ViewCount int64
}
