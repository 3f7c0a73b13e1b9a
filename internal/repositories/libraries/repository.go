// Package libraries provides the interface for monster library persistence
package libraries

//go:generate mockgen -destination=mock/mock_repository.go -package=librariesmock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/libraries Repository

import (
	"context"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// Repository defines the interface for library persistence
type Repository interface {
	// Create stores a new library
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a library with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a library and its monster IDs
	// Returns errors.NotFound if the library doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every library, official ones first, then oldest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// AddMonster files a saved monster under a library
	// Returns errors.NotFound if the library doesn't exist
	AddMonster(ctx context.Context, input AddMonsterInput) (*AddMonsterOutput, error)

	// RemoveMonster takes a monster out of a library; removing an absent
	// monster is not an error
	RemoveMonster(ctx context.Context, input RemoveMonsterInput) (*RemoveMonsterOutput, error)
}

// CreateInput defines the input for creating a library
type CreateInput struct {
	Library *entities.Library
}

// CreateOutput defines the output for creating a library
type CreateOutput struct {
	Library *entities.Library
}

// GetInput defines the input for getting a library
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a library
type GetOutput struct {
	Library *entities.Library
}

// ListInput defines the input for listing libraries
type ListInput struct{}

// ListOutput defines the output for listing libraries
type ListOutput struct {
	Libraries []*entities.Library
}

// AddMonsterInput defines the input for adding a monster to a library
type AddMonsterInput struct {
	LibraryID string
	MonsterID string
}

// AddMonsterOutput defines the output for adding a monster to a library
type AddMonsterOutput struct{}

// RemoveMonsterInput defines the input for removing a monster from a library
type RemoveMonsterInput struct {
	LibraryID string
	MonsterID string
}

// RemoveMonsterOutput defines the output for removing a monster from a library
type RemoveMonsterOutput struct{}
