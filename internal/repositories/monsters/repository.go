// Package monsters provides the interface for saved monster persistence
package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/monsters Repository

import (
	"context"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// Repository defines the interface for saved monster persistence
type Repository interface {
	// Create stores a saved monster
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a monster with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a saved monster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the monster doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a saved monster and returns what was removed
	// Returns errors.NotFound if the monster doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns saved monsters newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Repair scans every stored monster, removes entries that cannot be
	// decoded and rebuilds the saved index from the rest
	Repair(ctx context.Context, input RepairInput) (*RepairOutput, error)
}

// CreateInput defines the input for saving a monster
type CreateInput struct {
	Monster *entities.SavedMonster
}

// CreateOutput defines the output for saving a monster
type CreateOutput struct {
	Monster *entities.SavedMonster
}

// GetInput defines the input for getting a saved monster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a saved monster
type GetOutput struct {
	Monster *entities.SavedMonster
}

// DeleteInput defines the input for deleting a saved monster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a saved monster
type DeleteOutput struct {
	Monster *entities.SavedMonster
}

// ListInput defines the input for listing saved monsters. A zero Limit
// returns everything after Offset.
type ListInput struct {
	Offset int
	Limit  int
}

// ListOutput defines the output for listing saved monsters
type ListOutput struct {
	Monsters []*entities.SavedMonster
	Total    int
}

// RepairInput defines the input for repairing stored monsters. DryRun
// reports problems without changing anything.
type RepairInput struct {
	DryRun bool
}

// RepairOutput reports what a repair found
type RepairOutput struct {
	Checked   int
	Indexed   int
	Corrupted []string
}
