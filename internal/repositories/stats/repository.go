// Package stats provides storage for the usage counters
package stats

//go:generate mockgen -destination=mock/mock_repository.go -package=statsmock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/stats Repository

import (
	"context"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// Counter names a usage counter
type Counter string

// Counters
const (
	CounterGenerated Counter = "generated"
	CounterSaved     Counter = "saved"
	CounterShared    Counter = "shared"
)

// Repository defines the interface for usage counters
type Repository interface {
	// Increment adds Delta to a counter and returns its new value
	// Returns errors.InvalidArgument for unknown counters
	Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error)

	// Get reads every counter; counters never incremented read as zero
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// IncrementInput defines the input for incrementing a counter. A zero
// Delta counts one.
type IncrementInput struct {
	Counter Counter
	Delta   int64
}

// IncrementOutput defines the output for incrementing a counter
type IncrementOutput struct {
	Value int64
}

// GetInput defines the input for reading the counters
type GetInput struct{}

// GetOutput defines the output for reading the counters
type GetOutput struct {
	Stats *entities.UsageStats
}
