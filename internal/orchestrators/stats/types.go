package stats

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// GetStatsInput defines the request for reading usage statistics
type GetStatsInput struct{}

// GetStatsOutput defines the response for reading usage statistics
type GetStatsOutput struct {
	Stats *entities.UsageStats
}
