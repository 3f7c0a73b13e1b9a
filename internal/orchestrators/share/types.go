package share

import (
	"time"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// CreateShareInput defines the request for sharing a saved monster. A zero
// ExpiresIn uses the configured default lifetime.
type CreateShareInput struct {
	MonsterID string
	ShareType string
	ExpiresIn time.Duration
}

// CreateShareOutput defines the response for sharing a saved monster
type CreateShareOutput struct {
	ShareID   string
	ShareURL  string
	ExpiresAt time.Time
}

// GetSharedInput defines the request for resolving a share link
type GetSharedInput struct {
	ShareID string
}

// GetSharedOutput defines the response for resolving a share link
type GetSharedOutput struct {
	Monster   *entities.Monster
	SharedBy  string
	SharedAt  time.Time
	ViewCount int64
}
