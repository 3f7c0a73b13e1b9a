package rest

import (
	"time"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// FiltersRequest narrows which monsters are generated. Empty values mean "any".
type FiltersRequest struct {
	ChallengeRating string `json:"challengeRating" validate:"omitempty,max=16"`
	Type            string `json:"type" validate:"omitempty,max=32"`
	Environment     string `json:"environment" validate:"omitempty,max=32"`
	Count           int    `json:"count" validate:"gte=0"`
}

// GenerateRequest is the body of POST /api/monsters/generate. Extended
// fields are only generated when asked for.
type GenerateRequest struct {
	Filters         FiltersRequest `json:"filters"`
	Algorithm       string         `json:"algorithm" validate:"omitempty,max=32"`
	Complexity      string         `json:"complexity" validate:"omitempty,max=16"`
	IncludeTreasure bool           `json:"includeTreasure"`
	IncludeLair     bool           `json:"includeLair"`
	// CustomRules is accepted for compatibility and ignored
	CustomRules map[string]any `json:"customRules,omitempty"`
}

// GenerateResponse lists freshly generated monsters
type GenerateResponse struct {
	Monsters []*entities.Monster `json:"monsters"`
}

// SaveMonsterRequest is the body of POST /api/monsters/save
type SaveMonsterRequest struct {
	Monster   *entities.Monster `json:"monster" validate:"required"`
	LibraryID string            `json:"libraryId" validate:"omitempty,max=64"`
}

// SaveMonsterResponse reports the id a monster was saved under
type SaveMonsterResponse struct {
	Success   bool   `json:"success"`
	MonsterID string `json:"monsterId"`
	Message   string `json:"message"`
}

// SavedMonsterResponse is a saved monster flattened with its collection fields
type SavedMonsterResponse struct {
	ID string `json:"id"`
	*entities.Monster
	LibraryID string    `json:"libraryId,omitempty"`
	SavedAt   time.Time `json:"savedAt"`
}

// CollectionResponse is the body of GET /api/monsters/my-collection
type CollectionResponse struct {
	Monsters   []*SavedMonsterResponse `json:"monsters"`
	TotalCount int                     `json:"totalCount"`
	Libraries  []*entities.Library     `json:"libraries"`
}

// LibrariesResponse lists the monster libraries
type LibrariesResponse struct {
	Libraries []*entities.Library `json:"libraries"`
}

// DeleteMonsterResponse confirms a deletion
type DeleteMonsterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ShareMonsterRequest is the body of POST /api/monsters/share. ExpiresIn is
// in days; zero uses the server default.
type ShareMonsterRequest struct {
	MonsterID string `json:"monsterId" validate:"required,max=64"`
	ShareType string `json:"shareType" validate:"omitempty,max=32"`
	ExpiresIn int    `json:"expiresIn" validate:"gte=0,lte=365"`
}

// ShareMonsterResponse carries a new share link
type ShareMonsterResponse struct {
	ShareURL  string    `json:"shareUrl"`
	ShareID   string    `json:"shareId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SharedMonsterResponse is the body of GET /api/monsters/shared/{shareId}
type SharedMonsterResponse struct {
	Monster   *entities.Monster `json:"monster"`
	SharedBy  string            `json:"sharedBy"`
	SharedAt  time.Time         `json:"sharedAt"`
	ViewCount int64             `json:"viewCount"`
}

// MessageResponse is a bare message body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse wraps ErrorBody
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func newSavedMonsterResponse(saved *entities.SavedMonster) *SavedMonsterResponse {
	return &SavedMonsterResponse{
		ID:        saved.ID,
		Monster:   saved.Monster,
		LibraryID: saved.LibraryID,
		SavedAt:   saved.SavedAt,
	}
}
