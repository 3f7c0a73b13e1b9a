// Package rest serves the JSON HTTP API for monster generation, the saved
// collection and share links
package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/collection"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/share"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/stats"
)

// APIMessage is returned by GET /api/
const APIMessage = "Labyrinth Lord Monster Generator API"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	MonsterService    monster.Service
	CollectionService collection.Service
	ShareService      share.Service
	StatsService      stats.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterService == nil {
		vb.RequiredField("MonsterService")
	}
	if c.CollectionService == nil {
		vb.RequiredField("CollectionService")
	}
	if c.ShareService == nil {
		vb.RequiredField("ShareService")
	}
	if c.StatsService == nil {
		vb.RequiredField("StatsService")
	}

	return vb.Build()
}

// Handler implements the HTTP API
type Handler struct {
	monsterService    monster.Service
	collectionService collection.Service
	shareService      share.Service
	statsService      stats.Service
	validate          *validator.Validate
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		monsterService:    cfg.MonsterService,
		collectionService: cfg.CollectionService,
		shareService:      cfg.ShareService,
		statsService:      cfg.StatsService,
		validate:          newValidator(),
	}, nil
}

// Routes registers every endpoint on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /api/{$}", h.Root)

	mux.HandleFunc("POST /api/monsters/generate", h.Generate)
	mux.HandleFunc("POST /api/monsters/generate-simple", h.GenerateSimple)
	mux.HandleFunc("GET /api/monsters/libraries", h.ListLibraries)
	mux.HandleFunc("POST /api/monsters/save", h.SaveMonster)
	mux.HandleFunc("GET /api/monsters/my-collection", h.MyCollection)
	mux.HandleFunc("GET /api/monsters/saved/{id}", h.GetSaved)
	mux.HandleFunc("GET /api/monsters/saved/{id}/export", h.ExportSaved)
	mux.HandleFunc("DELETE /api/monsters/saved/{id}", h.DeleteSaved)
	mux.HandleFunc("POST /api/monsters/share", h.ShareMonster)
	mux.HandleFunc("GET /api/monsters/shared/{shareId}", h.GetShared)
	mux.HandleFunc("GET /api/monsters/stats", h.Stats)

	return mux
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root identifies the API
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: APIMessage})
}

// Generate runs the engine with the full set of options
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h.generate(w, r, &monster.GenerateInput{
		ChallengeRating: req.Filters.ChallengeRating,
		Type:            req.Filters.Type,
		Environment:     req.Filters.Environment,
		Count:           req.Filters.Count,
		Algorithm:       req.Algorithm,
		Complexity:      req.Complexity,
		IncludeTreasure: req.IncludeTreasure,
		IncludeLair:     req.IncludeLair,
	})
}

// GenerateSimple takes bare filters and produces core stat blocks only
func (h *Handler) GenerateSimple(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h.generate(w, r, &monster.GenerateInput{
		ChallengeRating: req.ChallengeRating,
		Type:            req.Type,
		Environment:     req.Environment,
		Count:           req.Count,
	})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, input *monster.GenerateInput) {
	out, err := h.monsterService.Generate(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	monsters := out.Monsters
	if monsters == nil {
		monsters = []*entities.Monster{}
	}
	writeJSON(w, http.StatusOK, GenerateResponse{Monsters: monsters})
}

// ListLibraries lists every library, official first
func (h *Handler) ListLibraries(w http.ResponseWriter, r *http.Request) {
	out, err := h.collectionService.ListLibraries(r.Context(), &collection.ListLibrariesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LibrariesResponse{Libraries: nonNilLibraries(out.Libraries)})
}

// SaveMonster stores a monster in the collection
func (h *Handler) SaveMonster(w http.ResponseWriter, r *http.Request) {
	var req SaveMonsterRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.collectionService.SaveMonster(r.Context(), &collection.SaveMonsterInput{
		Monster:   req.Monster,
		LibraryID: req.LibraryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SaveMonsterResponse{
		Success:   true,
		MonsterID: out.Saved.ID,
		Message:   "Monster saved successfully",
	})
}

// MyCollection lists saved monsters, newest first. The optional offset and
// limit query parameters page through the collection.
func (h *Handler) MyCollection(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.collectionService.ListSaved(r.Context(), &collection.ListSavedInput{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	monsters := make([]*SavedMonsterResponse, 0, len(out.Monsters))
	for _, saved := range out.Monsters {
		monsters = append(monsters, newSavedMonsterResponse(saved))
	}

	writeJSON(w, http.StatusOK, CollectionResponse{
		Monsters:   monsters,
		TotalCount: out.TotalCount,
		Libraries:  nonNilLibraries(out.Libraries),
	})
}

// GetSaved returns one saved monster
func (h *Handler) GetSaved(w http.ResponseWriter, r *http.Request) {
	out, err := h.collectionService.GetMonster(r.Context(), &collection.GetMonsterInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newSavedMonsterResponse(out.Saved))
}

// ExportSaved renders a saved monster as clipboard text or a JSON download
func (h *Handler) ExportSaved(w http.ResponseWriter, r *http.Request) {
	out, err := h.collectionService.ExportMonster(r.Context(), &collection.ExportMonsterInput{
		ID:     r.PathValue("id"),
		Format: r.URL.Query().Get("format"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	if out.Filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Content); err != nil {
		slog.WarnContext(r.Context(), "failed to write export", "error", err)
	}
}

// DeleteSaved removes a monster from the collection
func (h *Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	if _, err := h.collectionService.DeleteMonster(r.Context(), &collection.DeleteMonsterInput{
		ID: r.PathValue("id"),
	}); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteMonsterResponse{
		Success: true,
		Message: "Monster deleted successfully",
	})
}

// ShareMonster issues a share link for a saved monster
func (h *Handler) ShareMonster(w http.ResponseWriter, r *http.Request) {
	var req ShareMonsterRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.shareService.CreateShare(r.Context(), &share.CreateShareInput{
		MonsterID: req.MonsterID,
		ShareType: req.ShareType,
		ExpiresIn: time.Duration(req.ExpiresIn) * 24 * time.Hour,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ShareMonsterResponse{
		ShareURL:  out.ShareURL,
		ShareID:   out.ShareID,
		ExpiresAt: out.ExpiresAt,
	})
}

// GetShared resolves a share link
func (h *Handler) GetShared(w http.ResponseWriter, r *http.Request) {
	out, err := h.shareService.GetShared(r.Context(), &share.GetSharedInput{
		ShareID: r.PathValue("shareId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SharedMonsterResponse{
		Monster:   out.Monster,
		SharedBy:  out.SharedBy,
		SharedAt:  out.SharedAt,
		ViewCount: out.ViewCount,
	})
}

// Stats returns the usage counters. A failing store reads as zeros so the
// landing page still renders.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	out, err := h.statsService.GetStats(r.Context(), &stats.GetStatsInput{})
	if err != nil {
		slog.WarnContext(r.Context(), "failed to read stats", "error", err)
		writeJSON(w, http.StatusOK, &entities.UsageStats{})
		return
	}

	writeJSON(w, http.StatusOK, out.Stats)
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.InvalidArgumentf("%s must be a non-negative integer", key)
	}
	return v, nil
}

func nonNilLibraries(libs []*entities.Library) []*entities.Library {
	if libs == nil {
		return []*entities.Library{}
	}
	return libs
}
