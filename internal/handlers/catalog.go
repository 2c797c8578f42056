package handlers

import (
	"net/http"

	"chunkwise/internal/chunking"
	"chunkwise/internal/contextutil"
	"chunkwise/internal/visualize"
)

// CatalogHandler lists the built-in themes and chunkers.
type CatalogHandler struct {
	defaultTheme string
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(defaultTheme string) *CatalogHandler {
	return &CatalogHandler{defaultTheme: defaultTheme}
}

// ThemesResponse lists every color theme.
type ThemesResponse struct {
	Default string            `json:"default"`
	Themes  []visualize.Theme `json:"themes"`
}

// Themes handles GET /api/themes.
func (h *CatalogHandler) Themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r.Context(), http.StatusOK, ThemesResponse{
		Default: h.defaultTheme,
		Themes:  visualize.Catalog(),
	})
}

// Configs handles GET /api/configs.
func (h *CatalogHandler) Configs(w http.ResponseWriter, r *http.Request) {
	entries, err := chunking.Catalog()
	if err != nil {
		contextutil.LoggerFromContext(r.Context()).ErrorContext(r.Context(), "failed to load chunker catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load chunker catalog")
		return
	}
	writeJSON(w, r.Context(), http.StatusOK, entries)
}
