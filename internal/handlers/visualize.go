package handlers

import (
	"net/http"

	"chunkwise/internal/chunking"
	"chunkwise/internal/service"
)

// VisualizeHandler serves the stateless chunking and rendering endpoints.
type VisualizeHandler struct {
	visualizer service.VisualizationService
}

// NewVisualizeHandler creates a new VisualizeHandler.
func NewVisualizeHandler(visualizer service.VisualizationService) *VisualizeHandler {
	return &VisualizeHandler{visualizer: visualizer}
}

// VisualizeRequest is the body of POST /api/visualize.
type VisualizeRequest struct {
	ChunkerConfig chunking.Config `json:"chunker_config"`
	Document      string          `json:"document"`
	Theme         string          `json:"theme,omitempty"`
}

// VisualizeResponse is the statistics and HTML of one visualization.
type VisualizeResponse struct {
	Stats      chunking.Statistics      `json:"stats"`
	TokenStats chunking.TokenStatistics `json:"token_stats"`
	HTML       string                   `json:"html"`
	Dropped    []service.DroppedChunk   `json:"dropped"`
}

// ChunksRequest is the body of POST /api/chunks.
type ChunksRequest struct {
	ChunkerConfig chunking.Config `json:"chunker_config"`
	Text          string          `json:"text"`
}

// VisualizationRequest is the body of POST /api/visualization. Without a
// document the text is rebuilt from the chunks, which then need offsets.
type VisualizationRequest struct {
	Chunks   []chunking.ChunkPayload `json:"chunks"`
	Document *string                 `json:"document,omitempty"`
	Theme    string                  `json:"theme,omitempty"`
	Colors   []string                `json:"colors,omitempty"`
}

// StatsRequest is the body of POST /api/stats.
type StatsRequest struct {
	Chunks []chunking.ChunkPayload `json:"chunks"`
}

// CompareRequest is the body of POST /api/compare.
type CompareRequest struct {
	Document       string            `json:"document"`
	ChunkerConfigs []chunking.Config `json:"chunker_configs"`
	Theme          string            `json:"theme,omitempty"`
}

// Visualize handles POST /api/visualize.
func (h *VisualizeHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VisualizeRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	res, err := h.visualizer.Visualize(ctx, service.VisualizeRequest{
		Config:   req.ChunkerConfig,
		Document: req.Document,
		Theme:    req.Theme,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to visualize document")
		return
	}

	writeJSON(w, ctx, http.StatusOK, VisualizeResponse{
		Stats:      res.Stats,
		TokenStats: res.Tokens,
		HTML:       res.HTML,
		Dropped:    res.Dropped,
	})
}

// Chunks handles POST /api/chunks.
func (h *VisualizeHandler) Chunks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChunksRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	res, err := h.visualizer.Chunk(ctx, req.ChunkerConfig, req.Text)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to chunk text")
		return
	}
	writeJSON(w, ctx, http.StatusOK, res.Chunks)
}

// Visualization handles POST /api/visualization and responds with HTML.
func (h *VisualizeHandler) Visualization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VisualizationRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	chunks, err := chunking.ToChunks(req.Chunks, req.Document == nil)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid chunks")
		return
	}

	html, err := h.visualizer.Render(ctx, service.RenderRequest{
		Chunks:   chunks,
		Document: req.Document,
		Theme:    req.Theme,
		Colors:   req.Colors,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to render chunks")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// Stats handles POST /api/stats.
func (h *VisualizeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StatsRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	chunks, err := chunking.ToChunks(req.Chunks, false)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid chunks")
		return
	}

	res, err := h.visualizer.Stats(ctx, chunks)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute statistics")
		return
	}
	writeJSON(w, ctx, http.StatusOK, res)
}

// Compare handles POST /api/compare.
func (h *VisualizeHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CompareRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	results, err := h.visualizer.Compare(ctx, service.CompareRequest{
		Document: req.Document,
		Configs:  req.ChunkerConfigs,
		Theme:    req.Theme,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compare configurations")
		return
	}
	writeJSON(w, ctx, http.StatusOK, results)
}
