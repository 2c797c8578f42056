package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_visualization_service.go -package=mocks chunkwise/internal/service VisualizationService

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"chunkwise/internal/chunking"
	"chunkwise/internal/contextutil"
	"chunkwise/internal/visualize"
)

// MaxCompareConfigs bounds how many chunker configurations one comparison runs.
const MaxCompareConfigs = 8

const compareConcurrency = 4

// VisualizationService chunks documents and renders the result.
type VisualizationService interface {
	// Visualize chunks a document, then computes statistics and HTML.
	Visualize(ctx context.Context, req VisualizeRequest) (*VisualizeResult, error)
	// Chunk returns the chunks of a document with their offsets.
	Chunk(ctx context.Context, cfg chunking.Config, document string) (*ChunkResult, error)
	// Render draws existing chunks over a document.
	Render(ctx context.Context, req RenderRequest) (string, error)
	// Stats computes size statistics for existing chunks.
	Stats(ctx context.Context, chunks []chunking.Chunk) (*StatsResult, error)
	// Compare visualizes one document under several configurations.
	Compare(ctx context.Context, req CompareRequest) ([]VisualizeResult, error)
}

// VisualizeRequest asks for one document to be chunked and rendered.
type VisualizeRequest struct {
	Config   chunking.Config
	Document string
	Theme    string
}

// DroppedChunk is a chunker output that could not be placed in the document.
type DroppedChunk struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

// ChunkResult is the chunks of a document plus any that were dropped.
type ChunkResult struct {
	Chunks  []chunking.Chunk `json:"chunks"`
	Dropped []DroppedChunk   `json:"dropped"`
}

// StatsResult pairs size statistics with token statistics.
type StatsResult struct {
	chunking.Statistics
	Tokens chunking.TokenStatistics `json:"tokens"`
}

// VisualizeResult is everything produced for one document and configuration.
type VisualizeResult struct {
	Config  chunking.Config          `json:"chunker_config"`
	Stats   chunking.Statistics      `json:"stats"`
	Tokens  chunking.TokenStatistics `json:"token_stats"`
	HTML    string                   `json:"html"`
	Chunks  []chunking.Chunk         `json:"chunks"`
	Dropped []DroppedChunk           `json:"dropped"`
}

// RenderRequest draws existing chunks. A nil Document is rebuilt from the
// chunks. Colors, when set, replace the named theme.
type RenderRequest struct {
	Chunks   []chunking.Chunk
	Document *string
	Theme    string
	Colors   []string
}

// CompareRequest runs several configurations over the same document.
type CompareRequest struct {
	Document string
	Configs  []chunking.Config
	Theme    string
}

// Visualization implements VisualizationService.
type Visualization struct {
	defaultTheme string
}

// NewVisualization creates the service. defaultTheme is used when a request
// names no theme.
func NewVisualization(defaultTheme string) *Visualization {
	return &Visualization{defaultTheme: defaultTheme}
}

// Visualize normalizes the document, assembles chunks with the configured
// chunker, and renders them.
func (s *Visualization) Visualize(ctx context.Context, req VisualizeRequest) (*VisualizeResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Document) == "" {
		return nil, &ValidationError{Field: "document", Message: "cannot be empty"}
	}
	theme, err := s.theme(req.Theme, nil)
	if err != nil {
		return nil, err
	}

	cfg := req.Config.WithDefaults()
	document := chunking.NormalizeDocument(req.Document)
	chunks, err := s.assemble(ctx, cfg, document)
	if err != nil {
		return nil, err
	}

	stats, err := chunking.Aggregate(chunks.Chunks)
	if err != nil {
		return nil, WrapError(err, "failed to compute statistics")
	}
	html, err := visualize.NewVisualizer(theme).Render(chunks.Chunks, &document)
	if err != nil {
		return nil, WrapError(err, "failed to render chunks")
	}

	logger.InfoContext(ctx, "visualized document",
		"chunker", cfg.Name(),
		"chunks", len(chunks.Chunks),
		"dropped", len(chunks.Dropped),
		"theme", theme.Name,
	)

	return &VisualizeResult{
		Config:  cfg,
		Stats:   stats,
		Tokens:  chunking.TokenStats(chunks.Chunks),
		HTML:    html,
		Chunks:  chunks.Chunks,
		Dropped: chunks.Dropped,
	}, nil
}

// Chunk returns the chunks of the normalized document.
func (s *Visualization) Chunk(ctx context.Context, cfg chunking.Config, document string) (*ChunkResult, error) {
	if document == "" {
		return nil, &ValidationError{Field: "text", Message: "cannot be empty"}
	}
	return s.assemble(ctx, cfg.WithDefaults(), chunking.NormalizeDocument(document))
}

// Render draws req.Chunks with the requested theme or palette.
func (s *Visualization) Render(ctx context.Context, req RenderRequest) (string, error) {
	theme, err := s.theme(req.Theme, req.Colors)
	if err != nil {
		return "", err
	}
	html, err := visualize.NewVisualizer(theme).Render(req.Chunks, req.Document)
	if err != nil {
		return "", WrapError(err, "failed to render chunks")
	}
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "rendered chunks", "chunks", len(req.Chunks), "theme", theme.Name)
	return html, nil
}

// Stats computes statistics for chunks.
func (s *Visualization) Stats(_ context.Context, chunks []chunking.Chunk) (*StatsResult, error) {
	stats, err := chunking.Aggregate(chunks)
	if err != nil {
		return nil, WrapError(err, "failed to compute statistics")
	}
	return &StatsResult{Statistics: stats, Tokens: chunking.TokenStats(chunks)}, nil
}

// Compare visualizes the document under every configuration concurrently.
// Results follow the order of req.Configs; the first failure cancels the rest.
func (s *Visualization) Compare(ctx context.Context, req CompareRequest) ([]VisualizeResult, error) {
	if len(req.Configs) == 0 {
		return nil, &ValidationError{Field: "chunker_configs", Message: "at least one configuration is required"}
	}
	if len(req.Configs) > MaxCompareConfigs {
		return nil, &ValidationError{Field: "chunker_configs", Message: fmt.Sprintf("at most %d configurations can be compared", MaxCompareConfigs)}
	}

	results := make([]VisualizeResult, len(req.Configs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i, cfg := range req.Configs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Visualize(gctx, VisualizeRequest{Config: cfg, Document: req.Document, Theme: req.Theme})
			if err != nil {
				return WrapError(err, fmt.Sprintf("configuration %d (%s)", i, cfg.Name()))
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Visualization) assemble(ctx context.Context, cfg chunking.Config, document string) (*ChunkResult, error) {
	handle, err := chunking.NewHandle(cfg)
	if err != nil {
		return nil, err
	}

	assembly, err := chunking.Assemble(ctx, document, handle)
	if err != nil {
		return nil, WrapError(err, "chunking failed")
	}

	dropped := make([]DroppedChunk, len(assembly.Failures))
	for i, f := range assembly.Failures {
		dropped[i] = DroppedChunk{Position: f.Position, Text: f.Text}
	}
	return &ChunkResult{Chunks: assembly.Chunks, Dropped: dropped}, nil
}

func (s *Visualization) theme(name string, colors []string) (visualize.Theme, error) {
	if len(colors) > 0 {
		return visualize.CustomTheme(colors)
	}
	if name == "" {
		name = s.defaultTheme
	}
	return visualize.Resolve(name)
}
