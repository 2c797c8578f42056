package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_workflow_service.go -package=mocks chunkwise/internal/service WorkflowService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"chunkwise/internal/chunking"
	"chunkwise/internal/contextutil"
	"chunkwise/internal/storage"
)

// MaxTitleLength is the longest workflow title accepted, in characters.
const MaxTitleLength = 50

// WorkflowService manages saved document and chunker pairings.
type WorkflowService interface {
	Create(ctx context.Context, title string) (*Workflow, error)
	Get(ctx context.Context, id string) (*Workflow, error)
	List(ctx context.Context) ([]*Workflow, error)
	Update(ctx context.Context, id string, patch WorkflowPatch) (*Workflow, error)
	Delete(ctx context.Context, id string) error
	// Visualize renders the workflow's document with its chunking strategy
	// and stores the statistics and HTML on the workflow.
	Visualize(ctx context.Context, id, theme string) (*Workflow, error)
}

// Workflow is a saved document with the chunking strategy applied to it.
type Workflow struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	CreatedAt         time.Time            `json:"created_at"`
	DocumentTitle     string               `json:"document_title,omitempty"`
	Document          string               `json:"document,omitempty"`
	ChunkingStrategy  *chunking.Config     `json:"chunking_strategy,omitempty"`
	ChunksStats       *chunking.Statistics `json:"chunks_stats,omitempty"`
	VisualizationHTML string               `json:"visualization_html,omitempty"`
}

// WorkflowPatch lists the fields to change. Nil fields are left alone.
// Changing the document or strategy clears stored results.
type WorkflowPatch struct {
	Title            *string          `json:"title"`
	DocumentTitle    *string          `json:"document_title"`
	Document         *string          `json:"document"`
	ChunkingStrategy *chunking.Config `json:"chunking_strategy"`
}

// Workflows implements WorkflowService.
type Workflows struct {
	store      storage.WorkflowStore
	visualizer VisualizationService
}

// NewWorkflows creates the workflow service.
func NewWorkflows(store storage.WorkflowStore, visualizer VisualizationService) *Workflows {
	return &Workflows{store: store, visualizer: visualizer}
}

// Create stores a new, empty workflow.
func (s *Workflows) Create(ctx context.Context, title string) (*Workflow, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	rec, err := s.store.Create(ctx, strings.TrimSpace(title))
	if err != nil {
		return nil, WrapError(err, "failed to create workflow")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "created workflow", "workflow_id", rec.ID)
	return fromRecord(rec)
}

// Get returns ErrNotFound for unknown ids.
func (s *Workflows) Get(ctx context.Context, id string) (*Workflow, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return fromRecord(rec)
}

// List returns every workflow in creation order.
func (s *Workflows) List(ctx context.Context) ([]*Workflow, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list workflows")
	}
	workflows := make([]*Workflow, 0, len(recs))
	for _, rec := range recs {
		wf, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, wf)
	}
	return workflows, nil
}

// Update applies patch to the workflow.
func (s *Workflows) Update(ctx context.Context, id string, patch WorkflowPatch) (*Workflow, error) {
	var update storage.WorkflowUpdate

	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
		title := strings.TrimSpace(*patch.Title)
		update.Title = &title
	}
	update.DocumentTitle = patch.DocumentTitle
	update.Document = patch.Document

	if patch.ChunkingStrategy != nil {
		if err := patch.ChunkingStrategy.Validate(); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(patch.ChunkingStrategy)
		if err != nil {
			return nil, WrapError(err, "failed to encode chunking strategy")
		}
		strategy := string(raw)
		update.ChunkingStrategy = &strategy
	}

	if patch.Document != nil || patch.ChunkingStrategy != nil {
		cleared := ""
		update.ChunksStats = &cleared
		update.VisualizationHTML = &cleared
	}

	rec, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, notFound(err, id)
	}
	return fromRecord(rec)
}

// Delete removes the workflow.
func (s *Workflows) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "deleted workflow", "workflow_id", id)
	return nil
}

// Visualize renders the stored document with the stored strategy and saves
// the statistics and HTML.
func (s *Workflows) Visualize(ctx context.Context, id, theme string) (*Workflow, error) {
	wf, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if wf.Document == "" {
		return nil, &ValidationError{Field: "document", Message: "workflow has no document"}
	}
	if wf.ChunkingStrategy == nil {
		return nil, &ValidationError{Field: "chunking_strategy", Message: "workflow has no chunking strategy"}
	}

	res, err := s.visualizer.Visualize(ctx, VisualizeRequest{
		Config:   *wf.ChunkingStrategy,
		Document: wf.Document,
		Theme:    theme,
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(res.Stats)
	if err != nil {
		return nil, WrapError(err, "failed to encode statistics")
	}
	stats := string(raw)
	rec, err := s.store.Update(ctx, id, storage.WorkflowUpdate{
		ChunksStats:       &stats,
		VisualizationHTML: &res.HTML,
	})
	if err != nil {
		return nil, notFound(err, id)
	}
	return fromRecord(rec)
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", MaxTitleLength)}
	}
	return nil
}

func notFound(err error, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("workflow %s: %w", id, ErrNotFound)
	}
	return WrapError(err, "workflow store")
}

func fromRecord(rec *storage.WorkflowRecord) (*Workflow, error) {
	wf := &Workflow{
		ID:                rec.ID,
		Title:             rec.Title,
		CreatedAt:         rec.CreatedAt,
		DocumentTitle:     rec.DocumentTitle,
		Document:          rec.Document,
		VisualizationHTML: rec.VisualizationHTML,
	}
	if rec.ChunkingStrategy != "" {
		var cfg chunking.Config
		if err := json.Unmarshal([]byte(rec.ChunkingStrategy), &cfg); err != nil {
			return nil, fmt.Errorf("workflow %s has a corrupt chunking strategy: %w", rec.ID, err)
		}
		wf.ChunkingStrategy = &cfg
	}
	if rec.ChunksStats != "" {
		var stats chunking.Statistics
		if err := json.Unmarshal([]byte(rec.ChunksStats), &stats); err != nil {
			return nil, fmt.Errorf("workflow %s has corrupt statistics: %w", rec.ID, err)
		}
		wf.ChunksStats = &stats
	}
	return wf, nil
}
