package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_workflow_store.go -package=mocks chunkwise/internal/storage WorkflowStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// WorkflowStore defines the interface for workflow storage operations.
type WorkflowStore interface {
	// Create inserts a workflow with a new UUID and returns the stored row.
	Create(ctx context.Context, title string) (*WorkflowRecord, error)
	// GetByID returns ErrNotFound if the workflow does not exist.
	GetByID(ctx context.Context, id string) (*WorkflowRecord, error)
	// List returns all workflows in creation order.
	List(ctx context.Context) ([]*WorkflowRecord, error)
	// Update applies the non-nil fields of update and returns the stored row.
	Update(ctx context.Context, id string, update WorkflowUpdate) (*WorkflowRecord, error)
	// Delete removes the workflow and its deployed chunks.
	Delete(ctx context.Context, id string) error
}

// WorkflowRepo implements WorkflowStore on SQLite.
type WorkflowRepo struct {
	db *sql.DB
}

// NewWorkflowRepo creates a new WorkflowRepo.
func NewWorkflowRepo(db *sql.DB) *WorkflowRepo {
	return &WorkflowRepo{db: db}
}

const workflowColumns = "id, title, created_at, document_title, document, chunking_strategy, chunks_stats, visualization_html"

// Create inserts a workflow with a new UUID and returns the stored row.
func (r *WorkflowRepo) Create(ctx context.Context, title string) (*WorkflowRecord, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx, "INSERT INTO workflows (id, title) VALUES (?, ?)", id, title)
	if err != nil {
		return nil, fmt.Errorf("failed to insert workflow: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns ErrNotFound if the workflow does not exist.
func (r *WorkflowRepo) GetByID(ctx context.Context, id string) (*WorkflowRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workflowColumns+" FROM workflows WHERE id = ?", id)
	wf, err := scanWorkflow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow: %w", err)
	}
	return wf, nil
}

// List returns all workflows in creation order.
// Returns an empty slice if there are none.
func (r *WorkflowRepo) List(ctx context.Context) ([]*WorkflowRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+workflowColumns+" FROM workflows ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query workflows: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	workflows := []*WorkflowRecord{}
	for rows.Next() {
		wf, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}
		workflows = append(workflows, wf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return workflows, nil
}

// Update applies the non-nil fields of update and returns the stored row.
// An empty string stores NULL.
func (r *WorkflowRepo) Update(ctx context.Context, id string, update WorkflowUpdate) (*WorkflowRecord, error) {
	fields := []struct {
		column string
		value  *string
	}{
		{"title", update.Title},
		{"document_title", update.DocumentTitle},
		{"document", update.Document},
		{"chunking_strategy", update.ChunkingStrategy},
		{"chunks_stats", update.ChunksStats},
		{"visualization_html", update.VisualizationHTML},
	}

	var sets []string
	var args []any
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		sets = append(sets, f.column+" = ?")
		args = append(args, nullable(*f.value))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx, "UPDATE workflows SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the workflow and its deployed chunks.
func (r *WorkflowRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM workflows WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkflow(s rowScanner) (*WorkflowRecord, error) {
	var wf WorkflowRecord
	var createdAt string
	var docTitle, doc, strategy, stats, html sql.NullString

	if err := s.Scan(&wf.ID, &wf.Title, &createdAt, &docTitle, &doc, &strategy, &stats, &html); err != nil {
		return nil, err
	}

	var err error
	wf.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	wf.DocumentTitle = docTitle.String
	wf.Document = doc.String
	wf.ChunkingStrategy = strategy.String
	wf.ChunksStats = stats.String
	wf.VisualizationHTML = html.String
	return &wf, nil
}

// parseTimestamp accepts SQLite's CURRENT_TIMESTAMP format and RFC 3339,
// which the driver produces for DATETIME columns.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
