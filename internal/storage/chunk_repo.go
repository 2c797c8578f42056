package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chunk_store.go -package=mocks chunkwise/internal/storage ChunkStore

import (
	"context"
	"database/sql"
	"fmt"
)

// ChunkStore records which chunks of a workflow are deployed to the vector store.
type ChunkStore interface {
	// Replace swaps the deployed chunks of a workflow for chunks in one transaction.
	Replace(ctx context.Context, workflowID string, chunks []ChunkRecord) error
	// ListIDsByWorkflow returns chunk IDs for a workflow, ordered by chunk_index.
	ListIDsByWorkflow(ctx context.Context, workflowID string) ([]string, error)
}

// ChunkRepo implements ChunkStore on SQLite.
type ChunkRepo struct {
	db *sql.DB
}

// NewChunkRepo creates a new ChunkRepo.
func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// Replace deletes every row of workflowID and inserts chunks. Each chunk must
// carry an ID and belong to workflowID. Nothing changes if any insert fails.
func (r *ChunkRepo) Replace(ctx context.Context, workflowID string, chunks []ChunkRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM deployed_chunks WHERE workflow_id = ?", workflowID); err != nil {
		return fmt.Errorf("failed to delete old chunks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO deployed_chunks (id, workflow_id, chunk_index, start_index, end_index, text) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, c := range chunks {
		if c.WorkflowID != workflowID {
			return fmt.Errorf("chunk %s belongs to workflow %q, not %q", c.ID, c.WorkflowID, workflowID)
		}
		if _, err = stmt.ExecContext(ctx, c.ID, c.WorkflowID, c.ChunkIndex, c.StartIndex, c.EndIndex, c.Text); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", c.ChunkIndex, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunks: %w", err)
	}
	return nil
}

// ListIDsByWorkflow returns chunk IDs for a workflow, ordered by chunk_index.
// Returns an empty slice if no chunks exist (not an error).
// Used to get Qdrant point IDs for deletion before redeploying.
func (r *ChunkRepo) ListIDsByWorkflow(ctx context.Context, workflowID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM deployed_chunks WHERE workflow_id = ? ORDER BY chunk_index",
		workflowID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk IDs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan chunk ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}
