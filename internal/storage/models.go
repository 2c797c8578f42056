package storage

import "time"

// WorkflowRecord is a row of the workflows table. Nullable text columns read
// back as empty strings.
type WorkflowRecord struct {
	ID                string // UUID
	Title             string
	CreatedAt         time.Time
	DocumentTitle     string
	Document          string
	ChunkingStrategy  string // JSON chunker config
	ChunksStats       string // JSON chunk statistics
	VisualizationHTML string
}

// WorkflowUpdate carries the columns to change. Nil fields are left alone and
// an empty string clears the column.
type WorkflowUpdate struct {
	Title             *string
	DocumentTitle     *string
	Document          *string
	ChunkingStrategy  *string
	ChunksStats       *string
	VisualizationHTML *string
}

// ChunkRecord is a chunk deployed to the vector store for a workflow.
type ChunkRecord struct {
	ID         string // UUID, same as the Qdrant point ID
	WorkflowID string
	ChunkIndex int
	StartIndex int
	EndIndex   int
	Text       string
}
