package storage

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func createTestWorkflow(t *testing.T, repo *WorkflowRepo) *WorkflowRecord {
	t.Helper()
	wf, err := repo.Create(context.Background(), "test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return wf
}

func countChunks(t *testing.T, repo *ChunkRepo) int {
	t.Helper()
	var n int
	if err := repo.db.QueryRow("SELECT COUNT(*) FROM deployed_chunks").Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return n
}

func TestChunkRepo_Replace(t *testing.T) {
	db := newTestDB(t)
	workflows := NewWorkflowRepo(db)
	wf := createTestWorkflow(t, workflows)
	other := createTestWorkflow(t, workflows)
	repo := NewChunkRepo(db)
	ctx := context.Background()

	if err := repo.Replace(ctx, other.ID, []ChunkRecord{{ID: "keep", WorkflowID: other.ID, Text: "other"}}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	first := []ChunkRecord{
		{ID: "c2", WorkflowID: wf.ID, ChunkIndex: 2, StartIndex: 8, EndIndex: 11, Text: "two"},
		{ID: "c0", WorkflowID: wf.ID, ChunkIndex: 0, StartIndex: 0, EndIndex: 4, Text: "zero"},
		{ID: "c1", WorkflowID: wf.ID, ChunkIndex: 1, StartIndex: 4, EndIndex: 7, Text: "one"},
	}
	if err := repo.Replace(ctx, wf.ID, first); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	ids, err := repo.ListIDsByWorkflow(ctx, wf.ID)
	if err != nil {
		t.Fatalf("ListIDsByWorkflow() error = %v", err)
	}
	if diff := cmp.Diff([]string{"c0", "c1", "c2"}, ids); diff != "" {
		t.Errorf("ListIDsByWorkflow() mismatch (-want +got):\n%s", diff)
	}

	// A redeploy with fewer chunks drops the rest.
	if err := repo.Replace(ctx, wf.ID, []ChunkRecord{{ID: "n0", WorkflowID: wf.ID, Text: "new"}}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	ids, err = repo.ListIDsByWorkflow(ctx, wf.ID)
	if err != nil {
		t.Fatalf("ListIDsByWorkflow() error = %v", err)
	}
	if diff := cmp.Diff([]string{"n0"}, ids); diff != "" {
		t.Errorf("after redeploy (-want +got):\n%s", diff)
	}

	if got := countChunks(t, repo); got != 2 {
		t.Errorf("row count = %d, want 2 (other workflow untouched)", got)
	}
}

func TestChunkRepo_Replace_RollsBack(t *testing.T) {
	db := newTestDB(t)
	wf := createTestWorkflow(t, NewWorkflowRepo(db))
	repo := NewChunkRepo(db)
	ctx := context.Background()

	if err := repo.Replace(ctx, wf.ID, []ChunkRecord{{ID: "old", WorkflowID: wf.ID, Text: "old"}}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	tests := []struct {
		name   string
		chunks []ChunkRecord
	}{
		{
			name: "duplicate id",
			chunks: []ChunkRecord{
				{ID: "dup", WorkflowID: wf.ID, ChunkIndex: 0, Text: "a"},
				{ID: "dup", WorkflowID: wf.ID, ChunkIndex: 1, Text: "b"},
			},
		},
		{
			name:   "chunk of another workflow",
			chunks: []ChunkRecord{{ID: "x", WorkflowID: "someone-else", Text: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Replace(ctx, wf.ID, tt.chunks); err == nil {
				t.Fatal("Replace() expected error, got nil")
			}
			ids, err := repo.ListIDsByWorkflow(ctx, wf.ID)
			if err != nil {
				t.Fatalf("ListIDsByWorkflow() error = %v", err)
			}
			if diff := cmp.Diff([]string{"old"}, ids); diff != "" {
				t.Errorf("failed Replace() should leave rows untouched (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunkRepo_Replace_UnknownWorkflow(t *testing.T) {
	repo := NewChunkRepo(newTestDB(t))
	err := repo.Replace(context.Background(), "missing", []ChunkRecord{{ID: "c", WorkflowID: "missing", Text: "orphan"}})
	if err == nil {
		t.Error("Replace() for a missing workflow should fail the foreign key")
	}
}

func TestChunkRepo_ListIDsByWorkflow_Empty(t *testing.T) {
	repo := NewChunkRepo(newTestDB(t))
	ids, err := repo.ListIDsByWorkflow(context.Background(), "none")
	if err != nil {
		t.Fatalf("ListIDsByWorkflow() error = %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("ListIDsByWorkflow() = %#v, want empty non-nil slice", ids)
	}
}
