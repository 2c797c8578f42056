package storage

import (
	"context"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestWorkflowRepo_Create(t *testing.T) {
	repo := NewWorkflowRepo(newTestDB(t))
	ctx := context.Background()

	wf, err := repo.Create(ctx, "My workflow")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if wf.ID == "" {
		t.Error("Create() should assign an ID")
	}
	if wf.Title != "My workflow" {
		t.Errorf("Title = %q, want %q", wf.Title, "My workflow")
	}
	if wf.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if wf.Document != "" || wf.ChunkingStrategy != "" {
		t.Errorf("new workflow should have empty optional columns, got %+v", wf)
	}
}

func TestWorkflowRepo_GetByID_NotFound(t *testing.T) {
	repo := NewWorkflowRepo(newTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestWorkflowRepo_Update(t *testing.T) {
	repo := NewWorkflowRepo(newTestDB(t))
	ctx := context.Background()

	wf, err := repo.Create(ctx, "draft")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name   string
		update WorkflowUpdate
		check  func(*WorkflowRecord) bool
	}{
		{
			name: "sets columns",
			update: WorkflowUpdate{
				DocumentTitle:    strPtr("notes.md"),
				Document:         strPtr("# Notes"),
				ChunkingStrategy: strPtr(`{"provider":"langchain"}`),
			},
			check: func(r *WorkflowRecord) bool {
				return r.DocumentTitle == "notes.md" && r.Document == "# Notes" && r.ChunkingStrategy == `{"provider":"langchain"}`
			},
		},
		{
			name:   "nil fields are left alone",
			update: WorkflowUpdate{Title: strPtr("final")},
			check: func(r *WorkflowRecord) bool {
				return r.Title == "final" && r.Document == "# Notes"
			},
		},
		{
			name:   "empty string clears",
			update: WorkflowUpdate{Document: strPtr("")},
			check: func(r *WorkflowRecord) bool {
				return r.Document == "" && r.DocumentTitle == "notes.md"
			},
		},
		{
			name:   "no fields",
			update: WorkflowUpdate{},
			check: func(r *WorkflowRecord) bool {
				return r.Title == "final"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Update(ctx, wf.ID, tt.update)
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if !tt.check(got) {
				t.Errorf("Update() result %+v failed check", got)
			}
		})
	}

	if _, err := repo.Update(ctx, "missing", WorkflowUpdate{Title: strPtr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() on missing workflow error = %v, want ErrNotFound", err)
	}
}

func TestWorkflowRepo_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkflowRepo(db)
	chunks := NewChunkRepo(db)
	ctx := context.Background()

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("List() = %d workflows, want 0", len(list))
	}

	first, _ := repo.Create(ctx, "first")
	second, _ := repo.Create(ctx, "second")

	list, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("List() should return workflows in creation order, got %+v", list)
	}

	if err := chunks.Replace(ctx, first.ID, []ChunkRecord{{ID: "c1", WorkflowID: first.ID, Text: "x", EndIndex: 1}}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if ids, err := chunks.ListIDsByWorkflow(ctx, first.ID); err != nil || len(ids) != 0 {
		t.Errorf("deleting a workflow should cascade to its chunks, got %v, %v", ids, err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
