package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chunkwise/internal/contextutil"
	"chunkwise/internal/deploy"
	"chunkwise/internal/service"
)

// WorkflowHandler serves the saved workflow endpoints.
type WorkflowHandler struct {
	workflows service.WorkflowService
	// deployer is nil when no vector store is configured.
	deployer deploy.Deployer
}

// NewWorkflowHandler creates a new WorkflowHandler. deployer may be nil.
func NewWorkflowHandler(workflows service.WorkflowService, deployer deploy.Deployer) *WorkflowHandler {
	return &WorkflowHandler{workflows: workflows, deployer: deployer}
}

// CreateWorkflowRequest is the body of POST /api/workflows.
type CreateWorkflowRequest struct {
	Title string `json:"title"`
}

// VisualizeWorkflowRequest is the optional body of POST /api/workflows/{id}/visualize.
type VisualizeWorkflowRequest struct {
	Theme string `json:"theme,omitempty"`
}

// DeployResponse acknowledges a deployment that runs in the background.
type DeployResponse struct {
	WorkflowID string `json:"workflow_id"`
	Status     string `json:"status"`
}

// List handles GET /api/workflows.
func (h *WorkflowHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	workflows, err := h.workflows.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list workflows")
		return
	}
	writeJSON(w, ctx, http.StatusOK, workflows)
}

// Create handles POST /api/workflows.
func (h *WorkflowHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateWorkflowRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	wf, err := h.workflows.Create(ctx, req.Title)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create workflow")
		return
	}
	writeJSON(w, ctx, http.StatusCreated, wf)
}

// Get handles GET /api/workflows/{id}.
func (h *WorkflowHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wf, err := h.workflows.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load workflow")
		return
	}
	writeJSON(w, ctx, http.StatusOK, wf)
}

// Update handles PATCH /api/workflows/{id}.
func (h *WorkflowHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch service.WorkflowPatch
	if !decodeJSON(w, r, &patch, false) {
		return
	}

	wf, err := h.workflows.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update workflow")
		return
	}
	writeJSON(w, ctx, http.StatusOK, wf)
}

// Delete handles DELETE /api/workflows/{id}.
func (h *WorkflowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.workflows.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete workflow")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Visualize handles POST /api/workflows/{id}/visualize.
func (h *WorkflowHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VisualizeWorkflowRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	wf, err := h.workflows.Visualize(ctx, chi.URLParam(r, "id"), req.Theme)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to visualize workflow")
		return
	}
	writeJSON(w, ctx, http.StatusOK, wf)
}

// Deploy handles POST /api/workflows/{id}/deploy. The workflow is checked
// before the deployment starts; the deployment itself runs in the background.
func (h *WorkflowHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	if h.deployer == nil {
		handleServiceError(w, ctx, service.ErrUnavailable, "Deployment is not configured")
		return
	}

	wf, err := h.workflows.Get(ctx, id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load workflow")
		return
	}
	if wf.Document == "" || wf.ChunkingStrategy == nil {
		handleServiceError(w, ctx, &service.ValidationError{
			Field:   "workflow",
			Message: "document and chunking strategy are required to deploy",
		}, "Workflow is not ready to deploy")
		return
	}

	logger.InfoContext(ctx, "deployment triggered via API", "workflow_id", id)
	h.deployer.Start(ctx, id)

	writeJSON(w, ctx, http.StatusAccepted, DeployResponse{WorkflowID: id, Status: "accepted"})
}
