package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"chunkwise/internal/handlers"
	"chunkwise/internal/service"
	"chunkwise/internal/service/mocks"
)

func newTestRouter(t *testing.T, deps *Deps) (http.Handler, *mocks.MockVisualizationService, *mocks.MockWorkflowService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vis := mocks.NewMockVisualizationService(ctrl)
	wf := mocks.NewMockWorkflowService(ctrl)
	if deps == nil {
		deps = &Deps{}
	}
	deps.VisualizationService = vis
	deps.WorkflowService = wf
	if deps.CORSAllowedOrigins == nil {
		deps.CORSAllowedOrigins = []string{"*"}
	}
	return NewRouter(deps), vis, wf
}

func TestRouter_Routes(t *testing.T) {
	router, _, wf := newTestRouter(t, nil)
	wf.EXPECT().List(gomock.Any()).Return([]*service.Workflow{}, nil)
	wf.EXPECT().Get(gomock.Any(), "abc").Return(nil, service.ErrNotFound)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "health without checks",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "themes",
			method:     http.MethodGet,
			path:       "/api/themes",
			wantStatus: http.StatusOK,
		},
		{
			name:       "configs",
			method:     http.MethodGet,
			path:       "/api/configs",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/visualize exists",
			method:     http.MethodPost,
			path:       "/api/visualize",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /api/visualize method not allowed",
			method:     http.MethodGet,
			path:       "/api/visualize",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "list workflows",
			method:     http.MethodGet,
			path:       "/api/workflows",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown workflow",
			method:     http.MethodGet,
			path:       "/api/workflows/abc",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "deploy without vector store",
			method:     http.MethodPost,
			path:       "/api/workflows/abc/deploy",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_HealthReportsFailingCheck(t *testing.T) {
	router, _, _ := newTestRouter(t, &Deps{
		HealthChecks: map[string]handlers.HealthCheck{
			"database":     func(context.Context) error { return nil },
			"vector_store": func(context.Context) error { return errors.New("connection refused") },
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/health status = %v, want %v", w.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(w.Body.String(), "vector_store_unavailable") {
		t.Errorf("GET /api/health body = %s, want vector_store issue", w.Body.String())
	}
}

func TestRouter_CORS(t *testing.T) {
	router, _, _ := newTestRouter(t, &Deps{CORSAllowedOrigins: []string{"http://localhost:5173"}})

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: "http://localhost:5173", wantOrigin: "http://localhost:5173"},
		{name: "other origin", origin: "http://evil.test", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestRouter_BodyLimit(t *testing.T) {
	router, _, _ := newTestRouter(t, &Deps{MaxBodyBytes: 16})

	body := `{"document": "` + strings.Repeat("a", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/visualize", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversized body status = %v, want %v", w.Code, http.StatusRequestEntityTooLarge)
	}
}
