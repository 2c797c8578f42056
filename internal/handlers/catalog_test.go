package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chunkwise/internal/chunking"
)

func TestCatalogHandler_Themes(t *testing.T) {
	handler := NewCatalogHandler("midnight")
	w := httptest.NewRecorder()
	handler.Themes(w, httptest.NewRequest(http.MethodGet, "/api/themes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Themes() status = %v, want 200", w.Code)
	}
	var resp ThemesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Default != "midnight" {
		t.Errorf("Themes() default = %q, want midnight", resp.Default)
	}
	if len(resp.Themes) != 6 {
		t.Errorf("Themes() returned %d themes, want 6", len(resp.Themes))
	}
}

func TestCatalogHandler_Configs(t *testing.T) {
	handler := NewCatalogHandler("pastel")
	w := httptest.NewRecorder()
	handler.Configs(w, httptest.NewRequest(http.MethodGet, "/api/configs", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Configs() status = %v, want 200", w.Code)
	}
	var entries []chunking.CatalogEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 || entries[0].Parameters["chunk_size"].Max != chunking.MaxChunkSize {
		t.Errorf("Configs() = %+v", entries)
	}
}
