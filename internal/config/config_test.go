package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

var envVars = []string{
	"API_PORT", "LOG_LEVEL", "LOG_FORMAT", "DB_PATH", "DEFAULT_THEME",
	"REQUEST_TIMEOUT", "CORS_ALLOWED_ORIGINS", "MAX_BODY_BYTES",
	"QDRANT_URL", "QDRANT_COLLECTION", "QDRANT_VECTOR_SIZE",
	"EMBEDDING_BASE_URL", "EMBEDDING_MODEL_NAME", "EMBEDDING_API_KEY",
}

// isolate clears every config variable and runs the test from an empty
// directory so no .env file is picked up.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name: "defaults",
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "8000" &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text" &&
					cfg.DBPath == "./data/chunkwise.db" &&
					cfg.DefaultTheme == "pastel" &&
					cfg.RequestTimeout == 60*time.Second &&
					slices.Equal(cfg.CORSAllowedOrigins, []string{"*"}) &&
					cfg.MaxBodyBytes == 10<<20 &&
					!cfg.DeployEnabled() &&
					cfg.QdrantCollection == "chunks"
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"API_PORT":             "9100",
				"LOG_LEVEL":            "DEBUG",
				"LOG_FORMAT":           "JSON",
				"DEFAULT_THEME":        "midnight",
				"REQUEST_TIMEOUT":      "5s",
				"CORS_ALLOWED_ORIGINS": "http://a.test, ,http://b.test",
				"MAX_BODY_BYTES":       "1024",
			},
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "9100" &&
					cfg.LogLevel == slog.LevelDebug &&
					cfg.LogFormat == "json" &&
					cfg.DefaultTheme == "midnight" &&
					cfg.RequestTimeout == 5*time.Second &&
					slices.Equal(cfg.CORSAllowedOrigins, []string{"http://a.test", "http://b.test"}) &&
					cfg.MaxBodyBytes == 1024
			},
		},
		{
			name: "deploy enabled",
			env: map[string]string{
				"QDRANT_URL":         "http://localhost:6333",
				"QDRANT_VECTOR_SIZE": "768",
			},
			checkConfig: func(cfg *Config) bool {
				return cfg.DeployEnabled() && cfg.QdrantVectorSize == 768
			},
		},
		{
			name:    "qdrant without vector size",
			env:     map[string]string{"QDRANT_URL": "http://localhost:6333"},
			wantErr: true,
		},
		{
			name:    "invalid vector size",
			env:     map[string]string{"QDRANT_URL": "http://localhost:6333", "QDRANT_VECTOR_SIZE": "invalid"},
			wantErr: true,
		},
		{
			name:    "zero vector size",
			env:     map[string]string{"QDRANT_URL": "http://localhost:6333", "QDRANT_VECTOR_SIZE": "0"},
			wantErr: true,
		},
		{
			name:    "unknown theme",
			env:     map[string]string{"DEFAULT_THEME": "neon"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "unknown log format",
			env:     map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"REQUEST_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "negative body limit",
			env:     map[string]string{"MAX_BODY_BYTES": "-1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config validation failed: %+v", cfg)
			}
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	isolate(t)
	wd, _ := os.Getwd()
	if err := os.WriteFile(filepath.Join(wd, ".env"), []byte("API_PORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// An empty value counts as set for godotenv, so unset it entirely.
	_ = os.Unsetenv("API_PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "7000" {
		t.Errorf("Load() APIPort = %q, want 7000 from .env", cfg.APIPort)
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	isolate(t)
	dbPath := filepath.Join(t.TempDir(), "test", "db.db")
	t.Setenv("DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Errorf("Load() should create data directory: %v", err)
	}
	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		want         string
	}{
		{name: "env var set", value: "set-value", defaultValue: "default", want: "set-value"},
		{name: "empty env var uses default", value: "", defaultValue: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_VAR", tt.value)
			if got := getEnv("TEST_ENV_VAR", tt.defaultValue); got != tt.want {
				t.Errorf("getEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a ,b,, c ")
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
}
