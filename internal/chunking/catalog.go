package chunking

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Range is the default and bounds of one adjustable chunker parameter.
type Range struct {
	Default int `json:"default" yaml:"default"`
	Min     int `json:"min" yaml:"min"`
	Max     int `json:"max" yaml:"max"`
}

// CatalogEntry describes a built-in chunker and the parameters a client may
// adjust.
type CatalogEntry struct {
	Name        string           `json:"name" yaml:"name"`
	Provider    string           `json:"provider" yaml:"provider"`
	ChunkerType string           `json:"chunker_type" yaml:"chunker_type"`
	Parameters  map[string]Range `json:"parameters" yaml:"parameters"`
}

var loadCatalog = sync.OnceValues(func() ([]CatalogEntry, error) {
	return parseCatalog(catalogYAML)
})

// Catalog returns the adjustable parameters of every built-in chunker.
func Catalog() ([]CatalogEntry, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	out := make([]CatalogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func parseCatalog(data []byte) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse chunker catalog: %w", err)
	}
	for _, e := range entries {
		if _, ok := supported[e.Provider]; !ok {
			return nil, fmt.Errorf("%w: catalog entry %q has unknown provider %q", ErrInvalidConfig, e.Name, e.Provider)
		}
		for param, r := range e.Parameters {
			if r.Min > r.Max || r.Default < r.Min || r.Default > r.Max {
				return nil, fmt.Errorf("%w: catalog entry %q has bad range for %s", ErrInvalidConfig, e.Name, param)
			}
		}
	}
	return entries, nil
}

// Defaults returns the configuration the entry's parameter defaults describe.
func (e CatalogEntry) Defaults() Config {
	cfg := Config{Provider: e.Provider, ChunkerType: e.ChunkerType}
	for param, r := range e.Parameters {
		switch param {
		case "chunk_size":
			cfg.ChunkSize = r.Default
		case "chunk_overlap":
			cfg.ChunkOverlap = r.Default
		case "min_sentences_per_chunk":
			cfg.MinSentencesPerChunk = r.Default
		case "min_characters_per_sentence":
			cfg.MinCharactersPerSentence = r.Default
		case "min_characters_per_chunk":
			cfg.MinCharactersPerChunk = r.Default
		}
	}
	return cfg
}
