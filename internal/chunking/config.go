package chunking

import (
	"fmt"
	"slices"
)

const (
	ProviderLangChain = "langchain"
	ProviderChonkie   = "chonkie"
	ProviderChunkwise = "chunkwise"

	TypeRecursive = "recursive"
	TypeCharacter = "character"
	TypeToken     = "token"
	TypeSentence  = "sentence"
	TypeMarkdown  = "markdown"

	TokenizerCharacter = "character"
	TokenizerWord      = "word"

	DefaultChunkSize = 512
	MaxChunkSize     = 8192
)

// DefaultSeparators are tried in order by the recursive splitter.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Config selects and parameterises a built-in chunker. Fields that do not
// apply to the selected chunker are ignored.
type Config struct {
	Provider     string `json:"provider" yaml:"provider"`
	ChunkerType  string `json:"chunker_type" yaml:"chunker_type"`
	ChunkSize    int    `json:"chunk_size" yaml:"chunk_size"`
	ChunkOverlap int    `json:"chunk_overlap" yaml:"chunk_overlap"`
	Tokenizer    string `json:"tokenizer,omitempty" yaml:"tokenizer,omitempty"`

	// Separators for the recursive splitter.
	Separators []string `json:"separators,omitempty" yaml:"separators,omitempty"`
	// Separator for the character splitter.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`

	MinSentencesPerChunk     int `json:"min_sentences_per_chunk,omitempty" yaml:"min_sentences_per_chunk,omitempty"`
	MinCharactersPerSentence int `json:"min_characters_per_sentence,omitempty" yaml:"min_characters_per_sentence,omitempty"`
	MinCharactersPerChunk    int `json:"min_characters_per_chunk,omitempty" yaml:"min_characters_per_chunk,omitempty"`
}

// Name is a short label such as "langchain/recursive".
func (c Config) Name() string {
	return c.Provider + "/" + c.ChunkerType
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Tokenizer == "" {
		c.Tokenizer = TokenizerCharacter
	}
	if len(c.Separators) == 0 {
		c.Separators = slices.Clone(DefaultSeparators)
	}
	if c.Separator == "" {
		c.Separator = "\n\n"
	}
	if c.MinSentencesPerChunk == 0 {
		c.MinSentencesPerChunk = 1
	}
	if c.MinCharactersPerSentence == 0 {
		c.MinCharactersPerSentence = 12
	}
	if c.MinCharactersPerChunk == 0 {
		c.MinCharactersPerChunk = 24
	}
	return c
}

var supported = map[string][]string{
	ProviderLangChain: {TypeRecursive, TypeCharacter, TypeToken},
	ProviderChonkie:   {TypeToken, TypeSentence, TypeRecursive},
	ProviderChunkwise: {TypeMarkdown},
}

// Validate checks the provider/type combination and size parameters.
func (c Config) Validate() error {
	types, ok := supported[c.Provider]
	if !ok {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, c.Provider)
	}
	if !slices.Contains(types, c.ChunkerType) {
		return fmt.Errorf("%w: provider %q has no %q chunker", ErrInvalidConfig, c.Provider, c.ChunkerType)
	}
	if c.ChunkSize < 1 || c.ChunkSize > MaxChunkSize {
		return fmt.Errorf("%w: chunk_size must be between 1 and %d", ErrInvalidConfig, MaxChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap must be at least 0 and less than chunk_size", ErrInvalidConfig)
	}
	switch c.Tokenizer {
	case "", TokenizerCharacter, TokenizerWord:
	default:
		return fmt.Errorf("%w: unknown tokenizer %q", ErrInvalidConfig, c.Tokenizer)
	}
	return nil
}

// NewHandle builds the chunker described by c.
func NewHandle(c Config) (Handle, error) {
	if err := c.Validate(); err != nil {
		return Handle{}, err
	}
	c = c.WithDefaults()

	switch c.Name() {
	case "langchain/recursive":
		return Textual(NewRecursiveSplitter(c.ChunkSize, c.ChunkOverlap, c.Separators)), nil
	case "langchain/character":
		return Textual(NewCharacterSplitter(c.ChunkSize, c.ChunkOverlap, c.Separator)), nil
	case "langchain/token":
		return Textual(TextOnly(NewTokenChunker(c.ChunkSize, c.ChunkOverlap, c.Tokenizer))), nil
	case "chonkie/token":
		return Structured(NewTokenChunker(c.ChunkSize, c.ChunkOverlap, c.Tokenizer)), nil
	case "chonkie/recursive":
		return Structured(NewRecursiveChunker(c.ChunkSize, c.MinCharactersPerChunk, c.Tokenizer)), nil
	case "chonkie/sentence":
		return Structured(NewSentenceChunker(c.ChunkSize, c.MinSentencesPerChunk, c.MinCharactersPerSentence)), nil
	case "chunkwise/markdown":
		return Textual(NewMarkdownSplitter(c.ChunkSize, c.MinCharactersPerChunk)), nil
	}
	return Handle{}, fmt.Errorf("%w: %s", ErrInvalidConfig, c.Name())
}
