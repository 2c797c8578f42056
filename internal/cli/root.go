// Package cli implements the chunkwise command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"chunkwise/internal/chunking"
	"chunkwise/internal/service"
	"chunkwise/internal/visualize"
)

// Version is set via ldflags at build time.
var Version = "dev"

// chunkerFlags are shared by the commands that chunk files.
type chunkerFlags struct {
	provider    string
	chunkerType string
	size        int
	overlap     int
	tokenizer   string
}

func (f *chunkerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.provider, "provider", chunking.ProviderLangChain, "chunker provider")
	cmd.Flags().StringVar(&f.chunkerType, "type", chunking.TypeRecursive, "chunker type")
	cmd.Flags().IntVar(&f.size, "size", chunking.DefaultChunkSize, "chunk size")
	cmd.Flags().IntVar(&f.overlap, "overlap", 0, "chunk overlap")
	cmd.Flags().StringVar(&f.tokenizer, "tokenizer", "", "tokenizer for token chunkers (character or word)")
}

func (f *chunkerFlags) config() chunking.Config {
	return chunking.Config{
		Provider:     f.provider,
		ChunkerType:  f.chunkerType,
		ChunkSize:    f.size,
		ChunkOverlap: f.overlap,
		Tokenizer:    f.tokenizer,
	}
}

// NewRootCommand builds the command tree around a visualization service.
func NewRootCommand(svc service.VisualizationService) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "chunkwise",
		Short: "Chunk documents and visualize how the chunks cover them",
		Long: `chunkwise runs a text chunker over documents and renders the result as
HTML, with overlapping regions shaded darker. It can also print size
statistics for the chunks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newVisualizeCommand(svc),
		newStatsCommand(svc),
		newThemesCommand(),
		newConfigsCommand(),
		newVersionCommand(),
	)
	return root
}

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printThemes(cmd.OutOrStdout())
		},
	}
}

func printThemes(w io.Writer) error {
	for _, t := range visualize.Catalog() {
		marker := ""
		if t.Name == visualize.DefaultTheme {
			marker = " (default)"
		}
		if _, err := io.WriteString(w, t.Name+"\t"+t.Family+marker+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func newConfigsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configs",
		Short: "Print the built-in chunkers and their parameter ranges as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := chunking.Catalog()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), catalog)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of chunkwise",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chunkwise %s\n", Version)
		},
	}
}
