package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chunkwise/internal/chunking"
	"chunkwise/internal/service"
)

// FileStats is the stats output for one file.
type FileStats struct {
	File    string                   `json:"file"`
	Stats   chunking.Statistics      `json:"stats"`
	Tokens  chunking.TokenStatistics `json:"token_stats"`
	Dropped int                      `json:"dropped"`
}

func newStatsCommand(svc service.VisualizationService) *cobra.Command {
	var flags chunkerFlags

	cmd := &cobra.Command{
		Use:   "stats <file|glob>...",
		Short: "Print chunk statistics for documents as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}

			results := make([]FileStats, 0, len(files))
			for _, file := range files {
				document, err := readDocument(file)
				if err != nil {
					return err
				}
				chunks, err := svc.Chunk(cmd.Context(), flags.config(), document)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				stats, err := svc.Stats(cmd.Context(), chunks.Chunks)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				results = append(results, FileStats{
					File:    file,
					Stats:   stats.Statistics,
					Tokens:  stats.Tokens,
					Dropped: len(chunks.Dropped),
				})
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	flags.register(cmd)
	return cmd
}
