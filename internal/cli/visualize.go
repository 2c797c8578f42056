package cli

import (
	"fmt"
	"html"
	"os"

	"github.com/spf13/cobra"

	"chunkwise/internal/service"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
%s
</body>
</html>
`

func newVisualizeCommand(svc service.VisualizationService) *cobra.Command {
	var (
		flags  chunkerFlags
		theme  string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "visualize <file|glob>...",
		Short: "Render chunk visualizations of documents as HTML files",
		Long: `Chunks every matching file and writes <name>.html with the chunks
highlighted. Globs support ** for recursive matching.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}

			for _, file := range files {
				document, err := readDocument(file)
				if err != nil {
					return err
				}
				res, err := svc.Visualize(cmd.Context(), service.VisualizeRequest{
					Config:   flags.config(),
					Document: document,
					Theme:    theme,
				})
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}

				out := outputPath(file, outDir)
				page := fmt.Sprintf(htmlPage, html.EscapeString(file), res.HTML)
				if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%s -> %s (%d chunks", file, out, res.Stats.TotalChunks)
				if len(res.Dropped) > 0 {
					fmt.Fprintf(w, ", %d dropped", len(res.Dropped))
				}
				fmt.Fprintln(w, ")")
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&theme, "theme", "", "color theme (see 'chunkwise themes')")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: next to each input)")
	return cmd
}
