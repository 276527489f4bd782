package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visnughosh/portfolio/internal/infrastructure/config"
	"github.com/visnughosh/portfolio/internal/web"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site into a directory for static hosting",
	Long: `Render the site into a directory for static hosting.

Writes index.html, index.json, the stylesheet and a manifest.json. Images are
not copied; publish the public directory next to the export.

Examples:
  portfolio export             # Write to PORTFOLIO_EXPORT_DIR (default ./dist)
  portfolio export --out site  # Write to ./site`,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (overrides PORTFOLIO_EXPORT_DIR)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadExport()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if exportOut != "" {
		cfg.OutDir = exportOut
	}

	manifest, err := web.Export(cmd.Context(), cfg.OutDir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	logger.Info("export complete",
		zap.String("dir", cfg.OutDir),
		zap.String("build_id", manifest.BuildID),
		zap.Int("files", len(manifest.Files)),
	)

	fmt.Fprint(cmd.OutOrStdout(), renderExportReport(cfg.OutDir, manifest))
	return nil
}
