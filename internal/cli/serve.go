package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visnughosh/portfolio/internal/infrastructure/config"
	"github.com/visnughosh/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Start the portfolio web server.

Images are served from PORTFOLIO_PUBLIC_DIR (default ./public).

Examples:
  portfolio serve              # Start on PORTFOLIO_ADDR (default :8080)
  portfolio serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var (
	servePort      int
	servePublicDir string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORTFOLIO_ADDR)")
	serveCmd.Flags().StringVar(&servePublicDir, "public", "", "Directory with images (overrides PORTFOLIO_PUBLIC_DIR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyServeFlags(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := NewAppContext(ctx, cfg, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := app.Close(closeCtx); err != nil {
			logger.Warn("close app", zap.Error(err))
		}
	}()

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Portfolio")+" "+mutedStyle.Render("http://localhost"+listenPort(cfg.Addr)))

	server := web.NewServer(web.Options{
		Addr:            cfg.Addr,
		PublicDir:       cfg.PublicDir,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, app.Logger, app.Recorder)
	return server.Start(ctx)
}

func applyServeFlags(cfg *config.Server) {
	if servePort > 0 {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}
	if servePublicDir != "" {
		cfg.PublicDir = servePublicDir
	}
}
