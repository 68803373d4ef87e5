package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vpawar/folio/internal/assets"
	"github.com/vpawar/folio/internal/config"
	"github.com/vpawar/folio/internal/content"
	"github.com/vpawar/folio/internal/middleware"
	"github.com/vpawar/folio/internal/views"
)

const htmlContentType = "text/html; charset=utf-8"

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Graphic design portfolio site",
	Long: `folio renders a single-page graphic design portfolio.

Run "folio serve" to start the web server or "folio export" to write a
static copy of the page for any file host.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = cfg.Logger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	gin.SetMode(cfg.GinMode)

	store, err := content.NewStore(cfg.ContentFile, logger)
	if err != nil {
		return err
	}
	store.Watch()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           setupRouter(store, logger, cfg.Compress),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("content_file", cfg.ContentFile))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// sectionSource supplies the section overrides to render
type sectionSource interface {
	Sections() views.Sections
}

func setupRouter(src sectionSource, logger *zap.Logger, compress bool) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	r.StaticFS("/static", http.FS(assets.Static()))

	// Home page route
	r.GET("/", func(c *gin.Context) {
		var buf bytes.Buffer
		if err := views.RenderPage(&buf, "/static", src.Sections()); err != nil {
			logger.Error("rendering home", zap.Error(err))
			c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
			return
		}
		middleware.Write(c, http.StatusOK, htmlContentType, buf.Bytes(), compress)
	})

	// Section fragments
	r.GET("/sections/:name", func(c *gin.Context) {
		name := c.Param("name")
		node, ok := views.Section(name, src.Sections())
		if !ok {
			c.String(http.StatusNotFound, "unknown section %q", name)
			return
		}

		var buf bytes.Buffer
		if err := node.Render(&buf); err != nil {
			logger.Error("rendering section", zap.String("section", name), zap.Error(err))
			c.String(http.StatusInternalServerError, "Sorry, the section could not be rendered.")
			return
		}
		middleware.Write(c, http.StatusOK, htmlContentType, buf.Bytes(), compress)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func main() {
	rootCmd.AddCommand(serveCmd, exportCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
