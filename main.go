package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
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
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

var (
	verbose   bool
	starCount int
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Print the hero star field as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(starfield.Generate(starCount))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	starsCmd.Flags().IntVarP(&starCount, "count", "n", starfield.DefaultCount, "number of stars")
	rootCmd.AddCommand(serveCmd, starsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)
	if cfg.Admin.UsingDefaults() {
		logger.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	if !cfg.SMTP.Configured() {
		logger.Warn("SMTP not configured; contact messages are stored but not emailed")
	}

	site, err := content.Load()
	if err != nil {
		return err
	}

	salt := cfg.VisitorSalt
	if salt == "" {
		// Without a configured salt, visitor hashes do not correlate across restarts.
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate visitor salt: %w", err)
		}
		salt = hex.EncodeToString(b)
	}
	st, err := store.Open(cfg.DatabasePath, salt)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if n, err := st.PurgeVisitors(ctx, time.Now().Add(-cfg.VisitorRetention)); err != nil {
		logger.Error("cleaning up old visitor data", zap.Error(err))
	} else if n > 0 {
		logger.Info("privacy cleanup", zap.Int64("removed", n))
	}

	sessions := session.NewRegistry(cfg.OrbitSessionTTL, cfg.OrbitMaxSessions, nil, logger.Named("session"))
	srv, err := web.New(web.Options{
		Config:   cfg,
		Site:     site,
		Sessions: sessions,
		Store:    st,
		Mailer:   mail.NewSMTP(cfg.SMTP, nil, logger.Named("mail")),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	router, err := srv.Router()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sessions.Run(ctx) })
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
