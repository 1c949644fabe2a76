package main

import (
	"context"
	"errors"
	"net/http"

	"animal-shelter-dashboard/internal/domain/outcomes"
	"animal-shelter-dashboard/internal/platform/logger"
	"animal-shelter-dashboard/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), seedFile)
		},
	}

	cmd.Flags().StringVar(&seedFile, "seed-file", "", "CSV export imported into the store before serving (useful with STORE=memory)")
	return cmd
}

func runServe(ctx context.Context, seedFile string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Flush(log)

	repo, closeRepo, err := openRepo(ctx, cfg, log)
	if err != nil {
		log.Error("store setup failed", map[string]any{"error": err.Error()})
		return err
	}
	defer closeRepo()

	if seedFile != "" {
		recs, err := loadRecords(ctx, seedFile, "", "")
		if err != nil {
			log.Error("seed failed", map[string]any{"error": err.Error(), "file": seedFile})
			return err
		}
		importRecords(ctx, outcomes.NewStore(repo, log), recs, log)
	}

	handler := router.NewRouter(router.Options{
		Repo:        repo,
		Logger:      log,
		SessionTTL:  cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
