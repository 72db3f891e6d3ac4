package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/CoolCat467/Sudoku-Solver/internal/adapters/http"
	"github.com/CoolCat467/Sudoku-Solver/internal/hint"
	"github.com/CoolCat467/Sudoku-Solver/internal/infrastructure/storage"
	"github.com/CoolCat467/Sudoku-Solver/internal/ports"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
	"github.com/CoolCat467/Sudoku-Solver/internal/usecase"
	"github.com/CoolCat467/Sudoku-Solver/internal/validator"
)

var (
	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solving service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func openStorage() (ports.Storage, error) {
	switch cfg.Storage.Backend {
	case "badger":
		bcfg := storage.DefaultBadgerConfig(cfg.Storage.Path)
		bcfg.Logger = logger
		return storage.NewBadger(bcfg)
	default:
		return storage.NewFS(cfg.Storage.Path), nil
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("addr") {
		cfg.Listen = serveAddr
	}
	st, err := openStorage()
	if err != nil {
		return err
	}
	defer st.Close()

	svc := usecase.NewService(
		solver.NewDeductive(engineOptions()...),
		validator.New(),
		hint.NewDeduction(),
		st,
	)
	h := httpadapter.New(svc, newEngine(), logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	h.Register(r)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", cfg.Listen, "storage", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}
