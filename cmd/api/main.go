package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SkorpionOP/UI-UX-Analyzer/internal/platform/config"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/platform/logger"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/platform/middleware"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/redesign"
	"github.com/SkorpionOP/UI-UX-Analyzer/internal/webanalysis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("ui-ux-analyzer starting", "port", cfg.Port)

	fetcher := webanalysis.NewHTTPClient()
	inliner := webanalysis.NewInliner(webanalysis.NewStyleClient(cfg.StylesheetTimeout), log)
	engine := webanalysis.NewEngine(fetcher, inliner, cfg.InlineCSSBudget, log)

	generator := redesign.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	service := redesign.NewService(engine, generator, log)
	transport := redesign.NewTransport(service, log)

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.RequestID(middleware.CORS(middleware.Logging(log)(mux)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
