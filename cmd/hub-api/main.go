package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/classify"
	"github.com/sameercsai/ai-learning-hub/config"
	"github.com/sameercsai/ai-learning-hub/runinfo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.APIAddr, "Listen address (AI_HUB_API_ADDR)")
	driver := flag.String("driver", cfg.DBDriver, "Article store driver: sqlite3 or postgres (AI_HUB_DB_DRIVER)")
	dsn := flag.String("db", cfg.DBDSN, "Article store DSN (AI_HUB_DB_DSN)")
	publicDir := flag.String("public", cfg.PublicDir, "Generated website directory (AI_HUB_PUBLIC_DIR)")
	flag.Parse()

	store, err := articles.NewStore(*driver, *dsn)
	if err != nil {
		log.Fatalf("Failed to open article store: %v", err)
	}
	defer store.Close()

	router := articles.NewAPIServer(store).SetupRouter()

	api := router.Group("/api/v1")
	classify.RegisterRoutes(api, store, classify.DefaultTaxonomy())
	runinfo.RegisterRoutes(api, runinfo.DefaultExtractionSummaryPath, runinfo.DefaultContentMetadataPath)
	config.RegisterRoutes(api, cfg)

	// Everything outside /api/v1 is the generated site
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(*publicDir))))

	server := &http.Server{Addr: *addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting AI hub API server on http://%s/api/v1/articles", *addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Shutdown failed: %v", err)
	}
}
