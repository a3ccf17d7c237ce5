package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/stillpage/stillpage/internal/adapters/http"
	memstore "github.com/stillpage/stillpage/internal/adapters/storage/memory"
	sqlitestore "github.com/stillpage/stillpage/internal/adapters/storage/sqlite"
	"github.com/stillpage/stillpage/internal/app/journal"
	"github.com/stillpage/stillpage/internal/config"
	"github.com/stillpage/stillpage/internal/domain"
	"github.com/stillpage/stillpage/internal/observability"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := observability.Logger()

	// Storage: in-memory by default, sqlite for durability.
	var store domain.EntryStore
	switch cfg.StorageBackend {
	case "sqlite":
		st, err := sqlitestore.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			log.Fatalf("error initializing sqlite store: %v", err)
		}
		defer st.Close()
		store = st
	default:
		logger.Info("using in-memory entry store")
		store = memstore.NewEntryStore()
	}

	svc, err := journal.NewService(store, journal.Config{
		NeutralBand:       cfg.NeutralBand,
		PositiveThreshold: cfg.PositiveThreshold,
		RecencyWindow:     cfg.EngagementWindow,
		SummaryWindow:     cfg.SummaryWindow,
	})
	if err != nil {
		log.Fatalf("error initializing journal service: %v", err)
	}

	handler := httpadapter.NewServer(svc)

	addr := ":" + cfg.Port
	logger.Info("stillpage api listening",
		"addr", addr,
		"backend", cfg.StorageBackend,
	)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
