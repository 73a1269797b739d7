// File path: cmd/wordgraph/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wordgraph/backend/internal/api"
	"github.com/wordgraph/backend/internal/common"
	"github.com/wordgraph/backend/internal/config"
	"github.com/wordgraph/backend/internal/llm"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("wordgraph: .env file not loaded", "error", err)
	} else {
		logger.Info("wordgraph: environment loaded from .env")
	}

	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	cfg := config.Load()
	logger.Info("wordgraph: startup initiated", "addr", *addr, "provider", cfg.Provider, "model", cfg.Model)

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		logger.Error("wordgraph: provider initialization failed", "error", err)
		fmt.Println("provider error:", err)
		os.Exit(1)
	}

	server := api.NewServer(cfg, provider)

	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("wordgraph: server listening", "addr", *addr, "health", fmt.Sprintf("http://%s/healthz", reachable))
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("wordgraph: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}
