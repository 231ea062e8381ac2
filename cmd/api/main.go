package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sapirguy-gs/Stocks-Status/internal/cache"
	"github.com/sapirguy-gs/Stocks-Status/internal/config"
	"github.com/sapirguy-gs/Stocks-Status/internal/handler"
	"github.com/sapirguy-gs/Stocks-Status/internal/service"
	"github.com/sapirguy-gs/Stocks-Status/pkg/market"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	var client market.Client
	if cfg.FinnhubAPIKey != "" {
		client = market.NewFinnhubClient(cfg.FinnhubAPIKey)
	}

	store := cache.NewStore()
	svc := service.New(store, client)
	newsHandler := handler.NewNewsHandler(svc)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news", newsHandler.GetGeneralNews)
	r.GET("/api/news/:symbol", newsHandler.GetSymbolNews)
	r.GET("/health", newsHandler.GetHealth)

	// Host the static web client when the directory exists; unmatched GETs
	// outside /api fall back to index.html.
	if info, err := os.Stat(cfg.WebRoot); err == nil && info.IsDir() {
		indexFile := filepath.Join(cfg.WebRoot, "index.html")
		r.StaticFile("/", indexFile)
		r.Static("/static", filepath.Join(cfg.WebRoot, "static"))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.Status(http.StatusNotFound)
				return
			}
			c.File(indexFile)
		})
	}

	addr := ":" + cfg.Port
	slog.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
