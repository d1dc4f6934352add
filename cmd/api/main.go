package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"thrust-planner/internal/api"
	"thrust-planner/internal/api/middleware"
	"thrust-planner/internal/data"
	"thrust-planner/internal/metrics"
	"thrust-planner/internal/planner"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	catalogPath := os.Getenv("CATALOG_FILE")
	catalog, err := data.LoadCatalogOrDefault(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if catalogPath == "" {
		catalogPath = "embedded default"
	}
	log.Printf("Catalog loaded from %s: %d thrusters, %d batteries, %d containers",
		catalogPath, len(catalog.Thrusters), len(catalog.Batteries), len(catalog.Containers))

	ttl := time.Hour
	if v := os.Getenv("RESULT_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		} else {
			log.Printf("Ignoring RESULT_CACHE_TTL=%q: %v", v, err)
		}
	}
	cache := data.NewResultCache(ttl)
	go cache.RunCleanup(context.Background(), 5*time.Minute)

	rps := envFloat("RATE_LIMIT_RPS", 5)
	burst := int(envFloat("RATE_LIMIT_BURST", 20))
	log.Printf("Rate limit: %.1f req/s per client, burst %d", rps, burst)
	limiter := middleware.NewIPRateLimiter(rate.Limit(rps), burst)
	go limiter.RunCleanup(context.Background(), time.Minute, 10*time.Minute)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.Deps{
		Engine:    planner.New(),
		Catalog:   catalog,
		Cache:     cache,
		Metrics:   metrics.NewCollector(),
		Limiter:   limiter,
		AccessLog: middleware.NewAccessLogger(),
	})

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("Ignoring %s=%q", key, v)
		return def
	}
	return f
}
