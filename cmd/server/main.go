package main

import (
	"AI_PROCTOR/go-backend/internal/config"
	"AI_PROCTOR/go-backend/internal/database"
	"AI_PROCTOR/go-backend/internal/handlers"
	"AI_PROCTOR/go-backend/internal/services"
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

var (
	httpServer *http.Server

	wsHandler       *handlers.WSHandler
	extractorClient *services.ExtractorClient
	archiveEnabled  bool
	startTime       = time.Now()
)

func main() {
	httpPort := flag.String("http-port", "", "HTTP port (overrides HTTP_PORT)")
	extractorURL := flag.String("extractor-url", "", "extraction service address (overrides EXTRACTOR_URL)")
	flag.Parse()

	cfg := config.LoadConfig()
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *extractorURL != "" {
		cfg.ExtractorURL = *extractorURL
	}

	if strings.EqualFold(cfg.LogLevel, "debug") {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	log.Println("Starting...")
	log.Printf("HTTP port: %s", cfg.HTTPPort)
	log.Printf("Extraction service: %s", cfg.ExtractorURL)
	log.Printf("Max FPS: %d", cfg.MaxFPS)
	log.Printf("Backend report URL: %s", cfg.BackendReportURL)
	log.Printf("Environment: %s", cfg.Environment)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Extraction service connection
	var extractor services.Extractor
	client, err := services.NewExtractorClient(cfg.ExtractorURL)
	if err != nil {
		log.Printf("Extraction service unavailable: %v", err)
		log.Println("Continuing without extractor (frames will report errors)")
	} else {
		extractorClient = client
		extractor = client
		defer extractorClient.Close()
	}

	// Report archive database
	log.Printf("Connecting to database: %s", cfg.DSNForLog())
	if err := database.InitDB(cfg.DSN()); err != nil {
		log.Printf("Database unavailable: %v", err)
		log.Println("Continuing without report archive and review API")
	} else {
		archiveEnabled = true
		defer database.CloseDB()
	}

	reporter := services.NewBackendReporter(cfg.BackendReportURL, time.Duration(cfg.BackendTimeoutSec)*time.Second)
	wsHandler = handlers.NewWSHandler(cfg.MaxFPS, extractor, reporter, archiveEnabled)
	wsHandler.MaxConnections = cfg.MaxConnections
	wsHandler.MaxMessageBytes = int64(cfg.MaxMessageSizeMB) << 20
	handlers.SetAllowedOrigin(cfg.CORSOrigins)

	log.Println("\n Starting HTTP server...")
	go startHTTPServer(cfg.HTTPPort)

	// Wait for the shutdown signal
	<-done
	log.Println("Shutting down...")

	if httpServer != nil {
		httpShutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Println("Stopping HTTP server...")
		if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		} else {
			log.Println("HTTP server gracefully stopped")
		}
	}

	log.Println("Closing WebSocket connections...")
	wsHandler.CloseAll()

	// Reports launched during teardown still get a bounded chance to land;
	// whatever misses the window is lost.
	drain := time.Duration(cfg.ShutdownDrainSec) * time.Second
	if wsHandler.DrainReports(drain) {
		log.Println("All pending reports delivered")
	} else {
		log.Println("Drain timeout: pending reports lost")
	}

	log.Println("Goodbye!")
}

func startHTTPServer(httpPort string) {
	port := httpPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", handleLiveness)
	mux.HandleFunc("/ws", wsHandler.HandleWS)

	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/metrics", handleMetrics)

	if archiveEnabled {
		mux.HandleFunc("/api/auth/register", handlers.Register)
		mux.HandleFunc("/api/auth/login", handlers.Login)
		mux.HandleFunc("/api/auth/logout", handlers.Logout)
		mux.HandleFunc("/api/auth/me", handlers.GetCurrentUser)
		mux.HandleFunc("/api/reports", handlers.GetReports)
	}

	httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("HTTP server listening on port %s", port)
	log.Printf("WebSocket:  ws://localhost:%s/ws", port)
	log.Printf("REST API:   http://localhost:%s/api/*", port)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}

// Liveness ping for the hosting platform's health checks.
func handleLiveness(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("AI proctoring server active"))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	log.Println("/api/health - Health check")

	extractorHealthy := false
	if extractorClient != nil {
		extractorHealthy = extractorClient.HealthCheck()
	}

	m := services.GetMetrics()

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":            "healthy",
		"extractor_service": extractorHealthy,
		"report_archive":    archiveEnabled,
		"active_sessions":   wsHandler.ActiveSessions(),
		"total_processed":   m.GetFramesProcessed(),
		"total_errors":      m.GetExtractionErrors(),
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}

func handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	log.Println("/api/metrics - Metrics request")

	m := services.GetMetrics()

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_frames":      m.GetFramesProcessed(),
		"dropped_frames":    m.GetFramesDropped(),
		"extraction_errors": m.GetExtractionErrors(),
		"avg_latency_ms":    m.GetAvgLatency(),
		"active_sessions":   wsHandler.ActiveSessions(),
		"reports_sent":      m.GetReportsSent(),
		"reports_failed":    m.GetReportsFailed(),
		"websocket":         m.GetWebSocketMetrics(),
		"system_uptime_sec": int(time.Since(startTime).Seconds()),
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}
