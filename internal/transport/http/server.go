package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	replyService "github.com/heywood8/telegram-downloader-bot/internal/modules/reply/service"
	"github.com/heywood8/telegram-downloader-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes the matcher/policy pipeline over HTTP for local testing
type Server struct {
	cfg          *config.Config
	replyService *replyService.Service
	logger       *slog.Logger
	server       *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, replyService *replyService.Service) *Server {
	return &Server{
		cfg:          cfg,
		replyService: replyService,
		logger:       slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the full middleware-wrapped handler chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Test endpoint: run a message through the pipeline without Telegram
	mux.HandleFunc("POST /update", s.handleUpdate)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Root endpoint with instructions
	mux.HandleFunc("GET /{$}", s.handleRoot)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Stop shuts down the HTTP server, draining in-flight requests
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type updateRequest struct {
	// Pointer so an absent field is distinguishable from an empty string
	Message *string `json:"message"`
}

type updateResponse struct {
	Matched bool   `json:"matched"`
	Link    string `json:"link,omitempty"`
	Reply   string `json:"reply,omitempty"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Message == nil {
		writeError(w, http.StatusBadRequest, "missing required field: message")
		return
	}

	resp := updateResponse{}
	result := s.replyService.Match(*req.Message)
	if reply := s.replyService.Decide(result); reply != nil {
		resp.Matched = true
		resp.Link = result.Link
		resp.Reply = reply.Text
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Telegram Downloader Bot</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Telegram Downloader Bot</h1>
    <div class="info">
        <p>This service replies to messages containing Instagram links.</p>
        <p>To test the pipeline, POST JSON to <code>/update</code>:</p>
        <p><code>{"message": "https://instagram.com/p/abc123"}</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
