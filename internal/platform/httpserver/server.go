package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	commentservice "inkwell/contexts/engagement/comment-service"
	accountservice "inkwell/contexts/identity/account-service"
	categoryservice "inkwell/contexts/publishing/category-service"
	postservice "inkwell/contexts/publishing/post-service"
	"inkwell/internal/platform/token"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "inkwell/internal/platform/httpserver/docs"
)

type Server struct {
	router     chi.Router
	logger     *slog.Logger
	addr       string
	codec      token.Codec
	accounts   accountservice.Module
	posts      postservice.Module
	categories categoryservice.Module
	comments   commentservice.Module
}

type Options struct {
	Addr           string
	AllowedOrigins []string
	Codec          token.Codec
	Accounts       accountservice.Module
	Posts          postservice.Module
	Categories     categoryservice.Module
	Comments       commentservice.Module
	Logger         *slog.Logger
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s := &Server{
		router:     router,
		logger:     logger,
		addr:       addr,
		codec:      opts.Codec,
		accounts:   opts.Accounts,
		posts:      opts.Posts,
		categories: opts.Categories,
		comments:   opts.Comments,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.router)
}

// Handler exposes the routing tree, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.registerAccountRoutes()
	s.registerPostRoutes()
	s.registerCategoryRoutes()
	s.registerCommentRoutes()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "invalid_body",
			"message": "request body must be valid JSON",
		})
		return false
	}
	return true
}
