package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/infrastructure/config"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/handler"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Skill       *handler.SkillHandler
	Project     *handler.ProjectHandler
	Experience  *handler.ExperienceHandler
	Certificate *handler.CertificateHandler
	Message     *handler.MessageHandler
}

type Server struct {
	server *http.Server
	logger logger.Logger
}

func NewServer(
	cfg *config.Config,
	log logger.Logger,
	handlers Handlers,
	auth *middleware.AuthMiddleware,
	limiter *middleware.RateLimitMiddleware,
) *Server {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	handlers.Auth.RegisterRoutes(api, auth, limiter)
	handlers.Skill.RegisterRoutes(api, auth)
	handlers.Project.RegisterRoutes(api, auth)
	handlers.Experience.RegisterRoutes(api, auth)
	handlers.Certificate.RegisterRoutes(api, auth)
	handlers.Message.RegisterRoutes(api, auth, limiter)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	var root http.Handler = router
	root = requestLogMiddleware(log, root)
	root = recoveryMiddleware(log, root)
	root = middleware.CORSMiddleware(root, cfg.CORSAllowedOrigins)
	root = middleware.CorrelationIDMiddleware(root)

	addr := cfg.ServerHost + ":" + cfg.ServerPort

	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      root,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: log,
	}
}

func (s *Server) Start() error {
	s.logger.Info(context.Background(), "HTTP server listening", map[string]interface{}{
		"addr": s.server.Addr,
	})
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server", nil)
	return s.server.Shutdown(ctx)
}

func requestLogMiddleware(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info(r.Context(), "Request handled", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
		})
	})
}

func recoveryMiddleware(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error(r.Context(), "Panic recovered", nil, map[string]interface{}{
					"panic":  rec,
					"method": r.Method,
					"path":   r.URL.Path,
				})
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"status":false,"message":"Internal server error","data":null}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
