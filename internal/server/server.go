package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/activity"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/challenge"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/database"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/handler"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/metrics"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/user"
)

type Server struct {
	httpServer         *http.Server
	dbPool             database.Pool
	userService        user.Service
	activityService    activity.Service
	aggregationService aggregation.Service
	challengeService   challenge.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, userService user.Service, activityService activity.Service, aggregationService aggregation.Service, challengeService challenge.Service, regionRepo repository.Region) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterUser(userService))
			r.Get("/{id}", handler.HandleGetUser(userService))
		})

		// Activity routes
		r.Route("/activities", func(r chi.Router) {
			r.Post("/", handler.HandleSubmitActivity(activityService, userService))
			r.Get("/", handler.HandleListActivities(activityService))
		})

		// Challenge routes
		r.Route("/challenges", func(r chi.Router) {
			r.Get("/", handler.HandleListChallenges(challengeService))
			r.Get("/mine", handler.HandleListUserChallenges(challengeService))
			r.Get("/{id}", handler.HandleGetChallenge(challengeService))
			r.Post("/{id}/join", handler.HandleJoinChallenge(challengeService))
			r.Post("/{id}/leave", handler.HandleLeaveChallenge(challengeService))
			r.Get("/{id}/progress", handler.HandleChallengeProgress(challengeService))
			r.Get("/{id}/participants", handler.HandleChallengeParticipants(challengeService))
		})

		// Community routes
		r.Route("/community", func(r chi.Router) {
			r.Get("/leaderboard", handler.HandleLeaderboard(aggregationService))
			r.Get("/regions", handler.HandleRegionDirectory(regionRepo))
			r.Route("/stats", func(r chi.Router) {
				r.Get("/global", handler.HandleGlobalStats(aggregationService))
				r.Get("/regions/{region}", handler.HandleRegionStats(aggregationService))
			})
		})

		// Admin routes (API key required)
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
			r.Post("/recompute", handler.HandleRecompute(aggregationService))
			r.Post("/weekly-reset", handler.HandleWeeklyReset(aggregationService))
			r.Post("/challenges", handler.HandleCreateChallenge(challengeService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:             dbPool,
		userService:        userService,
		activityService:    activityService,
		aggregationService: aggregationService,
		challengeService:   challengeService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
