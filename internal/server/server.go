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
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/HeroArena_Go/internal/auth"
	"github.com/osse101/HeroArena_Go/internal/eventlog"
	"github.com/osse101/HeroArena_Go/internal/handler"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/metrics"
	"github.com/osse101/HeroArena_Go/internal/player"
	"github.com/osse101/HeroArena_Go/internal/reward"
	"github.com/osse101/HeroArena_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port               int
	APIKey             string
	TrustedProxies     []string
	CORSAllowedOrigins []string
}

// Services are the backends the routes delegate to
type Services struct {
	Storage  handler.Pinger
	Players  player.Service
	Rewards  reward.Service
	Guard    *auth.Guard
	History  eventlog.Service
	Snapshot handler.SnapshotJob
	Stream   *sse.Hub
}

// Server owns the HTTP listener and its router
type Server struct {
	httpServer *http.Server
}

// NewServer wires middleware and every route
func NewServer(opts Options, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routed handler without a listener
func NewRouter(opts Options, svcs Services) http.Handler {
	r := chi.NewRouter()

	// Outermost first
	detector := NewSuspiciousActivityDetector(RateLimitWindow, MaxRequestsPerWindow)

	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(newCORS(opts.CORSAllowedOrigins).Handler)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svcs.Storage))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	profiles := handler.NewProfileHandler(svcs.Players)
	rewards := handler.NewRewardHandler(svcs.Rewards)
	board := handler.NewLeaderboardHandler(svcs.Players)
	history := handler.NewHistoryHandler(svcs.Players, svcs.History)
	admin := handler.NewAdminHandler(svcs.Players, svcs.Guard, svcs.Snapshot)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", profiles.HandleCreateProfile)
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/", profiles.HandleGetProfile)
				r.Post("/battles", profiles.HandleRecordBattle)
				r.Get("/crates", rewards.HandleGetCrates)
				r.Post("/crates/{index}/claim", rewards.HandleClaimCrate)
				r.Get("/nfts", rewards.HandleGetOwnedTokens)
				r.Post("/nfts", rewards.HandleMintNFT)
				r.Get("/events", history.HandleGetHistory)
			})
		})

		r.Get("/nfts/{tokenID}", rewards.HandleGetNFT)
		r.Get("/leaderboard", board.HandleGetLeaderboard)
		r.Get("/league", board.HandleGetLeagueTable)
		if svcs.Stream != nil {
			r.Get("/stream", sse.Handler(svcs.Stream))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(admin.RequireOwner)
			r.Get("/league/distribution", admin.HandleGetLeagueDistribution)
			r.Post("/league/snapshot", admin.HandleRecordSnapshot)
			r.Get("/cache/stats", admin.HandleGetCacheStats)
		})
	})

	return r
}

func newCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", HeaderAPIKey, handler.HeaderAccountID},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         int((10 * time.Minute).Seconds()),
	})
}

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *statusRecorder) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.written = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap lets http.ResponseController reach the Flusher of streaming responses
func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags the request with an id and logs start and completion.
// Secret headers are redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasPathPrefix(r.URL.Path, QuietPaths) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start serves until the listener closes
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
