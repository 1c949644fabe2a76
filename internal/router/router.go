package router

import (
	"net/http"
	"time"

	_ "animal-shelter-dashboard/docs" // registra el doc swagger
	mem "animal-shelter-dashboard/internal/adapters/storage/memory"
	"animal-shelter-dashboard/internal/domain/dashboard"
	"animal-shelter-dashboard/internal/domain/outcomes"
	"animal-shelter-dashboard/internal/middleware"
	"animal-shelter-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, es el store ya conectado (postgres/mongo). Si no, in-memory vacío.
	Repo outcomes.Repository

	Logger logger.Logger

	// Límites del registro de sesiones; cero => defaults del dashboard.
	SessionTTL  time.Duration
	MaxSessions int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewOutcomesRepo()
	}

	// Una sola conexión por proceso; el dashboard solo usa Read.
	store := outcomes.NewStore(repo, log)
	sessions := dashboard.NewSessions(store, opts.SessionTTL, opts.MaxSessions)

	dashboard.RegisterRoutes(r, store, sessions, log)

	return r
}
