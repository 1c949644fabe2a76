package outcomes

import (
	"context"
	"time"

	"animal-shelter-dashboard/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	storeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_store_failures_total",
		Help: "Store operations that failed and were masked with a default result",
	}, []string{"op"})

	storeOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shelter_store_op_duration_seconds",
		Help:    "Duration of store operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 3},
	}, []string{"op"})
)

// Store es el wrapper CRUD sobre una colección.
// Nunca propaga fallos del store: Read => vacío, Create => false, Update/Delete => 0.
// El caller no puede distinguir "sin resultados" de "error"; por eso se loguea y se cuenta.
type Store struct {
	repo Repository
	log  logger.Logger
}

func NewStore(repo Repository, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		repo: repo,
		log:  log.With(map[string]any{"component": "store"}),
	}
}

func (s *Store) Read(ctx context.Context, p Predicate) []Record {
	ctx, span := startSpan(ctx, "read")
	defer span.End()
	defer observe("read")()

	items, err := s.repo.Find(ctx, p)
	if err != nil {
		s.masked(span, "read", err)
		return []Record{}
	}

	out := make([]Record, 0, len(items))
	for _, r := range items {
		out = append(out, r.WithoutRowKey())
	}
	span.SetAttributes(attribute.Int("result_count", len(out)))
	return out
}

func (s *Store) Create(ctx context.Context, r Record) bool {
	ctx, span := startSpan(ctx, "create")
	defer span.End()
	defer observe("create")()

	id, err := s.repo.InsertOne(ctx, r.WithoutRowKey())
	if err != nil {
		s.masked(span, "create", err)
		return false
	}
	return id != ""
}

// Update con applyToAll=false modifica como máximo el primer documento que matchea.
func (s *Store) Update(ctx context.Context, p Predicate, changes Record, applyToAll bool) int {
	ctx, span := startSpan(ctx, "update")
	defer span.End()
	defer observe("update")()

	if len(changes) == 0 {
		return 0
	}

	n, err := s.repo.Update(ctx, p, changes.WithoutRowKey(), applyToAll)
	if err != nil {
		s.masked(span, "update", err)
		return 0
	}
	span.SetAttributes(attribute.Int64("modified_count", n))
	return int(n)
}

func (s *Store) Delete(ctx context.Context, p Predicate, applyToAll bool) int {
	ctx, span := startSpan(ctx, "delete")
	defer span.End()
	defer observe("delete")()

	n, err := s.repo.Delete(ctx, p, applyToAll)
	if err != nil {
		s.masked(span, "delete", err)
		return 0
	}
	span.SetAttributes(attribute.Int64("deleted_count", n))
	return int(n)
}

func (s *Store) masked(span trace.Span, op string, err error) {
	storeFailuresTotal.WithLabelValues(op).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.log.Warn("store operation failed, returning default", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
}

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return otel.Tracer("outcomes").Start(ctx, "outcomes.Store."+op,
		trace.WithAttributes(attribute.String("op", op)))
}

func observe(op string) func() {
	start := time.Now()
	return func() {
		storeOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
