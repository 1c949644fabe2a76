package dashboard

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"animal-shelter-dashboard/internal/domain/outcomes"
	"animal-shelter-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var staticFS embed.FS

// maxBodyBytes limita los POST con filas visibles (la tabla completa del dataset entra holgada).
const maxBodyBytes = 32 << 20

func RegisterRoutes(r chi.Router, store outcomes.Reader, sessions *Sessions, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(map[string]any{"component": "dashboard"})

	// UI estática (filtros, tabla, gráfico, mapa)
	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/*", http.FileServer(http.FS(static)))

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/categories", listCategoriesHandler())
		ar.Get("/records", listRecordsHandler(store))
		ar.Get("/dashboard", dashboardHandler(store))

		ar.Post("/views/chart", chartHandler())
		ar.Post("/views/map", mapHandler())

		ar.Route("/sessions/{sessionID}", func(sr chi.Router) {
			sr.Get("/", getSessionHandler(sessions, log))
			sr.Delete("/", deleteSessionHandler(sessions))
			sr.Post("/events", dispatchEventHandler(sessions, log))
		})
	})
}

// viewRequest son las filas que la tabla muestra (post sort/filtro client-side).
type viewRequest struct {
	Rows        []outcomes.Record `json:"rows"`
	SelectedRow *int              `json:"selected_row"`
}

type dashboardResponse struct {
	Table Table   `json:"table"`
	Chart Chart   `json:"chart"`
	Map   MapView `json:"map"`
}

type sessionResponse struct {
	State
	Committed bool `json:"committed"`
}

// listCategoriesHandler godoc
// @Summary Listar categorías de rescate
// @Description Opciones del control de filtros. La selección inicial es `reset`.
// @Tags dashboard
// @Produce json
// @Success 200 {array} outcomes.CategoryOption
// @Router /api/categories [get]
func listCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, outcomes.Categories())
	}
}

// listRecordsHandler godoc
// @Summary Refrescar tabla
// @Description Construye la query de la categoría y devuelve todas las filas. Categorías desconocidas equivalen a `reset`. Un error del store se ve como tabla vacía.
// @Tags dashboard
// @Produce json
// @Param filter query string false "water | mountain | disaster | reset"
// @Success 200 {object} Table
// @Router /api/records [get]
func listRecordsHandler(store outcomes.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := outcomes.ParseCategory(r.URL.Query().Get("filter"))
		writeJSON(w, http.StatusOK, RefreshTable(r.Context(), store, c))
	}
}

// dashboardHandler godoc
// @Summary Tabla, gráfico y mapa en una llamada
// @Description Útil cuando no hay sort/filtro client-side: las tres derivaciones se calculan sobre el resultado de la query.
// @Tags dashboard
// @Produce json
// @Param filter query string false "water | mountain | disaster | reset"
// @Param row query int false "fila seleccionada (default 0)"
// @Success 200 {object} dashboardResponse
// @Failure 400 {string} string "row must be an integer"
// @Router /api/dashboard [get]
func dashboardHandler(store outcomes.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var selected *int
		if raw := strings.TrimSpace(q.Get("row")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "row must be an integer", http.StatusBadRequest)
				return
			}
			selected = &n
		}

		t := RefreshTable(r.Context(), store, outcomes.ParseCategory(q.Get("filter")))
		writeJSON(w, http.StatusOK, dashboardResponse{
			Table: t,
			Chart: BreedHistogram(t.Rows),
			Map:   MarkerFor(t.Rows, selected),
		})
	}
}

// chartHandler godoc
// @Summary Histograma de breeds
// @Description Top 10 breeds de las filas visibles, desc por count. Sin datos devuelve `placeholder`.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param payload body viewRequest true "Filas visibles"
// @Success 200 {object} Chart
// @Failure 400 {string} string "invalid json"
// @Router /api/views/chart [post]
func chartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req viewRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, BreedHistogram(req.Rows))
	}
}

// mapHandler godoc
// @Summary Marcador del mapa
// @Description Fila seleccionada (default 0, fuera de rango se ajusta). Coordenadas por defecto 30.75,-97.48; breed/name por defecto "Unknown".
// @Tags dashboard
// @Accept json
// @Produce json
// @Param payload body viewRequest true "Filas visibles + fila seleccionada"
// @Success 200 {object} MapView
// @Failure 400 {string} string "invalid json"
// @Router /api/views/map [post]
func mapHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req viewRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, MarkerFor(req.Rows, req.SelectedRow))
	}
}

// getSessionHandler godoc
// @Summary Estado de la sesión
// @Description Crea la sesión con filtro `reset` si no existe.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "ID de sesión (generado por el cliente)"
// @Success 200 {object} sessionResponse
// @Router /api/sessions/{sessionID} [get]
func getSessionHandler(sessions *Sessions, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Get(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			log.Warn("session unavailable", map[string]any{"error": err.Error()})
			http.Error(w, "invalid session", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{State: s.State(), Committed: true})
	}
}

// deleteSessionHandler godoc
// @Summary Cerrar sesión
// @Tags sessions
// @Param sessionID path string true "ID de sesión"
// @Success 204
// @Failure 404 {string} string "session not found"
// @Router /api/sessions/{sessionID} [delete]
func deleteSessionHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !sessions.Remove(chi.URLParam(r, "sessionID")) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dispatchEventHandler godoc
// @Summary Despachar evento de UI
// @Description `filter_changed` refresca tabla+gráfico+mapa; `view_changed` recalcula gráfico+mapa sobre las filas visibles; `row_selected` recalcula el mapa. Si llegó un evento más nuevo, `committed=false` y se devuelve el estado vigente.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Param payload body Event true "Evento"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / unknown event type / invalid input"
// @Router /api/sessions/{sessionID}/events [post]
func dispatchEventHandler(sessions *Sessions, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev Event
		if !decodeJSON(w, r, &ev) {
			return
		}

		s, err := sessions.Get(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, "invalid session", http.StatusBadRequest)
			return
		}

		st, committed, err := s.Dispatch(r.Context(), ev)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnknownEvent), errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				log.Error("dispatch failed", map[string]any{"error": err.Error(), "event": string(ev.Type)})
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if !committed {
			log.Debug("stale event discarded", map[string]any{"event": string(ev.Type), "generation": st.Generation})
		}
		writeJSON(w, http.StatusOK, sessionResponse{State: st, Committed: committed})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
