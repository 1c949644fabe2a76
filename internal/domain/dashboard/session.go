package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"animal-shelter-dashboard/internal/domain/outcomes"
)

var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrInvalidInput = errors.New("invalid input")
)

// EventType define los eventos de UI que disparan derivaciones.
// @Enum filter_changed, view_changed, row_selected
type EventType string

const (
	EventFilterChanged EventType = "filter_changed" // radio de filtros
	EventViewChanged   EventType = "view_changed"   // sort/filtro client-side de la tabla
	EventRowSelected   EventType = "row_selected"   // click en fila
)

// Event es un input de UI. Rows nil en view_changed = sin filtro client-side.
type Event struct {
	Type        EventType         `json:"type"`
	Category    string            `json:"category,omitempty"`
	Rows        []outcomes.Record `json:"rows,omitempty"`
	SelectedRow *int              `json:"selected_row,omitempty"`
}

// State es todo lo que la UI renderiza para una sesión.
// TableGeneration es la generación del último filter_changed confirmado;
// Generation la del último evento confirmado de cualquier tipo.
type State struct {
	Generation      uint64                  `json:"generation"`
	TableGeneration uint64                  `json:"table_generation"`
	Category        outcomes.FilterCategory `json:"category"`
	Table           Table                   `json:"table"`
	Displayed       []outcomes.Record       `json:"-"`
	SelectedRow     *int                    `json:"selected_row,omitempty"`
	Chart           Chart                   `json:"chart"`
	Map             MapView                 `json:"map"`
}

// Session guarda el último estado confirmado de un cliente.
// Cada evento recibe una generación creciente. Un refresh de tabla solo se confirma
// si es más nuevo que la tabla confirmada; view_changed y row_selected se aplican
// sobre el estado vigente bajo el lock, así nunca descartan un refresh de tabla.
type Session struct {
	store outcomes.Reader

	mu        sync.Mutex
	issued    uint64
	committed State
	lastUsed  time.Time
}

func NewSession(store outcomes.Reader) *Session {
	return &Session{store: store, lastUsed: time.Now()}
}

// State devuelve el último estado confirmado.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Dispatch aplica el evento. committed=false si el refresh quedó obsoleto
// (ya se confirmó un filtro más nuevo); en ese caso devuelve el estado vigente.
func (s *Session) Dispatch(ctx context.Context, ev Event) (State, bool, error) {
	if ev.Type != EventFilterChanged {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.issued++
		next, err := reduceView(s.committed, ev)
		if err != nil {
			return s.committed, false, err
		}
		next.Generation = s.issued
		s.committed = next
		return next, true, nil
	}

	s.mu.Lock()
	s.issued++
	gen := s.issued
	s.mu.Unlock()

	// la lectura al store corre fuera del lock
	c := outcomes.ParseCategory(ev.Category)
	table := RefreshTable(ctx, s.store, c)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.committed.TableGeneration {
		return s.committed, false, nil
	}

	next := s.committed
	next.Category = c
	next.Table = table
	next.TableGeneration = gen
	next.Generation = max(next.Generation, gen)
	// las vistas derivadas de la tabla anterior no aplican a la nueva
	next.Displayed = table.Rows
	next.SelectedRow = nil
	next.Chart = BreedHistogram(next.Displayed)
	next.Map = MarkerFor(next.Displayed, next.SelectedRow)

	s.committed = next
	return next, true, nil
}

func reduceView(st State, ev Event) (State, error) {
	switch ev.Type {
	case EventViewChanged:
		if ev.Rows == nil {
			st.Displayed = st.Table.Rows
		} else {
			st.Displayed = ev.Rows
		}
		if ev.SelectedRow != nil {
			st.SelectedRow = ev.SelectedRow
		}
		st.Chart = BreedHistogram(st.Displayed)
		st.Map = MarkerFor(st.Displayed, st.SelectedRow)
		return st, nil

	case EventRowSelected:
		if ev.SelectedRow == nil {
			return st, ErrInvalidInput
		}
		st.SelectedRow = ev.SelectedRow
		st.Map = MarkerFor(st.Displayed, st.SelectedRow)
		return st, nil

	default:
		return st, ErrUnknownEvent
	}
}

const (
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Sessions es el registro de sesiones por ID (una por pestaña del browser).
// Las sesiones sin uso por más de ttl se descartan; con maxSessions alcanzado
// se descarta la menos usada recientemente.
type Sessions struct {
	store       outcomes.Reader
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu   sync.Mutex
	byID map[string]*Session
}

// NewSessions crea el registro. ttl<=0 o maxSessions<=0 usan los defaults.
func NewSessions(store outcomes.Reader, ttl time.Duration, maxSessions int) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Sessions{
		store:       store,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		byID:        make(map[string]*Session),
	}
}

// Get devuelve la sesión; si no existe la crea con el filtro por defecto aplicado.
func (m *Sessions) Get(ctx context.Context, id string) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInput
	}

	m.mu.Lock()
	now := m.now()
	s, ok := m.byID[id]
	if !ok {
		m.evictLocked(now)
		s = NewSession(m.store)
		m.byID[id] = s
	}
	s.lastUsed = now
	m.mu.Unlock()

	if !ok {
		if _, _, err := s.Dispatch(ctx, Event{Type: EventFilterChanged, Category: string(outcomes.DefaultCategory)}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (m *Sessions) expireLocked(now time.Time) {
	for id, s := range m.byID {
		if now.Sub(s.lastUsed) > m.ttl {
			delete(m.byID, id)
		}
	}
}

// evictLocked hace lugar para una sesión nueva.
func (m *Sessions) evictLocked(now time.Time) {
	m.expireLocked(now)
	for len(m.byID) >= m.maxSessions {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, s := range m.byID {
			if oldestID == "" || s.lastUsed.Before(oldest) {
				oldestID, oldest = id, s.lastUsed
			}
		}
		delete(m.byID, oldestID)
	}
}

func (m *Sessions) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	return true
}

func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}
