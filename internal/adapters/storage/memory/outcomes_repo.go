package memory

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"animal-shelter-dashboard/internal/domain/outcomes"

	"github.com/google/uuid"
)

var (
	ErrClosed = errors.New("collection closed")
)

type outcomeDoc struct {
	id  string
	rec outcomes.Record
}

// OutcomesRepo es una colección in-memory ordenada por inserción.
// Evalúa Predicate.Match; sirve para dev y como fake en tests.
type OutcomesRepo struct {
	mu     sync.RWMutex
	docs   []outcomeDoc
	closed bool
}

func NewOutcomesRepo(seed ...outcomes.Record) *OutcomesRepo {
	r := &OutcomesRepo{}
	for _, rec := range seed {
		r.docs = append(r.docs, outcomeDoc{id: uuid.NewString(), rec: rec.WithoutRowKey().Clone()})
	}
	return r
}

// Close simula la caída del store: toda operación posterior falla.
func (r *OutcomesRepo) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

func (r *OutcomesRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

func (r *OutcomesRepo) Find(ctx context.Context, p outcomes.Predicate) ([]outcomes.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.check(ctx); err != nil {
		return nil, err
	}

	out := make([]outcomes.Record, 0)
	for _, d := range r.docs {
		if p.Match(d.rec) {
			out = append(out, d.rec.Clone())
		}
	}
	return out, nil
}

func (r *OutcomesRepo) InsertOne(ctx context.Context, rec outcomes.Record) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.check(ctx); err != nil {
		return "", err
	}

	id := uuid.NewString()
	r.docs = append(r.docs, outcomeDoc{id: id, rec: rec.WithoutRowKey().Clone()})
	return id, nil
}

func (r *OutcomesRepo) Update(ctx context.Context, p outcomes.Predicate, changes outcomes.Record, many bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.check(ctx); err != nil {
		return 0, err
	}

	var modified int64
	for i := range r.docs {
		if !p.Match(r.docs[i].rec) {
			continue
		}

		if changed := applySet(r.docs[i].rec, changes); changed != nil {
			r.docs[i].rec = changed
			modified++
		}

		// update_one: solo el primer match, aunque no haya cambiado nada
		if !many {
			break
		}
	}
	return modified, nil
}

func (r *OutcomesRepo) Delete(ctx context.Context, p outcomes.Predicate, many bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.check(ctx); err != nil {
		return 0, err
	}

	kept := r.docs[:0]
	var deleted int64
	for _, d := range r.docs {
		if (many || deleted == 0) && p.Match(d.rec) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	r.docs = kept
	return deleted, nil
}

func (r *OutcomesRepo) check(ctx context.Context) error {
	if r.closed {
		return ErrClosed
	}
	return ctx.Err()
}

// applySet devuelve el record con $set aplicado, o nil si ningún campo cambió.
func applySet(rec, changes outcomes.Record) outcomes.Record {
	var out outcomes.Record
	for k, v := range changes {
		if cur, ok := rec[k]; ok && reflect.DeepEqual(cur, v) {
			continue
		}
		if out == nil {
			out = rec.Clone()
		}
		out[k] = v
	}
	return out
}
