package outcomes

import "context"

// Repository es el acceso nativo a una colección. Los errores se propagan;
// el enmascaramiento (fail-closed) lo hace Store.
type Repository interface {
	Find(ctx context.Context, p Predicate) ([]Record, error)
	InsertOne(ctx context.Context, r Record) (string, error)
	// Update aplica semántica $set y devuelve documentos modificados (no matcheados).
	Update(ctx context.Context, p Predicate, changes Record, many bool) (int64, error)
	Delete(ctx context.Context, p Predicate, many bool) (int64, error)
}

// Reader es lo único que necesita el dashboard (solo lectura).
type Reader interface {
	Read(ctx context.Context, p Predicate) []Record
}
