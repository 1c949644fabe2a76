package outcomes

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Campos del dataset de outcomes (Austin Animal Center) que usa el dashboard.
const (
	FieldAnimalType   = "animal_type"
	FieldBreed        = "breed"
	FieldSex          = "sex_upon_outcome"
	FieldAgeInWeeks   = "age_upon_outcome_in_weeks"
	FieldLocationLat  = "location_lat"
	FieldLocationLong = "location_long"
	FieldName         = "name"
)

// RowKeyField es la clave propia del store; nunca sale de los adapters.
const RowKeyField = "_id"

// FallbackColumns es el orden de columnas cuando la colección viene vacía.
var FallbackColumns = []string{
	"age_upon_outcome", "animal_id", "animal_type", "breed", "color",
	"date_of_birth", "datetime", "monthyear", "name", "outcome_subtype",
	"outcome_type", "sex_upon_outcome", "location_lat", "location_long",
	"age_upon_outcome_in_weeks",
}

// Record es un snapshot de un outcome (un documento).
// El shape no está garantizado: todo acceso pasa por lookups con default explícito.
type Record map[string]any

// String devuelve el campo como texto. Ausente, nil o en blanco => ok=false.
func (r Record) String(field string) (string, bool) {
	v, exists := r[field]
	if !exists || v == nil {
		return "", false
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case int32:
		s = strconv.FormatInt(int64(t), 10)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return "", false
	}

	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Float devuelve el campo como número. Solo tipos numéricos; un string no cuenta.
func (r Record) Float(field string) (float64, bool) {
	v, exists := r[field]
	if !exists || v == nil {
		return 0, false
	}

	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func (r Record) StringOr(field, def string) string {
	if s, ok := r.String(field); ok {
		return s
	}
	return def
}

func (r Record) FloatOr(field string, def float64) float64 {
	if f, ok := r.Float(field); ok {
		return f
	}
	return def
}

// Has indica si el campo está presente (aunque sea nil).
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Clone hace una copia superficial; suficiente porque los valores son escalares.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// WithoutRowKey devuelve el record sin la clave del store.
func (r Record) WithoutRowKey() Record {
	if !r.Has(RowKeyField) {
		return r
	}
	out := r.Clone()
	delete(out, RowKeyField)
	return out
}
