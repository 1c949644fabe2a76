package outcomes

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Op define los operadores soportados por Predicate.
type Op string

const (
	OpAll       Op = "all"        // universal, sin filtro
	OpAnd       Op = "and"        // conjunción de Clauses
	OpEqualFold Op = "equal_fold" // igualdad case-insensitive, tolera espacios
	OpBetween   Op = "between"    // rango numérico inclusivo [Min, Max]
	OpMatchAny  Op = "match_any"  // algún patrón case-insensitive aparece en el campo
)

// Predicate es una expresión booleana sobre Record, independiente del store.
// Cada adapter la compila a su lenguaje nativo (SQL, BSON) y memory la evalúa con Match.
type Predicate struct {
	Op       Op          `json:"op"`
	Field    string      `json:"field,omitempty"`
	Value    string      `json:"value,omitempty"`
	Min      float64     `json:"min,omitempty"`
	Max      float64     `json:"max,omitempty"`
	Patterns []string    `json:"patterns,omitempty"`
	Clauses  []Predicate `json:"clauses,omitempty"`
}

func All() Predicate {
	return Predicate{Op: OpAll}
}

// And conjuga predicados. Sin cláusulas equivale a All.
func And(clauses ...Predicate) Predicate {
	if len(clauses) == 0 {
		return All()
	}
	return Predicate{Op: OpAnd, Clauses: clauses}
}

func EqualFold(field, value string) Predicate {
	return Predicate{Op: OpEqualFold, Field: field, Value: value}
}

func Between(field string, lo, hi float64) Predicate {
	return Predicate{Op: OpBetween, Field: field, Min: lo, Max: hi}
}

// MatchAny recibe nombres literales; cada uno se usa como un patrón independiente.
func MatchAny(field string, names ...string) Predicate {
	return Predicate{Op: OpMatchAny, Field: field, Patterns: names}
}

// IsAll indica si el predicado no filtra nada.
func (p Predicate) IsAll() bool {
	switch p.Op {
	case OpAll, "":
		return true
	case OpAnd:
		for _, c := range p.Clauses {
			if !c.IsAll() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Contains busca q en el árbol (útil para verificar cláusulas obligatorias).
func (p Predicate) Contains(q Predicate) bool {
	if p.Op == q.Op && p.Field == q.Field && p.Value == q.Value &&
		p.Min == q.Min && p.Max == q.Max && equalStrings(p.Patterns, q.Patterns) && len(q.Clauses) == 0 && len(p.Clauses) == 0 {
		return true
	}
	for _, c := range p.Clauses {
		if c.Contains(q) {
			return true
		}
	}
	return false
}

// ValuePattern es la regex (sin flags) equivalente a EqualFold:
// anclada, espacios alrededor tolerados y espacios internos como \s+.
func (p Predicate) ValuePattern() string {
	words := strings.Fields(p.Value)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return `^\s*` + strings.Join(words, `\s+`) + `\s*$`
}

// QuotedPatterns devuelve los patrones de MatchAny escapados como regex literal.
func (p Predicate) QuotedPatterns() []string {
	out := make([]string, 0, len(p.Patterns))
	for _, n := range p.Patterns {
		out = append(out, regexp.QuoteMeta(n))
	}
	return out
}

// Match evalúa el predicado sobre un record en memoria.
func (p Predicate) Match(r Record) bool {
	switch p.Op {
	case OpAll, "":
		return true
	case OpAnd:
		for _, c := range p.Clauses {
			if !c.Match(r) {
				return false
			}
		}
		return true
	case OpEqualFold:
		s, ok := r.String(p.Field)
		if !ok {
			return false
		}
		return foldWords(s) == foldWords(p.Value)
	case OpBetween:
		f, ok := r.Float(p.Field)
		if !ok {
			return false
		}
		return f >= p.Min && f <= p.Max
	case OpMatchAny:
		s, ok := r.String(p.Field)
		if !ok {
			return false
		}
		for _, n := range p.Patterns {
			if patternRegexp(n).MatchString(s) {
				return true
			}
		}
		return false
	default:
		// operador desconocido: no matchea (nunca debería construirse)
		return false
	}
}

// compiled cachea por patrón; el set de patrones es el de las categorías.
var compiled sync.Map // string -> *regexp.Regexp

func patternRegexp(pattern string) *regexp.Regexp {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

func foldWords(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
