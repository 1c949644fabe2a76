package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"animal-shelter-dashboard/internal/domain/outcomes"
)

// whereBuilder compila un outcomes.Predicate a SQL sobre la columna JSONB `data`.
// Los nombres de campo también van como parámetro (data->>$n), nunca interpolados.
type whereBuilder struct {
	args []any
}

func newWhereBuilder(args ...any) *whereBuilder {
	return &whereBuilder{args: args}
}

func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *whereBuilder) compile(p outcomes.Predicate) (string, error) {
	switch p.Op {
	case outcomes.OpAll, "":
		return "TRUE", nil

	case outcomes.OpAnd:
		if len(p.Clauses) == 0 {
			return "TRUE", nil
		}
		parts := make([]string, 0, len(p.Clauses))
		for _, c := range p.Clauses {
			s, err := b.compile(c)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "(" + strings.Join(parts, " AND ") + ")", nil

	case outcomes.OpEqualFold:
		f := b.arg(p.Field)
		return fmt.Sprintf("((data->>%s) ~* %s)", f, b.arg(p.ValuePattern())), nil

	case outcomes.OpBetween:
		f := b.arg(p.Field)
		lo := b.arg(p.Min)
		hi := b.arg(p.Max)
		// solo números JSON; un string no castea y no debe romper la query
		return fmt.Sprintf(
			"((CASE WHEN jsonb_typeof(data->%s) = 'number' THEN (data->>%s)::float8 END) BETWEEN %s AND %s)",
			f, f, lo, hi,
		), nil

	case outcomes.OpMatchAny:
		patterns := p.QuotedPatterns()
		if len(patterns) == 0 {
			return "FALSE", nil
		}
		f := b.arg(p.Field)
		parts := make([]string, 0, len(patterns))
		for _, q := range patterns {
			parts = append(parts, fmt.Sprintf("(data->>%s) ~* %s", f, b.arg(q)))
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil

	default:
		return "", fmt.Errorf("postgres: unsupported predicate op %q", p.Op)
	}
}
