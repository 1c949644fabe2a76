package mongo

import (
	"fmt"

	"animal-shelter-dashboard/internal/domain/outcomes"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// toFilter compila un outcomes.Predicate al lenguaje de queries de Mongo.
// Las regex van como bson.Regex dentro de $in (no $regex), que Mongo sí acepta.
func toFilter(p outcomes.Predicate) (bson.D, error) {
	switch p.Op {
	case outcomes.OpAll, "":
		return bson.D{}, nil

	case outcomes.OpAnd:
		if len(p.Clauses) == 0 {
			return bson.D{}, nil
		}
		clauses := make(bson.A, 0, len(p.Clauses))
		for _, c := range p.Clauses {
			f, err := toFilter(c)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, f)
		}
		return bson.D{{Key: "$and", Value: clauses}}, nil

	case outcomes.OpEqualFold:
		return bson.D{{Key: p.Field, Value: bson.Regex{Pattern: p.ValuePattern(), Options: "i"}}}, nil

	case outcomes.OpBetween:
		return bson.D{{Key: p.Field, Value: bson.D{
			{Key: "$gte", Value: p.Min},
			{Key: "$lte", Value: p.Max},
		}}}, nil

	case outcomes.OpMatchAny:
		patterns := make(bson.A, 0, len(p.Patterns))
		for _, q := range p.QuotedPatterns() {
			patterns = append(patterns, bson.Regex{Pattern: q, Options: "i"})
		}
		return bson.D{{Key: p.Field, Value: bson.D{{Key: "$in", Value: patterns}}}}, nil

	default:
		return nil, fmt.Errorf("mongo: unsupported predicate op %q", p.Op)
	}
}

// toSet arma el update {$set: changes}.
func toSet(changes outcomes.Record) bson.D {
	set := bson.M{}
	for k, v := range changes {
		set[k] = v
	}
	return bson.D{{Key: "$set", Value: set}}
}
