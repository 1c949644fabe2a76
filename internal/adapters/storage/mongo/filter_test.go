package mongo

import (
	"testing"

	"animal-shelter-dashboard/internal/domain/outcomes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToFilter_Reset_IsEmptyDocument(t *testing.T) {
	f, err := toFilter(outcomes.BuildQuery(outcomes.CategoryReset))
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestToFilter_Disaster(t *testing.T) {
	f, err := toFilter(outcomes.BuildQuery(outcomes.CategoryDisaster))
	require.NoError(t, err)

	require.Len(t, f, 1)
	assert.Equal(t, "$and", f[0].Key)

	clauses, ok := f[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 4)

	assert.Equal(t, bson.D{{Key: "animal_type", Value: bson.Regex{Pattern: `^\s*dog\s*$`, Options: "i"}}}, clauses[0])
	assert.Equal(t, bson.D{{Key: "sex_upon_outcome", Value: bson.Regex{Pattern: `^\s*intact\s+male\s*$`, Options: "i"}}}, clauses[1])
	assert.Equal(t, bson.D{{Key: "age_upon_outcome_in_weeks", Value: bson.D{
		{Key: "$gte", Value: float64(20)},
		{Key: "$lte", Value: float64(300)},
	}}}, clauses[2])

	breed := clauses[3].(bson.D)
	in := breed[0].Value.(bson.D)[0]
	assert.Equal(t, "$in", in.Key)
	assert.Contains(t, in.Value.(bson.A), bson.Regex{Pattern: "Golden Retriever", Options: "i"})
	assert.Len(t, in.Value.(bson.A), 5)
}

func TestToFilter_UnknownOp(t *testing.T) {
	_, err := toFilter(outcomes.Predicate{Op: "near"})
	require.Error(t, err)
}

func TestToSet(t *testing.T) {
	u := toSet(outcomes.Record{"name": "Rex"})
	require.Len(t, u, 1)
	assert.Equal(t, "$set", u[0].Key)
	assert.Equal(t, bson.M{"name": "Rex"}, u[0].Value)
}
