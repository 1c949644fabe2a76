package memory

import (
	"context"
	"testing"

	"animal-shelter-dashboard/internal/domain/outcomes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDogs() []outcomes.Record {
	return []outcomes.Record{
		{"animal_type": "Dog", "breed": "Rottweiler", "name": "Rex"},
		{"animal_type": "Dog", "breed": "Rottweiler", "name": "Max"},
		{"animal_type": "Dog", "breed": "Beagle", "name": "Bo"},
		{"animal_type": "Cat", "breed": "Siamese", "name": "Tom"},
	}
}

func TestOutcomesRepo_FindAll_StripsRowKey(t *testing.T) {
	repo := NewOutcomesRepo(outcomes.Record{"_id": "x", "breed": "Beagle"})

	got, err := repo.Find(context.Background(), outcomes.All())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Has("_id"))
}

func TestOutcomesRepo_Find_ReturnsCopies(t *testing.T) {
	repo := NewOutcomesRepo(seedDogs()...)
	ctx := context.Background()

	got, err := repo.Find(ctx, outcomes.EqualFold("name", "rex"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	got[0]["name"] = "mutated"

	again, err := repo.Find(ctx, outcomes.EqualFold("name", "rex"))
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestOutcomesRepo_Update_CountsModifiedNotMatched(t *testing.T) {
	ctx := context.Background()
	rott := outcomes.EqualFold("breed", "rottweiler")

	tests := []struct {
		name    string
		pred    outcomes.Predicate
		changes outcomes.Record
		many    bool
		want    int64
	}{
		{"no match", outcomes.EqualFold("breed", "poodle"), outcomes.Record{"name": "x"}, true, 0},
		{"one of many, single", rott, outcomes.Record{"name": "x"}, false, 1},
		{"many", rott, outcomes.Record{"name": "x"}, true, 2},
		{"matched but unchanged", outcomes.EqualFold("name", "rex"), outcomes.Record{"name": "Rex"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewOutcomesRepo(seedDogs()...)
			n, err := repo.Update(ctx, tt.pred, tt.changes, tt.many)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestOutcomesRepo_UpdateOne_FirstMatchUnchanged_ModifiesNothing(t *testing.T) {
	repo := NewOutcomesRepo(seedDogs()...)
	ctx := context.Background()

	// primer rottweiler ya se llama Rex: update_one no sigue buscando
	n, err := repo.Update(ctx, outcomes.EqualFold("breed", "Rottweiler"), outcomes.Record{"name": "Rex"}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestOutcomesRepo_Delete(t *testing.T) {
	ctx := context.Background()
	rott := outcomes.EqualFold("breed", "rottweiler")

	repo := NewOutcomesRepo(seedDogs()...)
	n, err := repo.Delete(ctx, outcomes.EqualFold("breed", "poodle"), true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = repo.Delete(ctx, rott, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 3, repo.Len())

	repo = NewOutcomesRepo(seedDogs()...)
	n, err = repo.Delete(ctx, rott, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 2, repo.Len())
}

func TestOutcomesRepo_ClosedFails(t *testing.T) {
	repo := NewOutcomesRepo(seedDogs()...)
	repo.Close()

	_, err := repo.Find(context.Background(), outcomes.All())
	assert.ErrorIs(t, err, ErrClosed)
	_, err = repo.InsertOne(context.Background(), outcomes.Record{"a": 1})
	assert.ErrorIs(t, err, ErrClosed)
}
