package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"animal-shelter-dashboard/internal/domain/outcomes"
	"animal-shelter-dashboard/internal/platform/config"
	"animal-shelter-dashboard/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_RequiresExactlyOneSource(t *testing.T) {
	for _, args := range [][]string{
		{"seed"},
		{"seed", "--file", "a.csv", "--url", "http://example.invalid/feed.json"},
	} {
		cmd := rootCmd()
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err, "args=%v", args)
		assert.Contains(t, err.Error(), "exactly one of --file or --url")
	}
}

func TestSeed_FromCSV(t *testing.T) {
	t.Setenv("STORE", "memory")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "outcomes.csv")
	csv := ",animal_type,breed,name,age_upon_outcome_in_weeks\n" +
		"0,Dog,Labrador Retriever Mix,Rex,52\n" +
		"1,Cat,Domestic Shorthair Mix,Tom,10\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs([]string{"seed", "--file", path})
	cmd.SetOut(&out)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "inserted 2 of 2 records (0 failed)\n", out.String())
}

func TestSeed_MissingFile(t *testing.T) {
	t.Setenv("STORE", "memory")

	cmd := rootCmd()
	cmd.SetArgs([]string{"seed", "--file", filepath.Join(t.TempDir(), "nope.csv")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestServe_SeedFileErrorsBeforeListening(t *testing.T) {
	t.Setenv("STORE", "memory")
	t.Setenv("LOG_LEVEL", "error")

	cmd := rootCmd()
	cmd.SetArgs([]string{"serve", "--seed-file", filepath.Join(t.TempDir(), "missing.csv")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestSeedFile_FillsMemoryStore(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"STORE": "memory"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "outcomes.csv")
	require.NoError(t, os.WriteFile(path, []byte("animal_type,breed\nDog,Beagle\nDog,Akita\n"), 0o600))

	ctx := context.Background()
	repo, closeRepo, err := openRepo(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	recs, err := loadRecords(ctx, path, "", "")
	require.NoError(t, err)

	store := outcomes.NewStore(repo, logger.NewNop())
	res := importRecords(ctx, store, recs, logger.NewNop())
	assert.Equal(t, outcomes.ImportResult{Inserted: 2}, res)
	assert.Len(t, store.Read(ctx, outcomes.All()), 2)
}

func TestOpenRepo_Memory(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"STORE": "memory"})
	require.NoError(t, err)

	repo, closeRepo, err := openRepo(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	s := outcomes.NewStore(repo, logger.NewNop())
	assert.True(t, s.Create(context.Background(), outcomes.Record{"animal_type": "Dog"}))
	assert.Len(t, s.Read(context.Background(), outcomes.All()), 1)
}
