package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdberg/huisportaal/internal/repository/store"
	"github.com/mvdberg/huisportaal/internal/testutil"
)

func TestFilmRepository_ListByOwner(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := store.NewFilmRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	for i := 0; i < 3; i++ {
		testutil.NewFilmBuilder(owner.ID).
			WithTitle(fmt.Sprintf("film %d", i)).
			Build(t, testDB.DB)
	}
	testutil.NewFilmBuilder(other.ID).WithTitle("not yours").Build(t, testDB.DB)

	films, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, films, 3)

	for i, film := range films {
		assert.Equal(t, fmt.Sprintf("film %d", i), film.Title)
		assert.Equal(t, owner.ID, film.OwnerID)
	}
}

func TestFilmRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := store.NewFilmRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	film := testutil.NewFilmBuilder(owner.ID).
		WithTitle("The Matrix").
		WithYear("1999").
		WithWatched(1).
		WithTimestamp("2026-01-01 20:00").
		Build(t, testDB.DB)

	// Watched back to 0 must stick: the zero value is a real update here.
	affected, err := repo.Update(ctx, film.ID, owner.ID, "The Matrix Reloaded", "2003", 0, "2026-02-01 21:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	films, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "The Matrix Reloaded", films[0].Title)
	assert.Equal(t, "2003", films[0].Year)
	assert.Equal(t, 0, films[0].Watched)
	assert.Equal(t, "2026-02-01 21:00", films[0].Timestamp)
}

func TestFilmRepository_OwnerScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := store.NewFilmRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	attacker, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	film := testutil.NewFilmBuilder(owner.ID).WithTitle("Alien").Build(t, testDB.DB)

	affected, err := repo.Update(ctx, film.ID, attacker.ID, "Aliens", "1986", 1, "x")
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.Delete(ctx, film.ID, attacker.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	films, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "Alien", films[0].Title)
}

func TestFilmRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := store.NewFilmRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	film := testutil.NewFilmBuilder(owner.ID).Build(t, testDB.DB)

	affected, err := repo.Delete(ctx, film.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	films, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, films)
}
