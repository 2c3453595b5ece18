package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/catalogkeeper/internal/client/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newStore(t *testing.T, v models.Version) (*Store, *kv.MemoryRepository) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	return New(repo, v, logging.NewNopLogger()), repo
}

func TestLoad_AbsentKeyUsesSeed(t *testing.T) {
	s, repo := newStore(t, models.VersionBasic)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.VersionBasic.Seed(), got)
	assert.Zero(t, repo.Writes(), "loading must not persist")

	s2, _ := newStore(t, models.VersionFull)
	got, err = s2.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_MalformedIsCorruptData(t *testing.T) {
	s, repo := newStore(t, models.VersionFull)
	require.NoError(t, repo.Set(context.Background(), models.VersionFull.StorageKey(), `[{"id":`))

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, common.ErrCorruptData)

	raw, _, _ := repo.Get(context.Background(), models.VersionFull.StorageKey())
	assert.Equal(t, `[{"id":`, raw, "corrupt data must be left in place")
}

func TestLoad_NullIsEmpty(t *testing.T) {
	s, repo := newStore(t, models.VersionBasic)
	require.NoError(t, repo.Set(context.Background(), models.VersionBasic.StorageKey(), "null"))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_RepositoryError(t *testing.T) {
	boom := errors.New("locked")
	s := New(failingGetRepo{err: boom}, models.VersionBasic, logging.NewNopLogger())

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, boom)
}

type failingGetRepo struct {
	kv.Repository
	err error
}

func (f failingGetRepo) Get(context.Context, string) (string, bool, error) { return "", false, f.err }

func TestPersistLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()

	full := []models.Product{
		{ID: 3, Name: "Chips", Description: "Salted potato chips, 200g", Price: 1.99, Category: "Snack",
			ReleaseDate: mustDate(t, "2024-01-15"), Stock: 0, IsActive: true},
		{ID: 1, Name: "Soap", Description: "", Price: 0.5, Category: "Household",
			ReleaseDate: mustDate(t, "2020-12-31"), Stock: 42, IsActive: false},
	}
	basic := []models.Product{
		{ID: 1700000000000, Name: "Snack", Description: ""},
		{ID: 2, Name: "Beverages", Description: "Assorted cold & hot drinks"},
	}

	for _, tc := range []struct {
		version  models.Version
		products []models.Product
	}{
		{models.VersionFull, full},
		{models.VersionBasic, basic},
	} {
		t.Run(string(tc.version), func(t *testing.T) {
			s, repo := newStore(t, tc.version)
			s.products = tc.products
			require.NoError(t, s.Persist(ctx))

			reloaded := New(repo, tc.version, logging.NewNopLogger())
			got, err := reloaded.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tc.products, got))
		})
	}
}

func TestEncode_ShapePerVersion(t *testing.T) {
	p := []models.Product{{ID: 1, Name: "Tea", Description: "d", Price: 2, Category: "Beverage", Stock: 1, IsActive: true,
		ReleaseDate: mustDate(t, "2024-01-01")}}

	basic, err := Encode(models.VersionBasic, p)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Tea","description":"d"}]`, basic)

	full, err := Encode(models.VersionFull, p)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Tea","description":"d","price":2,"category":"Beverage",
		"releaseDate":"2024-01-01","stock":1,"isActive":true}]`, full)

	empty, err := Encode(models.VersionFull, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestInsertFront_PrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t, models.VersionBasic)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, s.InsertFront(ctx, models.Product{ID: 10, Name: "Snack"}))

	got := s.Products()
	require.Len(t, got, 3)
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, 1, repo.Writes())

	raw, _, _ := repo.Get(ctx, models.VersionBasic.StorageKey())
	decoded, err := Decode(models.VersionBasic, raw)
	require.NoError(t, err)
	assert.Equal(t, got, decoded)
}

func TestReplace_PreservesIDAndPosition(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t, models.VersionBasic)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	found, err := s.Replace(ctx, 2, func(p *models.Product) {
		p.Name = "Drinks"
		p.ID = 999
	})
	require.NoError(t, err)
	require.True(t, found)

	got := s.Products()
	assert.Equal(t, models.Product{ID: 2, Name: "Drinks", Description: "Assorted cold & hot drinks"}, got[1])
	assert.Equal(t, 1, repo.Writes())
}

func TestReplace_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t, models.VersionBasic)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	found, err := s.Replace(ctx, 404, func(p *models.Product) { p.Name = "x" })
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, repo.Writes())
	assert.Equal(t, models.VersionBasic.Seed(), s.Products())
}

func TestRemove_FoundAndIdempotent(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t, models.VersionBasic)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	found, err := s.Remove(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, repo.Writes())
	before, _, _ := repo.Get(ctx, models.VersionBasic.StorageKey())

	found, err = s.Remove(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 1, repo.Writes(), "removing a missing id must not persist")

	after, _, _ := repo.Get(ctx, models.VersionBasic.StorageKey())
	assert.Equal(t, before, after)
}

func TestMutation_PersistFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t, models.VersionBasic)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	repo.SetErr = errors.New("quota exceeded")

	require.Error(t, s.InsertFront(ctx, models.Product{ID: 5, Name: "x"}))
	_, err = s.Remove(ctx, 1)
	require.Error(t, err)
	_, err = s.Replace(ctx, 2, func(p *models.Product) { p.Name = "y" })
	require.Error(t, err)

	assert.Equal(t, models.VersionBasic.Seed(), s.Products())
}

func TestProducts_ReturnsCopy(t *testing.T) {
	s, _ := newStore(t, models.VersionBasic)
	_, err := s.Load(context.Background())
	require.NoError(t, err)

	list := s.Products()
	list[0].Name = "mutated"

	p, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Food", p.Name)

	_, ok = s.Find(3)
	assert.False(t, ok)
}

func TestNextID_NeverCollides(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t, models.VersionBasic)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	seen := map[int64]bool{1: true, 2: true}
	for i := 0; i < 100; i++ {
		id := s.NextID()
		require.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
		require.NoError(t, s.InsertFront(ctx, models.Product{ID: id, Name: "p"}))
	}

	// ids stay unique even after the highest record is removed
	top := s.Products()[0].ID
	_, err = s.Remove(ctx, top)
	require.NoError(t, err)
	assert.Greater(t, s.NextID(), top)
}
