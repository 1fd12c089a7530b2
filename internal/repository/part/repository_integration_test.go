//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
	tcmongo "github.com/Bryan-Quispe/Computer-Parts/platform/testcontainers/mongo"
)

var testDB *mongo.Database

func TestMain(m *testing.M) {
	ctx := context.Background()

	c, err := tcmongo.NewContainer(ctx, tcmongo.WithDatabase("parts_repo_test"))
	if err != nil {
		panic(err)
	}
	testDB = c.Client().Database("parts_repo_test")

	code := m.Run()

	_ = c.Terminate(ctx)
	os.Exit(code)
}

func newTestRepo(t *testing.T) (*repository, *mongo.Collection) {
	t.Helper()

	ctx := context.Background()
	coll := testDB.Collection(t.Name())
	require.NoError(t, EnsureIndexes(ctx, coll))
	t.Cleanup(func() { _ = coll.Drop(ctx) })

	return NewPartRepository(coll), coll
}

func gpu() *model.Part {
	return &model.Part{
		ID:          "P100",
		Name:        "GPU",
		Brand:       "MSI",
		Price:       499.99,
		Stock:       3,
		Description: lo.ToPtr("RTX"),
	}
}

func TestRepositoryCreateAndRead(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	p := gpu()
	gid, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.False(t, gid.IsZero())
	assert.Equal(t, gid, p.GeneratedID)

	byCustom, err := repo.PartByCustomID(ctx, "P100")
	require.NoError(t, err)
	assert.Equal(t, p, byCustom)

	byGenerated, err := repo.PartByGeneratedID(ctx, gid)
	require.NoError(t, err)
	assert.Equal(t, p, byGenerated)

	_, err = repo.PartByCustomID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrPartNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepositoryCreateRejections(t *testing.T) {
	ctx := context.Background()
	repo, coll := newTestRepo(t)

	_, err := repo.Create(ctx, gpu())
	require.NoError(t, err)

	dup := gpu()
	dup.Name = "changed"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, model.ErrDuplicatePartID)

	neg := gpu()
	neg.ID = "P101"
	neg.Stock = -1
	_, err = repo.Create(ctx, neg)
	assert.ErrorIs(t, err, model.ErrNegativeStock)

	n, err := coll.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	stored, err := repo.PartByCustomID(ctx, "P100")
	require.NoError(t, err)
	assert.Equal(t, "GPU", stored.Name)
}

func TestRepositoryUniqueIndex(t *testing.T) {
	ctx := context.Background()
	_, coll := newTestRepo(t)

	_, err := coll.InsertOne(ctx, EntityFromModel(&model.Part{GeneratedID: model.NewGeneratedID(), ID: "X"}))
	require.NoError(t, err)

	_, err = coll.InsertOne(ctx, EntityFromModel(&model.Part{GeneratedID: model.NewGeneratedID(), ID: "X"}))
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func TestRepositoryUpdateByCustomIDMerges(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	_, err := repo.Create(ctx, gpu())
	require.NoError(t, err)

	n, err := repo.UpdateByCustomID(ctx, "P100", model.PartUpdate{Stock: lo.ToPtr(int64(0))})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.PartByCustomID(ctx, "P100")
	require.NoError(t, err)
	assert.Zero(t, got.Stock)
	assert.Equal(t, "RTX", *got.Description)

	n, err = repo.UpdateByCustomID(ctx, "P100", model.PartUpdate{Stock: lo.ToPtr(int64(0))})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.UpdateByCustomID(ctx, "nope", model.PartUpdate{Name: lo.ToPtr("x")})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.UpdateByCustomID(ctx, "P100", model.PartUpdate{Stock: lo.ToPtr(int64(-2))})
	assert.ErrorIs(t, err, model.ErrNegativeStock)

	other := gpu()
	other.ID = "P200"
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	_, err = repo.UpdateByCustomID(ctx, "P200", model.PartUpdate{ID: lo.ToPtr(model.CustomID("P100"))})
	assert.ErrorIs(t, err, model.ErrDuplicatePartID)
}

func TestRepositoryGeneratedIDWrites(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	gid, err := repo.Create(ctx, gpu())
	require.NoError(t, err)

	replacement := &model.Part{ID: "P100", Name: "GPU Ti", Brand: "MSI", Price: 599, Stock: 1}
	n, err := repo.UpdateByGeneratedID(ctx, gid, replacement)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.PartByGeneratedID(ctx, gid)
	require.NoError(t, err)
	assert.Equal(t, "GPU Ti", got.Name)
	assert.Nil(t, got.Description)

	n, err = repo.DeleteByGeneratedID(ctx, model.NewGeneratedID())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteByGeneratedID(ctx, gid)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.DeleteByCustomID(ctx, "P100")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepositoryBootstrap(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, PartsBootstrap(ctx, repo))
	require.NoError(t, PartsBootstrap(ctx, repo))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(DemoParts()))

	p3, err := repo.PartByCustomID(ctx, "P003")
	require.NoError(t, err)
	assert.True(t, p3.OutOfStock())
}
