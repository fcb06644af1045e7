package catalog

import (
	"context"
	"testing"
	"time"

	"bestseller-sync/core/reconcile"
	"bestseller-sync/feature/bestsellers"
	"bestseller-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoListSnapshot = `{
  "results": {
    "lists": [
      {"list_name_encoded": "A", "books": [
        {"title": "Foo", "author": "Some Writer", "primary_isbn13": "111", "rank": 3},
        {"title": "The Women", "author": "Kristin Hannah", "primary_isbn13": "9781250178633", "rank": 1}
      ]},
      {"list_name_encoded": "B", "books": [
        {"title": "Foo", "author": "Some Writer", "primary_isbn13": "111", "rank": 1},
        {"title": "Nowhere", "author": "Nobody", "primary_isbn13": "000", "rank": 2}
      ]}
    ]
  }
}`

func specFor(t *testing.T, groups []bestsellers.TargetGroup) *reconcile.Spec {
	t.Helper()
	overview, err := bestsellers.Decode([]byte(twoListSnapshot))
	require.NoError(t, err)

	adapter := NewAdapter(false)
	adapter.now = func() time.Time { return fixedNow }
	spec := &reconcile.Spec{Adapter: adapter, ScopeName: "books"}
	for _, c := range bestsellers.BuildCollections(overview, groups) {
		spec.Groups = append(spec.Groups, c.Group())
	}
	return spec
}

func TestAdapter_EndToEnd(t *testing.T) {
	db := setupCatalog(t)
	ctx := context.Background()

	spec := specFor(t, []bestsellers.TargetGroup{
		{Name: "Foo Only", Lists: []string{"B"}},
		{Name: "Union", Lists: []string{"A", "B"}},
		{Name: "Missing", Lists: []string{"C"}},
	})

	result, err := reconcile.Run(ctx, spec, db, reconcile.ReconcileOptions{})
	require.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Equal(t, "lib-books", result.Plan.ScopeID)
	require.Len(t, result.Synced, 3)

	union := result.Synced[1]
	assert.Equal(t, "Union", union.Name)
	assert.Equal(t, 2, union.Members)
	// Foo ranks 1 via list B and sorts before The Women (also rank 1) by title.
	assert.Equal(t, []string{"cat-42", "b-women"}, bookIDs(membership(t, db, union.CollectionID)))

	fooOnly := membership(t, db, result.Synced[0].CollectionID)
	require.Len(t, fooOnly, 1)
	assert.Equal(t, "cat-42", fooOnly[0].BookID)
	assert.Equal(t, 1, fooOnly[0].Order)

	assert.Empty(t, membership(t, db, result.Synced[2].CollectionID))

	summary := result.Plan.Summary
	assert.Equal(t, 3, summary.Groups)
	assert.Equal(t, 5, summary.Records)
	assert.Equal(t, 3, summary.Resolved)
	assert.Equal(t, 3, summary.ByISBN)
	assert.Equal(t, 2, summary.Unresolved)
}

func TestAdapter_RerunIsStable(t *testing.T) {
	db := setupCatalog(t)
	ctx := context.Background()
	groups := []bestsellers.TargetGroup{{Name: "Union", Lists: []string{"A", "B"}}}

	first, err := reconcile.Run(ctx, specFor(t, groups), db, reconcile.ReconcileOptions{})
	require.NoError(t, err)
	second, err := reconcile.Run(ctx, specFor(t, groups), db, reconcile.ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Synced[0].CollectionID, second.Synced[0].CollectionID)
	assert.Equal(t, []string{"cat-42", "b-women"}, bookIDs(membership(t, db, second.Synced[0].CollectionID)))

	var count int64
	require.NoError(t, db.Model(&models.Collection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdapter_DryRunWritesNothing(t *testing.T) {
	db := setupCatalog(t)

	result, err := reconcile.Run(context.Background(), specFor(t, []bestsellers.TargetGroup{
		{Name: "Union", Lists: []string{"A", "B"}},
	}), db, reconcile.ReconcileOptions{DryRun: true})
	require.NoError(t, err)
	assert.False(t, result.Committed)
	assert.Equal(t, 2, result.Synced[0].Members)

	var count int64
	require.NoError(t, db.Model(&models.Collection{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.CollectionBook{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAdapter_UnknownLibrary(t *testing.T) {
	db := setupCatalog(t)
	spec := specFor(t, []bestsellers.TargetGroup{{Name: "Union", Lists: []string{"A"}}})
	spec.ScopeName = "audiobooks"

	_, err := reconcile.Run(context.Background(), spec, db, reconcile.ReconcileOptions{})
	assert.ErrorIs(t, err, ErrScopeNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Collection{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAdapter_Name(t *testing.T) {
	assert.Equal(t, "audiobookshelf", NewAdapter(true).Name())
}
