package client

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	types    []model.ProductType
	typesErr error
	listings []model.ProductListing
	listErr  error
}

func (f *fakeFetcher) ProductTypes() ([]model.ProductType, error) {
	return f.types, f.typesErr
}

func (f *fakeFetcher) ProductListings(typeID *uint) ([]model.ProductListing, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if typeID == nil {
		return f.listings, nil
	}
	var out []model.ProductListing
	for _, p := range f.listings {
		if p.ProductTypeID == *typeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func catalogFixture() *fakeFetcher {
	return &fakeFetcher{
		types: []model.ProductType{
			{ID: 1, Name: "food", SupportsAddons: true},
			{ID: 2, Name: "merch"},
		},
		listings: []model.ProductListing{
			{ID: 1, Name: "Masala Chai", ProductTypeID: 1, ProductType: "food"},
			{ID: 2, Name: "Mug", ProductTypeID: 2, ProductType: "merch"},
			{ID: 3, Name: "Samosa", ProductTypeID: 1, ProductType: "food"},
		},
	}
}

func TestCatalogViewLoad(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		view := NewCatalogView(catalogFixture())
		assert.Equal(t, CatalogLoading, view.State())

		view.Load()
		assert.Equal(t, CatalogReady, view.State())
		assert.Len(t, view.Types(), 2)
		assert.Len(t, view.Products(), 3)
	})

	t.Run("TypeFetchFailureIsNonFatal", func(t *testing.T) {
		api := catalogFixture()
		api.typesErr = assert.AnError
		view := NewCatalogView(api)

		view.Load()
		// The filter menu degrades to no options; the page still renders.
		assert.Equal(t, CatalogReady, view.State())
		assert.Empty(t, view.Types())
		assert.Len(t, view.Products(), 3)
	})

	t.Run("ListingFetchFailure", func(t *testing.T) {
		api := catalogFixture()
		api.listErr = assert.AnError
		view := NewCatalogView(api)

		view.Load()
		assert.Equal(t, CatalogError, view.State())
		assert.NotEmpty(t, view.ErrorMessage())
		assert.Empty(t, view.Products())
	})
}

func TestCatalogViewFilter(t *testing.T) {
	view := NewCatalogView(catalogFixture())
	view.Load()

	typeID := uint(1)
	view.SetFilter(&typeID)
	require.Equal(t, CatalogReady, view.State())
	require.Len(t, view.Products(), 2)
	for _, p := range view.Products() {
		assert.Equal(t, typeID, p.ProductTypeID)
	}

	view.SetFilter(nil)
	assert.Len(t, view.Products(), 3)
}

func TestCatalogViewGroups(t *testing.T) {
	view := NewCatalogView(catalogFixture())
	view.Load()

	groups := view.Groups()
	require.Len(t, groups, 2)

	// Sections follow first-seen order while scanning the listing.
	assert.Equal(t, "food", groups[0].Name)
	require.Len(t, groups[0].Products, 2)
	assert.Equal(t, "Masala Chai", groups[0].Products[0].Name)
	assert.Equal(t, "Samosa", groups[0].Products[1].Name)

	assert.Equal(t, "merch", groups[1].Name)
	require.Len(t, groups[1].Products, 1)
}

func TestCatalogViewStaleResponseDropped(t *testing.T) {
	view := NewCatalogView(catalogFixture())

	staleSeq, _ := view.StartFetch()
	freshSeq, _ := view.StartFetch()

	fresh := []model.ProductListing{{ID: 9, Name: "Fresh"}}
	require.True(t, view.Apply(freshSeq, fresh, nil))
	assert.Equal(t, CatalogReady, view.State())

	// The slower, older response resolves last but must not win.
	stale := []model.ProductListing{{ID: 1, Name: "Stale"}}
	require.False(t, view.Apply(staleSeq, stale, nil))
	require.Len(t, view.Products(), 1)
	assert.Equal(t, "Fresh", view.Products()[0].Name)

	// A stale error must not clobber fresh data either.
	require.False(t, view.Apply(staleSeq, nil, assert.AnError))
	assert.Equal(t, CatalogReady, view.State())
}

func TestSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Masala Chai", "masala-chai"},
		{"Masala  Chai Latte!", "masala-chai-latte"},
		{"Mug 2.0", "mug-2-0"},
		{"--Ice Cream--", "ice-cream"},
		{"ALL CAPS", "all-caps"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slug(tc.name), "Slug(%q)", tc.name)
	}
}
