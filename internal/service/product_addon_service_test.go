package service

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ productID, addonID uint }

type fakeLinkRepo struct {
	links  map[pair]bool
	addons map[uint]model.Addon
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[pair]bool{}, addons: map[uint]model.Addon{}}
}

func (f *fakeLinkRepo) Create(link *model.ProductAddon) error {
	f.links[pair{link.ProductID, link.AddonID}] = true
	return nil
}

func (f *fakeLinkRepo) FindAddonsByProduct(productID uint) ([]model.Addon, error) {
	var out []model.Addon
	for p := range f.links {
		if p.productID == productID {
			out = append(out, f.addons[p.addonID])
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) Delete(productID, addonID uint) (int64, error) {
	p := pair{productID, addonID}
	if !f.links[p] {
		return 0, nil
	}
	delete(f.links, p)
	return 1, nil
}

func TestProductAddonLinks(t *testing.T) {
	t.Run("CreateRequiresBothIDs", func(t *testing.T) {
		svc := NewProductAddonService(newFakeLinkRepo())

		_, err := svc.CreateLink(&LinkRequest{ProductID: uintPtr(1)})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("CreateAndFetch", func(t *testing.T) {
		repo := newFakeLinkRepo()
		repo.addons[5] = model.Addon{ID: 5, Name: "Extra Ginger"}
		svc := NewProductAddonService(repo)

		link, err := svc.CreateLink(&LinkRequest{ProductID: uintPtr(1), AddonID: uintPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, uint(1), link.ProductID)
		assert.Equal(t, uint(5), link.AddonID)

		addons, err := svc.GetAddonsForProduct(1)
		require.NoError(t, err)
		require.Len(t, addons, 1)
		assert.Equal(t, "Extra Ginger", addons[0].Name)
	})

	t.Run("FetchWithNoLinksIsEmptyNotNull", func(t *testing.T) {
		svc := NewProductAddonService(newFakeLinkRepo())

		addons, err := svc.GetAddonsForProduct(42)
		require.NoError(t, err)
		assert.NotNil(t, addons)
		assert.Empty(t, addons)
	})

	t.Run("DeleteIsStrict", func(t *testing.T) {
		repo := newFakeLinkRepo()
		svc := NewProductAddonService(repo)

		_, err := svc.CreateLink(&LinkRequest{ProductID: uintPtr(1), AddonID: uintPtr(5)})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteLink(&LinkRequest{ProductID: uintPtr(1), AddonID: uintPtr(5)}))
		require.ErrorIs(t,
			svc.DeleteLink(&LinkRequest{ProductID: uintPtr(1), AddonID: uintPtr(5)}),
			ErrNotFound)
	})
}
