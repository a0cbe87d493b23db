package service

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeVariantRepo struct {
	variants map[uint]model.Variant
	nextID   uint
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{variants: map[uint]model.Variant{}}
}

func (f *fakeVariantRepo) Create(v *model.Variant) error {
	f.nextID++
	v.ID = f.nextID
	f.variants[v.ID] = *v
	return nil
}

func (f *fakeVariantRepo) FindAll() ([]model.Variant, error) {
	var out []model.Variant
	for _, v := range f.variants {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVariantRepo) FindByID(id uint) (*model.Variant, error) {
	v, ok := f.variants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (f *fakeVariantRepo) Update(v *model.Variant) error {
	f.variants[v.ID] = *v
	return nil
}

func (f *fakeVariantRepo) Delete(id uint) (int64, error) {
	if _, ok := f.variants[id]; !ok {
		return 0, nil
	}
	delete(f.variants, id)
	return 1, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

func TestCreateVariant(t *testing.T) {
	t.Run("EchoesInput", func(t *testing.T) {
		svc := NewVariantService(newFakeVariantRepo())

		created, err := svc.CreateVariant(&CreateVariantRequest{
			ProductID: uintPtr(1),
			Size:      strPtr("L"),
			Color:     strPtr("blue"),
			Price:     decPtr("250.00"),
			Stock:     intPtr(4),
			SKU:       strPtr("MUG-L-BLUE"),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ProductID)
		assert.Equal(t, "L", created.Size)
		assert.True(t, created.Price.Equal(decimal.RequireFromString("250.00")))
		assert.Equal(t, 4, created.Stock)
		assert.Equal(t, "MUG-L-BLUE", created.SKU)
	})

	t.Run("ExplicitZeroStockAccepted", func(t *testing.T) {
		svc := NewVariantService(newFakeVariantRepo())

		created, err := svc.CreateVariant(&CreateVariantRequest{
			ProductID: uintPtr(1),
			Price:     decPtr("99.00"),
			Stock:     intPtr(0),
			SKU:       strPtr("SOLD-OUT"),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, created.Stock)
	})

	t.Run("MissingSKU", func(t *testing.T) {
		svc := NewVariantService(newFakeVariantRepo())

		_, err := svc.CreateVariant(&CreateVariantRequest{
			ProductID: uintPtr(1),
			Price:     decPtr("99.00"),
			Stock:     intPtr(1),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestUpdateVariant(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo())
	created, err := svc.CreateVariant(&CreateVariantRequest{
		ProductID: uintPtr(1),
		Size:      strPtr("M"),
		Price:     decPtr("250.00"),
		Stock:     intPtr(4),
		SKU:       strPtr("MUG-M"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateVariant(created.ID, &UpdateVariantRequest{
		Stock: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stock)
	assert.Equal(t, "M", updated.Size)
	assert.Equal(t, "MUG-M", updated.SKU)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("250.00")))

	_, err = svc.UpdateVariant(999, &UpdateVariantRequest{Stock: intPtr(1)})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVariant(t *testing.T) {
	svc := NewVariantService(newFakeVariantRepo())
	created, err := svc.CreateVariant(&CreateVariantRequest{
		ProductID: uintPtr(1),
		Price:     decPtr("10.00"),
		Stock:     intPtr(1),
		SKU:       strPtr("X"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVariant(created.ID))
	require.ErrorIs(t, svc.DeleteVariant(created.ID), ErrNotFound)

	_, err = svc.GetVariant(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
