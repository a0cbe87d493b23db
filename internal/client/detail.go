package client

import (
	"errors"

	"go-catalog-api/internal/model"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Quantity cap when a product has no variants to bound against.
const noVariantQuantityCap = 999

// DetailView holds the purchase configuration for one product: the chosen
// variant, the toggled add-ons, and a quantity bounded by the variant's stock.
// Every mutation is local; nothing here touches the network.
type DetailView struct {
	product         model.ProductListing
	selectedVariant *model.Variant
	selectedAddons  []model.Addon
	quantity        int
}

// NewDetailView locates the product by id in the listing collection and
// initializes the selection: first variant (if any), no add-ons, quantity 1.
func NewDetailView(listings []model.ProductListing, id uint) (*DetailView, error) {
	for _, p := range listings {
		if p.ID == id {
			d := &DetailView{product: p, quantity: 1}
			if len(d.product.Variants) > 0 {
				d.selectedVariant = &d.product.Variants[0]
			}
			return d, nil
		}
	}
	return nil, ErrProductNotFound
}

func (d *DetailView) Product() model.ProductListing   { return d.product }
func (d *DetailView) SelectedVariant() *model.Variant { return d.selectedVariant }
func (d *DetailView) SelectedAddons() []model.Addon   { return d.selectedAddons }
func (d *DetailView) Quantity() int                   { return d.quantity }

// SelectVariant switches to another of the product's variants and resets the
// quantity to 1. Unknown ids are ignored.
func (d *DetailView) SelectVariant(id uint) bool {
	for i := range d.product.Variants {
		if d.product.Variants[i].ID == id {
			d.selectedVariant = &d.product.Variants[i]
			d.quantity = 1
			return true
		}
	}
	return false
}

// ToggleAddon adds the add-on to the selection, or removes it when already
// selected, matching by id. Only the product's own add-ons count. Reports
// whether the add-on is selected afterward.
func (d *DetailView) ToggleAddon(id uint) bool {
	for i, a := range d.selectedAddons {
		if a.ID == id {
			d.selectedAddons = append(d.selectedAddons[:i], d.selectedAddons[i+1:]...)
			return false
		}
	}
	for _, a := range d.product.Addons {
		if a.ID == id {
			d.selectedAddons = append(d.selectedAddons, a)
			return true
		}
	}
	return false
}

// Increment raises the quantity; no-op once it reaches the selected variant's
// stock.
func (d *DetailView) Increment() {
	limit := noVariantQuantityCap
	if d.selectedVariant != nil {
		limit = d.selectedVariant.Stock
	}
	if d.quantity < limit {
		d.quantity++
	}
}

// Decrement lowers the quantity, bottoming out at 1.
func (d *DetailView) Decrement() {
	if d.quantity > 1 {
		d.quantity--
	}
}

// AddonsAvailable reports whether the add-on picker should be offered: the
// product's type must allow add-ons and the product must have some linked.
func (d *DetailView) AddonsAvailable() bool {
	return d.product.SupportsAddons && len(d.product.Addons) > 0
}

// TotalPrice is (selected variant price + selected add-on prices) × quantity.
func (d *DetailView) TotalPrice() decimal.Decimal {
	price := decimal.Zero
	if d.selectedVariant != nil {
		price = d.selectedVariant.Price
	}
	for _, a := range d.selectedAddons {
		price = price.Add(a.Price)
	}
	return price.Mul(decimal.NewFromInt(int64(d.quantity)))
}
