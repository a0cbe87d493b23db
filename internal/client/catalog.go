package client

import (
	"log"
	"strings"

	"go-catalog-api/internal/model"
)

// Fetcher is the slice of the API the catalog view depends on.
type Fetcher interface {
	ProductTypes() ([]model.ProductType, error)
	ProductListings(typeID *uint) ([]model.ProductListing, error)
}

type CatalogState int

const (
	CatalogLoading CatalogState = iota
	CatalogError
	CatalogReady
)

// TypeGroup is one catalog section: a type name and its products in
// first-seen order.
type TypeGroup struct {
	Name     string
	Products []model.ProductListing
}

// CatalogView drives the product listing screen. Mutations must come from a
// single goroutine; out-of-order fetch responses are handled by the sequence
// guard in Apply.
type CatalogView struct {
	api      Fetcher
	state    CatalogState
	errMsg   string
	types    []model.ProductType
	products []model.ProductListing
	filter   *uint
	seq      uint64
}

func NewCatalogView(api Fetcher) *CatalogView {
	return &CatalogView{api: api, state: CatalogLoading}
}

// Load fetches the type list once plus the initial unfiltered listings. A
// failed type fetch degrades to an empty filter menu instead of failing the
// page.
func (v *CatalogView) Load() {
	types, err := v.api.ProductTypes()
	if err != nil {
		log.Printf("Error fetching product types: %v", err)
	} else {
		v.types = types
	}
	v.Refresh()
}

// SetFilter switches the active type filter (nil = all) and refetches.
func (v *CatalogView) SetFilter(typeID *uint) {
	v.filter = typeID
	v.Refresh()
}

// Refresh runs one fetch cycle synchronously: StartFetch then Apply.
func (v *CatalogView) Refresh() {
	seq, typeID := v.StartFetch()
	listings, err := v.api.ProductListings(typeID)
	v.Apply(seq, listings, err)
}

// StartFetch re-enters Loading and hands out the sequence token for the fetch
// about to be issued. A caller running the fetch on its own goroutine passes
// the token back through Apply.
func (v *CatalogView) StartFetch() (uint64, *uint) {
	v.seq++
	v.state = CatalogLoading
	v.errMsg = ""
	return v.seq, v.filter
}

// Apply installs a fetch result. A response whose token no longer matches the
// latest StartFetch is stale and dropped, so a slow response never overwrites
// a fresher one. Reports whether the result was applied.
func (v *CatalogView) Apply(seq uint64, listings []model.ProductListing, err error) bool {
	if seq != v.seq {
		return false
	}
	if err != nil {
		v.state = CatalogError
		v.errMsg = "Failed to fetch products. Please try again later."
		v.products = nil
		return true
	}
	v.state = CatalogReady
	v.products = listings
	return true
}

func (v *CatalogView) State() CatalogState        { return v.state }
func (v *CatalogView) ErrorMessage() string       { return v.errMsg }
func (v *CatalogView) Types() []model.ProductType { return v.types }
func (v *CatalogView) Filter() *uint              { return v.filter }

// Products returns the flat listing order, used when a filter is active.
func (v *CatalogView) Products() []model.ProductListing { return v.products }

// Groups sections the unfiltered catalog by type name, sections ordered by
// first appearance while scanning the listing.
func (v *CatalogView) Groups() []TypeGroup {
	index := make(map[string]int)
	var groups []TypeGroup
	for _, p := range v.products {
		i, ok := index[p.ProductType]
		if !ok {
			i = len(groups)
			index[p.ProductType] = i
			groups = append(groups, TypeGroup{Name: p.ProductType})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// Slug derives a display-only URL fragment from a product name: lowercase,
// runs of non-alphanumerics collapsed to a single hyphen, edge hyphens
// trimmed. Never used as a lookup key.
func Slug(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}
	return b.String()
}
