package main

import (
	"fmt"
	"log"

	"go-catalog-api/internal/client"
	"go-catalog-api/internal/model"

	"github.com/spf13/pflag"
)

// Terminal front-end over the catalog view models: prints the grouped
// catalog, or configures one product and reports the computed total.
func main() {
	baseURL := pflag.String("base-url", "http://localhost:3000", "catalog API base URL")
	typeID := pflag.Uint("type", 0, "filter listings by product type id (0 = all)")
	productID := pflag.Uint("product", 0, "configure one product instead of listing")
	variantID := pflag.Uint("variant", 0, "variant id to select (default: first)")
	addonIDs := pflag.UintSlice("addons", nil, "addon ids to include")
	qty := pflag.Int("qty", 1, "quantity")
	pflag.Parse()

	api := client.NewAPI(*baseURL)

	if *productID != 0 {
		configureProduct(api, *productID, *variantID, *addonIDs, *qty)
		return
	}
	showCatalog(api, *typeID)
}

func showCatalog(api *client.API, typeID uint) {
	view := client.NewCatalogView(api)
	view.Load()
	if typeID != 0 {
		view.SetFilter(&typeID)
	}

	if view.State() == client.CatalogError {
		log.Fatal(view.ErrorMessage())
	}

	if typeID != 0 {
		for _, p := range view.Products() {
			printListing(p)
		}
		return
	}
	for _, g := range view.Groups() {
		fmt.Printf("== %s ==\n", g.Name)
		for _, p := range g.Products {
			printListing(p)
		}
	}
}

func printListing(p model.ProductListing) {
	fmt.Printf("  [%d] %s (/%s) - %d variants, %d addons\n",
		p.ID, p.Name, client.Slug(p.Name), len(p.Variants), len(p.Addons))
}

func configureProduct(api *client.API, productID, variantID uint, addonIDs []uint, qty int) {
	listings, err := api.ProductListings(nil)
	if err != nil {
		log.Fatal("Failed to fetch product details: ", err)
	}

	view, err := client.NewDetailView(listings, productID)
	if err != nil {
		log.Fatal(err)
	}

	if variantID != 0 && !view.SelectVariant(variantID) {
		log.Fatalf("product %d has no variant %d", productID, variantID)
	}
	if len(addonIDs) > 0 && !view.AddonsAvailable() {
		log.Fatalf("product %d does not offer add-ons", productID)
	}
	for _, id := range addonIDs {
		if !view.ToggleAddon(id) {
			log.Fatalf("product %d has no addon %d", productID, id)
		}
	}
	// Quantity is clamped at the selected variant's stock.
	for view.Quantity() < qty {
		before := view.Quantity()
		view.Increment()
		if view.Quantity() == before {
			break
		}
	}

	p := view.Product()
	fmt.Println(p.Name)
	if v := view.SelectedVariant(); v != nil {
		fmt.Printf("  Variant: %s %s (SKU %s) @ %s\n", v.Size, v.Color, v.SKU, v.Price.StringFixed(2))
	}
	for _, a := range view.SelectedAddons() {
		fmt.Printf("  Add-on: %s (+%s)\n", a.Name, a.Price.StringFixed(2))
	}
	fmt.Printf("  Quantity: %d\n", view.Quantity())
	fmt.Printf("  Total: %s\n", view.TotalPrice().StringFixed(2))
}
