package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-catalog-api/internal/model"
)

// API is a thin HTTP client for the catalog service.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *API) ProductTypes() ([]model.ProductType, error) {
	var types []model.ProductType
	if err := a.getJSON(a.baseURL+"/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (a *API) ProductListings(typeID *uint) ([]model.ProductListing, error) {
	url := a.baseURL + "/product-listings"
	if typeID != nil {
		url = fmt.Sprintf("%s?typeId=%d", url, *typeID)
	}
	var listings []model.ProductListing
	if err := a.getJSON(url, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (a *API) getJSON(url string, out interface{}) error {
	resp, err := a.http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
