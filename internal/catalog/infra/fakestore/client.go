package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/dwikikusuma/sleekshop/internal/catalog/domain"
)

const defaultTimeout = 10 * time.Second

// Client talks to a fakestoreapi-compatible product catalog over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Products(ctx context.Context, limit int) ([]domain.Product, error) {
	var products []domain.Product
	endpoint := fmt.Sprintf("/products?limit=%d", limit)
	if err := c.getJSON(ctx, endpoint, &products); err != nil {
		return nil, errors.Wrap(err, "fetch products")
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int) (domain.Product, error) {
	var product domain.Product
	endpoint := fmt.Sprintf("/products/%d", id)
	if err := c.getJSON(ctx, endpoint, &product); err != nil {
		return domain.Product{}, errors.Wrap(err, "fetch product")
	}
	// The upstream API answers an empty body with id 0 for unknown products.
	if product.ID == 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	return product, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, errors.Wrap(err, "fetch categories")
	}
	return categories, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	var products []domain.Product
	endpoint := fmt.Sprintf("/products/category/%s?limit=%d", url.PathEscape(category), limit)
	if err := c.getJSON(ctx, endpoint, &products); err != nil {
		return nil, errors.Wrap(err, "fetch products by category")
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
