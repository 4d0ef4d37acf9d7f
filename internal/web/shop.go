package web

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/sleekshop/internal/catalog/domain"
)

const productsPerPage = 12

// shopQuery is the parsed filter state of the shop page.
type shopQuery struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	Sort     string
	Page     int
}

func parseShopQuery(r *http.Request) shopQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	return shopQuery{
		Category: q.Get("category"),
		Search:   strings.TrimSpace(q.Get("search")),
		MinPrice: q.Get("min"),
		MaxPrice: q.Get("max"),
		Sort:     q.Get("sort"),
		Page:     page,
	}
}

// nextPageURL rebuilds the shop URL with the page bumped by one.
func (q shopQuery) nextPageURL() string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.MinPrice != "" {
		v.Set("min", q.MinPrice)
	}
	if q.MaxPrice != "" {
		v.Set("max", q.MaxPrice)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	v.Set("page", strconv.Itoa(q.Page+1))
	return "/shop?" + v.Encode()
}

// filterProducts applies the category, price-range and search filters.
func filterProducts(products []domain.Product, q shopQuery) []domain.Product {
	min, hasMin := parsePrice(q.MinPrice)
	max, hasMax := parsePrice(q.MaxPrice)
	search := strings.ToLower(q.Search)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if hasMin && p.Price.LessThan(min) {
			continue
		}
		if hasMax && p.Price.GreaterThan(max) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// sortProducts orders products in place: by price either way or by rating
// descending. Unknown keys keep catalog order.
func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case "rating":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	}
}

// paginate returns everything up to and including the requested page, the way
// the original "load more" control accumulates pages.
func paginate(products []domain.Product, page int) (shown []domain.Product, hasMore bool) {
	end := page * productsPerPage
	if end >= len(products) {
		return products, false
	}
	return products[:end], true
}

func parsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
