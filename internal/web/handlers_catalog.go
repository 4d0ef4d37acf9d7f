package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/sleekshop/internal/catalog/domain"
)

const featuredCount = 8

type homeData struct {
	Categories []string
	Featured   []domain.Product
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var data homeData

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		data.Categories = s.catalog.Categories(ctx)
		return nil
	})
	g.Go(func() error {
		data.Featured = s.catalog.Products(ctx, featuredCount)
		return nil
	})
	_ = g.Wait()

	s.render(w, r, "home.html", "SleekShop", data)
}

type shopData struct {
	Products    []domain.Product
	Categories  []string
	Query       shopQuery
	TotalCount  int
	ShownCount  int
	HasMore     bool
	NextPageURL string
}

func (s *Server) handleShop(w http.ResponseWriter, r *http.Request) {
	q := parseShopQuery(r)

	var products []domain.Product
	if q.Category != "" {
		products = s.catalog.ProductsByCategory(r.Context(), q.Category, 0)
	} else {
		products = s.catalog.Products(r.Context(), 0)
	}

	filtered := filterProducts(products, q)
	sortProducts(filtered, q.Sort)
	shown, hasMore := paginate(filtered, q.Page)

	s.render(w, r, "shop.html", "Shop - SleekShop", shopData{
		Products:    shown,
		Categories:  s.catalog.Categories(r.Context()),
		Query:       q,
		TotalCount:  len(filtered),
		ShownCount:  len(shown),
		HasMore:     hasMore,
		NextPageURL: q.nextPageURL(),
	})
}

type productData struct {
	Product domain.Product
	Related []domain.Product
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/shop", http.StatusSeeOther)
		return
	}

	product, ok := s.catalog.Product(r.Context(), id)
	if !ok {
		http.Redirect(w, r, "/shop", http.StatusSeeOther)
		return
	}

	related := make([]domain.Product, 0, 4)
	for _, p := range s.catalog.ProductsByCategory(r.Context(), product.Category, 0) {
		if p.ID == product.ID {
			continue
		}
		related = append(related, p)
		if len(related) == 4 {
			break
		}
	}

	s.render(w, r, "product.html", product.Title+" - SleekShop", productData{
		Product: product,
		Related: related,
	})
}
