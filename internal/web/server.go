package web

import (
	"embed"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	cartapp "github.com/dwikikusuma/sleekshop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/sleekshop/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/sleekshop/internal/checkout/app"
	"github.com/dwikikusuma/sleekshop/pkg/metrics"
)

//go:embed static
var staticFS embed.FS

// Server renders the storefront pages. It is the only caller of the cart,
// catalog and checkout services; all writes go through their operations.
type Server struct {
	Router *mux.Router

	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	flash    *FlashNotifier
	views    *views
	metrics  *metrics.ServerMetrics
	log      *slog.Logger
}

func NewServer(
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	checkout *checkoutapp.Service,
	flash *FlashNotifier,
	m *metrics.ServerMetrics,
	log *slog.Logger,
) (*Server, error) {
	v, err := newViews()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Router:   mux.NewRouter(),
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		flash:    flash,
		views:    v,
		metrics:  m,
		log:      log,
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.handle("home", "/", s.handleHome).Methods(http.MethodGet)
	s.handle("shop", "/shop", s.handleShop).Methods(http.MethodGet)
	s.handle("product", "/product/{id}", s.handleProduct).Methods(http.MethodGet)

	s.handle("cart", "/cart", s.handleCartPage).Methods(http.MethodGet)
	s.handle("cart_add", "/cart/add", s.handleCartAdd).Methods(http.MethodPost)
	s.handle("cart_update", "/cart/update", s.handleCartUpdate).Methods(http.MethodPost)
	s.handle("cart_remove", "/cart/remove", s.handleCartRemove).Methods(http.MethodPost)

	s.handle("checkout", "/checkout", s.handleCheckoutPage).Methods(http.MethodGet)
	s.handle("checkout_submit", "/checkout", s.handlePlaceOrder).Methods(http.MethodPost)

	s.handle("contact", "/contact", s.handleContactPage).Methods(http.MethodGet)
	s.handle("contact_submit", "/contact", s.handleContactSubmit).Methods(http.MethodPost)

	s.Router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	s.Router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	s.Router.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFS)))
}

func (s *Server) handle(name, path string, h http.HandlerFunc) *mux.Route {
	return s.Router.HandleFunc(path, s.instrument(name, h))
}

// instrument records request count and latency per handler.
func (s *Server) instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next(w, r)
			return
		}
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		s.metrics.Requests.WithLabelValues(name, strconv.Itoa(sw.status)).Inc()
		s.metrics.LatencyMS.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// formID parses the numeric product id form field; ok is false on garbage.
func formID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// redirectBack sends the client back to the page the request came from.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.Header.Get("Referer")
	if target == "" {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
