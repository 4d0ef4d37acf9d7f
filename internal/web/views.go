package web

import (
	"embed"
	"html/template"
	"math"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home.html",
	"shop.html",
	"product.html",
	"cart.html",
	"checkout.html",
	"confirmation.html",
	"contact.html",
}

// views holds one parsed template set per page, each sharing the layout.
type views struct {
	pages map[string]*template.Template
}

func newViews() (*views, error) {
	funcs := template.FuncMap{
		"price":      formatPrice,
		"stars":      starRating,
		"capitalize": capitalize,
		"inc":        func(n int) int { return n + 1 },
		"dec":        func(n int) int { return n - 1 },
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/card.html", "templates/"+name)
		if err != nil {
			return nil, errors.Wrap(err, "parse "+name)
		}
		pages[name] = t
	}
	return &views{pages: pages}, nil
}

// frame is the data every page receives; Data carries the page specifics.
type frame struct {
	Title     string
	CartCount int
	Flash     string
	Data      any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	t, ok := s.views.pages[page]
	if !ok {
		s.log.Error("unknown page template", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	f := frame{
		Title:     title,
		CartCount: s.cart.ItemCount(),
		Flash:     popFlash(w, r),
		Data:      data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout.html", f); err != nil {
		s.log.Error("render failed", "page", page, "err", err)
	}
}

func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// starRating renders the five-star review widget: full stars, a half star for
// a fractional part of .5 and up, empty stars for the rest.
func starRating(rate float64) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 5 {
		rate = 5
	}
	full := int(math.Floor(rate))
	half := rate-float64(full) >= 0.5

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	empty := 5 - full
	if half {
		b.WriteString("⯪")
		empty--
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}
