package web

import (
	"net/http"
	"net/url"
	"sync"
)

const flashCookie = "sleekshop_flash"

// FlashNotifier carries the cart's fire-and-forget confirmation signal to the
// browser. The cart store raises the signal mid-mutation; the handler that
// drove the mutation pops it afterwards and sets a one-shot cookie, which the
// next rendered page displays as an auto-dismissing notice.
type FlashNotifier struct {
	mu      sync.Mutex
	pending string
}

func NewFlashNotifier() *FlashNotifier {
	return &FlashNotifier{}
}

// ItemAdded implements the cart notifier port.
func (f *FlashNotifier) ItemAdded(title string) {
	f.mu.Lock()
	f.pending = title + " added to cart!"
	f.mu.Unlock()
}

// CountChanged implements the cart notifier port. The header badge reads the
// live count at render time, so there is nothing to do here.
func (f *FlashNotifier) CountChanged(int) {}

// Pop returns and clears the pending message.
func (f *FlashNotifier) Pop() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := f.pending
	f.pending = ""
	return msg
}

// setFlash stores msg in the one-shot flash cookie.
func setFlash(w http.ResponseWriter, msg string) {
	if msg == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and expires the flash cookie.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
