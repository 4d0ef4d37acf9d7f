package web

import (
	"errors"
	"net/http"

	checkoutapp "github.com/dwikikusuma/sleekshop/internal/checkout/app"
	"github.com/dwikikusuma/sleekshop/internal/checkout/domain"
)

type checkoutData struct {
	Lines  []domain.OrderLine
	Totals domain.OrderTotals
	Form   checkoutapp.CheckoutForm
	Error  string
}

func (s *Server) handleCheckoutPage(w http.ResponseWriter, r *http.Request) {
	if s.cart.ItemCount() == 0 {
		setFlash(w, "Your cart is empty. Please add items before checkout.")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	lines, totals := s.checkout.Summary()
	s.render(w, r, "checkout.html", "Checkout - SleekShop", checkoutData{
		Lines:  lines,
		Totals: totals,
		Form:   checkoutapp.CheckoutForm{PaymentMethod: checkoutapp.PaymentCredit},
	})
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	form := checkoutapp.CheckoutForm{
		FirstName:      r.PostFormValue("firstName"),
		LastName:       r.PostFormValue("lastName"),
		Email:          r.PostFormValue("email"),
		Phone:          r.PostFormValue("phone"),
		Address:        r.PostFormValue("address"),
		City:           r.PostFormValue("city"),
		ZipCode:        r.PostFormValue("zipCode"),
		PaymentMethod:  r.PostFormValue("paymentMethod"),
		CardholderName: r.PostFormValue("cardholderName"),
		CardNumber:     r.PostFormValue("cardNumber"),
		ExpiryDate:     r.PostFormValue("expiryDate"),
		CVV:            r.PostFormValue("cvv"),
	}

	order, err := s.checkout.PlaceOrder(r.Context(), form)
	if err != nil {
		if errors.Is(err, checkoutapp.ErrEmptyCart) {
			setFlash(w, "Your cart is empty. Please add items before checkout.")
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
			return
		}

		var verr *checkoutapp.ValidationError
		if errors.As(err, &verr) {
			lines, totals := s.checkout.Summary()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			s.render(w, r, "checkout.html", "Checkout - SleekShop", checkoutData{
				Lines:  lines,
				Totals: totals,
				Form:   form,
				Error:  verr.Message,
			})
			return
		}

		s.log.Error("place order failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "confirmation.html", "Order Confirmed - SleekShop", order)
}

type contactData struct {
	Form    checkoutapp.ContactForm
	Error   string
	Success bool
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "contact.html", "Contact - SleekShop", contactData{})
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	form := checkoutapp.ContactForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Subject:   r.PostFormValue("subject"),
		Message:   r.PostFormValue("message"),
	}

	if err := s.checkout.SubmitContact(form); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.render(w, r, "contact.html", "Contact - SleekShop", contactData{
			Form:  form,
			Error: err.Error(),
		})
		return
	}

	s.render(w, r, "contact.html", "Contact - SleekShop", contactData{Success: true})
}
