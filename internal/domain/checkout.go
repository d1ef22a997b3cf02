package domain

import (
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentInstant        PaymentMethod = "instant_payment"
)

// CheckoutRequest is the payload of the order service's checkout endpoint.
// UseSameAddress is a form flag, not wire data: Normalize copies the
// shipping address into the billing address before validation when set.
type CheckoutRequest struct {
	ShippingAddress string        `json:"shipping_address"`
	BillingAddress  string        `json:"billing_address,omitempty"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	Notes           string        `json:"notes,omitempty"`
	PaymentMethod   PaymentMethod `json:"payment_method"`

	UseSameAddress bool `json:"-"`
}

func (r *CheckoutRequest) Normalize() {
	if r.UseSameAddress {
		r.BillingAddress = r.ShippingAddress
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = PaymentCashOnDelivery
	}
}

// CheckoutResult is what the order service returns once the cart has been
// converted into an order.
type CheckoutResult struct {
	OrderID           int64      `json:"order_id"`
	TotalAmount       float64    `json:"total_amount"`
	Status            string     `json:"status"`
	Message           string     `json:"message"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// FieldErrors maps a form field to its user-facing validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

const (
	minAddressLen = 10
	minPhoneLen   = 7
)

// Validate runs every rule and reports one message per failing field, so a
// form can mark all problems at once instead of stopping at the first.
func (r CheckoutRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(r.ShippingAddress)) < minAddressLen {
		errs["shipping_address"] = "La dirección de envío debe tener al menos 10 caracteres"
	}
	if len(strings.TrimSpace(r.Phone)) < minPhoneLen {
		errs["phone"] = "El teléfono debe tener al menos 7 dígitos"
	}
	if email := strings.TrimSpace(r.Email); email == "" ||
		!strings.Contains(email, "@") || !strings.Contains(email, ".") {
		errs["email"] = "Por favor ingresa un email válido"
	}
	if !r.UseSameAddress && len(strings.TrimSpace(r.BillingAddress)) < minAddressLen {
		errs["billing_address"] = "La dirección de facturación debe tener al menos 10 caracteres"
	}
	switch r.PaymentMethod {
	case PaymentCashOnDelivery, PaymentBankTransfer, PaymentInstant:
	default:
		errs["payment_method"] = "Método de pago no válido"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
