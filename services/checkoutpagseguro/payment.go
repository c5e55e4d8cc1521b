package checkoutpagseguro

import (
	"fmt"
	"strings"

	"github.com/MarcGrol/paygateway/lib/myerrors"
)

const (
	MethodCreditCard = "creditCard"
)

// Shipping-only fields that must never end up in a billing address.
var shippingOnlyFields = map[string]bool{
	"shippingCost": true,
	"shippingType": true,
}

type CreditCard struct {
	Token string
}

type CardHolder struct {
	Name      string
	CPF       string
	BirthDate string
	AreaCode  string
	Phone     string
}

type BillingAddress struct {
	// SameAsShipping derives the billing address from the shipping address
	// set earlier on this checkout; the remaining fields are ignored then.
	SameAsShipping bool
	Street         string
	Number         string
	District       string
	City           string
	State          string
	PostalCode     string
	Complement     string
}

type Installments struct {
	Quantity           int
	Value              *float64
	NoInterestQuantity int
}

type PaymentRequest struct {
	Card         CreditCard
	Holder       CardHolder
	Billing      BillingAddress
	Installments Installments
}

// paymentBuilder turns a payment request into the payment section of the
// payload. Registering a new method name here is the extension point for
// additional payment methods.
type paymentBuilder func(co *Checkout, req PaymentRequest) Payload

var paymentBuilders = map[string]paymentBuilder{
	MethodCreditCard: buildCreditCardPayment,
}

// SetPayment dispatches on method name and merges the composed payment
// section into the payload. The composed section is returned.
func (co *Checkout) SetPayment(method string, req PaymentRequest) (Payload, error) {
	build, exists := paymentBuilders[method]
	if !exists {
		return nil, myerrors.NewNotImplementedError(fmt.Errorf("unsupported payment method %q", method))
	}

	return build(co, req), nil
}

func buildCreditCardPayment(co *Checkout, req PaymentRequest) Payload {
	holder := clean(Payload{
		"creditCardHolderName":      optString(req.Holder.Name),
		"creditCardHolderCPF":       optString(req.Holder.CPF),
		"creditCardHolderBirthDate": optString(req.Holder.BirthDate),
		"creditCardHolderAreaCode":  optString(req.Holder.AreaCode),
		"creditCardHolderPhone":     optString(req.Holder.Phone),
	})

	billing := co.resolveBillingAddress(req.Billing)

	installments := clean(Payload{
		"installmentQuantity":           optInt(req.Installments.Quantity),
		"installmentValue":              optAmount(req.Installments.Value),
		"noInterestInstallmentQuantity": optInt(req.Installments.NoInterestQuantity),
	})

	payment := clean(Payload{
		"paymentMode":     "default",
		"paymentMethod":   MethodCreditCard,
		"creditCardToken": optString(req.Card.Token),
	})
	payment.merge(holder)
	payment.merge(billing)
	payment.merge(installments)

	co.payload.merge(payment)

	// Holder and billing are merged once more on their own. Kept for
	// compatibility: they stay present even if the payment record shape
	// ever renames its keys.
	co.payload.merge(holder)
	co.payload.merge(billing)

	return payment
}

// resolveBillingAddress either renames the retained shipping address field
// by field into the billing namespace, or takes the explicitly supplied
// billing address with the fixed country.
func (co *Checkout) resolveBillingAddress(in BillingAddress) Payload {
	if in.SameAsShipping {
		billing := Payload{}
		for k, v := range co.shippingAddress {
			if shippingOnlyFields[k] {
				continue
			}
			billing["billing"+strings.TrimPrefix(k, "shipping")] = v
		}

		return billing
	}

	return clean(Payload{
		"billingAddressStreet":     optString(in.Street),
		"billingAddressNumber":     optString(in.Number),
		"billingAddressDistrict":   optString(in.District),
		"billingAddressCity":       optString(in.City),
		"billingAddressState":      optString(in.State),
		"billingAddressPostalCode": optString(in.PostalCode),
		"billingAddressComplement": optString(in.Complement),
		"billingAddressCountry":    addressCountry,
	})
}
