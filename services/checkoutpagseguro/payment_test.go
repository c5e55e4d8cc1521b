package checkoutpagseguro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPayment(t *testing.T) {

	t.Run("Unknown method is rejected", func(t *testing.T) {
		co := newCheckout(testConfig)

		_, err := co.SetPayment("boleto", PaymentRequest{})

		assert.Error(t, err)
	})

	t.Run("Credit card composition", func(t *testing.T) {
		co := newCheckout(testConfig)

		payment, err := co.SetPayment(MethodCreditCard, PaymentRequest{
			Card: CreditCard{Token: "card-token-123"},
			Holder: CardHolder{
				Name:      "Ana Souza",
				CPF:       "11111111111",
				BirthDate: "27/10/1987",
				AreaCode:  "11",
				Phone:     "999991234",
			},
			Billing: BillingAddress{
				Street: "Av. Paulista",
				City:   "Sao Paulo",
			},
			Installments: Installments{
				Quantity:           3,
				Value:              amount(33.33),
				NoInterestQuantity: 3,
			},
		})
		assert.NoError(t, err)

		assert.Equal(t, "default", payment["paymentMode"])
		assert.Equal(t, "creditCard", payment["paymentMethod"])
		assert.Equal(t, "card-token-123", payment["creditCardToken"])
		assert.Equal(t, "Ana Souza", payment["creditCardHolderName"])
		assert.Equal(t, "27/10/1987", payment["creditCardHolderBirthDate"])
		assert.Equal(t, "Av. Paulista", payment["billingAddressStreet"])
		assert.Equal(t, "BRA", payment["billingAddressCountry"])
		assert.Equal(t, 3, payment["installmentQuantity"])
		assert.Equal(t, "33.33", payment["installmentValue"])
		assert.Equal(t, 3, payment["noInterestInstallmentQuantity"])

		// composed section ends up in the payload as well
		p := co.Payload()
		assert.Equal(t, "card-token-123", p["creditCardToken"])
		assert.Equal(t, "Sao Paulo", p["billingAddressCity"])
	})

	t.Run("Missing card token yields no token key", func(t *testing.T) {
		co := newCheckout(testConfig)

		payment, err := co.SetPayment(MethodCreditCard, PaymentRequest{})
		assert.NoError(t, err)

		assert.NotContains(t, payment, "creditCardToken")
		assert.Equal(t, "default", payment["paymentMode"])
	})

	t.Run("Billing derived from shipping", func(t *testing.T) {
		co := newCheckout(testConfig)

		co.SetShipping(ShippingAddress{
			Required:   true,
			Street:     "Av. Paulista",
			Number:     "1000",
			City:       "Sao Paulo",
			State:      "SP",
			PostalCode: "01310100",
			Cost:       amount(12.5),
			Type:       1,
		})

		payment, err := co.SetPayment(MethodCreditCard, PaymentRequest{
			Card:    CreditCard{Token: "card-token-123"},
			Billing: BillingAddress{SameAsShipping: true},
		})
		assert.NoError(t, err)

		assert.Equal(t, "Av. Paulista", payment["billingAddressStreet"])
		assert.Equal(t, "1000", payment["billingAddressNumber"])
		assert.Equal(t, "Sao Paulo", payment["billingAddressCity"])
		assert.Equal(t, "SP", payment["billingAddressState"])
		assert.Equal(t, "01310100", payment["billingAddressPostalCode"])
		assert.Equal(t, "BRA", payment["billingAddressCountry"])

		// shipping-only fields must never cross over
		assert.NotContains(t, payment, "billingCost")
		assert.NotContains(t, payment, "billingType")
	})

	t.Run("Billing derived even when shipping not required", func(t *testing.T) {
		co := newCheckout(testConfig)

		co.SetShipping(ShippingAddress{
			Required: false,
			Street:   "Av. Paulista",
			City:     "Sao Paulo",
		})

		payment, err := co.SetPayment(MethodCreditCard, PaymentRequest{
			Billing: BillingAddress{SameAsShipping: true},
		})
		assert.NoError(t, err)

		// address was withheld from the payload but retained for billing
		assert.Equal(t, "Av. Paulista", payment["billingAddressStreet"])
		assert.Equal(t, "Sao Paulo", payment["billingAddressCity"])
		assert.NotContains(t, co.Payload(), "shippingAddressStreet")
	})
}
