package checkoutapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	shippingCost = 12.5
	itemAmount   = 2.5

	checkout = Checkout{
		BasketUID: "123",
		Reference: "order-123",
		Sender: Sender{
			Name:     "Ana Souza",
			Email:    "ana@example.com",
			AreaCode: "11",
			Phone:    "999991234",
			CPF:      "11111111111",
		},
		Shipping: Shipping{
			Required:   true,
			Street:     "Av. Paulista",
			Number:     "1000",
			City:       "Sao Paulo",
			State:      "SP",
			PostalCode: "01310100",
			Cost:       &shippingCost,
			Type:       1,
		},
		Items: []Item{
			{ID: "1", Description: "Pen", Amount: &itemAmount, Quantity: 3},
		},
		Payment: Payment{
			Method:    "creditCard",
			CardToken: "card-token-123",
			Holder: Holder{
				Name: "Ana Souza",
				CPF:  "11111111111",
			},
			Billing: Billing{
				SameAsShipping: true,
			},
			Installments: Installments{
				Quantity: 1,
			},
		},
	}
)

func TestEncodeDecodeSame(t *testing.T) {
	//  encode followed by decode must end up same

	values, err := checkout.ToForm()
	assert.NoError(t, err)
	checkoutAgain, err := NewFromValues(values)
	assert.NoError(t, err)

	assert.Equal(t, checkout, checkoutAgain)
}

func TestDecode(t *testing.T) {
	form := url.Values{
		"basketUid":                     []string{"123"},
		"reference":                     []string{"order-123"},
		"sender.name":                   []string{"Ana Souza"},
		"sender.email":                  []string{"ana@example.com"},
		"sender.areaCode":               []string{"11"},
		"sender.phone":                  []string{"999991234"},
		"sender.cpf":                    []string{"11111111111"},
		"shipping.required":             []string{"true"},
		"shipping.street":               []string{"Av. Paulista"},
		"shipping.number":               []string{"1000"},
		"shipping.city":                 []string{"Sao Paulo"},
		"shipping.state":                []string{"SP"},
		"shipping.postalCode":           []string{"01310100"},
		"shipping.cost":                 []string{"12.5"},
		"shipping.type":                 []string{"1"},
		"items[0].id":                   []string{"1"},
		"items[0].description":          []string{"Pen"},
		"items[0].amount":               []string{"2.5"},
		"items[0].quantity":             []string{"3"},
		"payment.method":                []string{"creditCard"},
		"payment.cardToken":             []string{"card-token-123"},
		"payment.holder.name":           []string{"Ana Souza"},
		"payment.holder.cpf":            []string{"11111111111"},
		"payment.billing.sameAsShipping": []string{"true"},
		"payment.installments.quantity": []string{"1"},
	}

	decoded, err := NewFromValues(form)
	assert.NoError(t, err)
	assert.Equal(t, checkout, decoded)
}
