package checkoutpagseguro

import (
	"fmt"
	"strings"
)

// Country is fixed by the provider: only domestic addresses are accepted.
const addressCountry = "BRA"

// Checkout accumulates the flat payload for a single transaction attempt.
// It is exclusively owned by the caller that created it: build up the
// sections in any order, submit once, then discard.
type Checkout struct {
	cfg     Config
	payload Payload

	// Full cleaned shipping address, retained even when shipping is not
	// required so that a later same-as-shipping billing address can be
	// derived from it.
	shippingAddress Payload

	items []Payload
}

func newCheckout(cfg Config) *Checkout {
	return &Checkout{
		cfg:     cfg,
		payload: Payload{},
	}
}

type SenderInfo struct {
	Hash     string
	Name     string
	AreaCode string
	Phone    string
	Email    string
	CPF      string
	CNPJ     string
	IP       string
}

// SetSender merges the paying party into the payload. Later calls win over
// earlier ones.
func (co *Checkout) SetSender(in SenderInfo) {
	email := in.Email
	if co.cfg.SandboxMode {
		email = co.cfg.SandboxEmail
	}

	co.payload.merge(clean(Payload{
		"senderHash":     optString(in.Hash),
		"senderName":     optString(in.Name),
		"senderAreaCode": optString(in.AreaCode),
		"senderPhone":    optString(in.Phone),
		"senderEmail":    optString(email),
		"senderCPF":      optString(in.CPF),
		"senderCNPJ":     optString(in.CNPJ),
		"senderIP":       optString(in.IP),
	}))
}

type ShippingAddress struct {
	Required   bool
	Street     string
	Number     string
	District   string
	City       string
	State      string
	PostalCode string
	Complement string
	Cost       *float64
	Type       int
}

// SetShipping merges the shipping section. The merge is binary: when shipping
// is not required only the flag is sent and any address fields merged earlier
// are withdrawn from the payload. The full address is retained internally
// either way, for billing derivation.
func (co *Checkout) SetShipping(in ShippingAddress) {
	co.shippingAddress = clean(Payload{
		"shippingAddressStreet":     optString(in.Street),
		"shippingAddressNumber":     optString(in.Number),
		"shippingAddressDistrict":   optString(in.District),
		"shippingAddressCity":       optString(in.City),
		"shippingAddressState":      optString(in.State),
		"shippingAddressPostalCode": optString(in.PostalCode),
		"shippingAddressComplement": optString(in.Complement),
		"shippingAddressCountry":    addressCountry,
		"shippingCost":              optAmount(in.Cost),
		"shippingType":              optInt(in.Type),
	})

	if !in.Required {
		for k := range co.payload {
			if strings.HasPrefix(k, "shipping") {
				delete(co.payload, k)
			}
		}
		co.payload.merge(Payload{"shippingAddressRequired": false})

		return
	}

	co.payload.merge(Payload{"shippingAddressRequired": true})
	co.payload.merge(co.shippingAddress)
}

type Item struct {
	ID          string
	Description string
	Amount      *float64
	Quantity    int
}

// AddItems appends a batch to the item sequence and merges the whole
// cumulative set into the payload. Indices are 1-based and keep counting
// across batches.
func (co *Checkout) AddItems(items []Item) {
	for _, item := range items {
		index := len(co.items) + 1
		co.items = append(co.items, clean(Payload{
			fmt.Sprintf("itemId%d", index):          optString(item.ID),
			fmt.Sprintf("itemDescription%d", index): optString(item.Description),
			fmt.Sprintf("itemAmount%d", index):      optAmount(item.Amount),
			fmt.Sprintf("itemQuantity%d", index):    optInt(item.Quantity),
		}))
	}

	for _, item := range co.items {
		co.payload.merge(item)
	}
}

// Payload exposes a copy of the current flat record, mainly for inspection
// in tests and dry runs.
func (co *Checkout) Payload() Payload {
	result := Payload{}
	result.merge(co.payload)

	return result
}
