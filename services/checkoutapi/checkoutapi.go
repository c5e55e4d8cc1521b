package checkoutapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/paygateway/lib/myerrors"
)

// Checkout is the form model posted by a shop front-end to start a payment.
type Checkout struct {
	BasketUID       string   `form:"basketUid"`
	Reference       string   `form:"reference"`
	NotificationURL string   `form:"notificationUrl"`
	ExtraAmount     *float64 `form:"extraAmount"`
	DryRun          bool     `form:"dryRun"`
	PrintOnly       bool     `form:"printOnly"`
	Sender          Sender   `form:"sender"`
	Shipping        Shipping `form:"shipping"`
	Items           []Item   `form:"items"`
	Payment         Payment  `form:"payment"`
}

type Sender struct {
	Hash     string `form:"hash"`
	Name     string `form:"name"`
	AreaCode string `form:"areaCode"`
	Phone    string `form:"phone"`
	Email    string `form:"email"`
	CPF      string `form:"cpf"`
	CNPJ     string `form:"cnpj"`
	IP       string `form:"ip"`
}

type Shipping struct {
	Required   bool     `form:"required"`
	Street     string   `form:"street"`
	Number     string   `form:"number"`
	District   string   `form:"district"`
	City       string   `form:"city"`
	State      string   `form:"state"`
	PostalCode string   `form:"postalCode"`
	Complement string   `form:"complement"`
	Cost       *float64 `form:"cost"`
	Type       int      `form:"type"`
}

type Item struct {
	ID          string   `form:"id"`
	Description string   `form:"description"`
	Amount      *float64 `form:"amount"`
	Quantity    int      `form:"quantity"`
}

type Payment struct {
	Method       string       `form:"method"`
	CardToken    string       `form:"cardToken"`
	Holder       Holder       `form:"holder"`
	Billing      Billing      `form:"billing"`
	Installments Installments `form:"installments"`
}

type Holder struct {
	Name      string `form:"name"`
	CPF       string `form:"cpf"`
	BirthDate string `form:"birthDate"`
	AreaCode  string `form:"areaCode"`
	Phone     string `form:"phone"`
}

type Billing struct {
	SameAsShipping bool   `form:"sameAsShipping"`
	Street         string `form:"street"`
	Number         string `form:"number"`
	District       string `form:"district"`
	City           string `form:"city"`
	State          string `form:"state"`
	PostalCode     string `form:"postalCode"`
	Complement     string `form:"complement"`
}

type Installments struct {
	Quantity           int      `form:"quantity"`
	Value              *float64 `form:"value"`
	NoInterestQuantity int      `form:"noInterestQuantity"`
}

func NewFromRequest(r *http.Request) (Checkout, error) {
	err := r.ParseForm()
	if err != nil {
		return Checkout{}, myerrors.NewInvalidInputError(err)
	}

	return NewFromValues(r.Form)
}

func NewFromValues(values url.Values) (Checkout, error) {
	checkout := Checkout{}
	err := formcodec.NewDecoder().Decode(&checkout, values)
	if err != nil {
		return checkout, fmt.Errorf("error decoding form: %s", err)
	}

	return checkout, nil
}

func (c Checkout) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(c)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}
