package checkoutpagseguro

import (
	"context"
	"fmt"

	"github.com/MarcGrol/paygateway/lib/myerrors"
	"github.com/MarcGrol/paygateway/lib/mylog"
	"github.com/MarcGrol/paygateway/lib/mystore"
	"github.com/MarcGrol/paygateway/lib/mytime"
	"github.com/MarcGrol/paygateway/lib/myuuid"
	"github.com/MarcGrol/paygateway/services/checkoutapi"
)

type service struct {
	client        *Client
	checkoutStore mystore.Store[checkoutapi.CheckoutContext]
	nower         mytime.Nower
	uuider        myuuid.UUIDer
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newCommandService(client *Client, checkoutStore mystore.Store[checkoutapi.CheckoutContext], nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		client:        client,
		checkoutStore: checkoutStore,
		nower:         nower,
		uuider:        uuider,
		logger:        logger,
	}
}

// createSession opens a checkout session on the provider
func (s *service) createSession(c context.Context) (Outcome, error) {
	return s.client.GetSession(c)
}

// startCheckout builds the flat payload from the posted checkout, submits
// it, and remembers the outcome for this basket.
func (s *service) startCheckout(c context.Context, basketUID string, req checkoutapi.Checkout) (Outcome, error) {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Start checkout for basket %s", basketUID)

	co := s.client.NewCheckout()

	co.SetSender(SenderInfo{
		Hash:     req.Sender.Hash,
		Name:     req.Sender.Name,
		AreaCode: req.Sender.AreaCode,
		Phone:    req.Sender.Phone,
		Email:    req.Sender.Email,
		CPF:      req.Sender.CPF,
		CNPJ:     req.Sender.CNPJ,
		IP:       req.Sender.IP,
	})

	co.SetShipping(ShippingAddress{
		Required:   req.Shipping.Required,
		Street:     req.Shipping.Street,
		Number:     req.Shipping.Number,
		District:   req.Shipping.District,
		City:       req.Shipping.City,
		State:      req.Shipping.State,
		PostalCode: req.Shipping.PostalCode,
		Complement: req.Shipping.Complement,
		Cost:       req.Shipping.Cost,
		Type:       req.Shipping.Type,
	})

	items := make([]Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, Item{
			ID:          item.ID,
			Description: item.Description,
			Amount:      item.Amount,
			Quantity:    item.Quantity,
		})
	}
	co.AddItems(items)

	if req.Payment.Method != "" {
		_, err := co.SetPayment(req.Payment.Method, PaymentRequest{
			Card: CreditCard{Token: req.Payment.CardToken},
			Holder: CardHolder{
				Name:      req.Payment.Holder.Name,
				CPF:       req.Payment.Holder.CPF,
				BirthDate: req.Payment.Holder.BirthDate,
				AreaCode:  req.Payment.Holder.AreaCode,
				Phone:     req.Payment.Holder.Phone,
			},
			Billing: BillingAddress{
				SameAsShipping: req.Payment.Billing.SameAsShipping,
				Street:         req.Payment.Billing.Street,
				Number:         req.Payment.Billing.Number,
				District:       req.Payment.Billing.District,
				City:           req.Payment.Billing.City,
				State:          req.Payment.Billing.State,
				PostalCode:     req.Payment.Billing.PostalCode,
				Complement:     req.Payment.Billing.Complement,
			},
			Installments: Installments{
				Quantity:           req.Payment.Installments.Quantity,
				Value:              req.Payment.Installments.Value,
				NoInterestQuantity: req.Payment.Installments.NoInterestQuantity,
			},
		})
		if err != nil {
			return Outcome{}, err
		}
	}

	reference := req.Reference
	if reference == "" {
		reference = s.uuider.Create()
	}

	outcome, err := s.client.SubmitPayment(c, co, SubmitRequest{
		Reference:       reference,
		ExtraAmount:     req.ExtraAmount,
		NotificationURL: req.NotificationURL,
		DryRun:          req.DryRun,
		PrintOnly:       req.PrintOnly,
	})
	if err != nil {
		return Outcome{}, err
	}

	now := s.nower.Now()

	err = s.checkoutStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		return s.checkoutStore.Put(c, basketUID, checkoutapi.CheckoutContext{
			BasketUID:       basketUID,
			CreatedAt:       now,
			Reference:       reference,
			PaymentProvider: "pagseguro",
			PaymentMethod:   req.Payment.Method,
			TransactionCode: transactionCode(outcome),
			CheckoutStatus:  checkoutStatus(outcome, req.DryRun),
			ErrorCodes:      errorCodes(outcome),
		})
	})
	if err != nil {
		return Outcome{}, myerrors.NewInternalError(fmt.Errorf("error storing checkout: %s", err))
	}

	return outcome, nil
}

func (s *service) getCheckout(c context.Context, basketUID string) (checkoutapi.CheckoutContext, error) {
	checkoutContext, exists, err := s.checkoutStore.Get(c, basketUID)
	if err != nil {
		return checkoutapi.CheckoutContext{}, myerrors.NewInternalError(fmt.Errorf("error fetching checkout %s: %s", basketUID, err))
	}
	if !exists {
		return checkoutapi.CheckoutContext{}, myerrors.NewNotFoundError(fmt.Errorf("checkout with uid %s not found", basketUID))
	}

	return checkoutContext, nil
}

func checkoutStatus(outcome Outcome, dryRun bool) checkoutapi.CheckoutStatus {
	if !outcome.Status {
		return checkoutapi.CheckoutStatusFailed
	}
	if dryRun {
		return checkoutapi.CheckoutStatusPreviewed
	}

	return checkoutapi.CheckoutStatusSuccess
}

func transactionCode(outcome Outcome) string {
	if !outcome.Status {
		return ""
	}

	transaction, isTree := outcome.Response["transaction"].(Tree)
	if !isTree {
		return ""
	}

	code, isString := transaction["code"].(string)
	if !isString {
		return ""
	}

	return code
}

func errorCodes(outcome Outcome) []string {
	if outcome.Status {
		return nil
	}

	if outcome.Error != nil {
		return []string{outcome.Error.Code}
	}

	codes := make([]string, 0, len(outcome.Errors))
	for _, e := range outcome.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}
