package checkoutpagseguro

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/paygateway/lib/mycontext"
	"github.com/MarcGrol/paygateway/lib/myerrors"
	"github.com/MarcGrol/paygateway/lib/myhttp"
	"github.com/MarcGrol/paygateway/lib/myhttpclient"
	"github.com/MarcGrol/paygateway/lib/mylog"
	"github.com/MarcGrol/paygateway/lib/mystore"
	"github.com/MarcGrol/paygateway/lib/mytime"
	"github.com/MarcGrol/paygateway/lib/myuuid"
	"github.com/MarcGrol/paygateway/services/checkoutapi"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, sender myhttpclient.FormSender, checkoutStore mystore.Store[checkoutapi.CheckoutContext], nower mytime.Nower, uuider myuuid.UUIDer) (*webService, error) {
	logger := mylog.New("checkoutpagseguro")

	client, err := NewClient(cfg, sender)
	if err != nil {
		return nil, err
	}

	return &webService{
		logger:  logger,
		service: newCommandService(client, checkoutStore, nower, uuider, logger),
	}, nil
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/pagseguro/session", s.createSessionPage()).Methods("POST")
	router.HandleFunc("/pagseguro/checkout/{basketUID}", s.startCheckoutPage()).Methods("POST")
	router.HandleFunc("/pagseguro/checkout/{basketUID}", s.checkoutStatusPage()).Methods("GET")
}

// createSessionPage opens a checkout session on the provider
func (s *webService) createSessionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		outcome, err := s.service.createSession(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, outcome)
	}
}

// startCheckoutPage builds and submits a payment for one basket
func (s *webService) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		basketUID := mux.Vars(r)["basketUID"]

		checkout, err := checkoutapi.NewFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		outcome, err := s.service.startCheckout(c, basketUID, checkout)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, outcome)
	}
}

// checkoutStatusPage reports what is remembered about one basket
func (s *webService) checkoutStatusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		basketUID := mux.Vars(r)["basketUID"]

		checkoutContext, err := s.service.getCheckout(c, basketUID)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, checkoutContext)
	}
}
