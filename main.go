package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/paygateway/lib/myhttpclient"
	"github.com/MarcGrol/paygateway/lib/mystore"
	"github.com/MarcGrol/paygateway/lib/mytime"
	"github.com/MarcGrol/paygateway/lib/myuuid"
	"github.com/MarcGrol/paygateway/services/checkoutapi"
	"github.com/MarcGrol/paygateway/services/checkoutpagseguro"
)

const (
	accountEmailVarname = "PAGSEGURO_ACCOUNT_EMAIL"
	accountTokenVarname = "PAGSEGURO_ACCOUNT_TOKEN"
	sandboxModeVarname  = "PAGSEGURO_SANDBOX"
	sandboxEmailVarname = "PAGSEGURO_SANDBOX_EMAIL"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	checkoutStore, checkoutStoreCleanup, err := mystore.New[checkoutapi.CheckoutContext](c)
	if err != nil {
		log.Fatalf("Error creating checkout store: %s", err)
	}
	defer checkoutStoreCleanup()

	checkoutService, err := checkoutpagseguro.NewWebService(checkoutpagseguro.Config{
		AccountEmail: os.Getenv(accountEmailVarname),
		AccountToken: os.Getenv(accountTokenVarname),
		SandboxMode:  os.Getenv(sandboxModeVarname) == "true",
		SandboxEmail: os.Getenv(sandboxEmailVarname),
	}, myhttpclient.New(), checkoutStore, mytime.RealNower{}, myuuid.RealUUIDer{})
	if err != nil {
		log.Fatalf("Error creating checkout service: %s", err)
	}
	checkoutService.RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
