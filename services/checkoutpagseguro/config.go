package checkoutpagseguro

import (
	"fmt"

	"github.com/MarcGrol/paygateway/lib/myerrors"
)

const (
	productionBaseURL = "https://ws.pagseguro.uol.com.br/v2"
	sandboxBaseURL    = "https://ws.sandbox.pagseguro.uol.com.br/v2"
)

type Config struct {
	AccountEmail string
	AccountToken string
	SandboxMode  bool
	// SandboxEmail replaces the sender email on every checkout in sandbox
	// mode: the sandbox only accepts pre-registered test emails.
	SandboxEmail string
}

func (cfg Config) validate() error {
	if cfg.AccountEmail == "" || cfg.AccountToken == "" {
		return myerrors.NewInvalidInputError(fmt.Errorf("missing account email or token"))
	}
	if cfg.SandboxMode && cfg.SandboxEmail == "" {
		return myerrors.NewInvalidInputError(fmt.Errorf("sandbox mode requires a sandbox email"))
	}

	return nil
}

func (cfg Config) baseURL() string {
	if cfg.SandboxMode {
		return sandboxBaseURL
	}

	return productionBaseURL
}
