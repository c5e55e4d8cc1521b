package checkoutpagseguro

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/MarcGrol/paygateway/lib/myerrors"
	"github.com/MarcGrol/paygateway/lib/myhttpclient"
	"github.com/MarcGrol/paygateway/lib/mylog"
)

const formContentType = "application/x-www-form-urlencoded; charset=iso-8859-1"

// Client talks to the provider's checkout API. The transport is injected to
// isolate the infrastructure and ease testing.
type Client struct {
	cfg    Config
	sender myhttpclient.FormSender
	logger mylog.Logger
}

func NewClient(cfg Config, sender myhttpclient.FormSender) (*Client, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:    cfg,
		sender: sender,
		logger: mylog.New("checkoutpagseguro"),
	}, nil
}

// NewCheckout starts the accumulator for one transaction attempt.
func (cl *Client) NewCheckout() *Checkout {
	return newCheckout(cl.cfg)
}

// GetSession opens a checkout session on the provider. A provider-reported
// failure comes back as a single-error Outcome; only an unparseable body or
// a transport breakdown is returned as a Go error.
func (cl *Client) GetSession(c context.Context) (Outcome, error) {
	cl.logger.Log(c, "", mylog.SeverityInfo, "Creating session")

	sessionsURL := fmt.Sprintf("%s/sessions?%s", cl.cfg.baseURL(), cl.credentialsQuery())

	status, body, err := cl.sender.Send(c, http.MethodPost, sessionsURL, "", nil)
	if err != nil {
		return Outcome{}, myerrors.NewUnavailableError(fmt.Errorf("error creating session: %s", err))
	}

	if status >= http.StatusMultipleChoices {
		return classifyFailure(body, false)
	}

	return classifySuccess(body)
}

type SubmitRequest struct {
	Reference       string
	ExtraAmount     *float64
	NotificationURL string

	// DryRun finalizes and prints the payload but never touches the network;
	// the outcome carries the exact wire payload as its response.
	DryRun bool
	// PrintOnly prints the payload and still submits.
	PrintOnly bool
}

// SubmitPayment finalizes the payload of the given checkout and posts it to
// the transactions endpoint.
func (cl *Client) SubmitPayment(c context.Context, co *Checkout, req SubmitRequest) (Outcome, error) {
	co.payload.merge(clean(Payload{
		"reference":       optString(req.Reference),
		"extraAmount":     optAmount(req.ExtraAmount),
		"notificationURL": optString(req.NotificationURL),
	}))
	clean(co.payload)

	if req.DryRun || req.PrintOnly {
		cl.dumpPayload(co.payload)
	}

	if req.DryRun {
		return Outcome{
			Status:   true,
			Response: Tree(co.Payload()),
		}, nil
	}

	cl.logger.Log(c, req.Reference, mylog.SeverityInfo, "Submitting payment with %d fields", len(co.payload))

	transactionsURL := fmt.Sprintf("%s/transactions?%s", cl.cfg.baseURL(), cl.credentialsQuery())

	status, body, err := cl.sender.Send(c, http.MethodPost, transactionsURL, formContentType, co.payload.formEncode())
	if err != nil {
		return Outcome{}, myerrors.NewUnavailableError(fmt.Errorf("error submitting payment: %s", err))
	}

	if status >= http.StatusMultipleChoices {
		return classifyFailure(body, true)
	}

	return classifySuccess(body)
}

func (cl *Client) credentialsQuery() string {
	query := url.Values{}
	query.Set("email", cl.cfg.AccountEmail)
	query.Set("token", cl.cfg.AccountToken)

	return query.Encode()
}

// dumpPayload writes the payload as a two-column table for inspection.
func (cl *Client) dumpPayload(p Payload) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%v\n", k, p[k])
	}
	w.Flush()
}
