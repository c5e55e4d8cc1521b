package checkoutpagseguro

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrUnparseableBody marks a provider body that could not be interpreted at
// all. It is deliberately a separate error kind: an unparseable body is not
// a classified provider failure.
var ErrUnparseableBody = errors.New("unparseable response body")

// ProviderError is one code/message pair as reported by the provider.
type ProviderError struct {
	Code    string
	Message string
}

// Outcome is the two-variant result of a remote call: Status true with the
// parsed response tree, or Status false with either the single-error shape
// (Message/Error) or the multi-error shape (Messages/Errors). Callers must
// branch on the shape themselves.
type Outcome struct {
	Status   bool
	Response Tree

	Message string
	Error   *ProviderError

	Messages []string
	Errors   []ProviderError
}

type errorsDocument struct {
	XMLName xml.Name           `xml:"errors"`
	Errors  []providerErrorDoc `xml:"error"`
}

type providerErrorDoc struct {
	Code    string `xml:"code"`
	Message string `xml:"message"`
}

func classifySuccess(body []byte) (Outcome, error) {
	tree, err := parseTree(body)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnparseableBody, err)
	}

	return Outcome{
		Status:   true,
		Response: tree,
	}, nil
}

// classifyFailure interprets a provider error body. Session creation only
// ever reports a single error; submission may report a list, in which case
// the multi-error shape is returned with order preserved.
func classifyFailure(body []byte, allowMulti bool) (Outcome, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charsetReader

	doc := errorsDocument{}
	err := decoder.Decode(&doc)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnparseableBody, err)
	}
	if len(doc.Errors) == 0 {
		return Outcome{}, fmt.Errorf("%w: no error element found", ErrUnparseableBody)
	}

	if !allowMulti || len(doc.Errors) == 1 {
		first := doc.Errors[0]

		return Outcome{
			Status:  false,
			Message: LookupErrorMessage(first.Code),
			Error: &ProviderError{
				Code:    first.Code,
				Message: first.Message,
			},
		}, nil
	}

	outcome := Outcome{Status: false}
	for _, e := range doc.Errors {
		outcome.Messages = append(outcome.Messages, LookupErrorMessage(e.Code))
		outcome.Errors = append(outcome.Errors, ProviderError{
			Code:    e.Code,
			Message: e.Message,
		})
	}

	return outcome, nil
}
