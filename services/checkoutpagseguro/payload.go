package checkoutpagseguro

import (
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Payload is the flat field-to-value record that is form-encoded and sent to
// the gateway. Keys follow the provider's wire protocol (senderName,
// shippingAddressStreet, itemId1, ...) and are not freely renameable.
// A nil value marks a field that was never supplied; clean strips those.
type Payload map[string]any

// clean removes every key holding the absent sentinel. Present falsy values
// (empty string, zero, false) are kept. Idempotent.
func clean(p Payload) Payload {
	for k, v := range p {
		if v == nil {
			delete(p, k)
		}
	}

	return p
}

// merge copies every field of partial into p: later write wins.
func (p Payload) merge(partial Payload) {
	for k, v := range partial {
		p[k] = v
	}
}

// formEncode renders the payload as an iso-8859-1 form-urlencoded body.
// Runes outside latin-1 are replaced rather than rejected.
func (p Payload) formEncode() []byte {
	latin1 := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())

	values := url.Values{}
	for k, v := range p {
		if v == nil {
			continue
		}

		encoded, err := latin1.String(fmt.Sprint(v))
		if err != nil {
			encoded = fmt.Sprint(v)
		}
		values.Set(k, encoded)
	}

	return []byte(values.Encode())
}

// formatAmount renders monetary values the way the gateway expects them
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func optString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func optInt(i int) any {
	if i == 0 {
		return nil
	}

	return i
}

func optAmount(amount *float64) any {
	if amount == nil {
		return nil
	}

	return formatAmount(*amount)
}
