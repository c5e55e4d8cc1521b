package checkoutpagseguro

// Display texts for the provider error codes seen on the checkout and
// transaction endpoints. The table deliberately fails open: an unknown code
// yields an empty display text and the raw code is the caller's fallback.
var errorMessages = map[string]string{
	"11004": "Currency is required.",
	"11005": "Currency has an invalid value.",
	"11008": "Reference has an invalid length.",
	"11009": "Sender email has an invalid length.",
	"11010": "Sender email has an invalid value.",
	"11011": "Sender name has an invalid length.",
	"11012": "Sender name has an invalid value.",
	"11013": "Sender area code has an invalid value.",
	"11014": "Sender phone has an invalid value.",
	"11016": "Sender CPF has an invalid value.",
	"11017": "Item id is required.",
	"11018": "Item id has an invalid length.",
	"11019": "Item description is required.",
	"11020": "Item description has an invalid length.",
	"11021": "Item amount is required.",
	"11022": "Item amount has an invalid pattern.",
	"11023": "Item amount is out of range.",
	"11024": "Item quantity is required.",
	"11025": "Item quantity is out of range.",
	"11026": "Item quantity has an invalid value.",
	"11027": "Item shipping cost has an invalid pattern.",
	"11028": "Item shipping cost is out of range.",
	"11039": "Extra amount has an invalid pattern.",
	"11040": "Extra amount is out of range.",
	"11157": "Sender hash is invalid.",
	"53004": "Items are invalid.",
	"53005": "Currency is required.",
	"53006": "Currency has an invalid value.",
	"53010": "Sender email is required.",
	"53011": "Sender email has an invalid value.",
	"53012": "Sender CPF is required.",
	"53013": "Sender CPF has an invalid value.",
	"53014": "Sender area code is required.",
	"53015": "Sender area code has an invalid value.",
	"53016": "Sender phone is required.",
	"53017": "Sender phone has an invalid value.",
	"53018": "Shipping address postal code is required.",
	"53019": "Shipping address postal code has an invalid value.",
	"53020": "Shipping address street is required.",
	"53021": "Shipping address street has an invalid value.",
	"53022": "Shipping address number is required.",
	"53023": "Shipping address number has an invalid value.",
	"53024": "Shipping address city is required.",
	"53025": "Shipping address city has an invalid value.",
	"53026": "Shipping address state is required.",
	"53027": "Shipping address state has an invalid value.",
	"53028": "Shipping address country is required.",
	"53029": "Shipping address country has an invalid value.",
	"53030": "Payment mode is required.",
	"53031": "Payment mode has an invalid value.",
	"53032": "Payment method is required.",
	"53033": "Payment method has an invalid value.",
	"53037": "Credit card token is required.",
	"53042": "Credit card holder name is required.",
	"53043": "Credit card holder name has an invalid length.",
	"53044": "Credit card holder name has an invalid value.",
	"53045": "Credit card holder CPF is required.",
	"53046": "Credit card holder CPF has an invalid value.",
	"53047": "Credit card holder birth date is required.",
	"53048": "Credit card holder birth date has an invalid value.",
	"53049": "Credit card holder area code is required.",
	"53050": "Credit card holder area code has an invalid value.",
	"53051": "Credit card holder phone is required.",
	"53052": "Credit card holder phone has an invalid value.",
	"53053": "Billing address is required.",
	"53061": "Installment quantity is required.",
	"53062": "Installment quantity has an invalid value.",
	"53063": "Installment value is required.",
	"53064": "Installment value has an invalid value.",
	"53070": "Notification URL has an invalid length.",
	"53071": "Notification URL has an invalid value.",
	"53122": "Account email and sender email must be different.",
}

// LookupErrorMessage returns the display text for a provider code, or the
// empty string for unknown codes.
func LookupErrorMessage(code string) string {
	return errorMessages[code]
}
