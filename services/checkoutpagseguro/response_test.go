package checkoutpagseguro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTree(t *testing.T) {

	t.Run("Nested elements", func(t *testing.T) {
		body := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<session><id>abc123</id></session>`)

		tree, err := parseTree(body)

		assert.NoError(t, err)
		assert.Equal(t, Tree{"session": Tree{"id": "abc123"}}, tree)
	})

	t.Run("Repeated elements become a list", func(t *testing.T) {
		body := []byte(`<transaction><items><item><id>1</id></item><item><id>2</id></item></items></transaction>`)

		tree, err := parseTree(body)

		assert.NoError(t, err)
		assert.Equal(t, Tree{
			"transaction": Tree{
				"items": Tree{
					"item": []any{
						Tree{"id": "1"},
						Tree{"id": "2"},
					},
				},
			},
		}, tree)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := parseTree([]byte("Unauthorized"))

		assert.Error(t, err)
	})
}

func TestClassifySuccess(t *testing.T) {
	body := []byte(`<transaction><code>9E884542</code><status>3</status></transaction>`)

	outcome, err := classifySuccess(body)

	assert.NoError(t, err)
	assert.True(t, outcome.Status)
	assert.Equal(t, Tree{"transaction": Tree{"code": "9E884542", "status": "3"}}, outcome.Response)
}

func TestClassifyFailure(t *testing.T) {

	t.Run("Single error", func(t *testing.T) {
		body := []byte(`<errors><error><code>53037</code><message>credit card token is required.</message></error></errors>`)

		outcome, err := classifyFailure(body, true)

		assert.NoError(t, err)
		assert.False(t, outcome.Status)
		assert.Equal(t, "Credit card token is required.", outcome.Message)
		assert.Equal(t, &ProviderError{Code: "53037", Message: "credit card token is required."}, outcome.Error)
		assert.Empty(t, outcome.Errors)
	})

	t.Run("Multiple errors preserve order", func(t *testing.T) {
		body := []byte(`<errors>` +
			`<error><code>53037</code><message>credit card token is required.</message></error>` +
			`<error><code>53042</code><message>credit card holder name is required.</message></error>` +
			`</errors>`)

		outcome, err := classifyFailure(body, true)

		assert.NoError(t, err)
		assert.False(t, outcome.Status)
		assert.Equal(t, []string{
			"Credit card token is required.",
			"Credit card holder name is required.",
		}, outcome.Messages)
		assert.Equal(t, []ProviderError{
			{Code: "53037", Message: "credit card token is required."},
			{Code: "53042", Message: "credit card holder name is required."},
		}, outcome.Errors)
		assert.Nil(t, outcome.Error)
	})

	t.Run("Multiple errors collapse to first when multi is not allowed", func(t *testing.T) {
		body := []byte(`<errors>` +
			`<error><code>53037</code><message>credit card token is required.</message></error>` +
			`<error><code>53042</code><message>credit card holder name is required.</message></error>` +
			`</errors>`)

		outcome, err := classifyFailure(body, false)

		assert.NoError(t, err)
		assert.Equal(t, "53037", outcome.Error.Code)
		assert.Empty(t, outcome.Errors)
	})

	t.Run("Unknown code fails open", func(t *testing.T) {
		body := []byte(`<errors><error><code>99999</code><message>mystery.</message></error></errors>`)

		outcome, err := classifyFailure(body, true)

		assert.NoError(t, err)
		assert.Equal(t, "", outcome.Message)
		assert.Equal(t, "99999", outcome.Error.Code)
		assert.Equal(t, "mystery.", outcome.Error.Message)
	})

	t.Run("Unparseable body is a distinct error kind", func(t *testing.T) {
		_, err := classifyFailure([]byte("<html>Bad Gateway</html>"), true)

		assert.ErrorIs(t, err, ErrUnparseableBody)
	})

	t.Run("Body without error element is a distinct error kind", func(t *testing.T) {
		_, err := classifyFailure([]byte("<errors></errors>"), true)

		assert.ErrorIs(t, err, ErrUnparseableBody)
	})
}
