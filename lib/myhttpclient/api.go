package myhttpclient

import (
	"context"
)

//go:generate mockgen -source=api.go -package myhttpclient -destination formSender_mock.go FormSender
type FormSender interface {
	Send(c context.Context, method string, url string, contentType string, body []byte) (int, []byte, error)
}

func New() FormSender {
	return newFormHTTPClient()
}
