package mystore

import (
	"context"
)

type ctxTransactionKey struct{}

//go:generate mockgen -source=api.go -package mystore -destination store_mock.go Store
type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	List(c context.Context) ([]T, error)
}

func New[T any](c context.Context) (Store[T], func(), error) {
	return NewInMemoryStore[T](c)
}
