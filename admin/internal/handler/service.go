package handler

import (
	"context"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/service/book"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/service/reader"
	"github.com/Astemirdum/book-exchange-admin/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BookService   = (*book.Service)(nil)
	_ ReaderService = (*reader.Service)(nil)
)

type BookService interface {
	CB() circuit_breaker.CircuitBreaker
	List(ctx context.Context) ([]model.BookItem, int, error)
	GetByID(ctx context.Context, id string) (model.BookItem, int, error)
	Create(ctx context.Context, req model.CreateBookRequest) (model.BookItem, int, error)
	Update(ctx context.Context, id string, req model.UpdateBookRequest) (model.BookItem, int, error)
	Delete(ctx context.Context, id string) (int, error)
}

type ReaderService interface {
	CB() circuit_breaker.CircuitBreaker
	List(ctx context.Context) ([]model.ReaderItem, int, error)
	GetByID(ctx context.Context, id string) (model.ReaderItem, int, error)
	Create(ctx context.Context, req model.CreateReaderRequest) (model.ReaderItem, int, error)
	Update(ctx context.Context, id string, req model.UpdateReaderRequest) (model.ReaderItem, int, error)
	Delete(ctx context.Context, id string) (int, error)
}
