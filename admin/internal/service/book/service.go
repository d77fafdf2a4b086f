package book

import (
	"context"
	"net/http"

	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/errs"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/service/apiclient"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/service/envelope"
	"github.com/Astemirdum/book-exchange-admin/pkg/circuit_breaker"
	"go.uber.org/zap"
)

const (
	resource    = "books"
	singleField = "book"
)

type Service struct {
	log    *zap.Logger
	client *apiclient.Client
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service { //nolint:gocritic
	log = log.Named("book")
	return &Service{
		log:    log,
		client: apiclient.New(log, cfg.API),
		cb:     circuit_breaker.New(cfg.CircuitBreaker),
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) List(ctx context.Context) ([]model.BookItem, int, error) {
	data, code, err := s.client.Do(ctx, http.MethodGet, s.client.URL(resource), nil)
	if err != nil {
		return nil, code, err
	}
	books, err := envelope.DecodeList[model.BookItem](data, resource)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	return books, code, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (model.BookItem, int, error) {
	if id == "" {
		return model.BookItem{}, http.StatusBadRequest, errs.ErrEmptyID
	}
	return s.single(ctx, http.MethodGet, s.client.URL(resource, id), nil)
}

func (s *Service) Create(ctx context.Context, req model.CreateBookRequest) (model.BookItem, int, error) {
	return s.single(ctx, http.MethodPost, s.client.URL(resource), req)
}

func (s *Service) Update(ctx context.Context, id string, req model.UpdateBookRequest) (model.BookItem, int, error) {
	if id == "" {
		return model.BookItem{}, http.StatusBadRequest, errs.ErrEmptyID
	}
	return s.single(ctx, http.MethodPut, s.client.URL(resource, id), req)
}

func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	if id == "" {
		return http.StatusBadRequest, errs.ErrEmptyID
	}
	_, code, err := s.client.Do(ctx, http.MethodDelete, s.client.URL(resource, id), nil)
	return code, err
}

func (s *Service) single(ctx context.Context, method, target string, body any) (model.BookItem, int, error) {
	data, code, err := s.client.Do(ctx, method, target, body)
	if err != nil {
		return model.BookItem{}, code, err
	}
	b, err := envelope.DecodeField[model.BookItem](data, singleField)
	if err != nil {
		return model.BookItem{}, http.StatusBadGateway, err
	}
	return b, code, nil
}
