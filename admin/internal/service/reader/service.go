package reader

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
	resource = "readers"
	// the API answers a reader list under "reader" as well as "readers".
	singularList = "reader"
	singleField  = "user"
)

type Service struct {
	log    *zap.Logger
	client *apiclient.Client
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service { //nolint:gocritic
	log = log.Named("reader")
	return &Service{
		log:    log,
		client: apiclient.New(log, cfg.API),
		cb:     circuit_breaker.New(cfg.CircuitBreaker),
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) List(ctx context.Context) ([]model.ReaderItem, int, error) {
	data, code, err := s.client.Do(ctx, http.MethodGet, s.client.URL(resource), nil)
	if err != nil {
		return nil, code, err
	}
	readers, err := envelope.DecodeList[model.ReaderItem](data, resource, singularList)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	return readers, code, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (model.ReaderItem, int, error) {
	if id == "" {
		return model.ReaderItem{}, http.StatusBadRequest, errs.ErrEmptyID
	}
	return s.single(ctx, http.MethodGet, s.client.URL(resource, id), nil)
}

func (s *Service) Create(ctx context.Context, req model.CreateReaderRequest) (model.ReaderItem, int, error) {
	return s.single(ctx, http.MethodPost, s.client.URL(resource), req)
}

func (s *Service) Update(ctx context.Context, id string, req model.UpdateReaderRequest) (model.ReaderItem, int, error) {
	if id == "" {
		return model.ReaderItem{}, http.StatusBadRequest, errs.ErrEmptyID
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

func (s *Service) single(ctx context.Context, method, target string, body any) (model.ReaderItem, int, error) {
	data, code, err := s.client.Do(ctx, method, target, body)
	if err != nil {
		return model.ReaderItem{}, code, err
	}
	r, err := envelope.DecodeField[model.ReaderItem](data, singleField)
	if err != nil {
		return model.ReaderItem{}, http.StatusBadGateway, err
	}
	return r, code, nil
}
