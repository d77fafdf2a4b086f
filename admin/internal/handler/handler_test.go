package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/errs"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/handler"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/Astemirdum/book-exchange-admin/pkg/circuit_breaker"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/book-exchange-admin/admin/internal/handler/mocks"
)

var testCfg = config.Config{
	Listing: config.Listing{PageSize: 10, Locale: "en-US", TimeZone: "UTC"},
}

func newCB() circuit_breaker.CircuitBreaker {
	return circuit_breaker.New(circuit_breaker.Config{
		RecordLength:     100,
		Timeout:          time.Second,
		Percentile:       0.5,
		RecoveryRequests: 2,
	})
}

type openCB struct{}

func (openCB) Call(func() error) error       { return circuit_breaker.ErrOpenCB }
func (openCB) State() circuit_breaker.Status { return circuit_breaker.Open }
func (openCB) Reset()                        {}

type fixture struct {
	books   *service_mocks.MockBookService
	readers *service_mocks.MockReaderService
}

func setup(t *testing.T, cfg config.Config) (*fixture, *echo.Echo) {
	t.Helper()
	c := gomock.NewController(t)
	f := &fixture{
		books:   service_mocks.NewMockBookService(c),
		readers: service_mocks.NewMockReaderService(c),
	}
	f.books.EXPECT().CB().Return(newCB()).AnyTimes()
	f.readers.EXPECT().CB().Return(newCB()).AnyTimes()
	h := handler.New(zap.NewNop(), cfg, f.books, f.readers, nil)
	return f, h.NewRouter()
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func books() []model.BookItem {
	return []model.BookItem{
		{ID: "b1", Title: "Harry Potter", Author: "J. K. Rowling", Price: 1000, Owner: model.OwnerByID("u1"), Image: "https://img.example.com/hp.jpg"},
		{ID: "b2", Title: "Dune", Author: "Frank Herbert", Price: 250, Owner: model.InlineOwner(model.Owner{Name: "Ann", Email: "ann@example.com"})},
	}
}

func TestHandler_BooksPage(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		contains     []string
		excludes     []string
	}{
		{
			name:   "ok",
			target: "/admin/books",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().List(gomock.Any()).Return(books(), http.StatusOK, nil)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"Harry Potter", "Dune", "Rs 1,000", "ann@example.com", "u1", "0 of 2 selected.", `placeholder="Filter titles..."`, `alt="Harry Potter"`},
			excludes:     []string{"No books found."},
		},
		{
			name:   "ok. title filter",
			target: "/admin/books?title=harry",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().List(gomock.Any()).Return(books(), http.StatusOK, nil)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"Harry Potter", "0 of 1 selected.", `value="harry"`},
			excludes:     []string{"Dune"},
		},
		{
			name:   "ok. selection",
			target: "/admin/books?sel=b2",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().List(gomock.Any()).Return(books(), http.StatusOK, nil)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"1 of 2 selected.", `data-state="selected"`, `aria-checked="mixed"`},
		},
		{
			name:   "fetch failure renders empty table",
			target: "/admin/books",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().List(gomock.Any()).Return(nil, http.StatusServiceUnavailable, errors.New("dial tcp: refused"))
			},
			expectedCode: http.StatusOK,
			contains:     []string{"No books found.", `colspan="21"`, "0 of 0 selected."},
			excludes:     []string{"dial tcp"},
		},
		{
			name:         "err. negative page",
			target:       "/admin/books?page=-1",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. page too large",
			target:       "/admin/books?page=922337203685477581",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. page not a number",
			target:       "/admin/books?page=abc",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, e := setup(t, testCfg)
			tt.mockBehavior(f.books)

			w := serve(e, http.MethodGet, tt.target, "")

			require.Equal(t, tt.expectedCode, w.Code)
			for _, s := range tt.contains {
				require.Contains(t, w.Body.String(), s)
			}
			for _, s := range tt.excludes {
				require.NotContains(t, w.Body.String(), s)
			}
		})
	}
}

func TestHandler_BooksPage_ShowErrors(t *testing.T) {
	t.Parallel()
	cfg := testCfg
	cfg.Listing.ShowErrors = true
	f, e := setup(t, cfg)
	f.books.EXPECT().List(gomock.Any()).Return(nil, http.StatusServiceUnavailable, errors.New("dial tcp: refused"))

	w := serve(e, http.MethodGet, "/admin/books", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "No books found.")
	require.Contains(t, w.Body.String(), "dial tcp: refused")
}

func TestHandler_BooksPage_RenderWait(t *testing.T) {
	t.Parallel()
	cfg := testCfg
	cfg.Listing.RenderWait = 20 * time.Millisecond
	f, e := setup(t, cfg)
	f.books.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]model.BookItem, int, error) {
		<-ctx.Done()
		return nil, http.StatusServiceUnavailable, ctx.Err()
	}).AnyTimes()

	w := serve(e, http.MethodGet, "/admin/books", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Loading books...")
	require.Contains(t, w.Body.String(), `http-equiv="refresh"`)
	require.NotContains(t, w.Body.String(), "No books found.")
}

func TestHandler_Books(t *testing.T) {
	t.Parallel()
	type input struct {
		method string
		target string
		body   string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	title := "Dune Messiah"
	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "get ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetByID(gomock.Any(), "b1").Return(model.BookItem{ID: "b1", Title: "Dune"}, http.StatusOK, nil)
			},
			input:    input{method: http.MethodGet, target: "/api/v1/books/b1"},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetByID(gomock.Any(), "nope").
					Return(model.BookItem{}, http.StatusNotFound, &errs.UpstreamError{StatusCode: http.StatusNotFound, Body: "not found"})
			},
			input: input{method: http.MethodGet, target: "/api/v1/books/nope"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"upstream status 404: not found"}`,
			},
		},
		{
			name: "create ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Price: 250}).
					Return(model.BookItem{ID: "b9", Title: "Dune", Author: "Frank Herbert", Price: 250}, http.StatusCreated, nil)
			},
			input:    input{method: http.MethodPost, target: "/api/v1/books", body: `{"title":"Dune","author":"Frank Herbert","price":250}`},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name:         "err. create without title",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			input:        input{method: http.MethodPost, target: "/api/v1/books", body: `{"author":"Frank Herbert"}`},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name:         "err. create negative price",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			input:        input{method: http.MethodPost, target: "/api/v1/books", body: `{"title":"Dune","author":"Frank Herbert","price":-1}`},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "update ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Update(gomock.Any(), "b1", model.UpdateBookRequest{Title: &title}).
					Return(model.BookItem{ID: "b1", Title: title}, http.StatusOK, nil)
			},
			input:    input{method: http.MethodPut, target: "/api/v1/books/b1", body: `{"title":"Dune Messiah"}`},
			response: response{expectedCode: http.StatusOK},
		},
		{
			name: "delete ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Delete(gomock.Any(), "b1").Return(http.StatusOK, nil)
			},
			input:    input{method: http.MethodDelete, target: "/api/v1/books/b1"},
			response: response{expectedCode: http.StatusNoContent},
		},
		{
			name: "err. upstream unavailable",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Delete(gomock.Any(), "b1").Return(http.StatusServiceUnavailable, errors.New("connection refused"))
			},
			input: input{method: http.MethodDelete, target: "/api/v1/books/b1"},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"connection refused"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, e := setup(t, testCfg)
			tt.mockBehavior(f.books)

			w := serve(e, tt.input.method, tt.input.target, tt.input.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	f, e := setup(t, testCfg)
	f.books.EXPECT().List(gomock.Any()).Return(books(), http.StatusOK, nil)

	w := serve(e, http.MethodGet, "/api/v1/books", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got []model.BookItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "b1", got[0].ID)
	require.Equal(t, model.OwnerInline, got[1].Owner.Kind())
}

func TestHandler_OpenCircuit(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	books := service_mocks.NewMockBookService(c)
	books.EXPECT().CB().Return(openCB{}).AnyTimes()
	h := handler.New(zap.NewNop(), testCfg, books, service_mocks.NewMockReaderService(c), nil)
	e := h.NewRouter()

	w := serve(e, http.MethodGet, "/api/v1/books", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, `{"message":"circuit breaker is open"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodGet, "/admin/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "No books found.")
}

func TestHandler_Readers(t *testing.T) {
	t.Parallel()
	t.Run("passwords never leave the api", func(t *testing.T) {
		t.Parallel()
		f, e := setup(t, testCfg)
		f.readers.EXPECT().List(gomock.Any()).
			Return([]model.ReaderItem{{ID: "r1", Name: "Ann", Email: "ann@example.com", Password: "hash"}}, http.StatusOK, nil)
		f.readers.EXPECT().GetByID(gomock.Any(), "r1").
			Return(model.ReaderItem{ID: "r1", Name: "Ann", Password: "hash"}, http.StatusOK, nil)

		w := serve(e, http.MethodGet, "/api/v1/readers", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"name":"Ann"`)
		require.NotContains(t, w.Body.String(), "password")

		w = serve(e, http.MethodGet, "/api/v1/readers/r1", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "password")
	})
	t.Run("create validates email", func(t *testing.T) {
		t.Parallel()
		_, e := setup(t, testCfg)
		w := serve(e, http.MethodPost, "/api/v1/readers", `{"name":"Ann","email":"nope","password":"secret1"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("create ok", func(t *testing.T) {
		t.Parallel()
		f, e := setup(t, testCfg)
		f.readers.EXPECT().Create(gomock.Any(), model.CreateReaderRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}).
			Return(model.ReaderItem{ID: "r2", Name: "Ann", Email: "ann@example.com", Password: "hash"}, http.StatusCreated, nil)
		w := serve(e, http.MethodPost, "/api/v1/readers", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.NotContains(t, w.Body.String(), "hash")
	})
	t.Run("delete not found", func(t *testing.T) {
		t.Parallel()
		f, e := setup(t, testCfg)
		f.readers.EXPECT().Delete(gomock.Any(), "r404").
			Return(http.StatusNotFound, &errs.UpstreamError{StatusCode: http.StatusNotFound})
		w := serve(e, http.MethodDelete, "/api/v1/readers/r404", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	_, e := setup(t, testCfg)
	w := serve(e, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
