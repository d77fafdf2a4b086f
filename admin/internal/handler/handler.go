package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/listing"
	mw "github.com/Astemirdum/book-exchange-admin/pkg/middleware"
	"github.com/Astemirdum/book-exchange-admin/pkg/validate"
	_ "github.com/Astemirdum/book-exchange-admin/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const BooksPagePath = "/admin/books"

type Handler struct {
	bookSvc   BookService
	readerSvc ReaderService
	stats     StatsLog
	formatter *listing.Formatter
	listing   config.Listing
	log       *zap.Logger
}

func New(log *zap.Logger, cfg config.Config, bookSvc BookService, readerSvc ReaderService, stats StatsLog) *Handler { //nolint:gocritic
	loc, err := time.LoadLocation(cfg.Listing.TimeZone)
	if err != nil {
		log.Warn("unknown time zone, using UTC", zap.String("tz", cfg.Listing.TimeZone), zap.Error(err))
		loc = time.UTC
	}
	if stats == nil {
		stats = nopStatsLog{}
	}
	return &Handler{
		bookSvc:   bookSvc,
		readerSvc: readerSvc,
		stats:     stats,
		formatter: listing.NewFormatter(cfg.Listing.Locale, loc),
		listing:   cfg.Listing,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		pageRPS = 20
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	e.Validator = validate.NewCustomValidator()
	e.Renderer = NewRenderer()

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	logged := []echo.MiddlewareFunc{
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		mw.RequestID(),
	}

	admin := e.Group("", append(logged, mw.NewRateLimiter(pageRPS))...)
	admin.GET(BooksPagePath, h.BooksPage)

	api := e.Group("/api/v1", append(logged, mw.NewRateLimiter(apiRPS))...)

	api.GET("/books", h.GetBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/readers", h.GetReaders)
	api.POST("/readers", h.CreateReader)
	api.GET("/readers/:id", h.GetReader)
	api.PUT("/readers/:id", h.UpdateReader)
	api.DELETE("/readers/:id", h.DeleteReader)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
