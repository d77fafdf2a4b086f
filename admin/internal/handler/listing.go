package handler

import (
	"context"
	"net/http"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/listing"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const booksTemplate = "books"

// BooksPage renders the book listing. The view state comes from the query string.
func (h *Handler) BooksPage(c echo.Context) error {
	var q listing.Query
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	view := listing.NewView(h.fetchBooks, h.log)
	view.Mount(ctx)
	defer view.Unmount()

	waitCtx := ctx
	if h.listing.RenderWait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, h.listing.RenderWait)
		defer cancel()
	}
	if err := view.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "books page")
		}
		return c.Render(http.StatusOK, booksTemplate, listing.LoadingPage())
	}

	page := listing.Build(view.Result(), q.State(h.listing.PageSize), h.formatter, listing.Options{
		BasePath:        BooksPagePath,
		DefaultPageSize: h.listing.PageSize,
		ShowErrors:      h.listing.ShowErrors,
	})
	h.recordStats(c, ActionListed, ResourceBook, "", page.FilteredCount)
	return c.Render(http.StatusOK, booksTemplate, page)
}

func (h *Handler) fetchBooks(ctx context.Context) ([]model.BookItem, error) {
	return call(h.bookSvc.CB(), func() ([]model.BookItem, int, error) {
		return h.bookSvc.List(ctx)
	})
}
