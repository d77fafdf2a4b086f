package handler

import (
	"net/http"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/labstack/echo/v4"
)

// GetBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} model.BookItem
// @Failure 502 {object} echo.HTTPError
// @Failure 503 {object} echo.HTTPError
// @Router /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()
	books, err := call(h.bookSvc.CB(), func() ([]model.BookItem, int, error) {
		return h.bookSvc.List(ctx)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionListed, ResourceBook, "", len(books))
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary Get book
// @Tags books
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} model.BookItem
// @Failure 404 {object} echo.HTTPError
// @Router /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	book, err := call(h.bookSvc.CB(), func() (model.BookItem, int, error) {
		return h.bookSvc.GetByID(ctx, id)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionViewed, ResourceBook, id, 1)
	return c.JSON(http.StatusOK, book)
}

// CreateBook godoc
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBookRequest true "book"
// @Success 201 {object} model.BookItem
// @Failure 400 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	book, err := call(h.bookSvc.CB(), func() (model.BookItem, int, error) {
		return h.bookSvc.Create(ctx, req)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionCreated, ResourceBook, book.ID, 1)
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook godoc
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "book id"
// @Param book body model.UpdateBookRequest true "changed fields"
// @Success 200 {object} model.BookItem
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /books/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	book, err := call(h.bookSvc.CB(), func() (model.BookItem, int, error) {
		return h.bookSvc.Update(ctx, id, req)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionUpdated, ResourceBook, id, 1)
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary Delete book
// @Tags books
// @Param id path string true "book id"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err = call(h.bookSvc.CB(), func() (struct{}, int, error) {
		code, err := h.bookSvc.Delete(ctx, id)
		return struct{}{}, code, err
	}); err != nil {
		return err
	}
	h.recordStats(c, ActionDeleted, ResourceBook, id, 1)
	return c.NoContent(http.StatusNoContent)
}
