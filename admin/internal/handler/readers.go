package handler

import (
	"net/http"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/labstack/echo/v4"
)

// GetReaders godoc
// @Summary List readers
// @Tags readers
// @Produce json
// @Success 200 {array} model.ReaderItem
// @Failure 502 {object} echo.HTTPError
// @Failure 503 {object} echo.HTTPError
// @Router /readers [get]
func (h *Handler) GetReaders(c echo.Context) error {
	ctx := c.Request().Context()
	readers, err := call(h.readerSvc.CB(), func() ([]model.ReaderItem, int, error) {
		return h.readerSvc.List(ctx)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionListed, ResourceReader, "", len(readers))
	return c.JSON(http.StatusOK, model.RedactReaders(readers))
}

// GetReader godoc
// @Summary Get reader
// @Tags readers
// @Produce json
// @Param id path string true "reader id"
// @Success 200 {object} model.ReaderItem
// @Failure 404 {object} echo.HTTPError
// @Router /readers/{id} [get]
func (h *Handler) GetReader(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	reader, err := call(h.readerSvc.CB(), func() (model.ReaderItem, int, error) {
		return h.readerSvc.GetByID(ctx, id)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionViewed, ResourceReader, id, 1)
	return c.JSON(http.StatusOK, reader.Redacted())
}

// CreateReader godoc
// @Summary Create reader
// @Tags readers
// @Accept json
// @Produce json
// @Param reader body model.CreateReaderRequest true "reader"
// @Success 201 {object} model.ReaderItem
// @Failure 400 {object} echo.HTTPError
// @Router /readers [post]
func (h *Handler) CreateReader(c echo.Context) error {
	var req model.CreateReaderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	reader, err := call(h.readerSvc.CB(), func() (model.ReaderItem, int, error) {
		return h.readerSvc.Create(ctx, req)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionCreated, ResourceReader, reader.ID, 1)
	return c.JSON(http.StatusCreated, reader.Redacted())
}

// UpdateReader godoc
// @Summary Update reader
// @Tags readers
// @Accept json
// @Produce json
// @Param id path string true "reader id"
// @Param reader body model.UpdateReaderRequest true "changed fields"
// @Success 200 {object} model.ReaderItem
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /readers/{id} [put]
func (h *Handler) UpdateReader(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateReaderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	reader, err := call(h.readerSvc.CB(), func() (model.ReaderItem, int, error) {
		return h.readerSvc.Update(ctx, id, req)
	})
	if err != nil {
		return err
	}
	h.recordStats(c, ActionUpdated, ResourceReader, id, 1)
	return c.JSON(http.StatusOK, reader.Redacted())
}

// DeleteReader godoc
// @Summary Delete reader
// @Tags readers
// @Param id path string true "reader id"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Router /readers/{id} [delete]
func (h *Handler) DeleteReader(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err = call(h.readerSvc.CB(), func() (struct{}, int, error) {
		code, err := h.readerSvc.Delete(ctx, id)
		return struct{}{}, code, err
	}); err != nil {
		return err
	}
	h.recordStats(c, ActionDeleted, ResourceReader, id, 1)
	return c.NoContent(http.StatusNoContent)
}
