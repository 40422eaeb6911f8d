package entity

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler exposes one entity service as a REST resource. Domain errors
// (NotFoundError, ValidationError) propagate unwrapped so the central HTTP
// error handler can map them to status codes and response bodies.
type Handler[T any, P any] struct {
	svc *Service[T, P]
}

func NewHandler[T any, P any](svc *Service[T, P]) *Handler[T, P] {
	return &Handler[T, P]{svc: svc}
}

// Register mounts the standard CRUD routes for the resource under path,
// e.g. Register(api, "/patients").
func (h *Handler[T, P]) Register(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

func (h *Handler[T, P]) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*T{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler[T, P]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	e, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler[T, P]) Create(c echo.Context) error {
	var p P
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	e, err := h.svc.Create(c.Request().Context(), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler[T, P]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var p P
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	e, err := h.svc.Update(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler[T, P]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
