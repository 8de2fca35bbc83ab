package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/gerencia/internal/service/report"
)

// Resource exposes the read operations of one reporting domain.
type Resource[T any] struct {
	service *report.Service[T]
}

func NewResource[T any](service *report.Service[T]) *Resource[T] {
	return &Resource[T]{service: service}
}

// Register mounts the domain on g. Fixed segments go first and /:id last so that
// /resumen or /filtros never reach the id handler.
func (r *Resource[T]) Register(g *echo.Group) {
	desc := r.service.Descriptor()

	g.GET("", r.List)
	g.GET("/search", r.Search)
	g.GET("/filtros", r.FilterOptions)
	g.GET("/resumen", r.Summary)
	for _, l := range desc.Lookups {
		g.GET("/"+l.Segment+"/:value", r.lookup(l.Segment))
	}
	for _, f := range desc.Filters {
		g.GET("/"+f.Segment+"/:value", r.filter(f.Segment))
	}
	g.GET("/:id", r.Get)
}

func (r *Resource[T]) List(ctx echo.Context) error {
	records, err := r.service.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (r *Resource[T]) Get(ctx echo.Context) error {
	var req idRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	record, err := r.service.Get(ctx.Request().Context(), req.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, record)
}

func (r *Resource[T]) Search(ctx echo.Context) error {
	text := ctx.QueryParam(r.service.Descriptor().SearchParam)
	if text == "" {
		text = ctx.QueryParam("q")
	}

	records, err := r.service.Search(ctx.Request().Context(), text)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (r *Resource[T]) Summary(ctx echo.Context) error {
	summary, err := r.service.Summary(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (r *Resource[T]) FilterOptions(ctx echo.Context) error {
	options, err := r.service.FilterOptions(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, options)
}

func (r *Resource[T]) lookup(segment string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req valueRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}

		record, err := r.service.Lookup(ctx.Request().Context(), segment, req.Value)
		if err != nil {
			return err
		}

		return ctx.JSON(http.StatusOK, record)
	}
}

func (r *Resource[T]) filter(segment string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req valueRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}

		records, err := r.service.Filter(ctx.Request().Context(), segment, req.Value)
		if err != nil {
			return err
		}

		return ctx.JSON(http.StatusOK, records)
	}
}
