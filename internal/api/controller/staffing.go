package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetPersonalAgrupado(ctx echo.Context) error {
	groups, err := c.staffing.Agrupado(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, groups)
}

func (c *Controller) GetPersonalPorDepartamento(ctx echo.Context) error {
	groups, err := c.staffing.PorDepartamento(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, groups)
}

func (c *Controller) GetPersonalPorCircunscripcion(ctx echo.Context) error {
	groups, err := c.staffing.PorCircunscripcion(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, groups)
}

func (c *Controller) GetCoberturaDepartamentos(ctx echo.Context) error {
	cov, err := c.staffing.CoberturaDepartamentos(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cov)
}

func (c *Controller) GetCoberturaCircunscripciones(ctx echo.Context) error {
	cov, err := c.staffing.CoberturaCircunscripciones(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cov)
}
