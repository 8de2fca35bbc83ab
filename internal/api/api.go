package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ougirez/gerencia/internal/api/controller"
	"github.com/ougirez/gerencia/internal/pkg/logger"
	"github.com/ougirez/gerencia/internal/pkg/metrics"
	"github.com/ougirez/gerencia/internal/pkg/store"
	"github.com/ougirez/gerencia/internal/service/report"
	"github.com/ougirez/gerencia/internal/service/staffing"
)

type Options struct {
	CORSOrigins []string
	// CoverageCap is the staff count per dimension member counted as full coverage.
	CoverageCap int
}

type APIService struct {
	router          *echo.Echo
	staffingService *staffing.Service
}

func (svc *APIService) Serve(addr string) {
	err := svc.router.Start(addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func register[T any](api *echo.Group, svc *report.Service[T]) {
	controller.NewResource(svc).Register(api.Group("/" + svc.Descriptor().Name))
}

func NewAPIService(s *store.Store, opts Options) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.JSONSerializer = JSONSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(requestID())
	svc.router.Use(svc.ContextLogger)
	svc.router.Use(requestLogger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	personal := report.NewService(s, report.Personal())
	personalCitrep := report.NewService(s, report.PersonalCitrep())
	svc.staffingService = staffing.NewStaffingService(s, personal, personalCitrep, opts.CoverageCap)

	svc.router.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := svc.router.Group("/api")
	cntrl := controller.NewController(svc.staffingService)

	staff := api.Group("/personal")
	staff.GET("/agrupado", cntrl.GetPersonalAgrupado)
	staff.GET("/por-departamento", cntrl.GetPersonalPorDepartamento)
	staff.GET("/cobertura", cntrl.GetCoberturaDepartamentos)

	citrepStaff := api.Group("/circunscripciones/personal")
	citrepStaff.GET("/por-circunscripcion", cntrl.GetPersonalPorCircunscripcion)
	citrepStaff.GET("/cobertura", cntrl.GetCoberturaCircunscripciones)

	register(api, report.NewService(s, report.Departamentos()))
	register(api, personal)
	register(api, report.NewService(s, report.Circunscripciones()))
	register(api, personalCitrep)
	register(api, report.NewService(s, report.IndicadoresCargos()))
	register(api, report.NewService(s, report.KpisControlGerencia()))
	register(api, report.NewService(s, report.KpisSeguimiento()))
	register(api, report.NewService(s, report.SeguimientoPMO()))

	return svc, nil
}
