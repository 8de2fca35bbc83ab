// Package client is a typed reader of the reporting API. Every call degrades to an
// empty value on failure: the failure is logged and the caller renders "no data".
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/logger"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client of the API mounted at baseURL, e.g. http://localhost:3001/api.
// A nil httpClient uses a client with a default timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) url(path string, query url.Values) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	u := c.baseURL + "/" + strings.Join(segments, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequest: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr domain.ErrorResponse
		if sonic.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}

	if err := sonic.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("sonic.Unmarshal: %w", err)
	}
	return nil
}

// fetch decodes the response of path, or logs the failure and returns empty.
func fetch[T any](ctx context.Context, c *Client, path string, query url.Values, empty T) T {
	var v T
	if err := c.get(ctx, path, query, &v); err != nil {
		if ctx.Err() == nil {
			logger.Errorf(ctx, "GET %s: %v", path, err)
		}
		return empty
	}
	return v
}

func (c *Client) Departamentos(ctx context.Context) []domain.DepartamentoResponse {
	return fetch(ctx, c, "departamentos", nil, []domain.DepartamentoResponse{})
}

func (c *Client) Circunscripciones(ctx context.Context) []domain.Circunscripcion {
	return fetch(ctx, c, "circunscripciones", nil, []domain.Circunscripcion{})
}

// Personal lists the territorial staff, only the given department when it is not
// empty.
func (c *Client) Personal(ctx context.Context, departamento string) []domain.Personal {
	if departamento != "" {
		return fetch(ctx, c, "personal/departamento/"+departamento, nil, []domain.Personal{})
	}
	return fetch(ctx, c, "personal", nil, []domain.Personal{})
}

func (c *Client) PersonalPorDepartamento(ctx context.Context) []aggregate.Group {
	return fetch(ctx, c, "personal/por-departamento", nil, []aggregate.Group{})
}

func (c *Client) PersonalCitrep(ctx context.Context, citrep string) []domain.PersonalCitrep {
	if citrep != "" {
		return fetch(ctx, c, "circunscripciones/personal/citrep/"+citrep, nil, []domain.PersonalCitrep{})
	}
	return fetch(ctx, c, "circunscripciones/personal", nil, []domain.PersonalCitrep{})
}

// ConteoCircunscripcion is one entry of the per-circumscription staff count.
type ConteoCircunscripcion struct {
	Citrep       string `json:"citrep"`
	Departamento string `json:"departamento"`
	Cantidad     int    `json:"cantidad"`
}

func (c *Client) PersonalPorCircunscripcion(ctx context.Context) []ConteoCircunscripcion {
	return fetch(ctx, c, "circunscripciones/personal/por-circunscripcion", nil, []ConteoCircunscripcion{})
}

func (c *Client) IndicadoresCargos(ctx context.Context) []domain.IndicadorCargo {
	return fetch(ctx, c, "indicadores-cargos", nil, []domain.IndicadorCargo{})
}

func (c *Client) KpisControlGerencia(ctx context.Context) []domain.KpiControlGerencia {
	return fetch(ctx, c, "kpis-control-gerencia", nil, []domain.KpiControlGerencia{})
}

func (c *Client) KpisSeguimiento(ctx context.Context) []domain.KpiSeguimiento {
	return fetch(ctx, c, "kpis-seguimiento", nil, []domain.KpiSeguimiento{})
}

// Entregables lists the deliverables, filtered by segment (e.g. "estado-plazo") when
// both segment and value are given.
func (c *Client) Entregables(ctx context.Context, segment, value string) []domain.Entregable {
	if segment != "" && value != "" {
		return fetch(ctx, c, "seguimiento-pmo/"+segment+"/"+value, nil, []domain.Entregable{})
	}
	return fetch(ctx, c, "seguimiento-pmo", nil, []domain.Entregable{})
}

// Search runs the partial-text search of a domain.
func Search[T any](ctx context.Context, c *Client, domainName, param, text string) []T {
	return fetch(ctx, c, domainName+"/search", url.Values{param: {text}}, []T{})
}

// Resumen returns the summary of a domain, an empty summary on failure.
func (c *Client) Resumen(ctx context.Context, domainName string) Resumen {
	return fetch(ctx, c, domainName+"/resumen", nil, Resumen{})
}

func (c *Client) Filtros(ctx context.Context, domainName string) aggregate.Options {
	return fetch(ctx, c, domainName+"/filtros", nil, aggregate.Options{})
}
