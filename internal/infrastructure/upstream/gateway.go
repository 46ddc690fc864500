// Package upstream reenvía peticiones al backend que atiende clientes, cuentas,
// comprobantes, facturas de venta y modelos.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
)

// maxBodyBytes límite de lectura de la respuesta del backend.
const maxBodyBytes = 16 << 20

// ForwardRequest petición entrante ya autenticada, lista para reenviar.
type ForwardRequest struct {
	Method        string
	Path          string // sufijo fijo + resto de la ruta, p. ej. "/customers/42"
	RawQuery      string
	Authorization string
	ContentType   string
	Body          []byte
}

// ForwardResponse estado y cuerpo del backend, sin reinterpretar.
type ForwardResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// Gateway puerto de salida del router proxy. Un error significa que no hubo respuesta
// utilizable (red, timeout o cuerpo no JSON); un status no-2xx NO es error.
type Gateway interface {
	Forward(ctx context.Context, req ForwardRequest) (*ForwardResponse, error)
}

var _ Gateway = (*HTTPGateway)(nil)

// HTTPGateway implementación sobre net/http. Sin reintentos.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPGateway construye el gateway. baseURL sin barra final (p. ej. "http://backend:5000/api").
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forward reenvía método, query, Authorization y cuerpo; devuelve estado y cuerpo tal cual.
func (g *HTTPGateway) Forward(ctx context.Context, in ForwardRequest) (*ForwardResponse, error) {
	url := g.baseURL + "/" + strings.TrimLeft(in.Path, "/")
	if in.RawQuery != "" {
		url += "?" + in.RawQuery
	}

	var body io.Reader
	if len(in.Body) > 0 {
		body = bytes.NewReader(in.Body)
	}
	req, err := http.NewRequestWithContext(ctx, in.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if in.Authorization != "" {
		req.Header.Set("Authorization", in.Authorization)
	}
	if len(in.Body) > 0 {
		ct := in.ContentType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}
	if len(bytes.TrimSpace(raw)) > 0 && !json.Valid(raw) {
		return nil, fmt.Errorf("%w: respuesta no es JSON (status %d)", domain.ErrUpstream, resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	return &ForwardResponse{Status: resp.StatusCode, ContentType: ct, Body: raw}, nil
}
