package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
)

func TestForward_CopiaPeticionYRelayaRespuesta(t *testing.T) {
	var got struct {
		method, path, query, auth, ct, body string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.method, got.path, got.query = r.Method, r.URL.Path, r.URL.RawQuery
		got.auth, got.ct, got.body = r.Header.Get("Authorization"), r.Header.Get("Content-Type"), string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"customer":{"id":"c1"}}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL+"/api/", time.Second)
	resp, err := gw.Forward(context.Background(), ForwardRequest{
		Method:        http.MethodPost,
		Path:          "/customers",
		RawQuery:      "page=2&search=ab",
		Authorization: "Bearer tok",
		Body:          []byte(`{"name":"Ana"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/customers", got.path)
	assert.Equal(t, "page=2&search=ab", got.query)
	assert.Equal(t, "Bearer tok", got.auth)
	assert.Equal(t, "application/json", got.ct)
	assert.Equal(t, `{"name":"Ana"}`, got.body)

	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.JSONEq(t, `{"customer":{"id":"c1"}}`, string(resp.Body))
}

func TestForward_NoDosxxSeRelayaSinError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Voucher already posted"}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPGateway(srv.URL, time.Second).Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/vouchers/1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.JSONEq(t, `{"error":"Voucher already posted"}`, string(resp.Body))
}

func TestForward_CuerpoNoJSONEsErrorUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := NewHTTPGateway(srv.URL, time.Second).Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/models"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

func TestForward_BackendCaidoEsErrorUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPGateway(url, time.Second).Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/accounts"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}
