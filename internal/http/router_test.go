package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpapi "github.com/floramar/flower-service/internal/http"
	"github.com/floramar/flower-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires a full router over in-memory services.
type testRouter struct {
	engine   *gin.Engine
	sessions *service.SessionService
}

func newTestRouter(t *testing.T, cfg httpapi.RouterConfig) *testRouter {
	t.Helper()

	catalog := service.NewCatalogService(service.DefaultCatalog)
	carts := service.NewCartService()
	sessions := service.NewSessionService("test-secret", time.Hour)
	formatter := service.NewMessageFormatter("+53")

	cfg.SessionService = sessions

	handlers := httpapi.Handlers{
		Catalog:  httpapi.NewCatalogHandler(catalog),
		Cart:     httpapi.NewCartHandler(carts, catalog),
		Checkout: httpapi.NewCheckoutHandler(carts, formatter, "5351234567"),
		Session:  httpapi.NewSessionHandler(sessions),
		Health:   httpapi.NewHealthHandler(),
	}

	return &testRouter{
		engine:   httpapi.NewRouter(handlers, cfg),
		sessions: sessions,
	}
}

// do performs a request and decodes the standard response envelope into out
// when out is non-nil.
func (r *testRouter) do(t *testing.T, method, path string, body interface{}, out interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	rec := httptest.NewRecorder()
	r.engine.ServeHTTP(rec, req)

	if out != nil && rec.Code < 400 {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return rec
}
