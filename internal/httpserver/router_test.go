package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/unimarket/backend/internal/models"
)

func newRouter(env *testEnv) *echo.Echo {
	e := echo.New()
	Register(e, &Deps{
		AuthHandler:     env.Auth,
		CatalogHandler:  env.Catalog,
		ActivityHandler: env.Activity,
		DebugHandler:    env.Debug,
	})
	return e
}

func serve(e *echo.Echo, method, target string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(bodyBytes))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIndexRoute(t *testing.T) {
	env := newTestEnv(t)
	e := newRouter(env)

	rec := serve(e, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Unimarket API running", rec.Body.String())
}

func TestErrorBodyShape(t *testing.T) {
	env := newTestEnv(t)
	e := newRouter(env)

	rec := serve(e, http.MethodGet, "/api/products/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/api/signup", map[string]string{"name": "Ann"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Name and email required"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/api/activity", map[string]interface{}{"user_id": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"user_id, product_id, and action required"}`, rec.Body.String())
}

func TestNonNumericProductID(t *testing.T) {
	env := newTestEnv(t)
	e := newRouter(env)

	rec := serve(e, http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestSignupThroughRouter(t *testing.T) {
	env := newTestEnv(t)
	e := newRouter(env)

	rec := serve(e, http.MethodPost, "/api/signup", map[string]string{"name": "Ann", "email": "a@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User created","user_id":1}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/products/1?user_id=1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	env.DB.Create(&models.Product{Name: "Desk Lamp", Price: 12})
	rec = serve(e, http.MethodGet, "/api/products/1?user_id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, env.countRows(&models.UserActivity{}))
}
