package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/unimarket/backend/internal/models"
	"github.com/unimarket/backend/internal/repo"
	"github.com/unimarket/backend/internal/service"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo

	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Activity *ActivityHTTP
	Debug    *DebugHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.UserActivity{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	activitySvc := &service.ActivityService{Repo: store}
	authSvc := &service.AuthService{Repo: store}
	catalogSvc := &service.CatalogService{Repo: store, Activity: activitySvc}

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	return &testEnv{
		T:        t,
		E:        e,
		DB:       db,
		Repo:     store,
		Auth:     &AuthHTTP{Svc: authSvc},
		Catalog:  &CatalogHTTP{Svc: catalogSvc},
		Activity: &ActivityHTTP{Svc: activitySvc},
		Debug:    &DebugHTTP{Repo: store},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) countRows(model interface{}) int64 {
	var n int64
	require.NoError(env.T, env.DB.Model(model).Count(&n).Error)
	return n
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, code, he.Code)
}
