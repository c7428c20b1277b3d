package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	CatalogHandler  *CatalogHTTP
	ActivityHandler *ActivityHTTP
	DebugHandler    *DebugHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Unimarket API running")
	})

	api := e.Group("/api")
	api.POST("/signup", d.AuthHandler.Signup)
	api.POST("/login", d.AuthHandler.Login)
	api.POST("/activity", d.ActivityHandler.LogActivity)
	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)

	debug := api.Group("/debug")
	debug.POST("/reset-products", d.DebugHandler.ResetProducts)
	debug.GET("/db", d.DebugHandler.DBInfo)
}

// ErrorHandler renders every error as {"error": message} so failure
// bodies share one shape across the API.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"error": msg})
}
