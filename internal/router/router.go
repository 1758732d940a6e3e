package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"campushub/internal/auth"
	"campushub/internal/handler"
	"campushub/internal/schema"
)

// Register wires routes and middleware. The authentication middleware runs
// strictly before any protected handler; unauthenticated requests never
// reach validators or storage.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	userHandler *handler.UserHandler,
	eventHandler *handler.EventHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = schema.NewEchoValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	authRequired := tokens.Middleware()

	user := api.Group("/user")
	user.POST("/signup", userHandler.Signup)
	user.POST("/signin", userHandler.Signin)
	user.POST("/refresh", userHandler.Refresh, authRequired)

	event := api.Group("/event")
	event.GET("/:eventId", eventHandler.Get)
	event.GET("", eventHandler.List, authRequired)
	event.POST("", eventHandler.Create, authRequired)
	event.POST("/join", eventHandler.Join, authRequired)
	event.POST("/leave", eventHandler.Leave, authRequired)
}
