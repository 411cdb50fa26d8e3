package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pandimaja/internal/auth"
	"pandimaja/internal/handler"
	"pandimaja/internal/middleware"
)

// Register wires routes and middleware. Auth endpoints are public; every
// other business route sits behind the bearer-token gate, with role
// predicates per group.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	klientHandler *handler.KlientHandler,
	toodeHandler *handler.ToodeHandler,
	lepingHandler *handler.LepingHandler,
	tootajaHandler *handler.TootajaHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authenticate := middleware.Authenticate(jwtService)

	// Client routes: any employee
	klient := api.Group("/klient", authenticate, middleware.Require(auth.IsUserOrAdmin))
	klient.POST("", klientHandler.Create)
	klient.GET("", klientHandler.List)
	klient.GET("/search", klientHandler.Search)
	klient.GET("/:id", klientHandler.Get)
	klient.PATCH("/:id", klientHandler.Update)

	// Product routes: any employee, except deletion which is admin-only
	toode := api.Group("/toode", authenticate, middleware.Require(auth.IsUserOrAdmin))
	toode.POST("", toodeHandler.Create)
	toode.GET("", toodeHandler.List)
	toode.GET("/search", toodeHandler.Search)
	toode.GET("/status/:status_id", toodeHandler.ListByStatus)
	toode.GET("/:id", toodeHandler.Get)
	toode.PUT("/:id", toodeHandler.Update)
	toode.POST("/:id/image", toodeHandler.UploadImage)
	toode.DELETE("/:id", toodeHandler.Delete, middleware.Require(auth.IsAdmin))

	// Contract routes: any employee
	leping := api.Group("/leping", authenticate, middleware.Require(auth.IsUserOrAdmin))
	leping.POST("", lepingHandler.Create)
	leping.GET("", lepingHandler.List)
	leping.GET("/:id", lepingHandler.Get)
	leping.PUT("/:id", lepingHandler.Update)
	leping.DELETE("/:id", lepingHandler.Delete)

	// Employee routes: admin only
	tootaja := api.Group("/tootaja", authenticate, middleware.Require(auth.IsAdmin))
	tootaja.GET("", tootajaHandler.List)
	tootaja.GET("/:id", tootajaHandler.Get)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
