// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cbx/internal/delivery/http/middleware"
	"cbx/internal/delivery/http/router/handler"
	deliverymiddleware "cbx/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AccountingHandler *handler.AccountingHandler
	CareerHandler     *handler.CareerHandler
	SupplyHandler     *handler.SupplyHandler
	SurveyHandler     *handler.SurveyHandler
	PortalHandler     *handler.PortalHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *deliverymiddleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	accountingHandler *handler.AccountingHandler
	careerHandler     *handler.CareerHandler
	supplyHandler     *handler.SupplyHandler
	surveyHandler     *handler.SurveyHandler
	portalHandler     *handler.PortalHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *deliverymiddleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		accountingHandler: params.AccountingHandler,
		careerHandler:     params.CareerHandler,
		supplyHandler:     params.SupplyHandler,
		surveyHandler:     params.SurveyHandler,
		portalHandler:     params.PortalHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
		authGroup.PATCH("/me", r.authHandler.UpdateMe, authenticate)
	}

	accountingGroup := e.Group("/accounting")
	{
		// Public, and seeds the default categories on first use.
		accountingGroup.GET("/categories", r.accountingHandler.ListCategories)

		accountingGroup.GET("/expenses", r.accountingHandler.ListExpenses, authenticate)
		accountingGroup.POST("/expenses", r.accountingHandler.CreateExpense, authenticate)
		accountingGroup.PATCH("/expenses/:id", r.accountingHandler.UpdateExpense, authenticate)
		accountingGroup.DELETE("/expenses/:id", r.accountingHandler.DeleteExpense, authenticate)
		accountingGroup.GET("/summary", r.accountingHandler.Summary, authenticate)
	}

	careerGroup := e.Group("/career")
	careerGroup.Use(authenticate)
	{
		careerGroup.GET("/profile", r.careerHandler.GetProfile)
		careerGroup.PUT("/profile", r.careerHandler.PutProfile)
		careerGroup.GET("/applications", r.careerHandler.ListApplications)
		careerGroup.POST("/applications", r.careerHandler.CreateApplication)
		careerGroup.PATCH("/applications/:id", r.careerHandler.UpdateApplication)
		careerGroup.DELETE("/applications/:id", r.careerHandler.DeleteApplication)
	}

	supplyGroup := e.Group("/supply")
	supplyGroup.Use(authenticate)
	{
		supplyGroup.GET("/items", r.supplyHandler.ListItems)
		supplyGroup.POST("/items", r.supplyHandler.CreateItem)
		supplyGroup.PATCH("/items/:id", r.supplyHandler.UpdateItem)
		supplyGroup.DELETE("/items/:id", r.supplyHandler.DeleteItem)
	}

	// Survey reads and submissions are public; everything else belongs to the owner.
	surveyGroup := e.Group("/surveys")
	{
		for _, root := range []string{"", "/"} {
			surveyGroup.POST(root, r.surveyHandler.CreateSurvey, authenticate)
			surveyGroup.GET(root, r.surveyHandler.ListSurveys, authenticate)
		}
		surveyGroup.GET("/:id", r.surveyHandler.GetSurvey)
		surveyGroup.PATCH("/:id", r.surveyHandler.UpdateSurvey, authenticate)
		surveyGroup.DELETE("/:id", r.surveyHandler.DeleteSurvey, authenticate)
		surveyGroup.POST("/:id/responses", r.surveyHandler.SubmitResponse)
		surveyGroup.GET("/:id/responses", r.surveyHandler.ListResponses, authenticate)
		surveyGroup.GET("/:id/qr", r.surveyHandler.QRCode, authenticate)
	}

	portalGroup := e.Group("/portal")
	portalGroup.Use(authenticate)
	{
		portalGroup.GET("/stats", r.portalHandler.Stats)
	}
}
