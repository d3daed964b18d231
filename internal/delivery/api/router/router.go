// Package router contains routing for the API delivery.
package router

import (
	"restomap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RestaurantHandler *handler.RestaurantHandler
	SearchHandler     *handler.SearchHandler
	StatusHandler     *handler.StatusHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler *handler.RestaurantHandler
	searchHandler     *handler.SearchHandler
	statusHandler     *handler.StatusHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler: params.RestaurantHandler,
		searchHandler:     params.SearchHandler,
		statusHandler:     params.StatusHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	restaurantsGroup := apiV1.Group("/restaurants")
	{
		restaurantsGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantsGroup.POST("", r.restaurantHandler.CreateRestaurant)
		restaurantsGroup.POST("/refresh", r.restaurantHandler.RefreshRestaurants)
		restaurantsGroup.GET("/random", r.restaurantHandler.RandomRestaurant)
		restaurantsGroup.GET("/nearby", r.restaurantHandler.NearbyRestaurants)
		restaurantsGroup.GET("/map", r.restaurantHandler.MapFeatures)
		restaurantsGroup.GET("/:id/qr", r.restaurantHandler.MapLinkQR)
		restaurantsGroup.POST("/:id/ratings", r.restaurantHandler.AddRating)
	}

	placesGroup := apiV1.Group("/places")
	{
		placesGroup.GET("/search", r.searchHandler.SearchPlaces)
	}

	errorsGroup := apiV1.Group("/errors")
	{
		errorsGroup.GET("/current", r.statusHandler.CurrentError)
		errorsGroup.DELETE("/current", r.statusHandler.ClearError)
	}

	apiV1.GET("/status", r.statusHandler.Status)
}
