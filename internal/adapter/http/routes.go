// Package http provides the HTTP handler layer for the offer normalization API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all offer normalization API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *OfferHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/offers/enhance", h.EnhanceOffers)
	api.POST("/requirements/aggregate", h.AggregateRequirements)
	api.POST("/checkout/summary", h.CheckoutSummary)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *OfferHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	api.POST("/offers/enhance", h.EnhanceOffers)
	api.POST("/requirements/aggregate", h.AggregateRequirements)
	api.POST("/checkout/summary", h.CheckoutSummary)
}
