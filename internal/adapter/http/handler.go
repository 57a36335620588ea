// Package http provides the HTTP handler layer for the offer normalization API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-checkout/offer-normalization-engine/internal/adapter/http/response"
	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
	"github.com/travel-checkout/offer-normalization-engine/internal/usecase"
)

// OfferHandler handles HTTP requests for offer normalization endpoints.
type OfferHandler struct {
	transformer usecase.OfferTransformer
	aggregator  usecase.RequirementsAggregator
	assembler   usecase.CheckoutAssembler
	defaults    usecase.TransformOptions
}

// NewOfferHandler creates a new OfferHandler. The defaults carry the
// configured display currency and locale; requests may override both.
func NewOfferHandler(
	transformer usecase.OfferTransformer,
	aggregator usecase.RequirementsAggregator,
	assembler usecase.CheckoutAssembler,
	defaults usecase.TransformOptions,
) *OfferHandler {
	return &OfferHandler{
		transformer: transformer,
		aggregator:  aggregator,
		assembler:   assembler,
		defaults:    defaults,
	}
}

// EnhanceOffers handles POST /api/v1/offers/enhance
func (h *OfferHandler) EnhanceOffers(c echo.Context) error {
	var req EnhanceOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	opts := ToTransformOptions(req.PreferredCurrency, req.Locale, h.defaults)

	flights, hotels, err := h.transformer.Transform(req.FlightOffers, req.HotelOffers, req.Ratings, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, ToEnhanceOffersResponseDTO(&req, flights, hotels))
}

// AggregateRequirements handles POST /api/v1/requirements/aggregate
func (h *OfferHandler) AggregateRequirements(c echo.Context) error {
	var req AggregateRequirementsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	agg := h.aggregator.Aggregate(req.FlightOffers)

	return response.Results(c, ToRequirementsResponseDTO(&req, agg))
}

// CheckoutSummary handles POST /api/v1/checkout/summary
func (h *OfferHandler) CheckoutSummary(c echo.Context) error {
	var req CheckoutSummaryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	selection := ToCheckoutSelection(&req)
	opts := ToTransformOptions(req.PreferredCurrency, req.Locale, h.defaults)

	summary, err := h.assembler.Assemble(c.Request().Context(), selection, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Results(c, ToCheckoutSummaryDTO(summary))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	// Structurally broken offers are the caller's problem
	var malformed *domain.MalformedOfferError
	if errors.As(err, &malformed) {
		return response.BadRequest(c, malformed.Error())
	}

	if errors.Is(err, domain.ErrInvalidSelection) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Timeouts before source failures: a timed-out source wraps both
	if errors.Is(err, domain.ErrSourceTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrAllSourcesFailed) {
		return response.ServiceUnavailable(c)
	}

	var sourceErr *domain.SourceError
	if errors.As(err, &sourceErr) {
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
