package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-checkout/offer-normalization-engine/internal/adapter/http/response"
	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
	"github.com/travel-checkout/offer-normalization-engine/internal/usecase"
)

// mockTransformer is a mock implementation of OfferTransformer for testing.
type mockTransformer struct {
	transformFunc func(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts usecase.TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error)
}

func (m *mockTransformer) Transform(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts usecase.TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error) {
	if m.transformFunc != nil {
		return m.transformFunc(flights, hotels, ratings, opts)
	}
	return []domain.EnhancedFlight{}, []domain.EnhancedHotel{}, nil
}

// mockAggregator is a mock implementation of RequirementsAggregator for testing.
type mockAggregator struct {
	aggregateFunc func(offers []domain.RawFlightOffer) domain.AggregatedRequirements
}

func (m *mockAggregator) Aggregate(offers []domain.RawFlightOffer) domain.AggregatedRequirements {
	if m.aggregateFunc != nil {
		return m.aggregateFunc(offers)
	}
	return domain.AggregatedRequirements{}
}

// mockAssembler is a mock implementation of CheckoutAssembler for testing.
type mockAssembler struct {
	assembleFunc func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error)
}

func (m *mockAssembler) Assemble(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
	if m.assembleFunc != nil {
		return m.assembleFunc(ctx, selection, opts)
	}
	return &usecase.CheckoutSummary{}, nil
}

// setupTestHandler creates a test Echo instance and OfferHandler.
func setupTestHandler(tr usecase.OfferTransformer, agg usecase.RequirementsAggregator, asm usecase.CheckoutAssembler) (*echo.Echo, *OfferHandler) {
	e := echo.New()
	h := NewOfferHandler(tr, agg, asm, usecase.DefaultTransformOptions())
	RegisterRoutes(e, h)
	return e, h
}

// setupDefaultHandler wires all-default mocks for tests that only exercise
// parsing and validation.
func setupDefaultHandler() *echo.Echo {
	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, &mockAssembler{})
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// rawFlight builds a minimal structurally valid flight offer.
func rawFlight(id string) domain.RawFlightOffer {
	return domain.RawFlightOffer{
		ID: id,
		Price: &domain.RawPrice{
			Currency: "USD",
			Total:    "444.94",
		},
	}
}

// =====================================================
// Enhancement Tests
// =====================================================

func TestEnhanceOffers_Success(t *testing.T) {
	mock := &mockTransformer{
		transformFunc: func(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts usecase.TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error) {
			return []domain.EnhancedFlight{{ID: "flight-1"}}, []domain.EnhancedHotel{{ID: "hotel-1"}}, nil
		},
	}

	e, _ := setupTestHandler(mock, &mockAggregator{}, &mockAssembler{})

	req := EnhanceOffersRequest{
		FlightOffers: []domain.RawFlightOffer{rawFlight("flight-1")},
		HotelOffers:  []domain.RawHotelOffer{{Hotel: &domain.RawHotel{HotelID: "hotel-1"}}},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/enhance", req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp EnhanceOffersResponseDTO
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Metadata.FlightOffersReceived)
	assert.Equal(t, 1, resp.Metadata.HotelOffersReceived)
	assert.Equal(t, 1, resp.Metadata.FlightsEnhanced)
	assert.Equal(t, 1, resp.Metadata.HotelsEnhanced)
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "flight-1", resp.Flights[0].ID)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "hotel-1", resp.Hotels[0].ID)
}

func TestEnhanceOffers_OverridesDisplayPreferences(t *testing.T) {
	var capturedOpts usecase.TransformOptions

	mock := &mockTransformer{
		transformFunc: func(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts usecase.TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error) {
			capturedOpts = opts
			return nil, nil, nil
		},
	}

	e, _ := setupTestHandler(mock, &mockAggregator{}, &mockAssembler{})

	req := EnhanceOffersRequest{
		FlightOffers:      []domain.RawFlightOffer{rawFlight("f1")},
		PreferredCurrency: "eur",
		Locale:            "fr-FR",
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/enhance", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EUR", capturedOpts.PreferredCurrency)
	assert.Equal(t, "fr-FR", capturedOpts.Locale)
}

func TestEnhanceOffers_InvalidJSON(t *testing.T) {
	e := setupDefaultHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers/enhance",
		strings.NewReader(`{invalid json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRequest, errResp.Code)
}

func TestEnhanceOffers_EmptyRequest(t *testing.T) {
	e := setupDefaultHandler()

	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/enhance", EnhanceOffersRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeValidationError, errResp.Code)
	assert.Contains(t, errResp.Details, "flightOffers")
}

func TestEnhanceOffers_InvalidCurrency(t *testing.T) {
	e := setupDefaultHandler()

	req := EnhanceOffersRequest{
		FlightOffers:      []domain.RawFlightOffer{rawFlight("f1")},
		PreferredCurrency: "DOLLARS",
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/enhance", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Contains(t, errResp.Details, "preferredCurrency")
}

func TestEnhanceOffers_MalformedOffer(t *testing.T) {
	mock := &mockTransformer{
		transformFunc: func(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts usecase.TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error) {
			return nil, nil, domain.NewMalformedOfferError("flight", 0, "no usable fields")
		},
	}

	e, _ := setupTestHandler(mock, &mockAggregator{}, &mockAssembler{})

	req := EnhanceOffersRequest{
		FlightOffers: []domain.RawFlightOffer{{}},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/enhance", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRequest, errResp.Code)
	assert.Contains(t, errResp.Message, "malformed flight offer at index 0")
}

// =====================================================
// Aggregation Tests
// =====================================================

func TestAggregateRequirements_Success(t *testing.T) {
	mock := &mockAggregator{
		aggregateFunc: func(offers []domain.RawFlightOffer) domain.AggregatedRequirements {
			return domain.AggregatedRequirements{
				Shared:       domain.SharedRequirement{EmailAddressRequired: true},
				PerTraveler:  []domain.TravelerRequirement{domain.DefaultTravelerRequirement()},
				MaxTravelers: 1,
			}
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, mock, &mockAssembler{})

	req := AggregateRequirementsRequest{
		FlightOffers: []domain.RawFlightOffer{rawFlight("f1")},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/requirements/aggregate", req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp RequirementsResponseDTO
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.OffersConsidered)
	assert.Equal(t, 1, resp.Requirements.MaxTravelers)
	assert.True(t, resp.Requirements.Shared.EmailAddressRequired)
	require.Len(t, resp.Requirements.PerTraveler, 1)
	assert.True(t, resp.Requirements.PerTraveler[0].FirstName)
}

func TestAggregateRequirements_EmptyInput(t *testing.T) {
	e := setupDefaultHandler()

	rec := makeRequest(e, http.MethodPost, "/api/v1/requirements/aggregate", AggregateRequirementsRequest{})

	// No offers is a valid aggregation: zero requirement set
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp RequirementsResponseDTO
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.OffersConsidered)
	assert.Equal(t, 0, resp.Requirements.MaxTravelers)
	assert.Empty(t, resp.Requirements.PerTraveler)
}

func TestAggregateRequirements_InvalidJSON(t *testing.T) {
	e := setupDefaultHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requirements/aggregate",
		strings.NewReader(`not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =====================================================
// Checkout Tests
// =====================================================

func TestCheckoutSummary_Success(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return &usecase.CheckoutSummary{
				Flights: []domain.EnhancedFlight{{ID: "flight-1"}},
				Hotels:  []domain.EnhancedHotel{{ID: "hotel-1"}},
				Requirements: domain.AggregatedRequirements{
					PerTraveler:  []domain.TravelerRequirement{domain.DefaultTravelerRequirement()},
					MaxTravelers: 1,
				},
				AssemblyDurationMs: 42,
			}, nil
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{
		FlightOfferIDs: []string{"flight-1"},
		HotelOfferIDs:  []string{"hotel-1"},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.CheckoutSummary
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Flights, 1)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, 1, resp.Requirements.MaxTravelers)
	assert.Empty(t, resp.SourcesDegraded)
}

func TestCheckoutSummary_PassesSelection(t *testing.T) {
	var capturedSelection usecase.CheckoutSelection

	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			capturedSelection = selection
			return &usecase.CheckoutSummary{}, nil
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{
		FlightOfferIDs: []string{"f1", "f2"},
		HotelOfferIDs:  []string{"h1"},
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"f1", "f2"}, capturedSelection.FlightOfferIDs)
	assert.Equal(t, []string{"h1"}, capturedSelection.HotelOfferIDs)
}

func TestCheckoutSummary_EmptySelection(t *testing.T) {
	e := setupDefaultHandler()

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", CheckoutSummaryRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeValidationError, errResp.Code)
	assert.Contains(t, errResp.Details, "flightOfferIds")
}

func TestCheckoutSummary_AllSourcesFailed(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return nil, domain.ErrAllSourcesFailed
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{FlightOfferIDs: []string{"f1"}}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeServiceUnavailable, errResp.Code)
}

func TestCheckoutSummary_SourceFailure(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return nil, domain.NewSourceError("flight_pricing", errors.New("connection refused"))
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{FlightOfferIDs: []string{"f1"}}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCheckoutSummary_Timeout(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return nil, domain.ErrSourceTimeout
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{FlightOfferIDs: []string{"f1"}}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeTimeout, errResp.Code)
}

func TestCheckoutSummary_DeadlineExceeded(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return nil, context.DeadlineExceeded
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{FlightOfferIDs: []string{"f1"}}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestCheckoutSummary_InvalidSelectionFromAssembler(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return nil, domain.ErrInvalidSelection
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{FlightOfferIDs: []string{"f1"}}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutSummary_UnexpectedError(t *testing.T) {
	mock := &mockAssembler{
		assembleFunc: func(ctx context.Context, selection usecase.CheckoutSelection, opts usecase.TransformOptions) (*usecase.CheckoutSummary, error) {
			return nil, errors.New("boom")
		},
	}

	e, _ := setupTestHandler(&mockTransformer{}, &mockAggregator{}, mock)

	req := CheckoutSummaryRequest{FlightOfferIDs: []string{"f1"}}

	rec := makeRequest(e, http.MethodPost, "/api/v1/checkout/summary", req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp response.ErrorDetail
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInternalError, errResp.Code)
}

func TestHealth_Success(t *testing.T) {
	e := setupDefaultHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.HealthResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

// =====================================================
// Converter Tests
// =====================================================

func TestToTransformOptions(t *testing.T) {
	defaults := usecase.TransformOptions{PreferredCurrency: "USD", Locale: "en-US"}

	tests := []struct {
		name         string
		currency     string
		locale       string
		wantCurrency string
		wantLocale   string
	}{
		{"defaults", "", "", "USD", "en-US"},
		{"currency override", "EUR", "", "EUR", "en-US"},
		{"lowercase currency normalized", "eur", "", "EUR", "en-US"},
		{"locale override", "", "fr-FR", "USD", "fr-FR"},
		{"both overridden", "GBP", "en-GB", "GBP", "en-GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ToTransformOptions(tt.currency, tt.locale, defaults)
			assert.Equal(t, tt.wantCurrency, opts.PreferredCurrency)
			assert.Equal(t, tt.wantLocale, opts.Locale)
		})
	}
}

func TestToCheckoutSelection(t *testing.T) {
	req := &CheckoutSummaryRequest{
		FlightOfferIDs: []string{"f1"},
		HotelOfferIDs:  []string{"h1", "h2"},
	}

	selection := ToCheckoutSelection(req)

	assert.Equal(t, []string{"f1"}, selection.FlightOfferIDs)
	assert.Equal(t, []string{"h1", "h2"}, selection.HotelOfferIDs)
}

// =====================================================
// Route Registration Tests
// =====================================================

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := NewOfferHandler(&mockTransformer{}, &mockAggregator{}, &mockAssembler{}, usecase.DefaultTransformOptions())

	RegisterRoutes(e, h)

	routes := e.Routes()

	expectedPaths := map[string]string{
		"/health":                        http.MethodGet,
		"/api/v1/offers/enhance":         http.MethodPost,
		"/api/v1/requirements/aggregate": http.MethodPost,
		"/api/v1/checkout/summary":       http.MethodPost,
	}

	for path, method := range expectedPaths {
		found := false
		for _, r := range routes {
			if r.Path == path && r.Method == method {
				found = true
				break
			}
		}
		assert.True(t, found, "expected route %s %s not found", method, path)
	}
}
