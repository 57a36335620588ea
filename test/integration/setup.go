// Package integration provides helpers and integration tests for the offer
// normalization engine. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and fixture-backed sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-checkout/offer-normalization-engine/internal/adapter/http"
	"github.com/travel-checkout/offer-normalization-engine/internal/adapter/source/fixture"
	"github.com/travel-checkout/offer-normalization-engine/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a test server backed by the fixture files under the
// given base directory.
func NewTestServer(fixtureDir func(name string) string) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	flights := fixture.NewFlightSource(fixtureDir("flight_offers.json"))
	hotels := fixture.NewHotelSource(fixtureDir("hotel_offers.json"))
	ratings := fixture.NewRatingsSource(fixtureDir("hotel_ratings.json"))

	assembler := usecase.NewCheckoutAssembler(flights, hotels, ratings, nil)
	handler := httpAdapter.NewOfferHandler(
		usecase.NewOfferTransformer(nil),
		usecase.NewRequirementsAggregator(),
		assembler,
		usecase.DefaultTransformOptions(),
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// EnhanceRequest posts a body to the offer enhancement endpoint.
func (ts *TestServer) EnhanceRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/enhance",
		Body:   body,
	})
}

// AggregateRequest posts a body to the requirements aggregation endpoint.
func (ts *TestServer) AggregateRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/requirements/aggregate",
		Body:   body,
	})
}

// CheckoutRequest posts a body to the checkout summary endpoint.
func (ts *TestServer) CheckoutRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/checkout/summary",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseJSON parses the response body into the given destination.
func (r *Response) ParseJSON(dest interface{}) error {
	return json.Unmarshal(r.Body, dest)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
