package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/shiptrack/client"
)

const shipmentJSON = `{
	"id": "22222222-2222-2222-2222-222222222222",
	"trackingNumber": "TRK1",
	"description": "Box of books",
	"status": "pending",
	"isFragile": true,
	"origin": {"city": "Berlin"},
	"destination": {"city": "Paris"},
	"shippingDate": "2024-01-01",
	"distance": 1200,
	"shippingMethod": "standard",
	"estimatedDelivery": "2024-01-04",
	"ownerId": "11111111-1111-1111-1111-111111111111",
	"createdAt": "2024-01-01T09:00:00Z",
	"updatedAt": "2024-01-01T09:00:00Z"
}`

var shipmentID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

func newClient(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T { return &v }

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := client.New(client.Config{})
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"username": "alice", "password": "secret1"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status":"success","token":"tok","data":{"user":{"id":"11111111-1111-1111-1111-111111111111","username":"alice"},"expiresAt":"2024-01-02T00:00:00Z"}}`)
	})

	sess, err := c.Register(context.Background(), client.RegisterRequest{Username: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, "alice", sess.User.Username)
	assert.Nil(t, sess.User.Email)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), sess.ExpiresAt)
}

func TestLogin_APIError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"status":"fail","message":"Incorrect username or password"}`)
	})

	_, err := c.Login(context.Background(), "alice", "wrong")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "fail", apiErr.Status)
	assert.Equal(t, "Incorrect username or password", apiErr.Message)
}

func TestCreateShipment_SendsTokenAndOmitsNilFields(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"trackingNumber":"TRK1","shippingDate":"2024-01-01","distance":1200}`, string(b))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status":"success","data":{"shipment":`+shipmentJSON+`}}`)
	}).WithToken("tok")

	s, err := c.CreateShipment(context.Background(), client.ShipmentInput{
		TrackingNumber: ptr("TRK1"),
		ShippingDate:   &openapi_types.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Distance:       ptr(1200.0),
	})

	require.NoError(t, err)
	assert.Equal(t, shipmentID, s.ID)
	assert.Equal(t, "2024-01-04", s.EstimatedDelivery.String())
	assert.Equal(t, "Berlin", s.Origin.City)
}

func TestCreateShipment_ValidationErrors(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"status":"fail","message":"Validation failed","errors":["Description is required"]}`)
	})

	_, err := c.CreateShipment(context.Background(), client.ShipmentInput{})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"Description is required"}, apiErr.Errors)
	assert.Contains(t, apiErr.Error(), "Description is required")
}

func TestWithToken_DoesNotMutateOriginal(t *testing.T) {
	seen := make(chan string, 2)
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.WithToken("a").DeleteShipment(context.Background(), shipmentID))
	require.NoError(t, c.DeleteShipment(context.Background(), shipmentID))

	assert.Equal(t, "Bearer a", <-seen)
	assert.Empty(t, <-seen)
}

func TestGetAndUpdateShipment(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments/"+shipmentID.String(), r.URL.Path)
		switch r.Method {
		case http.MethodGet:
		case http.MethodPut:
			b, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"status":"delivered"}`, string(b))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
		_, _ = io.WriteString(w, `{"status":"success","data":{"shipment":`+shipmentJSON+`}}`)
	}).WithToken("tok")

	got, err := c.GetShipment(context.Background(), shipmentID)
	require.NoError(t, err)
	assert.Equal(t, "TRK1", got.TrackingNumber)

	_, err = c.UpdateShipment(context.Background(), shipmentID, client.ShipmentInput{Status: ptr("delivered")})
	require.NoError(t, err)
}

func TestGetShipment_NotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":"fail","message":"Shipment not found"}`)
	})

	_, err := c.GetShipment(context.Background(), shipmentID)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestListShipments_EncodesOptions(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "in_transit", q.Get("status"))
		assert.Equal(t, "false", q.Get("isFragile"))
		assert.Equal(t, "estimatedDelivery:asc", q.Get("sortBy"))
		_, _ = io.WriteString(w, `{"status":"success","results":1,"data":{"shipments":[`+shipmentJSON+`]},"pagination":{"current":2,"pages":3,"total":11}}`)
	})

	page, err := c.ListShipments(context.Background(), client.ListOptions{
		Page: 2, Limit: 5, Status: "in_transit", IsFragile: ptr(false), SortBy: "estimatedDelivery:asc",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Results)
	require.Len(t, page.Shipments, 1)
	assert.Equal(t, client.Pagination{Current: 2, Pages: 3, Total: 11}, page.Pagination)
}

func TestListShipments_NoOptionsSendsNoQuery(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"status":"success","results":0,"data":{"shipments":[]},"pagination":{"current":1,"pages":0,"total":0}}`)
	})

	page, err := c.ListShipments(context.Background(), client.ListOptions{})

	require.NoError(t, err)
	assert.Empty(t, page.Shipments)
}

func TestHealth(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"success","message":"Server is running","database":"connected","timestamp":"2024-01-01T00:00:00Z"}`)
	})

	h, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "connected", h.Database)
}

func TestGet_RetriesGatewayErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"status":"success","message":"Server is running","database":"connected"}`)
	}))
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Retries: 3})
	require.NoError(t, err)

	h, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "connected", h.Database)
	assert.EqualValues(t, 3, calls.Load())
}

func TestGet_ReturnsLastGatewayResponseWhenOutOfRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Retries: 1})
	require.NoError(t, err)

	_, err = c.GetShipment(context.Background(), shipmentID)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.EqualValues(t, 2, calls.Load())
}

func TestWrites_AreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Retries: 3})
	require.NoError(t, err)

	err = c.DeleteShipment(context.Background(), shipmentID)

	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}
