package client

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Address is a free-text postal location.
type Address struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Shipment is a shipment as the API returns it.
type Shipment struct {
	ID                uuid.UUID          `json:"id"`
	TrackingNumber    string             `json:"trackingNumber"`
	Description       string             `json:"description"`
	Status            string             `json:"status"`
	IsFragile         bool               `json:"isFragile"`
	Origin            Address            `json:"origin"`
	Destination       Address            `json:"destination"`
	ShippingDate      openapi_types.Date `json:"shippingDate"`
	Distance          float64            `json:"distance"`
	ShippingMethod    string             `json:"shippingMethod"`
	EstimatedDelivery openapi_types.Date `json:"estimatedDelivery"`
	OwnerID           uuid.UUID          `json:"ownerId"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// ShipmentInput is the body of create and update calls. Nil fields are
// omitted, which on update leaves them unchanged.
type ShipmentInput struct {
	TrackingNumber *string             `json:"trackingNumber,omitempty"`
	Description    *string             `json:"description,omitempty"`
	Status         *string             `json:"status,omitempty"`
	IsFragile      *bool               `json:"isFragile,omitempty"`
	Origin         *Address            `json:"origin,omitempty"`
	Destination    *Address            `json:"destination,omitempty"`
	ShippingDate   *openapi_types.Date `json:"shippingDate,omitempty"`
	Distance       *float64            `json:"distance,omitempty"`
	ShippingMethod *string             `json:"shippingMethod,omitempty"`
}

// ListOptions narrows and orders ListShipments. Zero values are not sent.
type ListOptions struct {
	Page      int
	Limit     int
	Status    string
	IsFragile *bool
	// SortBy is "field" or "field:asc|desc", e.g. "estimatedDelivery:asc".
	SortBy string
}

// Pagination describes where a page sits in the full listing.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// ShipmentPage is one page of ListShipments.
type ShipmentPage struct {
	Shipments  []Shipment
	Results    int
	Pagination Pagination
}

// User is the account a session belongs to.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    *string   `json:"email,omitempty"`
}

// Session is returned by Register and Login. Pass Token to WithToken.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

// RegisterRequest is the body of Register. Email is optional.
type RegisterRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password"`
}

// Health is the body of GET /health.
type Health struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
