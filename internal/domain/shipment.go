// Package domain contains the core data types for the shipment tracker.
// This package depends only on uuid and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a shipment.
// Any status may follow any other; there is no enforced transition graph.
type Status string

const (
	StatusPending        Status = "pending"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// Statuses lists every valid Status in display order.
var Statuses = []Status{
	StatusPending,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ShippingMethod selects the transit speed used by EstimateDelivery.
type ShippingMethod string

const (
	MethodStandard  ShippingMethod = "standard"
	MethodExpress   ShippingMethod = "express"
	MethodOvernight ShippingMethod = "overnight"
)

// ShippingMethods lists every valid ShippingMethod.
var ShippingMethods = []ShippingMethod{MethodStandard, MethodExpress, MethodOvernight}

// Valid reports whether m is one of the known shipping methods.
func (m ShippingMethod) Valid() bool {
	for _, v := range ShippingMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Address is a free-text postal location. Every field is optional.
type Address struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Shipment is a single tracked parcel owned by one user.
//
// ShippingDate and EstimatedDelivery are calendar dates: only their
// year/month/day fields are meaningful. EstimatedDelivery is derived from
// ShippingDate, Distance and ShippingMethod and is never set by callers.
type Shipment struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	TrackingNumber    string
	Description       string
	Status            Status
	IsFragile         bool
	Origin            Address
	Destination       Address
	ShippingDate      time.Time
	Distance          float64 // kilometres
	ShippingMethod    ShippingMethod
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ShipmentInput is the raw, unvalidated field set supplied by a client for
// create and update. A nil pointer means "not supplied": on create the
// field is missing, on update it is left unchanged.
//
// ShippingDate stays a string so an unparseable value is reported as a
// field error alongside the others instead of failing request decoding.
type ShipmentInput struct {
	TrackingNumber *string  `json:"trackingNumber"`
	Description    *string  `json:"description"`
	Status         *string  `json:"status"`
	IsFragile      *bool    `json:"isFragile"`
	Origin         *Address `json:"origin"`
	Destination    *Address `json:"destination"`
	ShippingDate   *string  `json:"shippingDate"`
	Distance       *float64 `json:"distance"`
	ShippingMethod *string  `json:"shippingMethod"`
}

// TouchesDelivery reports whether the input supplies any field that
// EstimatedDelivery is computed from.
func (in ShipmentInput) TouchesDelivery() bool {
	return in.ShippingDate != nil || in.Distance != nil || in.ShippingMethod != nil
}
