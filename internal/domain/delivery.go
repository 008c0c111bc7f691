package domain

import (
	"math"
	"time"
)

// Kilometres covered per transit day.
const (
	standardKmPerDay = 500
	expressKmPerDay  = 1000
	fallbackDays     = 7
)

// DeliveryDays returns the number of calendar days a shipment spends in
// transit for the given distance and method.
//
//	standard  → ceil(distance / 500)
//	express   → ceil(distance / 1000)
//	overnight → 1
//	other     → 7
func DeliveryDays(distanceKm float64, method ShippingMethod) int {
	switch method {
	case MethodStandard:
		return int(math.Ceil(distanceKm / standardKmPerDay))
	case MethodExpress:
		return int(math.Ceil(distanceKm / expressKmPerDay))
	case MethodOvernight:
		return 1
	default:
		return fallbackDays
	}
}

// EstimateDelivery adds DeliveryDays to shippingDate using calendar-day
// arithmetic on the date's own year/month/day fields. No business-day
// skipping and no timezone conversion is applied; the result carries the
// same location as shippingDate.
func EstimateDelivery(shippingDate time.Time, distanceKm float64, method ShippingMethod) time.Time {
	y, m, d := shippingDate.Date()
	return time.Date(y, m, d+DeliveryDays(distanceKm, method), 0, 0, 0, 0, shippingDate.Location())
}
