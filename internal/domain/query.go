package domain

import (
	"fmt"
	"strings"
)

// SortField is a shipment attribute the list endpoint can order by.
// Values are the public (JSON) field names.
type SortField string

const (
	SortCreatedAt         SortField = "createdAt"
	SortUpdatedAt         SortField = "updatedAt"
	SortShippingDate      SortField = "shippingDate"
	SortEstimatedDelivery SortField = "estimatedDelivery"
	SortTrackingNumber    SortField = "trackingNumber"
	SortStatus            SortField = "status"
	SortDistance          SortField = "distance"
)

var sortFields = []SortField{
	SortCreatedAt, SortUpdatedAt, SortShippingDate, SortEstimatedDelivery,
	SortTrackingNumber, SortStatus, SortDistance,
}

// ShipmentSort orders a shipment listing.
type ShipmentSort struct {
	Field SortField
	Desc  bool
}

// DefaultShipmentSort is newest first.
var DefaultShipmentSort = ShipmentSort{Field: SortCreatedAt, Desc: true}

// ParseShipmentSort parses "field" or "field:asc|desc".
// An empty string yields DefaultShipmentSort; a bare field sorts descending.
func ParseShipmentSort(s string) (ShipmentSort, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultShipmentSort, nil
	}
	field, dir, _ := strings.Cut(s, ":")

	sort := ShipmentSort{Desc: true}
	for _, f := range sortFields {
		if SortField(field) == f {
			sort.Field = f
		}
	}
	if sort.Field == "" {
		return ShipmentSort{}, NewValidationError("sortBy", fmt.Sprintf("cannot sort by %q", field))
	}

	switch strings.ToLower(dir) {
	case "", "desc":
	case "asc":
		sort.Desc = false
	default:
		return ShipmentSort{}, NewValidationError("sortBy", fmt.Sprintf("sort direction must be asc or desc, got %q", dir))
	}
	return sort, nil
}

// ShipmentFilter narrows a listing. Nil fields do not filter.
type ShipmentFilter struct {
	Status    *Status
	IsFragile *bool
}

// ShipmentQuery is everything a listing needs besides the owner.
type ShipmentQuery struct {
	Filter ShipmentFilter
	Sort   ShipmentSort
	Page   PaginationParams
}
