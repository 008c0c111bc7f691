package handler

import (
	"errors"
	"fmt"

	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/handler/gen"
)

// listQuery turns the bound list parameters into a domain query. The
// generated binder has already rejected values of the wrong type. Every
// remaining problem (page or limit out of range, unknown status or sort
// field) is reported together.
func (s *Server) listQuery(p gen.ListShipmentsParams) (domain.ShipmentQuery, []string) {
	var bad []string
	query := domain.ShipmentQuery{
		Sort: domain.DefaultShipmentSort,
		Page: domain.NewPaginationParams(p.Page, p.Limit, s.defaultPageSize),
	}
	if err := query.Page.Validate(); err != nil {
		bad = append(bad, fieldMessages(err)...)
	}

	if p.Status != nil && *p.Status != "" {
		st := domain.Status(*p.Status)
		if !st.Valid() {
			bad = append(bad, fmt.Sprintf("Invalid query parameter %q", "status"))
		}
		query.Filter.Status = &st
	}
	query.Filter.IsFragile = p.IsFragile

	if p.SortBy != nil {
		sort, err := domain.ParseShipmentSort(*p.SortBy)
		if err != nil {
			bad = append(bad, fieldMessages(err)...)
		}
		query.Sort = sort
	}
	return query, bad
}

func fieldMessages(err error) []string {
	var v *domain.ValidationError
	if errors.As(err, &v) {
		return v.Messages()
	}
	return []string{err.Error()}
}
