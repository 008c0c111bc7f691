package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/shiptrack/internal/auth"
	"github.com/pkordes/shiptrack/internal/domain"
	"github.com/pkordes/shiptrack/internal/handler/gen"
)

// shipmentToGen maps a domain.Shipment to the generated wire shape. Calendar
// dates render as YYYY-MM-DD.
func shipmentToGen(s domain.Shipment) gen.Shipment {
	return gen.Shipment{
		Id:                s.ID,
		TrackingNumber:    s.TrackingNumber,
		Description:       s.Description,
		Status:            gen.Status(s.Status),
		IsFragile:         s.IsFragile,
		Origin:            addressToGen(s.Origin),
		Destination:       addressToGen(s.Destination),
		ShippingDate:      openapi_types.Date{Time: s.ShippingDate},
		Distance:          s.Distance,
		ShippingMethod:    gen.ShippingMethod(s.ShippingMethod),
		EstimatedDelivery: openapi_types.Date{Time: s.EstimatedDelivery},
		OwnerId:           s.OwnerID,
		CreatedAt:         s.CreatedAt.UTC(),
		UpdatedAt:         s.UpdatedAt.UTC(),
	}
}

// addressToGen omits empty address parts from the response.
func addressToGen(a domain.Address) gen.Address {
	opt := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	return gen.Address{Address: opt(a.Address), City: opt(a.City), Country: opt(a.Country)}
}

func addressFromGen(a *gen.Address) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{Address: deref(a.Address), City: deref(a.City), Country: deref(a.Country)}
}

// inputFromGen copies the request body into a domain.ShipmentInput. Absent
// fields stay nil; enum values are checked by the service.
func inputFromGen(b *gen.ShipmentInput) domain.ShipmentInput {
	if b == nil {
		return domain.ShipmentInput{}
	}
	in := domain.ShipmentInput{
		TrackingNumber: b.TrackingNumber,
		Description:    b.Description,
		IsFragile:      b.IsFragile,
		Origin:         addressFromGen(b.Origin),
		Destination:    addressFromGen(b.Destination),
		ShippingDate:   b.ShippingDate,
		Distance:       b.Distance,
	}
	if b.Status != nil {
		st := string(*b.Status)
		in.Status = &st
	}
	if b.ShippingMethod != nil {
		m := string(*b.ShippingMethod)
		in.ShippingMethod = &m
	}
	return in
}

func shipmentEnvelope(s domain.Shipment) gen.ShipmentEnvelope {
	return gen.ShipmentEnvelope{Status: statusSuccess, Data: gen.ShipmentData{Shipment: shipmentToGen(s)}}
}

// owner returns the caller stored by requireAuth.
func owner(ctx context.Context) uuid.UUID {
	id, _ := auth.UserIDFromContext(ctx)
	return id
}

// CreateShipment handles POST /shipments.
func (s *Server) CreateShipment(ctx context.Context, req gen.CreateShipmentRequestObject) (gen.CreateShipmentResponseObject, error) {
	created, err := s.shipments.Create(ctx, owner(ctx), inputFromGen(req.Body))
	if err != nil {
		if body, ok := badRequestBody(err); ok {
			return gen.CreateShipment400JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CreateShipment201JSONResponse(shipmentEnvelope(created)), nil
}

// ListShipments handles GET /shipments.
// Supports ?page, ?limit, ?status, ?isFragile and ?sortBy=field:dir.
func (s *Server) ListShipments(ctx context.Context, req gen.ListShipmentsRequestObject) (gen.ListShipmentsResponseObject, error) {
	q, bad := s.listQuery(req.Params)
	if len(bad) > 0 {
		return gen.ListShipments400JSONResponse(failBody(msgInvalidQuery, bad...)), nil
	}

	items, total, err := s.shipments.List(ctx, owner(ctx), q)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListShipments400JSONResponse(failBody(msgInvalidQuery, fieldMessages(err)...)), nil
		}
		return nil, err
	}

	data := make([]gen.Shipment, len(items))
	for i, it := range items {
		data[i] = shipmentToGen(it)
	}
	return gen.ListShipments200JSONResponse{
		Status:  statusSuccess,
		Results: len(data),
		Data:    gen.ShipmentListData{Shipments: data},
		Pagination: gen.Pagination{
			Current: q.Page.Page,
			Pages:   q.Page.Pages(total),
			Total:   total,
		},
	}, nil
}

// GetShipment handles GET /shipments/{id}.
func (s *Server) GetShipment(ctx context.Context, req gen.GetShipmentRequestObject) (gen.GetShipmentResponseObject, error) {
	shipment, err := s.shipments.GetByID(ctx, owner(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetShipment404JSONResponse(failBody(msgShipmentNotFound)), nil
		}
		return nil, err
	}
	return gen.GetShipment200JSONResponse(shipmentEnvelope(shipment)), nil
}

// UpdateShipment handles PUT /shipments/{id}. Only fields present in the
// body change.
func (s *Server) UpdateShipment(ctx context.Context, req gen.UpdateShipmentRequestObject) (gen.UpdateShipmentResponseObject, error) {
	updated, err := s.shipments.Update(ctx, owner(ctx), req.Id, inputFromGen(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateShipment404JSONResponse(failBody(msgShipmentNotFound)), nil
		}
		if body, ok := badRequestBody(err); ok {
			return gen.UpdateShipment400JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.UpdateShipment200JSONResponse(shipmentEnvelope(updated)), nil
}

// DeleteShipment handles DELETE /shipments/{id}.
func (s *Server) DeleteShipment(ctx context.Context, req gen.DeleteShipmentRequestObject) (gen.DeleteShipmentResponseObject, error) {
	if err := s.shipments.Delete(ctx, owner(ctx), req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteShipment404JSONResponse(failBody(msgShipmentNotFound)), nil
		}
		return nil, err
	}
	return gen.DeleteShipment204Response{}, nil
}
