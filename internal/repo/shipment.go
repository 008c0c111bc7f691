package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/shiptrack/internal/domain"
)

// ShipmentRepo defines the persistence operations for Shipments.
// Every read and write is scoped by owner: a shipment that belongs to
// someone else behaves exactly like one that does not exist.
type ShipmentRepo interface {
	// Create inserts a new shipment and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated). Returns domain.ErrConflict when the
	// owner already has a shipment with the same tracking number.
	Create(ctx context.Context, s domain.Shipment) (domain.Shipment, error)

	// GetByID retrieves a single shipment by id, scoped to ownerID.
	// Returns domain.ErrNotFound if no such shipment exists for that owner.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error)

	// FindByTrackingNumber retrieves the owner's shipment with the given tracking number.
	// Returns domain.ErrNotFound if the owner has none.
	FindByTrackingNumber(ctx context.Context, ownerID uuid.UUID, trackingNumber string) (domain.Shipment, error)

	// List returns one page of the owner's shipments matching q.Filter in
	// q.Sort order, plus the total number of matching rows before paging.
	List(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error)

	// Update overwrites the mutable fields of an existing shipment, scoped to s.OwnerID,
	// and returns the updated record. Returns domain.ErrNotFound if no such shipment
	// exists for that owner, domain.ErrConflict on a tracking number clash.
	Update(ctx context.Context, s domain.Shipment) (domain.Shipment, error)

	// Delete removes a shipment by id, scoped to ownerID.
	// Returns domain.ErrNotFound if no such shipment exists for that owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// pgShipmentRepo is the Postgres implementation of ShipmentRepo.
type pgShipmentRepo struct {
	db db
}

// NewShipmentRepo constructs a ShipmentRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewShipmentRepo(db db) ShipmentRepo {
	return &pgShipmentRepo{db: db}
}

const shipmentColumns = `
		id, owner_id, tracking_number, description, status, is_fragile,
		origin_address, origin_city, origin_country,
		destination_address, destination_city, destination_country,
		shipping_date, distance, shipping_method, estimated_delivery,
		created_at, updated_at`

// sortColumns maps public sort fields to SQL columns. Only values from this
// map are ever interpolated into ORDER BY.
var sortColumns = map[domain.SortField]string{
	domain.SortCreatedAt:         "created_at",
	domain.SortUpdatedAt:         "updated_at",
	domain.SortShippingDate:      "shipping_date",
	domain.SortEstimatedDelivery: "estimated_delivery",
	domain.SortTrackingNumber:    "tracking_number",
	domain.SortStatus:            "status",
	domain.SortDistance:          "distance",
}

// Create inserts a shipment row and returns the full persisted record.
func (r *pgShipmentRepo) Create(ctx context.Context, s domain.Shipment) (domain.Shipment, error) {
	const q = `
		INSERT INTO shipments (
			owner_id, tracking_number, description, status, is_fragile,
			origin_address, origin_city, origin_country,
			destination_address, destination_city, destination_country,
			shipping_date, distance, shipping_method, estimated_delivery)
		VALUES (
			@owner_id, @tracking_number, @description, @status, @is_fragile,
			@origin_address, @origin_city, @origin_country,
			@destination_address, @destination_city, @destination_country,
			@shipping_date, @distance, @shipping_method, @estimated_delivery)
		RETURNING` + shipmentColumns

	row := r.db.QueryRow(ctx, q, shipmentArgs(s))
	result, err := scanShipment(row)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("repo.ShipmentRepo.Create: %w", mapShipmentWriteErr(err))
	}
	return result, nil
}

// GetByID retrieves a shipment by primary key within the owner's scope.
func (r *pgShipmentRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (domain.Shipment, error) {
	const q = `
		SELECT` + shipmentColumns + `
		FROM shipments
		WHERE id = @id AND owner_id = @owner_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "owner_id": ownerID})
	result, err := scanShipment(row)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("repo.ShipmentRepo.GetByID: %w", err)
	}
	return result, nil
}

// FindByTrackingNumber retrieves a shipment by its per-owner tracking number.
func (r *pgShipmentRepo) FindByTrackingNumber(ctx context.Context, ownerID uuid.UUID, trackingNumber string) (domain.Shipment, error) {
	const q = `
		SELECT` + shipmentColumns + `
		FROM shipments
		WHERE owner_id = @owner_id AND tracking_number = @tracking_number`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"owner_id": ownerID, "tracking_number": trackingNumber})
	result, err := scanShipment(row)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("repo.ShipmentRepo.FindByTrackingNumber: %w", err)
	}
	return result, nil
}

// List returns one page of shipments plus the total matching count.
// Nil filter fields are passed as NULL and match every row. Rows with equal
// sort keys are ordered by id so pages never overlap.
func (r *pgShipmentRepo) List(ctx context.Context, ownerID uuid.UUID, q domain.ShipmentQuery) ([]domain.Shipment, int64, error) {
	if err := q.Page.Validate(); err != nil {
		return nil, 0, fmt.Errorf("repo.ShipmentRepo.List: %w", err)
	}

	const where = `
		WHERE owner_id = @owner_id
		  AND (@status::text IS NULL OR status = @status)
		  AND (@is_fragile::boolean IS NULL OR is_fragile = @is_fragile)`

	var status *string
	if q.Filter.Status != nil {
		s := string(*q.Filter.Status)
		status = &s
	}
	args := pgx.NamedArgs{
		"owner_id":   ownerID,
		"status":     status,
		"is_fragile": q.Filter.IsFragile,
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM shipments`+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ShipmentRepo.List: count: %w", err)
	}

	col, ok := sortColumns[q.Sort.Field]
	if !ok {
		col = sortColumns[domain.DefaultShipmentSort.Field]
	}
	dir := "ASC"
	if q.Sort.Desc {
		dir = "DESC"
	}

	args["limit"] = q.Page.Limit
	args["offset"] = q.Page.Offset()
	query := `SELECT` + shipmentColumns + `
		FROM shipments` + where + `
		ORDER BY ` + col + ` ` + dir + `, id ` + dir + `
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ShipmentRepo.List: %w", err)
	}
	defer rows.Close()

	shipments := []domain.Shipment{}
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ShipmentRepo.List: scan: %w", err)
		}
		shipments = append(shipments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ShipmentRepo.List: rows: %w", err)
	}

	return shipments, total, nil
}

// Update overwrites the mutable fields of a shipment and returns the updated record.
// owner_id is part of the WHERE clause and is never written.
func (r *pgShipmentRepo) Update(ctx context.Context, s domain.Shipment) (domain.Shipment, error) {
	const q = `
		UPDATE shipments
		SET tracking_number     = @tracking_number,
		    description         = @description,
		    status              = @status,
		    is_fragile          = @is_fragile,
		    origin_address      = @origin_address,
		    origin_city         = @origin_city,
		    origin_country      = @origin_country,
		    destination_address = @destination_address,
		    destination_city    = @destination_city,
		    destination_country = @destination_country,
		    shipping_date       = @shipping_date,
		    distance            = @distance,
		    shipping_method     = @shipping_method,
		    estimated_delivery  = @estimated_delivery,
		    updated_at          = now()
		WHERE id = @id AND owner_id = @owner_id
		RETURNING` + shipmentColumns

	args := shipmentArgs(s)
	args["id"] = s.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanShipment(row)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("repo.ShipmentRepo.Update: %w", mapShipmentWriteErr(err))
	}
	return result, nil
}

// Delete removes a shipment by primary key within the owner's scope.
func (r *pgShipmentRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const q = `DELETE FROM shipments WHERE id = @id AND owner_id = @owner_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("repo.ShipmentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ShipmentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// shipmentArgs builds the named arguments shared by INSERT and UPDATE.
func shipmentArgs(s domain.Shipment) pgx.NamedArgs {
	return pgx.NamedArgs{
		"owner_id":            s.OwnerID,
		"tracking_number":     s.TrackingNumber,
		"description":         s.Description,
		"status":              string(s.Status),
		"is_fragile":          s.IsFragile,
		"origin_address":      s.Origin.Address,
		"origin_city":         s.Origin.City,
		"origin_country":      s.Origin.Country,
		"destination_address": s.Destination.Address,
		"destination_city":    s.Destination.City,
		"destination_country": s.Destination.Country,
		"shipping_date":       s.ShippingDate,
		"distance":            s.Distance,
		"shipping_method":     string(s.ShippingMethod),
		"estimated_delivery":  s.EstimatedDelivery,
	}
}

// mapShipmentWriteErr turns a tracking number unique violation into domain.ErrConflict.
func mapShipmentWriteErr(err error) error {
	if _, ok := uniqueViolation(err); ok {
		return &domain.ConflictError{Message: "Tracking number already exists"}
	}
	return err
}

// scanShipment maps a single database row into a domain.Shipment.
// It handles the UUID and DATE conversions.
func scanShipment(s scanner) (domain.Shipment, error) {
	var (
		sh                      domain.Shipment
		id, ownerID             pgtype.UUID
		status, method          string
		shipDate, estimatedDate pgtype.Date
	)

	err := s.Scan(
		&id, &ownerID, &sh.TrackingNumber, &sh.Description, &status, &sh.IsFragile,
		&sh.Origin.Address, &sh.Origin.City, &sh.Origin.Country,
		&sh.Destination.Address, &sh.Destination.City, &sh.Destination.Country,
		&shipDate, &sh.Distance, &method, &estimatedDate,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Shipment{}, domain.ErrNotFound
		}
		return domain.Shipment{}, err
	}

	sh.ID = uuid.UUID(id.Bytes)
	sh.OwnerID = uuid.UUID(ownerID.Bytes)
	sh.Status = domain.Status(status)
	sh.ShippingMethod = domain.ShippingMethod(method)
	sh.ShippingDate = shipDate.Time
	sh.EstimatedDelivery = estimatedDate.Time

	return sh, nil
}
