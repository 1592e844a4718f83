package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/repository"
	"amerex/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, user_id, tracking_number,
	sender_name, sender_email, sender_phone, sender_address, sender_apt_suite, sender_city, sender_state, sender_zip, sender_country,
	recipient_name, recipient_email, recipient_phone, recipient_address, recipient_apt_suite, recipient_city, recipient_state, recipient_zip, recipient_country,
	pickup_instructions, delivery_instructions,
	package_type, length, width, height, weight, quantity, description, declared_value,
	service_type, pickup_date, pickup_time, estimated_delivery,
	payment_method, payment_status, stripe_payment_id, payment_proof_url,
	base_price, insurance_amount, international_fee, subtotal, discount_amount, tax_amount, total_cost,
	status, admin_approved, is_international,
	origin, destination, current_location,
	video_proof_url, video_notes,
	tax_id, hs_code, content_type,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentEntity *entities.Shipment) (int64, error) {
	builder := qb.
		Insert("shipments").
		SetMap(map[string]interface{}{
			"user_id":         shipmentEntity.UserID,
			"tracking_number": shipmentEntity.TrackingNumber,

			"sender_name":      shipmentEntity.Sender.Name,
			"sender_email":     shipmentEntity.Sender.Email,
			"sender_phone":     shipmentEntity.Sender.Phone,
			"sender_address":   shipmentEntity.Sender.Address,
			"sender_apt_suite": shipmentEntity.Sender.AptSuite,
			"sender_city":      shipmentEntity.Sender.City,
			"sender_state":     shipmentEntity.Sender.State,
			"sender_zip":       shipmentEntity.Sender.Zip,
			"sender_country":   shipmentEntity.Sender.Country,

			"recipient_name":      shipmentEntity.Recipient.Name,
			"recipient_email":     shipmentEntity.Recipient.Email,
			"recipient_phone":     shipmentEntity.Recipient.Phone,
			"recipient_address":   shipmentEntity.Recipient.Address,
			"recipient_apt_suite": shipmentEntity.Recipient.AptSuite,
			"recipient_city":      shipmentEntity.Recipient.City,
			"recipient_state":     shipmentEntity.Recipient.State,
			"recipient_zip":       shipmentEntity.Recipient.Zip,
			"recipient_country":   shipmentEntity.Recipient.Country,

			"pickup_instructions":   shipmentEntity.PickupInstructions,
			"delivery_instructions": shipmentEntity.DeliveryInstructions,

			"package_type":   shipmentEntity.Package.Type.String(),
			"length":         shipmentEntity.Package.Length,
			"width":          shipmentEntity.Package.Width,
			"height":         shipmentEntity.Package.Height,
			"weight":         shipmentEntity.Package.Weight,
			"quantity":       shipmentEntity.Package.Quantity,
			"description":    shipmentEntity.Package.Description,
			"declared_value": shipmentEntity.Package.DeclaredValue,

			"service_type":       shipmentEntity.ServiceType.String(),
			"pickup_date":        shipmentEntity.PickupDate,
			"pickup_time":        shipmentEntity.PickupTime,
			"estimated_delivery": shipmentEntity.EstimatedDelivery,

			"payment_method":    shipmentEntity.PaymentMethod.String(),
			"payment_status":    shipmentEntity.PaymentStatus.String(),
			"stripe_payment_id": shipmentEntity.StripePaymentID,
			"payment_proof_url": shipmentEntity.PaymentProofURL,

			"base_price":        shipmentEntity.Cost.BasePrice,
			"insurance_amount":  shipmentEntity.Cost.InsuranceAmount,
			"international_fee": shipmentEntity.Cost.InternationalFee,
			"subtotal":          shipmentEntity.Cost.Subtotal,
			"discount_amount":   shipmentEntity.Cost.DiscountAmount,
			"tax_amount":        shipmentEntity.Cost.TaxAmount,
			"total_cost":        shipmentEntity.Cost.TotalCost,

			"status":           shipmentEntity.Status.String(),
			"admin_approved":   shipmentEntity.AdminApproved,
			"is_international": shipmentEntity.IsInternational,

			"origin":           shipmentEntity.Origin,
			"destination":      shipmentEntity.Destination,
			"current_location": shipmentEntity.CurrentLocation,

			"video_proof_url": shipmentEntity.VideoProofURL,
			"video_notes":     shipmentEntity.VideoNotes,

			"tax_id":       shipmentEntity.TaxID,
			"hs_code":      shipmentEntity.HSCode,
			"content_type": shipmentEntity.ContentType,
		}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, shipment.ErrConflict
		}
		return 0, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_number = $1`

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbytracking error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getbyuser error: %w", err)
	}
	defer rows.Close()

	return collectShipments(rows)
}

// List отдаёт выборку по точным фильтрам, поиск по подстроке и пагинация
// выполняются выше по выборке в памяти.
func (r *Repository) List(ctx context.Context, filter entities.ShipmentListFilter) ([]entities.Shipment, error) {
	builder := qb.
		Select(shipmentColumns).
		From("shipments").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Approved != nil {
		builder = builder.Where(sq.Eq{"admin_approved": *filter.Approved})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.DateTo})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	return collectShipments(rows)
}

func (r *Repository) Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModify.Status != nil {
		builder = builder.Set("status", shipmentModify.Status.String())
	}
	if shipmentModify.AdminApproved != nil {
		builder = builder.Set("admin_approved", *shipmentModify.AdminApproved)
	}
	if shipmentModify.PaymentStatus != nil {
		builder = builder.Set("payment_status", shipmentModify.PaymentStatus.String())
	}
	if shipmentModify.CurrentLocation != nil {
		builder = builder.Set("current_location", *shipmentModify.CurrentLocation)
	}
	if shipmentModify.EstimatedDelivery != nil {
		builder = builder.Set("estimated_delivery", *shipmentModify.EstimatedDelivery)
	}
	if shipmentModify.TotalCost != nil {
		builder = builder.Set("total_cost", *shipmentModify.TotalCost)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModify.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	shipmentModel, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(shipmentModel), nil
}

func (r *Repository) InsertTrackingUpdate(ctx context.Context, update *entities.TrackingUpdate) (int64, error) {
	query := `INSERT INTO tracking_updates (shipment_id, status, location, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		update.ShipmentID,
		update.Status.String(),
		update.Location,
		update.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository insert tracking error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetTrackingUpdates(ctx context.Context, shipmentID int64) ([]entities.TrackingUpdate, error) {
	query := `SELECT id, shipment_id, status, location, message, created_at
		FROM tracking_updates
		WHERE shipment_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get tracking error: %w", err)
	}
	defer rows.Close()

	updateModels := make([]TrackingUpdateDB, 0, 8)
	for rows.Next() {
		var updateModel TrackingUpdateDB
		err := rows.Scan(
			&updateModel.ID,
			&updateModel.ShipmentID,
			&updateModel.Status,
			&updateModel.Location,
			&updateModel.Message,
			&updateModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository get tracking error: %w", err)
		}
		updateModels = append(updateModels, updateModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get tracking error: %w", err)
	}

	return ToTrackingDomainList(updateModels), nil
}

func (r *Repository) DeleteTrackingUpdate(ctx context.Context, id int64) error {
	query := `DELETE FROM tracking_updates WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete tracking error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrTrackingUpdateNotFound
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM shipments`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.ShipmentStatusType) (int64, error) {
	query := `SELECT COUNT(*) FROM shipments WHERE status = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, status.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count by status error: %w", err)
	}

	return count, nil
}

func collectShipments(rows pgx.Rows) ([]entities.Shipment, error) {
	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		shipmentModel, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository scan error: %w", err)
		}
		shipmentModels = append(shipmentModels, *shipmentModel)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository rows error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var s ShipmentDB
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.TrackingNumber,

		&s.SenderName,
		&s.SenderEmail,
		&s.SenderPhone,
		&s.SenderAddress,
		&s.SenderAptSuite,
		&s.SenderCity,
		&s.SenderState,
		&s.SenderZip,
		&s.SenderCountry,

		&s.RecipientName,
		&s.RecipientEmail,
		&s.RecipientPhone,
		&s.RecipientAddress,
		&s.RecipientAptSuite,
		&s.RecipientCity,
		&s.RecipientState,
		&s.RecipientZip,
		&s.RecipientCountry,

		&s.PickupInstructions,
		&s.DeliveryInstructions,

		&s.PackageType,
		&s.Length,
		&s.Width,
		&s.Height,
		&s.Weight,
		&s.Quantity,
		&s.Description,
		&s.DeclaredValue,

		&s.ServiceType,
		&s.PickupDate,
		&s.PickupTime,
		&s.EstimatedDelivery,

		&s.PaymentMethod,
		&s.PaymentStatus,
		&s.StripePaymentID,
		&s.PaymentProofURL,

		&s.BasePrice,
		&s.InsuranceAmount,
		&s.InternationalFee,
		&s.Subtotal,
		&s.DiscountAmount,
		&s.TaxAmount,
		&s.TotalCost,

		&s.Status,
		&s.AdminApproved,
		&s.IsInternational,

		&s.Origin,
		&s.Destination,
		&s.CurrentLocation,

		&s.VideoProofURL,
		&s.VideoNotes,

		&s.TaxID,
		&s.HSCode,
		&s.ContentType,

		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
