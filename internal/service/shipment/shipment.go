package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"amerex/internal/entities"
)

type Shipment struct {
	repository Repository
	cooldown   Cooldown
}

func New(repository Repository, cooldown Cooldown) *Shipment {
	return &Shipment{
		repository: repository,
		cooldown:   cooldown,
	}
}

// TrackingInfo - всё что видит публичная страница отслеживания.
type TrackingInfo struct {
	Shipment    *entities.Shipment
	Updates     []entities.TrackingUpdate
	Progress    int
	DisplayCode string
}

// Track ищет отправление по номеру. callerKey - ключ антиспама,
// обычно адрес клиента.
func (s *Shipment) Track(ctx context.Context, callerKey, rawCode string) (*TrackingInfo, error) {
	code := NormalizeTrackingNumber(rawCode)
	if code == "" {
		return nil, ErrEmptyTrackingNumber
	}

	if !s.cooldown.Allow(callerKey) {
		return nil, ErrTooFrequent
	}

	found, err := s.repository.GetByTrackingNumber(ctx, code)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment by tracking number: %w", err)
	}

	updates, err := s.repository.GetTrackingUpdates(ctx, found.ID)
	if err != nil {
		return nil, fmt.Errorf("get tracking updates: %w", err)
	}

	return &TrackingInfo{
		Shipment:    found,
		Updates:     updates,
		Progress:    Progress(found.Status),
		DisplayCode: FormatTrackingNumber(found.TrackingNumber),
	}, nil
}

// Progress - процент заполнения шкалы на странице отслеживания.
func Progress(status entities.ShipmentStatusType) int {
	switch status {
	case entities.ShipmentPending:
		return 25
	case entities.ShipmentInTransit:
		return 50
	case entities.ShipmentOutForDelivery:
		return 75
	case entities.ShipmentDelivered:
		return 100
	default:
		return 0
	}
}

func (s *Shipment) GetShipment(ctx context.Context, id, userID int64) (*entities.Shipment, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if found.UserID != userID {
		return nil, ErrForeignShipment
	}
	return found, nil
}

// GetUserShipments возвращает страницу отправлений пользователя.
// Фильтр по статусу уходит в SQL, поиск и пагинация выполняются в памяти.
func (s *Shipment) GetUserShipments(ctx context.Context, userID int64, filter entities.ShipmentListFilter) ([]entities.Shipment, int, error) {
	filter.UserID = &userID

	shipments, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list user shipments: %w", err)
	}

	if filter.Search != "" {
		shipments = filterShipments(shipments, filter.Search)
	}
	total := len(shipments)

	return paginate(shipments, filter.Page, filter.PerPage), total, nil
}

func (s *Shipment) GetTrackingUpdates(ctx context.Context, shipmentID int64) ([]entities.TrackingUpdate, error) {
	updates, err := s.repository.GetTrackingUpdates(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get tracking updates: %w", err)
	}
	return updates, nil
}

func filterShipments(shipments []entities.Shipment, search string) []entities.Shipment {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return shipments
	}

	var out []entities.Shipment
	for _, sh := range shipments {
		if strings.Contains(strings.ToLower(sh.TrackingNumber), needle) ||
			strings.Contains(strings.ToLower(sh.Sender.Name), needle) ||
			strings.Contains(strings.ToLower(sh.Recipient.Name), needle) ||
			strings.Contains(strings.ToLower(sh.Destination), needle) {
			out = append(out, sh)
		}
	}
	return out
}

func paginate(shipments []entities.Shipment, page, perPage int) []entities.Shipment {
	if perPage <= 0 {
		return shipments
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= len(shipments) {
		return nil
	}
	end := start + perPage
	if end > len(shipments) {
		end = len(shipments)
	}
	return shipments[start:end]
}
