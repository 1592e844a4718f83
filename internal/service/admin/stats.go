package admin

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"amerex/internal/entities"
)

// DashboardStats - сводка для главного экрана консоли.
type DashboardStats struct {
	TotalShipments   int64
	PendingShipments int64
	InTransit        int64
	Delivered        int64
	TotalUsers       int64
	OpenTickets      int64
	Revenue          float64
}

// GetDashboardStats собирает счётчики параллельно и отдаёт их одним ответом.
func (s *Admin) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		stats.TotalShipments, err = s.shipments.Count(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.PendingShipments, err = s.shipments.CountByStatus(ctx, entities.ShipmentPending)
		return err
	})
	group.Go(func() error {
		var err error
		stats.InTransit, err = s.shipments.CountByStatus(ctx, entities.ShipmentInTransit)
		return err
	})
	group.Go(func() error {
		var err error
		stats.Delivered, err = s.shipments.CountByStatus(ctx, entities.ShipmentDelivered)
		return err
	})
	group.Go(func() error {
		var err error
		stats.TotalUsers, err = s.users.Count(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		stats.OpenTickets, err = s.tickets.CountByStatus(ctx, entities.TicketOpen)
		return err
	})
	group.Go(func() error {
		var err error
		stats.Revenue, err = s.payments.SumPaid(ctx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("collect dashboard stats: %w", err)
	}

	return &stats, nil
}
