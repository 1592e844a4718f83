//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_dashboard_get_test
package admin_dashboard_get

import (
	"context"

	"amerex/internal/service/admin"
	"amerex/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDashboardStats(ctx context.Context) (*admin.DashboardStats, error)
}
