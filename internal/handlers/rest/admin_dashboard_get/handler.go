package admin_dashboard_get

import (
	"encoding/json"
	"net/http"

	"amerex/internal/generated/dto"
	"amerex/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboardStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DashboardStats{
		TotalShipments:   stats.TotalShipments,
		PendingShipments: stats.PendingShipments,
		InTransit:        stats.InTransit,
		Delivered:        stats.Delivered,
		TotalUsers:       stats.TotalUsers,
		OpenTickets:      stats.OpenTickets,
		Revenue:          stats.Revenue,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
