package admin_shipments_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
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
	query := r.URL.Query()
	filter := entities.ShipmentListFilter{
		Search:  query.Get("search"),
		Page:    queryInt(query.Get("page")),
		PerPage: queryInt(query.Get("per_page")),
	}
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.ShipmentStatusType(statusStr)
		filter.Status = &status
	}
	if approvedStr := query.Get("approved"); approvedStr != "" {
		approved := approvedStr == "true"
		filter.Approved = &approved
	}
	if from, err := time.Parse(time.DateOnly, query.Get("date_from")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse(time.DateOnly, query.Get("date_to")); err == nil {
		filter.DateTo = &to
	}

	shipmentEntities, total, err := h.service.GetShipments(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ShipmentListResponse{
		Shipments: convert.Shipments(shipmentEntities),
		Total:     total,
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

func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
