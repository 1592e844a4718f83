package admin_export_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"amerex/internal/entities"
	"amerex/internal/service/admin"
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
	entity := mux.Vars(r)["entity"]

	query := r.URL.Query()
	shipmentFilter := entities.ShipmentListFilter{Search: query.Get("search")}
	paymentFilter := entities.PaymentListFilter{Search: query.Get("search")}
	if statusStr := query.Get("status"); statusStr != "" {
		shipmentStatus := entities.ShipmentStatusType(statusStr)
		shipmentFilter.Status = &shipmentStatus
		paymentStatus := entities.PaymentStatusType(statusStr)
		paymentFilter.Status = &paymentStatus
	}

	data, filename, err := h.service.ExportCSV(r.Context(), entity, shipmentFilter, paymentFilter)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrUnknownExportEntity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, admin.ErrNothingToExport):
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write CSV response")
	}
}
