package admin_shipment_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
	"amerex/internal/service/admin"
	"amerex/internal/service/shipment"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.ShipmentUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.ShipmentModify{
		ID:                &id,
		AdminApproved:     updateDTO.AdminApproved,
		CurrentLocation:   updateDTO.CurrentLocation,
		EstimatedDelivery: updateDTO.EstimatedDelivery,
		TotalCost:         updateDTO.TotalCost,
	}
	if updateDTO.Status != nil {
		status := entities.ShipmentStatusType(*updateDTO.Status)
		modify.Status = &status
	}
	if updateDTO.PaymentStatus != nil {
		paymentStatus := entities.PaymentStatusType(*updateDTO.PaymentStatus)
		modify.PaymentStatus = &paymentStatus
	}

	shipmentEntity, err := h.service.EditShipment(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrMissingRequiredFields),
			errors.Is(err, admin.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Shipment(shipmentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
