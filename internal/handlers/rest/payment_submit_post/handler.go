package payment_submit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/payment"
	"amerex/internal/service/wizard"
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
	userID, ok := auth.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var submitDTO dto.PaymentSubmitRequest
	err := json.NewDecoder(r.Body).Decode(&submitDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentEntity, err := h.service.Submit(r.Context(), payment.SubmitRequest{
		DraftID:         submitDTO.DraftID,
		UserID:          userID,
		Method:          entities.PaymentMethodType(submitDTO.Method),
		PaymentIntentID: submitDTO.IntentID,
		ProofURL:        submitDTO.ProofURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound),
			errors.Is(err, wizard.ErrForeignDraft):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrDraftNotReady):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, payment.ErrUnknownMethod),
			errors.Is(err, payment.ErrMissingIntentID),
			errors.Is(err, payment.ErrMissingProofURL):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrPaymentDeclined):
			w.WriteHeader(http.StatusPaymentRequired)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentSubmitResponse{
		ShipmentID:     shipmentEntity.ID,
		TrackingNumber: shipmentEntity.TrackingNumber,
		PaymentStatus:  shipmentEntity.PaymentStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
