package admin_payments_get

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	filter := entities.PaymentListFilter{
		Search:  query.Get("search"),
		Page:    queryInt(query.Get("page")),
		PerPage: queryInt(query.Get("per_page")),
	}
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.PaymentStatusType(statusStr)
		filter.Status = &status
	}
	if methodStr := query.Get("method"); methodStr != "" {
		method := entities.PaymentMethodType(methodStr)
		filter.Method = &method
	}

	paymentEntities, total, err := h.service.GetPayments(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.PaymentListResponse{
		Payments: convert.Payments(paymentEntities),
		Total:    total,
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
