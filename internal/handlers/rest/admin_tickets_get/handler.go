package admin_tickets_get

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
	filter := entities.TicketListFilter{
		Search:  query.Get("search"),
		Page:    queryInt(query.Get("page")),
		PerPage: queryInt(query.Get("per_page")),
	}
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.TicketStatusType(statusStr)
		filter.Status = &status
	}

	ticketEntities, total, err := h.service.GetTickets(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TicketListResponse{
		Tickets: convert.Tickets(ticketEntities),
		Total:   total,
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
