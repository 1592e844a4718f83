package ticket_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/ticket"
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

	var ticketDTO dto.TicketCreate
	err := json.NewDecoder(r.Body).Decode(&ticketDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	saved, err := h.service.Create(
		r.Context(),
		userID,
		ticketDTO.Subject,
		ticketDTO.Message,
		entities.TicketPriorityType(ticketDTO.Priority),
	)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrMissingRequiredFields),
			errors.Is(err, ticket.ErrInvalidPriority):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.Ticket(saved))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
