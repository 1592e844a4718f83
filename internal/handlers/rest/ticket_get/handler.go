package ticket_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"amerex/internal/handlers/rest/convert"
	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/ticket"
	"amerex/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	asAdmin bool
}

// New создаёт хендлер просмотра тикета. asAdmin включается на админском
// маршруте: там доступны чужие тикеты.
func New(log handlerLogger, service Service, asAdmin bool) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		asAdmin: asAdmin,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	ticketID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ticketEntity, err := h.service.GetTicket(r.Context(), ticketID, userID, h.asAdmin)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrTicketNotFound),
			errors.Is(err, ticket.ErrForeignTicket):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Ticket(ticketEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
