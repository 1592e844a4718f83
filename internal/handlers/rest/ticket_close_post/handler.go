package ticket_close_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/ticket"
)

type Handler struct {
	log     handlerLogger
	service Service
	asAdmin bool
}

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

	// проверка владения перед закрытием, Close сам её не делает
	_, err = h.service.GetTicket(r.Context(), ticketID, userID, h.asAdmin)
	if err == nil {
		err = h.service.Close(r.Context(), ticketID)
	}
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

	w.WriteHeader(http.StatusNoContent)
}
