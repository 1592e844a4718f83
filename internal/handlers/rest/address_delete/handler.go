package address_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/account"
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

	idStr := mux.Vars(r)["id"]
	addressID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteAddress(r.Context(), userID, addressID)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAddressNotFound),
			errors.Is(err, account.ErrForeignAddress):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
