package draft_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/wizard"
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

	err := h.service.DeleteDraft(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound),
			errors.Is(err, wizard.ErrForeignDraft):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
