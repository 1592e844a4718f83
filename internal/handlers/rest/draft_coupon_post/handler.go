package draft_coupon_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
	"amerex/internal/pkg/middlewares/auth"
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

	var couponDTO dto.CouponRequest
	err := json.NewDecoder(r.Body).Decode(&couponDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft, err := h.service.ApplyCoupon(r.Context(), mux.Vars(r)["id"], userID, couponDTO.Code)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound),
			errors.Is(err, wizard.ErrForeignDraft):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, wizard.ErrCouponNotFound):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, wizard.ErrCouponAlreadyApplied):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Draft(draft))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
