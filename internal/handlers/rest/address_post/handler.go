package address_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/service/account"
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

	var addressDTO dto.AddressCreate
	err := json.NewDecoder(r.Body).Decode(&addressDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	addressEntity := entities.Address{
		UserID:    userID,
		Label:     addressDTO.Label,
		Name:      addressDTO.Name,
		Phone:     addressDTO.Phone,
		Address:   addressDTO.Address,
		AptSuite:  addressDTO.AptSuite,
		City:      addressDTO.City,
		State:     addressDTO.State,
		Zip:       addressDTO.Zip,
		Country:   addressDTO.Country,
		IsDefault: addressDTO.IsDefault,
	}

	saved, err := h.service.CreateAddress(r.Context(), addressEntity)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.Address(saved))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
