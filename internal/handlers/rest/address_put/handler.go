package address_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	idStr := mux.Vars(r)["id"]
	addressID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var addressDTO dto.AddressUpdate
	err = json.NewDecoder(r.Body).Decode(&addressDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.AddressModify{
		ID:        &addressID,
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

	saved, err := h.service.UpdateAddress(r.Context(), userID, modify)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrAddressNotFound),
			errors.Is(err, account.ErrForeignAddress):
			// чужой адрес не раскрываем, отвечаем как на отсутствующий
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Address(saved))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
