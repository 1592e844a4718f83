package profile_put

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

	var profileDTO dto.ProfileUpdate
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.UserModify{
		ID:        &userID,
		FirstName: profileDTO.FirstName,
		LastName:  profileDTO.LastName,
		Phone:     profileDTO.Phone,
		Company:   profileDTO.Company,
		AvatarURL: profileDTO.AvatarURL,
	}
	if profileDTO.AccountType != nil {
		accountType := entities.AccountTypeType(*profileDTO.AccountType)
		modify.AccountType = &accountType
	}

	userEntity, err := h.service.UpdateProfile(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidAccountType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.User(userEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
