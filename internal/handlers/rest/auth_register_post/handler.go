package auth_register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
	"amerex/internal/service/auth"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = h.service.Register(
		r.Context(),
		registerDTO.Email,
		registerDTO.Password,
		registerDTO.FirstName,
		registerDTO.LastName,
	)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrWeakPassword),
			errors.Is(err, auth.ErrMissingName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// сразу после регистрации выдаём токен, отдельный логин не нужен
	token, userEntity, err := h.service.Login(r.Context(), registerDTO.Email, registerDTO.Password)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.AuthResponse{
		Token: token,
		User:  convert.User(userEntity),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
