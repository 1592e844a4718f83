package contact_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/service/contact"
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
	var contactDTO dto.ContactRequest
	err := json.NewDecoder(r.Body).Decode(&contactDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	messageEntity := entities.ContactMessage{
		Name:    contactDTO.Name,
		Email:   contactDTO.Email,
		Subject: contactDTO.Subject,
		Message: contactDTO.Message,
	}

	saved, err := h.service.Submit(r.Context(), messageEntity)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrMissingRequiredFields),
			errors.Is(err, contact.ErrInvalidEmail),
			errors.Is(err, contact.ErrMessageLength):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, contact.ErrTooFrequent):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.IDResponse{
		ID: saved.ID,
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
