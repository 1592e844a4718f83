package quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
	"amerex/internal/service/quote"
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
	var submitDTO dto.QuoteSubmitRequest
	err := json.NewDecoder(r.Body).Decode(&submitDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quoteEntity := entities.Quote{
		Name:          submitDTO.Name,
		Email:         submitDTO.Email,
		Phone:         submitDTO.Phone,
		Company:       submitDTO.Company,
		Origin:        submitDTO.Origin,
		Destination:   submitDTO.Destination,
		Tier:          entities.QuoteTierType(submitDTO.Tier),
		Weight:        submitDTO.Weight,
		DeclaredValue: submitDTO.DeclaredValue,
		Options: entities.QuoteOptions{
			Signature: submitDTO.Signature,
			Insurance: submitDTO.Insurance,
			Saturday:  submitDTO.Saturday,
			Packaging: submitDTO.Packaging,
		},
	}

	saved, err := h.service.Submit(r.Context(), quoteEntity)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrMissingRequiredFields),
			errors.Is(err, quote.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, quote.ErrTooFrequent):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuoteSubmitResponse{
		QuoteID:   saved.QuoteID,
		Breakdown: convert.QuoteBreakdown(saved.Breakdown),
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
