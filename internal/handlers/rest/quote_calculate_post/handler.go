package quote_calculate_post

import (
	"encoding/json"
	"net/http"

	"amerex/internal/entities"
	"amerex/internal/generated/dto"
	"amerex/internal/handlers/rest/convert"
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
	var calculateDTO dto.QuoteCalculateRequest
	err := json.NewDecoder(r.Body).Decode(&calculateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options := entities.QuoteOptions{
		Signature: calculateDTO.Signature,
		Insurance: calculateDTO.Insurance,
		Saturday:  calculateDTO.Saturday,
		Packaging: calculateDTO.Packaging,
	}

	breakdown, err := h.service.Calculate(
		r.Context(),
		entities.QuoteTierType(calculateDTO.Tier),
		calculateDTO.Weight,
		calculateDTO.DeclaredValue,
		options,
	)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.QuoteBreakdown(breakdown))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
