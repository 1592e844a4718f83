package admin_quotes_get

import (
	"encoding/json"
	"net/http"

	"amerex/internal/generated/dto"
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
	quoteEntities, err := h.service.GetQuotes(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	quoteDTOs := make([]dto.Quote, len(quoteEntities))
	for i, q := range quoteEntities {
		quoteDTOs[i] = dto.Quote{
			ID:          q.ID,
			QuoteID:     q.QuoteID,
			Name:        q.Name,
			Email:       q.Email,
			Origin:      q.Origin,
			Destination: q.Destination,
			Tier:        q.Tier.String(),
			Weight:      q.Weight,
			Total:       q.Breakdown.Total,
			Status:      q.Status.String(),
			CreatedAt:   q.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(quoteDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
