package admin_users_get

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	query := r.URL.Query()
	filter := entities.UserListFilter{
		Search:  query.Get("search"),
		Page:    queryInt(query.Get("page")),
		PerPage: queryInt(query.Get("per_page")),
	}
	if roleStr := query.Get("role"); roleStr != "" {
		role := entities.UserRoleType(roleStr)
		filter.Role = &role
	}

	userEntities, total, err := h.service.GetUsers(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.UserListResponse{
		Users: convert.Users(userEntities),
		Total: total,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
