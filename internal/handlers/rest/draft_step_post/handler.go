package draft_step_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"amerex/internal/entities"
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

	var stepDTO dto.DraftStepRequest
	err := json.NewDecoder(r.Body).Decode(&stepDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft, err := h.service.SubmitStep(
		r.Context(),
		mux.Vars(r)["id"],
		userID,
		entities.DraftStepType(stepDTO.Step),
		toModify(stepDTO),
	)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound),
			errors.Is(err, wizard.ErrForeignDraft):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, wizard.ErrWrongStep):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, wizard.ErrMissingRequiredFields),
			errors.Is(err, wizard.ErrInvalidEmail),
			errors.Is(err, wizard.ErrInvalidPhone),
			errors.Is(err, wizard.ErrInvalidPackageType),
			errors.Is(err, wizard.ErrInvalidDimensions),
			errors.Is(err, wizard.ErrInvalidWeight),
			errors.Is(err, wizard.ErrInvalidQuantity),
			errors.Is(err, wizard.ErrInvalidDeclaredValue),
			errors.Is(err, wizard.ErrShortDescription),
			errors.Is(err, wizard.ErrInvalidServiceLevel),
			errors.Is(err, wizard.ErrInvalidPickupDate),
			errors.Is(err, wizard.ErrMissingPickupTime):
			w.WriteHeader(http.StatusBadRequest)
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

func toModify(stepDTO dto.DraftStepRequest) entities.DraftModify {
	modify := entities.DraftModify{
		PickupInstructions:   stepDTO.PickupInstructions,
		DeliveryInstructions: stepDTO.DeliveryInstructions,
		VideoProofURL:        stepDTO.VideoProofURL,
		VideoNotes:           stepDTO.VideoNotes,
		PickupDate:           stepDTO.PickupDate,
		PickupTime:           stepDTO.PickupTime,
		TaxID:                stepDTO.TaxID,
		HSCode:               stepDTO.HSCode,
		ContentType:          stepDTO.ContentType,
	}
	if stepDTO.Sender != nil {
		sender := convert.PartyEntity(*stepDTO.Sender)
		modify.Sender = &sender
	}
	if stepDTO.Recipient != nil {
		recipient := convert.PartyEntity(*stepDTO.Recipient)
		modify.Recipient = &recipient
	}
	if stepDTO.Package != nil {
		pkg := convert.PackageEntity(*stepDTO.Package)
		modify.Package = &pkg
	}
	if stepDTO.ServiceType != nil {
		serviceType := entities.ServiceLevelType(*stepDTO.ServiceType)
		modify.ServiceType = &serviceType
	}
	return modify
}
