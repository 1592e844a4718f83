package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amerex/internal/entities"
)

type Wizard struct {
	storage  DraftStorage
	pricer   Pricer
	coupons  CouponProvider
	estimate EstimateFactory
}

func New(storage DraftStorage, pricer Pricer, coupons CouponProvider, estimate EstimateFactory) *Wizard {
	return &Wizard{
		storage:  storage,
		pricer:   pricer,
		coupons:  coupons,
		estimate: estimate,
	}
}

func (s *Wizard) CreateDraft(ctx context.Context, userID int64) (*entities.Draft, error) {
	draft := &entities.Draft{
		UserID: userID,
		Step:   entities.StepSender,
		Package: entities.Package{
			Quantity: 1,
		},
	}
	draft.Cost = s.recompute(draft)

	id, err := s.storage.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	draft.ID = id

	return draft, nil
}

func (s *Wizard) GetDraft(ctx context.Context, draftID string, userID int64) (*entities.Draft, error) {
	return s.loadOwned(ctx, draftID, userID)
}

func (s *Wizard) DeleteDraft(ctx context.Context, draftID string, userID int64) error {
	if _, err := s.loadOwned(ctx, draftID, userID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// SubmitStep валидирует данные текущего шага, мержит их в черновик и двигает
// мастер вперёд. При невалидных данных черновик не меняется.
func (s *Wizard) SubmitStep(
	ctx context.Context,
	draftID string,
	userID int64,
	step entities.DraftStepType,
	modify entities.DraftModify,
) (*entities.Draft, error) {
	draft, err := s.loadOwned(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	if draft.Step != step || draft.Step == entities.StepPayment {
		return nil, fmt.Errorf("%w: draft is at %s", ErrWrongStep, draft.Step)
	}

	candidate := *draft
	mergeModify(&candidate, modify)

	if err := s.validateStep(&candidate); err != nil {
		return nil, err
	}

	candidate.Step = nextStep(candidate.Step)
	if candidate.Step == entities.StepPayment {
		candidate.EstimatedDelivery = s.estimate.CalculateEstimate(candidate.ServiceType, candidate.PickupDate)
	}
	candidate.Cost = s.recompute(&candidate)

	if err := s.storage.Update(ctx, &candidate); err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}

	return &candidate, nil
}

func (s *Wizard) Back(ctx context.Context, draftID string, userID int64) (*entities.Draft, error) {
	draft, err := s.loadOwned(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	idx := stepIndex(draft.Step)
	if idx <= 0 {
		return nil, fmt.Errorf("%w: already at the first step", ErrWrongStep)
	}
	draft.Step = entities.StepOrder[idx-1]

	if err := s.storage.Update(ctx, draft); err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}

	return draft, nil
}

// SetInsurance доступен на любом шаге, итог пересчитывается сразу.
func (s *Wizard) SetInsurance(ctx context.Context, draftID string, userID int64, enabled bool) (*entities.Draft, error) {
	return s.toggle(ctx, draftID, userID, func(draft *entities.Draft) {
		draft.HasInsurance = enabled
	})
}

func (s *Wizard) SetInternational(ctx context.Context, draftID string, userID int64, enabled bool) (*entities.Draft, error) {
	return s.toggle(ctx, draftID, userID, func(draft *entities.Draft) {
		draft.IsInternational = enabled
	})
}

func (s *Wizard) ApplyCoupon(ctx context.Context, draftID string, userID int64, code string) (*entities.Draft, error) {
	draft, err := s.loadOwned(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	if draft.Coupon != nil {
		return nil, ErrCouponAlreadyApplied
	}

	coupon, err := s.coupons.GetActiveByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCouponNotFound, code)
	}

	draft.Coupon = coupon
	draft.Cost = s.recompute(draft)

	if err := s.storage.Update(ctx, draft); err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}

	return draft, nil
}

func (s *Wizard) RemoveCoupon(ctx context.Context, draftID string, userID int64) (*entities.Draft, error) {
	return s.toggle(ctx, draftID, userID, func(draft *entities.Draft) {
		draft.Coupon = nil
	})
}

// CleanupExpiredDrafts вызывается фоновой задачей.
func (s *Wizard) CleanupExpiredDrafts(ctx context.Context) (int64, error) {
	removed, err := s.storage.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired drafts: %w", err)
	}
	return removed, nil
}

func (s *Wizard) loadOwned(ctx context.Context, draftID string, userID int64) (*entities.Draft, error) {
	draft, err := s.storage.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if draft.UserID != userID {
		return nil, ErrForeignDraft
	}
	return draft, nil
}

func (s *Wizard) toggle(ctx context.Context, draftID string, userID int64, apply func(*entities.Draft)) (*entities.Draft, error) {
	draft, err := s.loadOwned(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	apply(draft)
	draft.Cost = s.recompute(draft)

	if err := s.storage.Update(ctx, draft); err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}

	return draft, nil
}

func (s *Wizard) validateStep(draft *entities.Draft) error {
	switch draft.Step {
	case entities.StepSender:
		return validateParty(draft.Sender)
	case entities.StepRecipient:
		return validateParty(draft.Recipient)
	case entities.StepPackage:
		if draft.Package.Type == entities.PackageEnvelope {
			draft.Package.Length = entities.EnvelopeLength
			draft.Package.Width = entities.EnvelopeWidth
			draft.Package.Height = entities.EnvelopeHeight
		}
		return validatePackage(draft.Package)
	case entities.StepVideo:
		// видеоподтверждение опционально, шаг всегда проходит
		return nil
	case entities.StepService:
		if _, err := s.pricer.ServiceTariff(draft.ServiceType); err != nil {
			return ErrInvalidServiceLevel
		}
		if err := validatePickupDate(draft.PickupDate, time.Now()); err != nil {
			return err
		}
		if isBlank(draft.PickupTime) {
			return ErrMissingPickupTime
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrWrongStep, draft.Step)
	}
}

func (s *Wizard) recompute(draft *entities.Draft) entities.CostBreakdown {
	var basePrice float64
	if tariff, err := s.pricer.ServiceTariff(draft.ServiceType); err == nil {
		basePrice = tariff.Price
	}

	return s.pricer.ComputeShipmentCost(
		basePrice,
		draft.Package.DeclaredValue,
		draft.HasInsurance,
		draft.IsInternational,
		draft.Coupon,
	)
}

func mergeModify(draft *entities.Draft, modify entities.DraftModify) {
	if modify.Sender != nil {
		draft.Sender = *modify.Sender
	}
	if modify.Recipient != nil {
		draft.Recipient = *modify.Recipient
	}
	if modify.PickupInstructions != nil {
		draft.PickupInstructions = *modify.PickupInstructions
	}
	if modify.DeliveryInstructions != nil {
		draft.DeliveryInstructions = *modify.DeliveryInstructions
	}
	if modify.Package != nil {
		draft.Package = *modify.Package
	}
	if modify.VideoProofURL != nil {
		draft.VideoProofURL = *modify.VideoProofURL
	}
	if modify.VideoNotes != nil {
		draft.VideoNotes = *modify.VideoNotes
	}
	if modify.ServiceType != nil {
		draft.ServiceType = *modify.ServiceType
	}
	if modify.PickupDate != nil {
		draft.PickupDate = *modify.PickupDate
	}
	if modify.PickupTime != nil {
		draft.PickupTime = *modify.PickupTime
	}
	if modify.TaxID != nil {
		draft.TaxID = *modify.TaxID
	}
	if modify.HSCode != nil {
		draft.HSCode = *modify.HSCode
	}
	if modify.ContentType != nil {
		draft.ContentType = *modify.ContentType
	}
}

func nextStep(step entities.DraftStepType) entities.DraftStepType {
	idx := stepIndex(step)
	if idx < 0 || idx >= len(entities.StepOrder)-1 {
		return step
	}
	return entities.StepOrder[idx+1]
}

func stepIndex(step entities.DraftStepType) int {
	for i, s := range entities.StepOrder {
		if s == step {
			return i
		}
	}
	return -1
}
