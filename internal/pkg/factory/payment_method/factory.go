package payment_method

import (
	"context"
	"fmt"
	"strings"

	"amerex/internal/entities"
	"amerex/internal/service/payment"
)

// Статус платёжного намерения, при котором деньги считаются списанными.
const intentStatusSucceeded = "succeeded"

type MethodHandlerFactory struct {
	gateway payment.Gateway
}

func NewMethodHandlerFactory(gateway payment.Gateway) *MethodHandlerFactory {
	return &MethodHandlerFactory{
		gateway: gateway,
	}
}

func (f *MethodHandlerFactory) GetHandler(method entities.PaymentMethodType) (payment.ExecuteFn, error) {
	switch method {
	case entities.PaymentCard:
		return f.cardHandler, nil
	case entities.PaymentCrypto:
		return f.cryptoHandler, nil
	case entities.PaymentBankTransfer:
		return f.bankTransferHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", payment.ErrUnknownMethod, method)
	}
}

// Карта: намерение должно быть подтверждено процессингом до создания
// отправления. Любой иной статус возвращается клиенту как отказ.
func (f *MethodHandlerFactory) cardHandler(ctx context.Context, request payment.SubmitRequest, _ float64) (entities.PaymentStatusType, string, error) {
	if strings.TrimSpace(request.PaymentIntentID) == "" {
		return "", "", payment.ErrMissingIntentID
	}

	intent, err := f.gateway.GetIntent(ctx, request.PaymentIntentID)
	if err != nil {
		return "", "", fmt.Errorf("verify payment intent: %w", err)
	}
	if intent.Status != intentStatusSucceeded {
		return "", "", fmt.Errorf("%w: processor status %s", payment.ErrPaymentDeclined, intent.Status)
	}

	return entities.PaymentPaid, intent.ID, nil
}

// Криптовалюта: обязателен пруф перевода, платёж ждёт ручной проверки.
func (f *MethodHandlerFactory) cryptoHandler(_ context.Context, request payment.SubmitRequest, _ float64) (entities.PaymentStatusType, string, error) {
	if strings.TrimSpace(request.ProofURL) == "" {
		return "", "", payment.ErrMissingProofURL
	}

	return entities.PaymentPending, "", nil
}

func (f *MethodHandlerFactory) bankTransferHandler(_ context.Context, _ payment.SubmitRequest, _ float64) (entities.PaymentStatusType, string, error) {
	return entities.PaymentPending, "", nil
}
