package stripepay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"amerex/internal/entities"
)

const (
	serviceName = "stripe"
)

type StripeGateway struct {
	intents intentsClient
}

func New(apiKey string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)

	return NewWithClient(api.PaymentIntents)
}

// NewWithClient принимает готовый клиент, используется в тестах.
func NewWithClient(intents intentsClient) *StripeGateway {
	return &StripeGateway{
		intents: intents,
	}
}

// CreateIntent выполняется без повторов: повторный вызов создал бы
// второе намерение в процессинге.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	var resp *stripe.PaymentIntent

	err := g.executeWithMetrics(ctx, "CreateIntent", func(ctx context.Context) error {
		var err error
		resp, err = g.intents.New(params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, create intent: %w", err)
	}

	return toDomain(resp), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	var resp *stripe.PaymentIntent

	err := g.executeWithMetrics(ctx, "GetIntent", func(ctx context.Context) error {
		var err error
		resp, err = g.intents.Get(id, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, get intent %s: %w", id, err)
	}

	return toDomain(resp), nil
}

func toDomain(intent *stripe.PaymentIntent) *entities.PaymentIntent {
	return &entities.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Status:       string(intent.Status),
	}
}

func (g *StripeGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	code := getStripeCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	return err
}

func getStripeCode(err error) string {
	if err == nil {
		return "OK"
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code != "" {
			return string(stripeErr.Code)
		}
		return string(stripeErr.Type)
	}
	return "UNKNOWN"
}
