//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stripepay_test
package stripepay

import (
	"github.com/stripe/stripe-go/v79"
)

type intentsClient interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}
