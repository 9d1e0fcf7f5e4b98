package stripe

import (
	"errors"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Currency is fixed by the storefront; amounts are always minor units.
const Currency = "bdt"

var ErrNotConfigured = errors.New("stripe: secret key not configured")

func Init(secretKey string) {
	stripego.Key = secretKey
}

// CreatePaymentIntent asks the gateway for an intent over amountMinor
// minor units and returns the client secret the frontend needs to
// complete the charge.
func CreatePaymentIntent(amountMinor int64) (string, error) {
	if stripego.Key == "" {
		return "", ErrNotConfigured
	}

	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(amountMinor),
		Currency:           stripego.String(Currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
