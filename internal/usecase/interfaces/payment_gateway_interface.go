package interfaces

import "context"

type PaymentOutcome string

const (
	PaymentOutcomeApproved PaymentOutcome = "approved"
	PaymentOutcomeDeclined PaymentOutcome = "declined"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The coordinator only computes amounts and drives intents; card data never
// reaches this boundary. Creating an intent moves no money, only a confirmed
// intent does, so an intent leaked by a retried call is harmless.

type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (intentRef string, err error)
	ConfirmPaymentIntent(ctx context.Context, intentRef string) (PaymentOutcome, error)
}
