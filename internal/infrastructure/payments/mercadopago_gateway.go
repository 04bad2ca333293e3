package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"mechbid/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the escrow payment port on Mercado Pago.
//
// An "intent" here is a Mercado Pago payment created for the deposit amount;
// confirming the intent reads back the provider-side status. In mock mode
// (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) intents are fabricated locally
// and always confirm approved, which keeps local stacks free of provider
// credentials.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock intent created intent=%s amount_cents=%d currency=%s", id, amountCents, currency)
		return id, nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	md := make(map[string]any, len(metadata))
	for k, v := range metadata {
		md[k] = v
	}

	req := payment.Request{
		TransactionAmount: float64(amountCents) / 100,
		Description:       "Escrow deposit " + metadata["job_id"],
		ExternalReference: metadata["job_id"],
		Metadata:          md,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] intent create failed amount_cents=%d err=%v", amountCents, err)
		return "", err
	}
	log.Printf("[payment][gateway] intent created intent=%d provider_status=%s", resp.ID, resp.Status)
	return strconv.Itoa(resp.ID), nil
}

func (g *MercadoPagoGateway) ConfirmPaymentIntent(ctx context.Context, intentRef string) (interfaces.PaymentOutcome, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock intent confirmed intent=%s", intentRef)
		return interfaces.PaymentOutcomeApproved, nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(intentRef)
	if err != nil {
		return "", errors.New("invalid payment intent reference")
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] intent lookup failed intent=%s err=%v", intentRef, err)
		return "", err
	}
	log.Printf("[payment][gateway] intent confirmed intent=%s provider_status=%s", intentRef, resp.Status)

	if resp.Status == "approved" {
		return interfaces.PaymentOutcomeApproved, nil
	}
	return interfaces.PaymentOutcomeDeclined, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
