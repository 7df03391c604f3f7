package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"os_service_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway issues the approved-budget charge through Mercado Pago.
// The charge request is built from typed fields; the amount is always the OS
// total held by this service, never caller-provided.

type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
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

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
	log.Printf("[payment][gateway] create start reference=%s amount=%s", req.ExternalReference, req.Amount)

	mpReq := payment.Request{
		TransactionAmount: req.Amount.Float64(),
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", req.ExternalReference, err)
		return interfaces.Charge{}, err
	}

	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return interfaces.Charge{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
	}, nil
}
