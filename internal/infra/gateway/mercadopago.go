package gateway

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/usecase/payment"
)

// MercadoPagoGateway requests a checkout preference for a booking and hands
// back its id and init point as the client-side authorization handle.
type MercadoPagoGateway struct {
	preferences preference.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateIntent(
	ctx context.Context,
	bookingID string,
	treatment string,
	amountMinorUnits int64,
) (*domain.PaymentIntent, error) {

	req := preference.Request{
		ExternalReference: bookingID,
		Items: []preference.ItemRequest{
			{
				Title:     treatment,
				Quantity:  1,
				UnitPrice: float64(amountMinorUnits) / 100,
			},
		},
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentIntent{
		ID:           resp.ID,
		ClientSecret: resp.InitPoint,
		Amount:       amountMinorUnits,
	}, nil
}

// Compile-time check
var _ payment.Gateway = (*MercadoPagoGateway)(nil)
