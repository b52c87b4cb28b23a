package payments

import (
	"context"
	"errors"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/estetify/clinic-admin/internal/models"
)

var ErrNoPrice = errors.New("appointment has no price")

// MercadoPago gera links de pagamento (checkout pro) para atendimentos
// com valor definido. Recurso opcional, habilitado quando o access
// token está configurado.
type MercadoPago struct {
	preferences preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{preferences: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreateAppointmentLink(ctx context.Context, a *models.Appointment) (string, error) {
	if a.Price == nil || *a.Price <= 0 {
		return "", ErrNoPrice
	}

	title := a.Procedure
	if title == "" {
		title = "Atendimento"
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         fmt.Sprintf("appointment-%d", a.ID),
				Title:      title,
				Quantity:   1,
				UnitPrice:  *a.Price,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: fmt.Sprintf("appointment-%d", a.ID),
	}

	resource, err := m.preferences.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resource.InitPoint, nil
}
