package payment

import (
	"context"
	"encoding/json"

	"app/internal/usecase"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// usecase.PaymentGatewayのStripe実装
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	currency      string
}

func NewStripeGateway(apiKey string, webhookSecret string, currency string) *StripeGateway {
	return &StripeGateway{
		api:           client.New(apiKey, nil),
		webhookSecret: webhookSecret,
		currency:      currency,
	}
}

// Checkoutセッションを作ってリダイレクト先URLを返す。
// 注文IDはmetadataに埋めて、webhookで取り出す。
func (g *StripeGateway) CreateSession(ctx context.Context, in usecase.CreateSessionInput) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(li.Name),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:                lineItems,
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String("required"),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("orderId", in.OrderID)

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

// 署名を検証してイベントをusecase向けの形に写す。
// 署名が合わなければエラー（この場合payloadは一切信用しない）。
func (g *StripeGateway) VerifyEvent(payload []byte, sigHeader string) (usecase.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return usecase.PaymentEvent{}, err
	}

	out := usecase.PaymentEvent{Type: string(event.Type)}
	if out.Type != usecase.EventCheckoutCompleted {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return usecase.PaymentEvent{}, err
	}

	out.OrderID = session.Metadata["orderId"]

	if cd := session.CustomerDetails; cd != nil {
		out.Phone = cd.Phone
		if a := cd.Address; a != nil {
			//line1, line2, city, state, postal_code, country の順
			out.AddressParts = []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country}
		}
	}

	return out, nil
}
