// Package payments wraps the Stripe checkout and webhook APIs behind a small
// gateway type so handlers never touch the provider SDK directly.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	ErrNotConfigured = errors.New("payment gateway not configured")
	ErrGateway       = errors.New("payment gateway error")
)

// Gateway talks to Stripe. NewGateway returns nil when no secret key is
// configured; callers treat a nil gateway as payments disabled.
type Gateway struct {
	api           *client.API
	webhookSecret string
}

type CheckoutParams struct {
	ItemName          string
	AmountMinor       int64
	Currency          string
	BuyerEmail        string
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
	Metadata          map[string]string
}

type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// Event is the subset of a verified webhook event the reconciler acts on.
type Event struct {
	ID      string
	Type    string
	Session CheckoutSessionInfo
}

type CheckoutSessionInfo struct {
	ID       string
	Metadata map[string]string
}

func NewGateway(secretKey, webhookSecret string) *Gateway {
	if strings.TrimSpace(secretKey) == "" {
		return nil
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api, webhookSecret: webhookSecret}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error) {
	if g == nil {
		return CheckoutSession{}, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(p.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ItemName),
					},
					UnitAmount: stripe.Int64(p.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:          stripe.String(p.SuccessURL),
		CancelURL:           stripe.String(p.CancelURL),
		AllowPromotionCodes: stripe.Bool(true),
	}
	if p.BuyerEmail != "" {
		params.CustomerEmail = stripe.String(p.BuyerEmail)
	}
	if p.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(p.ClientReferenceID)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifyEvent checks the Stripe-Signature header against the raw payload and
// returns the typed event. The API version pinned by the sending account may
// differ from the SDK's; the mismatch is ignored on purpose since only stable
// fields are read.
func (g *Gateway) VerifyEvent(payload []byte, signature string) (Event, error) {
	if g == nil || g.webhookSecret == "" {
		return Event{}, ErrNotConfigured
	}

	stripeEvent, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	evt := Event{
		ID:   stripeEvent.ID,
		Type: string(stripeEvent.Type),
	}
	if stripeEvent.Type == stripe.EventTypeCheckoutSessionCompleted {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(stripeEvent.Data.Raw, &sess); err != nil {
			return Event{}, fmt.Errorf("%w: decode checkout session: %v", ErrGateway, err)
		}
		evt.Session = CheckoutSessionInfo{ID: sess.ID, Metadata: sess.Metadata}
	}
	return evt, nil
}
