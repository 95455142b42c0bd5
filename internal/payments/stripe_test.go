package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testWebhookSecret = "whsec_test_secret"

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestNewGatewayUnconfigured(t *testing.T) {
	if g := NewGateway("", "whsec_x"); g != nil {
		t.Fatalf("expected nil gateway without secret key")
	}
	if g := NewGateway("   ", ""); g != nil {
		t.Fatalf("expected nil gateway for blank secret key")
	}
}

func TestVerifyEventValidSignature(t *testing.T) {
	g := NewGateway("sk_test_123", testWebhookSecret)
	payload := []byte(`{
		"id": "evt_123",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_456",
				"metadata": {"type": "booking", "bookingId": "7", "serviceId": "1"}
			}
		}
	}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	event, err := g.VerifyEvent(payload, sig)
	if err != nil {
		t.Fatalf("VerifyEvent error: %v", err)
	}
	if event.ID != "evt_123" || event.Type != "checkout.session.completed" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Session.ID != "cs_test_456" {
		t.Fatalf("unexpected session id: %+v", event.Session)
	}
	if event.Session.Metadata["type"] != "booking" || event.Session.Metadata["bookingId"] != "7" {
		t.Fatalf("unexpected metadata: %+v", event.Session.Metadata)
	}
}

func TestVerifyEventBadSignature(t *testing.T) {
	g := NewGateway("sk_test_123", testWebhookSecret)
	payload := []byte(`{"id":"evt_123","type":"checkout.session.completed","data":{"object":{}}}`)
	sig := signPayload(payload, "whsec_other_secret", time.Now())

	if _, err := g.VerifyEvent(payload, sig); !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestVerifyEventTamperedPayload(t *testing.T) {
	g := NewGateway("sk_test_123", testWebhookSecret)
	payload := []byte(`{"id":"evt_123","type":"checkout.session.completed","data":{"object":{}}}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())
	tampered := []byte(`{"id":"evt_999","type":"checkout.session.completed","data":{"object":{}}}`)

	if _, err := g.VerifyEvent(tampered, sig); !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestVerifyEventUnconfiguredSecret(t *testing.T) {
	g := NewGateway("sk_test_123", "")
	if _, err := g.VerifyEvent([]byte(`{}`), "t=1,v1=x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCreateCheckoutSessionNilGateway(t *testing.T) {
	var g *Gateway
	if _, err := g.CreateCheckoutSession(nil, CheckoutParams{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
