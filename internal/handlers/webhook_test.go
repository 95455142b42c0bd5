package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
)

func postWebhook(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "t=1,v1=stub")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWebhookBookingCompleted(t *testing.T) {
	srv, st, gw := newTestServer(t)
	router := testRouter(srv)

	booking, err := st.CreateBooking(context.Background(), models.Booking{
		ServiceID:     1,
		ClientName:    "Ana",
		ClientEmail:   "ana@example.com",
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	gw.event = payments.Event{
		ID:   "evt_1",
		Type: "checkout.session.completed",
		Session: payments.CheckoutSessionInfo{
			ID:       "cs_1",
			Metadata: map[string]string{"type": "booking", "bookingId": "1"},
		},
	}

	rec := postWebhook(t, router)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	decodeBody(t, rec, &resp)
	if !resp["received"] {
		t.Fatalf("expected received ack, got %s", rec.Body.String())
	}

	stored, _ := st.BookingByID(context.Background(), booking.ID)
	if stored.Status != models.BookingStatusConfirmed || stored.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("booking not reconciled: %+v", stored)
	}

	// A re-delivered event lands on the same terminal state.
	rec = postWebhook(t, router)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on redelivery, got %d", rec.Code)
	}
	again, _ := st.BookingByID(context.Background(), booking.ID)
	if again.Status != models.BookingStatusConfirmed || again.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("redelivery changed state: %+v", again)
	}
}

func TestWebhookEnrollmentCompleted(t *testing.T) {
	srv, st, gw := newTestServer(t)
	router := testRouter(srv)

	enrollment, err := st.CreateEnrollment(context.Background(), models.Enrollment{
		CourseID:      1,
		ClientName:    "Ioana",
		ClientEmail:   "ioana@example.com",
		Status:        models.EnrollmentStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	})
	if err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	gw.event = payments.Event{
		ID:   "evt_2",
		Type: "checkout.session.completed",
		Session: payments.CheckoutSessionInfo{
			ID:       "cs_2",
			Metadata: map[string]string{"type": "enrollment", "enrollmentId": "1"},
		},
	}

	rec := postWebhook(t, router)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, _ := st.EnrollmentByID(context.Background(), enrollment.ID)
	if stored.Status != models.EnrollmentStatusEnrolled || stored.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("enrollment not reconciled: %+v", stored)
	}
}

func TestWebhookTestEvent(t *testing.T) {
	srv, _, gw := newTestServer(t)
	router := testRouter(srv)

	gw.event = payments.Event{ID: "evt_test_abc", Type: "checkout.session.completed"}

	rec := postWebhook(t, router)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	decodeBody(t, rec, &resp)
	if !resp["verified"] {
		t.Fatalf("expected verified ack, got %s", rec.Body.String())
	}
}

func TestWebhookInvalidSignature(t *testing.T) {
	srv, st, gw := newTestServer(t)
	router := testRouter(srv)

	if _, err := st.CreateBooking(context.Background(), models.Booking{ServiceID: 1, ClientName: "Ana", ClientEmail: "ana@example.com", Status: models.BookingStatusPending, PaymentStatus: models.PaymentStatusUnpaid}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	gw.verifyErr = payments.ErrGateway

	rec := postWebhook(t, router)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, _ := st.BookingByID(context.Background(), 1)
	if stored.Status != models.BookingStatusPending || stored.PaymentStatus != models.PaymentStatusUnpaid {
		t.Fatalf("rejected event must not change state: %+v", stored)
	}
}

func TestWebhookUnknownRecordStillAcked(t *testing.T) {
	srv, _, gw := newTestServer(t)
	router := testRouter(srv)

	gw.event = payments.Event{
		ID:   "evt_3",
		Type: "checkout.session.completed",
		Session: payments.CheckoutSessionInfo{
			ID:       "cs_3",
			Metadata: map[string]string{"type": "booking", "bookingId": "4242"},
		},
	}

	rec := postWebhook(t, router)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for missing record, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestWebhookIgnoredEventType(t *testing.T) {
	srv, _, gw := newTestServer(t)
	router := testRouter(srv)

	gw.event = payments.Event{ID: "evt_4", Type: "payment_intent.created"}

	rec := postWebhook(t, router)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
