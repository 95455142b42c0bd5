package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

const webhookMaxBody = 64 * 1024

// StripeWebhook reconciles checkout results. Signature failures are rejected
// with no side effects; everything after a valid signature is acknowledged,
// even when applying the event fails, so Stripe does not retry forever.
// Re-delivery of an applied event just rewrites the same terminal state.
func (s *Server) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Gateway == nil {
		transport.WriteError(w, http.StatusBadRequest, "webhook not configured", nil)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, webhookMaxBody))
	if err != nil {
		log.Warn("webhook: read body failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid body", nil)
		return
	}

	event, err := s.Gateway.VerifyEvent(payload, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, payments.ErrNotConfigured) {
		transport.WriteError(w, http.StatusBadRequest, "webhook not configured", nil)
		return
	}
	if err != nil {
		log.Warn("webhook: signature verification failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid signature", nil)
		return
	}

	// Stripe CLI / dashboard test pings are acknowledged without touching
	// any records.
	if strings.HasPrefix(event.ID, "evt_test_") {
		log.Info("webhook: test event", slog.String("event_id", event.ID))
		transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"verified": true})
		return
	}

	if event.Type == "checkout.session.completed" {
		s.applyCheckoutCompleted(r.Context(), log, event)
	} else {
		log.Info("webhook: ignored event", slog.String("event_id", event.ID), slog.String("type", event.Type))
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"received": true})
}

func (s *Server) applyCheckoutCompleted(ctx context.Context, log *slog.Logger, event payments.Event) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	meta := event.Session.Metadata
	switch meta["type"] {
	case "booking":
		id, err := strconv.ParseInt(meta["bookingId"], 10, 64)
		if err != nil {
			log.Warn("webhook: bad bookingId metadata", slog.String("event_id", event.ID))
			return
		}
		_, err = s.Store.UpdateBookingStatus(ctx, id, models.BookingStatusConfirmed, models.PaymentStatusPaid)
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("webhook: booking not found", slog.Int64("booking_id", id), slog.String("event_id", event.ID))
			return
		}
		if err != nil {
			log.Error("webhook: booking update failed", slog.String("error", err.Error()), slog.Int64("booking_id", id))
			return
		}
		log.Info("webhook: booking paid", slog.Int64("booking_id", id), slog.String("session_id", event.Session.ID))
	case "enrollment":
		id, err := strconv.ParseInt(meta["enrollmentId"], 10, 64)
		if err != nil {
			log.Warn("webhook: bad enrollmentId metadata", slog.String("event_id", event.ID))
			return
		}
		_, err = s.Store.UpdateEnrollmentStatus(ctx, id, models.EnrollmentStatusEnrolled, models.PaymentStatusPaid)
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("webhook: enrollment not found", slog.Int64("enrollment_id", id), slog.String("event_id", event.ID))
			return
		}
		if err != nil {
			log.Error("webhook: enrollment update failed", slog.String("error", err.Error()), slog.Int64("enrollment_id", id))
			return
		}
		log.Info("webhook: enrollment paid", slog.Int64("enrollment_id", id), slog.String("session_id", event.Session.ID))
	default:
		log.Warn("webhook: unknown metadata type", slog.String("event_id", event.ID), slog.String("type", meta["type"]))
	}
}
