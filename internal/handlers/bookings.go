package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

type CreateBookingRequest struct {
	ServiceID   int64  `json:"serviceId" validate:"required"`
	BookingDate string `json:"bookingDate" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
	ClientPhone string `json:"clientPhone" validate:"omitempty,phone"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending confirmed enrolled completed cancelled"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=unpaid paid"`
}

type PaymentSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CreateBooking records the reservation only. Payment is a separate,
// authenticated follow-up call to CreateBookingPaymentSession.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("bookings create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("bookings create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}
	bookingDate, err := time.Parse(time.RFC3339, req.BookingDate)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid booking date", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	service, err := s.Store.ServiceByID(ctx, req.ServiceID)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "service not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	var userID int64
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		userID = user.ID
	}

	booking := models.Booking{
		UserID:        userID,
		ServiceID:     service.ID,
		BookingDate:   bookingDate.In(s.Cfg.Timezone),
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		Notes:         req.Notes,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	booking, err = s.Store.CreateBooking(ctx, booking)
	if err != nil {
		log.Error("bookings create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	go s.Notifier.BookingCreated(booking, service)

	log.Info("bookings create: stored", slog.Int64("booking_id", booking.ID))
	transport.WriteJSON(w, http.StatusCreated, booking)
}

func (s *Server) CreateBookingPaymentSession(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	booking, err := s.Store.BookingByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings payment session: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if booking.UserID != user.ID && user.Role != models.UserRoleAdmin {
		transport.WriteError(w, http.StatusForbidden, "not your booking", nil)
		return
	}

	service, err := s.Store.ServiceByID(ctx, booking.ServiceID)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "service not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings payment session: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	amountMinor, err := priceToMinorUnits(service.Price)
	if err != nil {
		log.Error("bookings payment session: bad service price", slog.String("price", service.Price))
		transport.WriteError(w, http.StatusInternalServerError, "invalid service price", nil)
		return
	}

	if s.Gateway == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, "payments not configured", nil)
		return
	}
	session, err := s.Gateway.CreateCheckoutSession(ctx, payments.CheckoutParams{
		ItemName:          service.Name,
		AmountMinor:       amountMinor,
		Currency:          serviceCurrency(service.Currency),
		BuyerEmail:        booking.ClientEmail,
		ClientReferenceID: strconv.FormatInt(user.ID, 10),
		SuccessURL:        s.Cfg.AppURL + "/booking-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         s.Cfg.AppURL + "/booking?cancelled=1",
		Metadata: map[string]string{
			"type":      "booking",
			"bookingId": strconv.FormatInt(booking.ID, 10),
			"serviceId": strconv.FormatInt(service.ID, 10),
		},
	})
	if errors.Is(err, payments.ErrNotConfigured) {
		transport.WriteError(w, http.StatusServiceUnavailable, "payments not configured", nil)
		return
	}
	if err != nil {
		log.Error("bookings payment session: gateway error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "payment session failed", nil)
		return
	}

	if err := s.Store.SetBookingPaymentSession(ctx, booking.ID, session.ID); err != nil {
		log.Error("bookings payment session: persist session id failed", slog.String("error", err.Error()))
	}

	log.Info("bookings payment session: created", slog.Int64("booking_id", booking.ID), slog.String("session_id", session.ID))
	transport.WriteJSON(w, http.StatusOK, PaymentSessionResponse{SessionID: session.ID, URL: session.URL})
}

func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := s.Store.BookingByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, booking)
}

func (s *Server) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.BookingsByUser(ctx, user.ID)
	if err != nil {
		log.Error("bookings me: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"bookings": items})
}

func (s *Server) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := s.Store.UpdateBookingStatus(ctx, id, req.Status, req.PaymentStatus)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings update status: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("bookings update status: ok", slog.Int64("booking_id", booking.ID), slog.String("status", booking.Status))
	transport.WriteJSON(w, http.StatusOK, booking)
}

func priceToMinorUnits(price string) (int64, error) {
	value, err := strconv.ParseFloat(price, 64)
	if err != nil || value < 0 {
		return 0, errors.New("invalid price")
	}
	return int64(math.Round(value * 100)), nil
}

func serviceCurrency(currency string) string {
	if currency == "" {
		return models.DefaultCurrency
	}
	return currency
}
