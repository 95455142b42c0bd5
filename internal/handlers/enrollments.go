package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

type CreateEnrollmentRequest struct {
	CourseID      int64  `json:"courseId" validate:"required"`
	ClientName    string `json:"clientName" validate:"required"`
	ClientEmail   string `json:"clientEmail" validate:"required,email"`
	ClientPhone   string `json:"clientPhone" validate:"omitempty,phone"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=stripe bank"`
}

type CreateEnrollmentResponse struct {
	models.Enrollment
	StripeSessionURL string `json:"stripeSessionUrl,omitempty"`
}

// CreateEnrollment records the enrollment and, for the stripe payment method,
// creates the checkout session inline. A gateway failure does not undo the
// enrollment: the response simply carries no redirect URL and payment can be
// arranged later.
func (s *Server) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateEnrollmentRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("enrollments create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("enrollments create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodStripe
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	course, err := s.Store.CourseByID(ctx, req.CourseID)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "course not found", nil)
		return
	}
	if err != nil {
		log.Error("enrollments create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	var userID int64
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		userID = user.ID
	}

	enrollment := models.Enrollment{
		UserID:        userID,
		CourseID:      course.ID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		Status:        models.EnrollmentStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	enrollment, err = s.Store.CreateEnrollment(ctx, enrollment)
	if err != nil {
		log.Error("enrollments create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := CreateEnrollmentResponse{Enrollment: enrollment}
	bankTransfer := paymentMethod == models.PaymentMethodBank

	if !bankTransfer {
		session, err := s.createEnrollmentSession(ctx, enrollment, course, userID)
		if err != nil {
			log.Warn("enrollments create: checkout session unavailable", slog.String("error", err.Error()), slog.Int64("enrollment_id", enrollment.ID))
		} else {
			response.StripeSessionURL = session.URL
			response.StripeSessionID = session.ID
			if err := s.Store.SetEnrollmentPaymentSession(ctx, enrollment.ID, session.ID); err != nil {
				log.Error("enrollments create: persist session id failed", slog.String("error", err.Error()))
			}
		}
	}

	go s.Notifier.EnrollmentCreated(enrollment, course, bankTransfer)

	log.Info("enrollments create: stored", slog.Int64("enrollment_id", enrollment.ID), slog.String("payment_method", paymentMethod))
	transport.WriteJSON(w, http.StatusCreated, response)
}

func (s *Server) createEnrollmentSession(ctx context.Context, enrollment models.Enrollment, course models.Course, userID int64) (payments.CheckoutSession, error) {
	if s.Gateway == nil {
		return payments.CheckoutSession{}, payments.ErrNotConfigured
	}
	amountMinor, err := priceToMinorUnits(course.Price)
	if err != nil {
		return payments.CheckoutSession{}, err
	}
	return s.Gateway.CreateCheckoutSession(ctx, payments.CheckoutParams{
		ItemName:          course.Name,
		AmountMinor:       amountMinor,
		Currency:          serviceCurrency(course.Currency),
		BuyerEmail:        enrollment.ClientEmail,
		ClientReferenceID: strconv.FormatInt(userID, 10),
		SuccessURL:        s.Cfg.AppURL + "/course-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         s.Cfg.AppURL + "/courses?cancelled=1",
		Metadata: map[string]string{
			"type":         "enrollment",
			"enrollmentId": strconv.FormatInt(enrollment.ID, 10),
			"courseId":     strconv.FormatInt(course.ID, 10),
		},
	})
}

func (s *Server) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	enrollment, err := s.Store.EnrollmentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "enrollment not found", nil)
		return
	}
	if err != nil {
		log.Error("enrollments get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, enrollment)
}

func (s *Server) GetMyEnrollments(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.EnrollmentsByUser(ctx, user.ID)
	if err != nil {
		log.Error("enrollments me: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"enrollments": items})
}

func (s *Server) UpdateEnrollmentStatus(w http.ResponseWriter, r *http.Request) {
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

	enrollment, err := s.Store.UpdateEnrollmentStatus(ctx, id, req.Status, req.PaymentStatus)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "enrollment not found", nil)
		return
	}
	if err != nil {
		log.Error("enrollments update status: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("enrollments update status: ok", slog.Int64("enrollment_id", enrollment.ID), slog.String("status", enrollment.Status))
	transport.WriteJSON(w, http.StatusOK, enrollment)
}
