package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/auth"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/cache"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/config"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/validation"
)

// Notifier is the slice of the dispatcher the handlers call. Implemented by
// notifications.Dispatcher and stubbed in tests.
type Notifier interface {
	BookingCreated(booking models.Booking, service models.Service)
	EnrollmentCreated(enrollment models.Enrollment, course models.Course, bankTransfer bool)
	ContactSubmitted(msg models.ContactMessage)
}

// Gateway is the payment surface the handlers call. Implemented by
// payments.Gateway; a nil interface value means payments are disabled.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (payments.CheckoutSession, error)
	VerifyEvent(payload []byte, signature string) (payments.Event, error)
}

type Server struct {
	Cfg      *config.Config
	Store    store.Store
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Notifier Notifier
	Gateway  Gateway
	Sessions *auth.Manager
	OAuth    *auth.OAuthClient
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
