package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/auth"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/catalog"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/config"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/validation"
)

type stubNotifier struct {
	mu          sync.Mutex
	bookings    int
	enrollments int
	contacts    int
}

func (n *stubNotifier) BookingCreated(models.Booking, models.Service) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings++
}

func (n *stubNotifier) EnrollmentCreated(models.Enrollment, models.Course, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enrollments++
}

func (n *stubNotifier) ContactSubmitted(models.ContactMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contacts++
}

type stubGateway struct {
	session    payments.CheckoutSession
	createErr  error
	event      payments.Event
	verifyErr  error
	lastParams payments.CheckoutParams
	calls      int
}

func (g *stubGateway) CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (payments.CheckoutSession, error) {
	g.calls++
	g.lastParams = p
	if g.createErr != nil {
		return payments.CheckoutSession{}, g.createErr
	}
	return g.session, nil
}

func (g *stubGateway) VerifyEvent(payload []byte, signature string) (payments.Event, error) {
	if g.verifyErr != nil {
		return payments.Event{}, g.verifyErr
	}
	return g.event, nil
}

func newTestServer(t *testing.T) (*Server, *store.MemoryStore, *stubGateway) {
	t.Helper()
	st := store.NewMemory(catalog.Services(), catalog.Courses())
	gw := &stubGateway{session: payments.CheckoutSession{ID: "cs_test_abc", URL: "https://checkout.stripe.test/cs_test_abc"}}
	srv := &Server{
		Cfg: &config.Config{
			AppURL:          "http://localhost:3000",
			CacheTTLSeconds: 60,
			SessionTTLHours: 24,
			Timezone:        time.UTC,
		},
		Store:    st,
		Val:      validation.New(),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: &stubNotifier{},
		Gateway:  gw,
		Sessions: &auth.Manager{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "test"},
	}
	return srv, st, gw
}

// testRouter mounts the same route surface as cmd/api, minus rate limiting.
func testRouter(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Session(s.Sessions, s.Store))

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", s.GetServices)
		api.Get("/services/{id}", s.GetServiceByID)
		api.Get("/services/slug/{slug}", s.GetServiceBySlug)
		api.Get("/courses", s.GetCourses)
		api.Get("/courses/{id}", s.GetCourseByID)
		api.Get("/courses/slug/{slug}", s.GetCourseBySlug)
		api.Get("/testimonials", s.GetTestimonials)
		api.Post("/contact", s.CreateContact)

		api.Post("/bookings", s.CreateBooking)
		api.Get("/bookings/{id}", s.GetBooking)
		api.Post("/enrollments", s.CreateEnrollment)
		api.Get("/enrollments/{id}", s.GetEnrollment)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)
			protected.Get("/bookings/me", s.GetMyBookings)
			protected.Post("/bookings/{id}/payment-session", s.CreateBookingPaymentSession)
			protected.Patch("/bookings/{id}/status", s.UpdateBookingStatus)
			protected.Get("/enrollments/me", s.GetMyEnrollments)
			protected.Patch("/enrollments/{id}/status", s.UpdateEnrollmentStatus)
		})

		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", s.Register)
			ar.Post("/login", s.Login)
			ar.Post("/logout", s.Logout)
			ar.Get("/me", s.Me)
		})

		api.Post("/stripe/webhook", s.StripeWebhook)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Get("/stats", s.AdminStats)
			admin.Get("/services", s.AdminListServices)
			admin.Post("/services", s.AdminCreateService)
			admin.Put("/services/{id}", s.AdminUpdateService)
			admin.Delete("/services/{id}", s.AdminDeleteService)
			admin.Get("/bookings", s.AdminListBookings)
			admin.Get("/messages", s.AdminListMessages)
			admin.Patch("/messages/{id}/read", s.AdminMarkMessageRead)
		})
	})
	return r
}

func createTestUser(t *testing.T, s *Server, username, role string) (models.User, *http.Cookie) {
	t.Helper()
	hash, err := auth.HashPassword("password-123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := s.Store.CreateUser(context.Background(), models.User{
		Username:    username,
		Password:    hash,
		Email:       username + "@example.com",
		Role:        role,
		LoginMethod: models.LoginMethodLocal,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := s.Sessions.NewUserToken(user)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return user, &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
