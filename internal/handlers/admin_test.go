package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)
	_, userCookie := createTestUser(t, srv, "ana", models.UserRoleUser)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/stats", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/admin/stats", nil, userCookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminStats(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)
	_, adminCookie := createTestUser(t, srv, "admin", models.UserRoleAdmin)

	if _, err := st.CreateBooking(context.Background(), models.Booking{ServiceID: 1, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid, ClientName: "A", ClientEmail: "a@example.com"}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/admin/stats", nil, adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var stats store.Stats
	decodeBody(t, rec, &stats)
	if stats.TotalBookings != 1 || stats.ConfirmedBookings != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.TotalServices != 18 || stats.TotalCourses != 9 {
		t.Fatalf("unexpected catalog counts: %+v", stats)
	}
}

func TestAdminCreateServiceDefaults(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)
	_, adminCookie := createTestUser(t, srv, "admin", models.UserRoleAdmin)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/services", map[string]interface{}{
		"name":  "Lash Lifting",
		"price": "120",
	}, adminCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var svc models.Service
	decodeBody(t, rec, &svc)
	if svc.Slug != "lash-lifting" {
		t.Fatalf("expected slug derived from name, got %q", svc.Slug)
	}
	if svc.Currency != models.DefaultCurrency || !svc.IsActive {
		t.Fatalf("defaults not applied: %+v", svc)
	}

	stored, err := st.ServiceBySlug(context.Background(), "lash-lifting")
	if err != nil || stored.ID != svc.ID {
		t.Fatalf("service not persisted: %v %+v", err, stored)
	}
}

func TestAdminUpdateServicePartial(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)
	_, adminCookie := createTestUser(t, srv, "admin", models.UserRoleAdmin)

	rec := doJSON(t, router, http.MethodPut, "/api/admin/services/1", map[string]interface{}{
		"price": "475",
	}, adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var svc models.Service
	decodeBody(t, rec, &svc)
	if svc.Price != "475" {
		t.Fatalf("price not updated: %+v", svc)
	}
	if svc.Name != "Microblading" {
		t.Fatalf("partial update clobbered other fields: %+v", svc)
	}

	stored, _ := st.ServiceByID(context.Background(), 1)
	if stored.Price != "475" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestAdminMarkMessageRead(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)
	_, adminCookie := createTestUser(t, srv, "admin", models.UserRoleAdmin)

	msg, err := st.CreateContactMessage(context.Background(), models.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "hello"})
	if err != nil {
		t.Fatalf("seed message: %v", err)
	}

	rec := doJSON(t, router, http.MethodPatch, "/api/admin/messages/1/read", nil, adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	msgs, _ := st.ListContactMessages(context.Background())
	if len(msgs) != 1 || !msgs[0].IsRead || msgs[0].ID != msg.ID {
		t.Fatalf("message not marked read: %+v", msgs)
	}
}

func TestAdminListBookingsPagination(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)
	_, adminCookie := createTestUser(t, srv, "admin", models.UserRoleAdmin)

	for i := 0; i < 3; i++ {
		if _, err := st.CreateBooking(context.Background(), models.Booking{ServiceID: 1, ClientName: "A", ClientEmail: "a@example.com", Status: models.BookingStatusPending, PaymentStatus: models.PaymentStatusUnpaid}); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/api/admin/bookings?limit=2&offset=1", nil, adminCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Bookings) != 2 {
		t.Fatalf("expected 2 bookings on page, got %d", len(resp.Bookings))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/admin/bookings?limit=0", nil, adminCookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}

func TestAdminDeleteServiceMissing(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)
	_, adminCookie := createTestUser(t, srv, "admin", models.UserRoleAdmin)

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/services/9999", nil, adminCookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
