package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/catalog"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

func newSeededStore() *MemoryStore {
	return NewMemory(catalog.Services(), catalog.Courses())
}

func TestMemorySeedsCatalog(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	services, err := s.ListServices(ctx, true)
	if err != nil {
		t.Fatalf("ListServices error: %v", err)
	}
	if len(services) != 18 {
		t.Fatalf("expected 18 services, got %d", len(services))
	}
	courses, err := s.ListCourses(ctx, true)
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}
	if len(courses) != 9 {
		t.Fatalf("expected 9 courses, got %d", len(courses))
	}

	svc, err := s.ServiceBySlug(ctx, "microblading")
	if err != nil {
		t.Fatalf("ServiceBySlug error: %v", err)
	}
	if svc.Price != "450" || svc.Currency != models.DefaultCurrency {
		t.Fatalf("unexpected seeded service: %+v", svc)
	}
	if svc.ID == 0 {
		t.Fatalf("seeded service has no id")
	}
}

func TestMemoryInactiveFiltered(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	svc, err := s.ServiceBySlug(ctx, "microblading")
	if err != nil {
		t.Fatalf("ServiceBySlug error: %v", err)
	}
	inactive := false
	if _, err := s.UpdateService(ctx, svc.ID, ServiceUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("UpdateService error: %v", err)
	}

	active, _ := s.ListServices(ctx, true)
	all, _ := s.ListServices(ctx, false)
	if len(active) != 17 || len(all) != 18 {
		t.Fatalf("expected 17 active / 18 total, got %d / %d", len(active), len(all))
	}
}

func TestMemoryBookingLifecycle(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	first, err := s.CreateBooking(ctx, models.Booking{
		UserID:        7,
		ServiceID:     1,
		ClientName:    "Ana",
		ClientEmail:   "ana@example.com",
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	second, err := s.CreateBooking(ctx, models.Booking{
		UserID:        7,
		ServiceID:     2,
		ClientName:    "Ana",
		ClientEmail:   "ana@example.com",
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if first.ID == 0 || second.ID == first.ID {
		t.Fatalf("expected distinct nonzero ids, got %d and %d", first.ID, second.ID)
	}

	mine, err := s.BookingsByUser(ctx, 7)
	if err != nil {
		t.Fatalf("BookingsByUser error: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != second.ID {
		t.Fatalf("expected newest booking first, got %+v", mine)
	}

	updated, err := s.UpdateBookingStatus(ctx, first.ID, models.BookingStatusConfirmed, models.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("UpdateBookingStatus error: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed || updated.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("unexpected booking after update: %+v", updated)
	}

	// Empty paymentStatus leaves the existing value alone.
	updated, err = s.UpdateBookingStatus(ctx, first.ID, models.BookingStatusCompleted, "")
	if err != nil {
		t.Fatalf("UpdateBookingStatus error: %v", err)
	}
	if updated.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("payment status not preserved: %+v", updated)
	}

	if err := s.SetBookingPaymentSession(ctx, first.ID, "cs_test_123"); err != nil {
		t.Fatalf("SetBookingPaymentSession error: %v", err)
	}
	got, _ := s.BookingByID(ctx, first.ID)
	if got.StripeSessionID != "cs_test_123" {
		t.Fatalf("session id not stored: %+v", got)
	}
}

func TestMemoryNotFound(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	if _, err := s.BookingByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.UserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteService(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryOAuthUpsert(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	created, err := s.UpsertOAuthUser(ctx, models.User{
		OpenID:      "open-1",
		Name:        "Maria",
		Email:       "maria@example.com",
		Role:        models.UserRoleUser,
		LoginMethod: "google",
	})
	if err != nil {
		t.Fatalf("UpsertOAuthUser error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	updated, err := s.UpsertOAuthUser(ctx, models.User{
		OpenID:      "open-1",
		Name:        "Maria S",
		Email:       "maria@example.com",
		LoginMethod: "google",
	})
	if err != nil {
		t.Fatalf("UpsertOAuthUser error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert created a second user: %d vs %d", updated.ID, created.ID)
	}
	if updated.Name != "Maria S" {
		t.Fatalf("name not updated: %+v", updated)
	}
}

func TestMemoryStats(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	if _, err := s.CreateBooking(ctx, models.Booking{Status: models.BookingStatusConfirmed}); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if _, err := s.CreateBooking(ctx, models.Booking{Status: models.BookingStatusPending}); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	msg, err := s.CreateContactMessage(ctx, models.ContactMessage{Name: "n", Email: "e@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("CreateContactMessage error: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.TotalBookings != 2 || stats.ConfirmedBookings != 1 {
		t.Fatalf("unexpected booking stats: %+v", stats)
	}
	if stats.TotalServices != 18 || stats.TotalCourses != 9 {
		t.Fatalf("unexpected catalog stats: %+v", stats)
	}
	if stats.UnreadMessages != 1 {
		t.Fatalf("unexpected unread count: %+v", stats)
	}

	if err := s.MarkContactMessageRead(ctx, msg.ID); err != nil {
		t.Fatalf("MarkContactMessageRead error: %v", err)
	}
	stats, _ = s.Stats(ctx)
	if stats.UnreadMessages != 0 {
		t.Fatalf("expected 0 unread after read, got %d", stats.UnreadMessages)
	}
}
