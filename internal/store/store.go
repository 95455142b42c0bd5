// Package store defines the persistence interface and its two backends: a
// Mongo-backed store for deployments and a seeded in-memory store used when
// no MONGO_URI is configured (and by the handler tests).
package store

import (
	"context"
	"errors"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

var ErrNotFound = errors.New("not found")

// ServiceUpdate carries a partial update; nil fields are left untouched.
type ServiceUpdate struct {
	Name            *string `json:"name,omitempty"`
	Slug            *string `json:"slug,omitempty"`
	Description     *string `json:"description,omitempty"`
	LongDescription *string `json:"longDescription,omitempty"`
	Price           *string `json:"price,omitempty"`
	Currency        *string `json:"currency,omitempty"`
	Duration        *int    `json:"duration,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Category        *string `json:"category,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

type CourseUpdate struct {
	Name            *string `json:"name,omitempty"`
	Slug            *string `json:"slug,omitempty"`
	Description     *string `json:"description,omitempty"`
	LongDescription *string `json:"longDescription,omitempty"`
	Price           *string `json:"price,omitempty"`
	Currency        *string `json:"currency,omitempty"`
	Duration        *string `json:"duration,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	TrainerName     *string `json:"trainerName,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

type TestimonialUpdate struct {
	ClientName     *string `json:"clientName,omitempty"`
	ClientLocation *string `json:"clientLocation,omitempty"`
	Content        *string `json:"content,omitempty"`
	Rating         *int    `json:"rating,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

type Stats struct {
	TotalBookings     int64 `json:"totalBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	TotalServices     int64 `json:"totalServices"`
	TotalCourses      int64 `json:"totalCourses"`
	TotalEnrollments  int64 `json:"totalEnrollments"`
	UnreadMessages    int64 `json:"unreadMessages"`
}

type Store interface {
	// Users
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByOpenID(ctx context.Context, openID string) (models.User, error)
	UpsertOAuthUser(ctx context.Context, user models.User) (models.User, error)
	TouchLastSignedIn(ctx context.Context, id int64) error

	// Services
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	ServiceByID(ctx context.Context, id int64) (models.Service, error)
	ServiceBySlug(ctx context.Context, slug string) (models.Service, error)
	CreateService(ctx context.Context, svc models.Service) (models.Service, error)
	UpdateService(ctx context.Context, id int64, upd ServiceUpdate) (models.Service, error)
	DeleteService(ctx context.Context, id int64) error

	// Courses
	ListCourses(ctx context.Context, activeOnly bool) ([]models.Course, error)
	CourseByID(ctx context.Context, id int64) (models.Course, error)
	CourseBySlug(ctx context.Context, slug string) (models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, id int64, upd CourseUpdate) (models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error

	// Bookings
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	BookingByID(ctx context.Context, id int64) (models.Booking, error)
	BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status, paymentStatus string) (models.Booking, error)
	SetBookingPaymentSession(ctx context.Context, id int64, sessionID string) error
	DeleteBooking(ctx context.Context, id int64) error

	// Enrollments
	CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error)
	EnrollmentByID(ctx context.Context, id int64) (models.Enrollment, error)
	EnrollmentsByUser(ctx context.Context, userID int64) ([]models.Enrollment, error)
	ListEnrollments(ctx context.Context) ([]models.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, id int64, status, paymentStatus string) (models.Enrollment, error)
	SetEnrollmentPaymentSession(ctx context.Context, id int64, sessionID string) error
	DeleteEnrollment(ctx context.Context, id int64) error

	// Testimonials
	ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, upd TestimonialUpdate) (models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error

	// Contact messages
	CreateContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id int64) error
	DeleteContactMessage(ctx context.Context, id int64) error

	// Admin
	Stats(ctx context.Context) (Stats, error)
}
