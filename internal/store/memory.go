package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

// MemoryStore is the zero-configuration backend. It seeds the catalog at
// construction and keeps everything in process memory, so restarts lose
// bookings and users. The handler tests run against it.
type MemoryStore struct {
	mu sync.RWMutex

	users           []models.User
	services        []models.Service
	courses         []models.Course
	bookings        []models.Booking
	enrollments     []models.Enrollment
	testimonials    []models.Testimonial
	contactMessages []models.ContactMessage
	nextIDs         map[string]int64
}

func NewMemory(services []models.Service, courses []models.Course) *MemoryStore {
	s := &MemoryStore{nextIDs: make(map[string]int64)}
	for _, svc := range services {
		svc.ID = s.nextID("services")
		if svc.Currency == "" {
			svc.Currency = models.DefaultCurrency
		}
		svc.IsActive = true
		s.services = append(s.services, svc)
	}
	for _, course := range courses {
		course.ID = s.nextID("courses")
		if course.Currency == "" {
			course.Currency = models.DefaultCurrency
		}
		course.IsActive = true
		s.courses = append(s.courses, course)
	}
	return s
}

func (s *MemoryStore) nextID(sequence string) int64 {
	s.nextIDs[sequence]++
	return s.nextIDs[sequence]
}

// Users

func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID("users")
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryStore) userBy(match func(models.User) bool) (models.User, error) {
	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) UserByID(ctx context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userBy(func(u models.User) bool { return u.ID == id })
}

func (s *MemoryStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userBy(func(u models.User) bool { return u.Username != "" && u.Username == username })
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userBy(func(u models.User) bool { return u.Email != "" && u.Email == email })
}

func (s *MemoryStore) UserByOpenID(ctx context.Context, openID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userBy(func(u models.User) bool { return u.OpenID != "" && u.OpenID == openID })
}

func (s *MemoryStore) UpsertOAuthUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.OpenID != "" && u.OpenID == user.OpenID {
			s.users[i].Name = user.Name
			s.users[i].Email = user.Email
			s.users[i].LoginMethod = user.LoginMethod
			s.users[i].LastSignedIn = time.Now()
			return s.users[i], nil
		}
	}
	user.ID = s.nextID("users")
	user.CreatedAt = time.Now()
	user.LastSignedIn = time.Now()
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryStore) TouchLastSignedIn(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users[i].LastSignedIn = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

// Services

func (s *MemoryStore) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if activeOnly && !svc.IsActive {
			continue
		}
		items = append(items, svc)
	}
	return items, nil
}

func (s *MemoryStore) ServiceByID(ctx context.Context, id int64) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, ErrNotFound
}

func (s *MemoryStore) ServiceBySlug(ctx context.Context, slug string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.Slug == slug {
			return svc, nil
		}
	}
	return models.Service{}, ErrNotFound
}

func (s *MemoryStore) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = s.nextID("services")
	s.services = append(s.services, svc)
	return svc, nil
}

func (s *MemoryStore) UpdateService(ctx context.Context, id int64, upd ServiceUpdate) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID != id {
			continue
		}
		applyString(&svc.Name, upd.Name)
		applyString(&svc.Slug, upd.Slug)
		applyString(&svc.Description, upd.Description)
		applyString(&svc.LongDescription, upd.LongDescription)
		applyString(&svc.Price, upd.Price)
		applyString(&svc.Currency, upd.Currency)
		if upd.Duration != nil {
			svc.Duration = *upd.Duration
		}
		applyString(&svc.ImageURL, upd.ImageURL)
		applyString(&svc.Category, upd.Category)
		if upd.IsActive != nil {
			svc.IsActive = *upd.IsActive
		}
		s.services[i] = svc
		return svc, nil
	}
	return models.Service{}, ErrNotFound
}

func (s *MemoryStore) DeleteService(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Courses

func (s *MemoryStore) ListCourses(ctx context.Context, activeOnly bool) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		if activeOnly && !course.IsActive {
			continue
		}
		items = append(items, course)
	}
	return items, nil
}

func (s *MemoryStore) CourseByID(ctx context.Context, id int64) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, course := range s.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return models.Course{}, ErrNotFound
}

func (s *MemoryStore) CourseBySlug(ctx context.Context, slug string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, course := range s.courses {
		if course.Slug == slug {
			return course, nil
		}
	}
	return models.Course{}, ErrNotFound
}

func (s *MemoryStore) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course.ID = s.nextID("courses")
	s.courses = append(s.courses, course)
	return course, nil
}

func (s *MemoryStore) UpdateCourse(ctx context.Context, id int64, upd CourseUpdate) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, course := range s.courses {
		if course.ID != id {
			continue
		}
		applyString(&course.Name, upd.Name)
		applyString(&course.Slug, upd.Slug)
		applyString(&course.Description, upd.Description)
		applyString(&course.LongDescription, upd.LongDescription)
		applyString(&course.Price, upd.Price)
		applyString(&course.Currency, upd.Currency)
		applyString(&course.Duration, upd.Duration)
		applyString(&course.ImageURL, upd.ImageURL)
		applyString(&course.TrainerName, upd.TrainerName)
		if upd.IsActive != nil {
			course.IsActive = *upd.IsActive
		}
		s.courses[i] = course
		return course, nil
	}
	return models.Course{}, ErrNotFound
}

func (s *MemoryStore) DeleteCourse(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, course := range s.courses {
		if course.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Bookings

func (s *MemoryStore) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = s.nextID("bookings")
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

func (s *MemoryStore) BookingByID(ctx context.Context, id int64) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *MemoryStore) BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			items = append(items, b)
		}
	}
	sortBookings(items)
	return items, nil
}

func (s *MemoryStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Booking, len(s.bookings))
	copy(items, s.bookings)
	sortBookings(items)
	return items, nil
}

func (s *MemoryStore) UpdateBookingStatus(ctx context.Context, id int64, status, paymentStatus string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings[i].Status = status
			if paymentStatus != "" {
				s.bookings[i].PaymentStatus = paymentStatus
			}
			return s.bookings[i], nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *MemoryStore) SetBookingPaymentSession(ctx context.Context, id int64, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings[i].StripeSessionID = sessionID
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Enrollments

func (s *MemoryStore) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollment.ID = s.nextID("enrollments")
	if enrollment.EnrollmentDate.IsZero() {
		enrollment.EnrollmentDate = time.Now()
	}
	s.enrollments = append(s.enrollments, enrollment)
	return enrollment, nil
}

func (s *MemoryStore) EnrollmentByID(ctx context.Context, id int64) (models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Enrollment{}, ErrNotFound
}

func (s *MemoryStore) EnrollmentsByUser(ctx context.Context, userID int64) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Enrollment, 0)
	for _, e := range s.enrollments {
		if e.UserID == userID {
			items = append(items, e)
		}
	}
	sortEnrollments(items)
	return items, nil
}

func (s *MemoryStore) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Enrollment, len(s.enrollments))
	copy(items, s.enrollments)
	sortEnrollments(items)
	return items, nil
}

func (s *MemoryStore) UpdateEnrollmentStatus(ctx context.Context, id int64, status, paymentStatus string) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.enrollments {
		if e.ID == id {
			s.enrollments[i].Status = status
			if paymentStatus != "" {
				s.enrollments[i].PaymentStatus = paymentStatus
			}
			return s.enrollments[i], nil
		}
	}
	return models.Enrollment{}, ErrNotFound
}

func (s *MemoryStore) SetEnrollmentPaymentSession(ctx context.Context, id int64, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.enrollments {
		if e.ID == id {
			s.enrollments[i].StripeSessionID = sessionID
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteEnrollment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.enrollments {
		if e.ID == id {
			s.enrollments = append(s.enrollments[:i], s.enrollments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Testimonials

func (s *MemoryStore) ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		if activeOnly && !t.IsActive {
			continue
		}
		items = append(items, t)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	testimonial.ID = s.nextID("testimonials")
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}
	s.testimonials = append(s.testimonials, testimonial)
	return testimonial, nil
}

func (s *MemoryStore) UpdateTestimonial(ctx context.Context, id int64, upd TestimonialUpdate) (models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.testimonials {
		if t.ID != id {
			continue
		}
		applyString(&t.ClientName, upd.ClientName)
		applyString(&t.ClientLocation, upd.ClientLocation)
		applyString(&t.Content, upd.Content)
		if upd.Rating != nil {
			t.Rating = *upd.Rating
		}
		applyString(&t.ImageURL, upd.ImageURL)
		if upd.IsActive != nil {
			t.IsActive = *upd.IsActive
		}
		s.testimonials[i] = t
		return t, nil
	}
	return models.Testimonial{}, ErrNotFound
}

func (s *MemoryStore) DeleteTestimonial(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.testimonials {
		if t.ID == id {
			s.testimonials = append(s.testimonials[:i], s.testimonials[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Contact messages

func (s *MemoryStore) CreateContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = s.nextID("contact_messages")
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.contactMessages = append(s.contactMessages, msg)
	return msg, nil
}

func (s *MemoryStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.ContactMessage, len(s.contactMessages))
	copy(items, s.contactMessages)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) MarkContactMessageRead(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.contactMessages {
		if m.ID == id {
			s.contactMessages[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteContactMessage(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.contactMessages {
		if m.ID == id {
			s.contactMessages = append(s.contactMessages[:i], s.contactMessages[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Stats

func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := Stats{
		TotalBookings:    int64(len(s.bookings)),
		TotalServices:    int64(len(s.services)),
		TotalCourses:     int64(len(s.courses)),
		TotalEnrollments: int64(len(s.enrollments)),
	}
	for _, b := range s.bookings {
		if b.Status == models.BookingStatusConfirmed {
			stats.ConfirmedBookings++
		}
	}
	for _, m := range s.contactMessages {
		if !m.IsRead {
			stats.UnreadMessages++
		}
	}
	return stats, nil
}

func sortBookings(items []models.Booking) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func sortEnrollments(items []models.Enrollment) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EnrollmentDate.After(items[j].EnrollmentDate)
	})
}

func applyString(dst *string, val *string) {
	if val != nil {
		*dst = *val
	}
}
