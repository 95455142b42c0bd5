package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"

	EnrollmentStatusPending   = "pending"
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusCancelled = "cancelled"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"

	PaymentMethodStripe = "stripe"
	PaymentMethodBank   = "bank"

	UserRoleUser  = "user"
	UserRoleAdmin = "admin"

	LoginMethodLocal = "local"

	DefaultCurrency = "CHF"
)

type Service struct {
	ID              int64  `bson:"_id,omitempty" json:"id"`
	Name            string `bson:"name" json:"name"`
	Slug            string `bson:"slug" json:"slug"`
	Description     string `bson:"description" json:"description"`
	LongDescription string `bson:"longDescription" json:"longDescription"`
	Price           string `bson:"price" json:"price"`
	Currency        string `bson:"currency" json:"currency"`
	Duration        int    `bson:"duration" json:"duration"`
	ImageURL        string `bson:"imageUrl" json:"imageUrl"`
	Category        string `bson:"category" json:"category"`
	IsActive        bool   `bson:"isActive" json:"isActive"`
}

// Course mirrors Service except duration is a free-text label ("8h", "72h"),
// not minutes, and a trainer is attached.
type Course struct {
	ID              int64  `bson:"_id,omitempty" json:"id"`
	Name            string `bson:"name" json:"name"`
	Slug            string `bson:"slug" json:"slug"`
	Description     string `bson:"description" json:"description"`
	LongDescription string `bson:"longDescription" json:"longDescription"`
	Price           string `bson:"price" json:"price"`
	Currency        string `bson:"currency" json:"currency"`
	Duration        string `bson:"duration" json:"duration"`
	ImageURL        string `bson:"imageUrl" json:"imageUrl"`
	TrainerName     string `bson:"trainerName" json:"trainerName"`
	IsActive        bool   `bson:"isActive" json:"isActive"`
}

type Booking struct {
	ID              int64     `bson:"_id,omitempty" json:"id"`
	UserID          int64     `bson:"userId" json:"userId"`
	ServiceID       int64     `bson:"serviceId" json:"serviceId"`
	BookingDate     time.Time `bson:"bookingDate" json:"bookingDate"`
	ClientName      string    `bson:"clientName" json:"clientName"`
	ClientEmail     string    `bson:"clientEmail" json:"clientEmail"`
	ClientPhone     string    `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string    `bson:"status" json:"status"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"`
	StripeSessionID string    `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

type Enrollment struct {
	ID              int64     `bson:"_id,omitempty" json:"id"`
	UserID          int64     `bson:"userId" json:"userId"`
	CourseID        int64     `bson:"courseId" json:"courseId"`
	ClientName      string    `bson:"clientName" json:"clientName"`
	ClientEmail     string    `bson:"clientEmail" json:"clientEmail"`
	ClientPhone     string    `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	Status          string    `bson:"status" json:"status"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"`
	StripeSessionID string    `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	EnrollmentDate  time.Time `bson:"enrollmentDate" json:"enrollmentDate"`
}

type Testimonial struct {
	ID             int64     `bson:"_id,omitempty" json:"id"`
	ClientName     string    `bson:"clientName" json:"clientName"`
	ClientLocation string    `bson:"clientLocation,omitempty" json:"clientLocation,omitempty"`
	Content        string    `bson:"content" json:"content"`
	Rating         int       `bson:"rating" json:"rating"`
	ImageURL       string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

type ContactMessage struct {
	ID        int64     `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string    `bson:"message" json:"message"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// User covers both credential paths: local accounts carry username+password,
// OAuth accounts carry openId. Exactly one of the two resolves a login.
type User struct {
	ID           int64     `bson:"_id,omitempty" json:"id"`
	OpenID       string    `bson:"openId,omitempty" json:"openId,omitempty"`
	Username     string    `bson:"username,omitempty" json:"username,omitempty"`
	Password     string    `bson:"password,omitempty" json:"-"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Role         string    `bson:"role" json:"role"`
	LoginMethod  string    `bson:"loginMethod,omitempty" json:"loginMethod,omitempty"`
	LastSignedIn time.Time `bson:"lastSignedIn,omitempty" json:"lastSignedIn,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
