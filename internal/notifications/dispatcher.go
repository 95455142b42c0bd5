package notifications

import (
	"log/slog"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

// Dispatcher sends the client confirmation and the admin alert for each
// event. Every send is best effort: failures are logged and never propagated,
// and one recipient failing does not stop the other. Handlers call these on a
// goroutine so the HTTP response never waits on SMTP.
type Dispatcher struct {
	mailer     *Mailer
	adminEmail string
	log        *slog.Logger
}

func NewDispatcher(mailer *Mailer, adminEmail string, log *slog.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, adminEmail: adminEmail, log: log}
}

func (d *Dispatcher) enabled() bool {
	return d != nil && d.mailer != nil
}

func (d *Dispatcher) BookingCreated(booking models.Booking, service models.Service) {
	if !d.enabled() {
		return
	}
	html, err := buildBookingConfirmationHTML(booking, service)
	if err != nil {
		d.log.Error("notifications booking: build confirmation failed", "error", err, "booking_id", booking.ID)
	} else if err := d.mailer.SendHTML(booking.ClientEmail, booking.ClientName, "Confirmare Rezervare - Scortanu Beauty Skin", html); err != nil {
		d.log.Error("notifications booking: send confirmation failed", "error", err, "booking_id", booking.ID)
	}

	if d.adminEmail == "" {
		return
	}
	html, err = buildBookingAdminAlertHTML(booking, service)
	if err != nil {
		d.log.Error("notifications booking: build admin alert failed", "error", err, "booking_id", booking.ID)
		return
	}
	if err := d.mailer.SendHTML(d.adminEmail, "", "Rezervare Nouă - Scortanu Beauty Skin", html); err != nil {
		d.log.Error("notifications booking: send admin alert failed", "error", err, "booking_id", booking.ID)
	}
}

func (d *Dispatcher) EnrollmentCreated(enrollment models.Enrollment, course models.Course, bankTransfer bool) {
	if !d.enabled() {
		return
	}
	html, err := buildEnrollmentConfirmationHTML(enrollment, course, bankTransfer)
	if err != nil {
		d.log.Error("notifications enrollment: build confirmation failed", "error", err, "enrollment_id", enrollment.ID)
	} else if err := d.mailer.SendHTML(enrollment.ClientEmail, enrollment.ClientName, "Confirmare Înscriere Curs - Scortanu Beauty Skin", html); err != nil {
		d.log.Error("notifications enrollment: send confirmation failed", "error", err, "enrollment_id", enrollment.ID)
	}

	if d.adminEmail == "" {
		return
	}
	html, err = buildEnrollmentAdminAlertHTML(enrollment, course, bankTransfer)
	if err != nil {
		d.log.Error("notifications enrollment: build admin alert failed", "error", err, "enrollment_id", enrollment.ID)
		return
	}
	if err := d.mailer.SendHTML(d.adminEmail, "", "Înscriere Nouă la Curs - Scortanu Beauty Skin", html); err != nil {
		d.log.Error("notifications enrollment: send admin alert failed", "error", err, "enrollment_id", enrollment.ID)
	}
}

func (d *Dispatcher) ContactSubmitted(msg models.ContactMessage) {
	if !d.enabled() {
		return
	}
	html, err := buildContactConfirmationHTML(msg)
	if err != nil {
		d.log.Error("notifications contact: build confirmation failed", "error", err, "message_id", msg.ID)
	} else if err := d.mailer.SendHTML(msg.Email, msg.Name, "Am primit mesajul dumneavoastră - Scortanu Beauty Skin", html); err != nil {
		d.log.Error("notifications contact: send confirmation failed", "error", err, "message_id", msg.ID)
	}

	if d.adminEmail == "" {
		return
	}
	html, err = buildContactAdminAlertHTML(msg)
	if err != nil {
		d.log.Error("notifications contact: build admin alert failed", "error", err, "message_id", msg.ID)
		return
	}
	if err := d.mailer.SendHTML(d.adminEmail, "", "Mesaj Nou de Contact - Scortanu Beauty Skin", html); err != nil {
		d.log.Error("notifications contact: send admin alert failed", "error", err, "message_id", msg.ID)
	}
}
