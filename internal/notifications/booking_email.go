package notifications

import (
	"bytes"
	"html/template"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

const bookingConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bună {{.Name}},</p>
  <p>Rezervarea dumneavoastră a fost înregistrată. Detalii:</p>
  <ul>
    <li>Tratament: {{.ServiceName}}</li>
    <li>Data: {{.Date}}</li>
    <li>Preț: {{.Price}} {{.Currency}}</li>
    <li>Număr rezervare: {{.BookingID}}</li>
    <li>Status: {{.Status}}</li>
  </ul>
  <p>Vă vom contacta pentru confirmarea finală.</p>
  <p>Cu drag,<br>Scortanu Beauty Skin</p>
</body>
</html>`

const bookingAdminAlertTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Rezervare nouă:</p>
  <ul>
    <li>Client: {{.Name}} ({{.Email}})</li>
    <li>Telefon: {{.Phone}}</li>
    <li>Tratament: {{.ServiceName}}</li>
    <li>Data: {{.Date}}</li>
    <li>Număr rezervare: {{.BookingID}}</li>
    <li>Note: {{.Notes}}</li>
  </ul>
</body>
</html>`

var (
	bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(bookingConfirmationTemplate))
	bookingAdminAlertTmpl   = template.Must(template.New("booking_admin_alert").Parse(bookingAdminAlertTemplate))
)

type bookingEmailData struct {
	Name        string
	Email       string
	Phone       string
	ServiceName string
	Date        string
	Price       string
	Currency    string
	BookingID   int64
	Status      string
	Notes       string
}

func bookingData(booking models.Booking, service models.Service) bookingEmailData {
	return bookingEmailData{
		Name:        booking.ClientName,
		Email:       booking.ClientEmail,
		Phone:       booking.ClientPhone,
		ServiceName: service.Name,
		Date:        booking.BookingDate.Format("02.01.2006 15:04"),
		Price:       service.Price,
		Currency:    service.Currency,
		BookingID:   booking.ID,
		Status:      booking.Status,
		Notes:       booking.Notes,
	}
}

func buildBookingConfirmationHTML(booking models.Booking, service models.Service) (string, error) {
	var buf bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&buf, bookingData(booking, service)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildBookingAdminAlertHTML(booking models.Booking, service models.Service) (string, error) {
	var buf bytes.Buffer
	if err := bookingAdminAlertTmpl.Execute(&buf, bookingData(booking, service)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
