package notifications

import (
	"bytes"
	"html/template"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

const enrollmentConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bună {{.Name}},</p>
  <p>Înscrierea dumneavoastră la curs a fost înregistrată. Detalii:</p>
  <ul>
    <li>Curs: {{.CourseName}}</li>
    <li>Trainer: {{.TrainerName}}</li>
    <li>Durată: {{.Duration}}</li>
    <li>Preț: {{.Price}} {{.Currency}}</li>
    <li>Număr înscriere: {{.EnrollmentID}}</li>
  </ul>
  {{if .BankTransfer}}
  <p>Ați ales plata prin transfer bancar. Vă vom trimite detaliile de plată
  pe email. Locul la curs este rezervat după confirmarea plății.</p>
  {{else}}
  <p>Vă vom contacta cu detaliile cursului după confirmarea plății.</p>
  {{end}}
  <p>Cu drag,<br>Scortanu Beauty Skin</p>
</body>
</html>`

const enrollmentAdminAlertTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Înscriere nouă la curs:</p>
  <ul>
    <li>Client: {{.Name}} ({{.Email}})</li>
    <li>Telefon: {{.Phone}}</li>
    <li>Curs: {{.CourseName}}</li>
    <li>Preț: {{.Price}} {{.Currency}}</li>
    <li>Număr înscriere: {{.EnrollmentID}}</li>
    <li>Metodă de plată: {{.PaymentMethod}}</li>
  </ul>
</body>
</html>`

var (
	enrollmentConfirmationTmpl = template.Must(template.New("enrollment_confirmation").Parse(enrollmentConfirmationTemplate))
	enrollmentAdminAlertTmpl   = template.Must(template.New("enrollment_admin_alert").Parse(enrollmentAdminAlertTemplate))
)

type enrollmentEmailData struct {
	Name          string
	Email         string
	Phone         string
	CourseName    string
	TrainerName   string
	Duration      string
	Price         string
	Currency      string
	EnrollmentID  int64
	PaymentMethod string
	BankTransfer  bool
}

func enrollmentData(enrollment models.Enrollment, course models.Course, bankTransfer bool) enrollmentEmailData {
	method := models.PaymentMethodStripe
	if bankTransfer {
		method = models.PaymentMethodBank
	}
	return enrollmentEmailData{
		Name:          enrollment.ClientName,
		Email:         enrollment.ClientEmail,
		Phone:         enrollment.ClientPhone,
		CourseName:    course.Name,
		TrainerName:   course.TrainerName,
		Duration:      course.Duration,
		Price:         course.Price,
		Currency:      course.Currency,
		EnrollmentID:  enrollment.ID,
		PaymentMethod: method,
		BankTransfer:  bankTransfer,
	}
}

func buildEnrollmentConfirmationHTML(enrollment models.Enrollment, course models.Course, bankTransfer bool) (string, error) {
	var buf bytes.Buffer
	if err := enrollmentConfirmationTmpl.Execute(&buf, enrollmentData(enrollment, course, bankTransfer)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildEnrollmentAdminAlertHTML(enrollment models.Enrollment, course models.Course, bankTransfer bool) (string, error) {
	var buf bytes.Buffer
	if err := enrollmentAdminAlertTmpl.Execute(&buf, enrollmentData(enrollment, course, bankTransfer)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
