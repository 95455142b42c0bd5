package notifications

import (
	"bytes"
	"html/template"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

const contactConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bună {{.Name}},</p>
  <p>Am primit mesajul dumneavoastră și vă vom răspunde cât mai curând.</p>
  <p>Subiect: {{.Subject}}</p>
  <p>Cu drag,<br>Scortanu Beauty Skin</p>
</body>
</html>`

const contactAdminAlertTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Mesaj nou de contact:</p>
  <ul>
    <li>Nume: {{.Name}}</li>
    <li>Email: {{.Email}}</li>
    <li>Subiect: {{.Subject}}</li>
  </ul>
  <p>{{.Message}}</p>
</body>
</html>`

var (
	contactConfirmationTmpl = template.Must(template.New("contact_confirmation").Parse(contactConfirmationTemplate))
	contactAdminAlertTmpl   = template.Must(template.New("contact_admin_alert").Parse(contactAdminAlertTemplate))
)

type contactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func contactData(msg models.ContactMessage) contactEmailData {
	subject := msg.Subject
	if subject == "" {
		subject = "Mesaj general"
	}
	return contactEmailData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: subject,
		Message: msg.Message,
	}
}

func buildContactConfirmationHTML(msg models.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactConfirmationTmpl.Execute(&buf, contactData(msg)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildContactAdminAlertHTML(msg models.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactAdminAlertTmpl.Execute(&buf, contactData(msg)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
