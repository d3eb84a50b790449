// Package email composes and sends the outbound notifications for form
// submissions through the Resend API: one operator notification to the
// business inbox and one confirmation back to the submitter.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go-izcloud-backend/config"
	"go-izcloud-backend/internal/domain"
	"go-izcloud-backend/pkg/sanitize"
)

// Service implements domain.Mailer on top of the Resend client.
type Service struct {
	client         *ResendClient
	emailFrom      string
	gdprEmailFrom  string
	contactEmailTo string
}

// NewService creates the mailer from the application configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		client:         NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL),
		emailFrom:      cfg.EmailFrom,
		gdprEmailFrom:  cfg.GDPREmailFrom,
		contactEmailTo: cfg.ContactEmailTo,
	}
}

// IsConfigured checks if the underlying Resend client has credentials.
func (s *Service) IsConfigured() bool {
	return s.client.IsConfigured()
}

// contactEmailData carries pre-escaped fields into the templates. Values
// are typed template.HTML because the message field legitimately contains
// <br> tags inserted after escaping.
type contactEmailData struct {
	Name    template.HTML
	Email   template.HTML
	Phone   template.HTML
	Company template.HTML
	Message template.HTML
}

type gdprEmailData struct {
	Name        template.HTML
	Email       template.HTML
	RequestType template.HTML
	Message     template.HTML
}

const contactNotificationHTML = `
<h2>Nouvelle demande d'audit gratuit</h2>
<p><strong>Nom :</strong> {{.Name}}</p>
<p><strong>Email :</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Téléphone :</strong> {{.Phone}}</p>{{end}}
{{if .Company}}<p><strong>Entreprise :</strong> {{.Company}}</p>{{end}}
<p><strong>Message :</strong></p>
<p>{{.Message}}</p>
<hr>
<p><em>Ce message a été envoyé depuis le formulaire de contact du site IzCloud.</em></p>
`

const contactConfirmationHTML = `
<h2>Merci pour votre demande, {{.Name}} !</h2>
<p>Nous avons bien reçu votre demande d'audit gratuit.</p>
<p>Notre équipe vous recontactera dans les plus brefs délais pour planifier un rendez-vous.</p>
<br>
<p>Cordialement,</p>
<p><strong>L'équipe IzCloud</strong></p>
<p>Experts en cybersécurité et infogérance</p>
`

const gdprNotificationHTML = `
<h2>Nouvelle demande RGPD</h2>
<p><strong>Type de demande :</strong> {{.RequestType}}</p>
<p><strong>Nom :</strong> {{.Name}}</p>
<p><strong>Email :</strong> {{.Email}}</p>
<p><strong>Détails :</strong></p>
<p>{{.Message}}</p>
<hr>
<p><em>⚠️ Rappel : Vous avez 30 jours maximum pour répondre à cette demande conformément au RGPD.</em></p>
`

const gdprConfirmationHTML = `
<h2>Votre demande a bien été reçue, {{.Name}}</h2>
<p>Nous avons bien reçu votre demande concernant vos données personnelles :</p>
<p><strong>Type de demande :</strong> {{.RequestType}}</p>
<br>
<p>Conformément au Règlement Général sur la Protection des Données (RGPD), nous traiterons votre demande dans un délai maximum de <strong>30 jours</strong>.</p>
<p>Si nous avons besoin d'informations complémentaires pour vérifier votre identité ou préciser votre demande, nous vous contacterons.</p>
<br>
<p>Cordialement,</p>
<p><strong>L'équipe IzCloud</strong></p>
`

var (
	contactNotificationTmpl = template.Must(template.New("contactNotification").Parse(contactNotificationHTML))
	contactConfirmationTmpl = template.Must(template.New("contactConfirmation").Parse(contactConfirmationHTML))
	gdprNotificationTmpl    = template.Must(template.New("gdprNotification").Parse(gdprNotificationHTML))
	gdprConfirmationTmpl    = template.Must(template.New("gdprConfirmation").Parse(gdprConfirmationHTML))
)

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template %q: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}

func newContactEmailData(req *domain.ContactRequest) contactEmailData {
	return contactEmailData{
		Name:    template.HTML(sanitize.EscapeHTML(req.Name)),
		Email:   template.HTML(sanitize.EscapeHTML(req.Email)),
		Phone:   template.HTML(sanitize.EscapeHTML(req.Phone)),
		Company: template.HTML(sanitize.EscapeHTML(req.Company)),
		Message: template.HTML(sanitize.NL2BR(req.Message)),
	}
}

func newGDPREmailData(req *domain.GDPRRequest) gdprEmailData {
	return gdprEmailData{
		Name:        template.HTML(sanitize.EscapeHTML(req.Name)),
		Email:       template.HTML(sanitize.EscapeHTML(req.Email)),
		RequestType: template.HTML(sanitize.EscapeHTML(req.DisplayLabel())),
		Message:     template.HTML(sanitize.NL2BR(req.Message)),
	}
}

// SendContactNotification emails the business inbox about a new contact
// form submission. This message is load-bearing: a failure here fails the
// whole request.
func (s *Service) SendContactNotification(ctx context.Context, req *domain.ContactRequest) error {
	data := newContactEmailData(req)

	body, err := renderTemplate(contactNotificationTmpl, data)
	if err != nil {
		return err
	}

	company := data.Company
	if company == "" {
		company = data.Name
	}
	subject := fmt.Sprintf("Nouvelle demande d'audit - %s", company)

	return s.client.Send(ctx, s.emailFrom, []string{s.contactEmailTo}, subject, body)
}

// SendContactConfirmation sends the acknowledgment back to the submitter.
// The raw validated address is used for routing; only the displayed copies
// inside the body are escaped.
func (s *Service) SendContactConfirmation(ctx context.Context, req *domain.ContactRequest) error {
	body, err := renderTemplate(contactConfirmationTmpl, newContactEmailData(req))
	if err != nil {
		return err
	}

	subject := "Votre demande d'audit a bien été reçue - IzCloud"
	return s.client.Send(ctx, s.emailFrom, []string{req.Email}, subject, body)
}

// SendGDPRNotification emails the business inbox about a new data-rights
// request, including the 30-day response deadline reminder.
func (s *Service) SendGDPRNotification(ctx context.Context, req *domain.GDPRRequest) error {
	data := newGDPREmailData(req)

	body, err := renderTemplate(gdprNotificationTmpl, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("[RGPD] %s - %s", data.RequestType, data.Name)
	return s.client.Send(ctx, s.gdprEmailFrom, []string{s.contactEmailTo}, subject, body)
}

// SendGDPRConfirmation acknowledges the data-rights request to the
// submitter and states the 30-day response deadline.
func (s *Service) SendGDPRConfirmation(ctx context.Context, req *domain.GDPRRequest) error {
	body, err := renderTemplate(gdprConfirmationTmpl, newGDPREmailData(req))
	if err != nil {
		return err
	}

	subject := "Confirmation de votre demande RGPD - IzCloud"
	return s.client.Send(ctx, s.emailFrom, []string{req.Email}, subject, body)
}
