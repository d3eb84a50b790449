package domain

import (
	"context"
	"strings"
)

// ContactRequest represents a contact / free-audit form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,max=255,email_shape,not_disposable"`
	Phone   string `json:"phone" validate:"omitempty,max=20,fr_phone"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,max=1000"`
}

// Trim normalizes all string fields before validation. Length and format
// rules apply to the trimmed values.
func (r *ContactRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.Message = strings.TrimSpace(r.Message)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the submission and dispatches the
	// notification and confirmation emails
	SubmitContact(ctx context.Context, req *ContactRequest) error
}

// Mailer composes and delivers the outbound emails for form submissions.
// Implementations receive validated, trimmed submissions and own the HTML
// escaping of every displayed field.
type Mailer interface {
	SendContactNotification(ctx context.Context, req *ContactRequest) error
	SendContactConfirmation(ctx context.Context, req *ContactRequest) error
	SendGDPRNotification(ctx context.Context, req *GDPRRequest) error
	SendGDPRConfirmation(ctx context.Context, req *GDPRRequest) error
}
