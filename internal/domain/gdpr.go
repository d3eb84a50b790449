package domain

import (
	"context"
	"strings"
)

// GDPR request types a visitor can select. The backend only requires a
// non-empty requestType; membership is enforced by the form's selection
// control, and the label is display-only inside escaped email bodies.
const (
	GDPRRequestAccess        = "access"
	GDPRRequestRectification = "rectification"
	GDPRRequestDeletion      = "deletion"
	GDPRRequestLimitation    = "limitation"
	GDPRRequestPortability   = "portability"
	GDPRRequestOpposition    = "opposition"
	GDPRRequestOther         = "other"
)

// GDPRRequestTypeLabels maps request types to the labels shown on the site.
var GDPRRequestTypeLabels = map[string]string{
	GDPRRequestAccess:        "Droit d'accès - Obtenir une copie de mes données",
	GDPRRequestRectification: "Droit de rectification - Corriger mes données",
	GDPRRequestDeletion:      "Droit à l'effacement - Supprimer mes données",
	GDPRRequestLimitation:    "Droit à la limitation - Restreindre le traitement",
	GDPRRequestPortability:   "Droit à la portabilité - Recevoir mes données",
	GDPRRequestOpposition:    "Droit d'opposition - M'opposer au traitement",
	GDPRRequestOther:         "Autre demande",
}

// GDPRRequest represents a data-rights request submission
type GDPRRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,max=255,email_shape"`
	RequestType      string `json:"requestType" validate:"required"`
	RequestTypeLabel string `json:"requestTypeLabel"`
	Message          string `json:"message" validate:"required,max=1000"`
}

// Trim normalizes all string fields before validation.
func (r *GDPRRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.RequestType = strings.TrimSpace(r.RequestType)
	r.RequestTypeLabel = strings.TrimSpace(r.RequestTypeLabel)
	r.Message = strings.TrimSpace(r.Message)
}

// DisplayLabel returns the human-readable request type: the label supplied
// by the client, else the known label for the type, else the raw type.
func (r *GDPRRequest) DisplayLabel() string {
	if r.RequestTypeLabel != "" {
		return r.RequestTypeLabel
	}
	if label, ok := GDPRRequestTypeLabels[r.RequestType]; ok {
		return label
	}
	return r.RequestType
}

// GDPRUsecase defines the interface for data-rights request operations
type GDPRUsecase interface {
	// SubmitGDPRRequest validates the submission and dispatches the
	// notification and confirmation emails
	SubmitGDPRRequest(ctx context.Context, req *GDPRRequest) error
}
