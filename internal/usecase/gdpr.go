package usecase

import (
	"context"

	"go-izcloud-backend/internal/domain"
	"go-izcloud-backend/pkg/apperror"
	"go-izcloud-backend/pkg/logger"
	"go-izcloud-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type gdprUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
}

// NewGDPRUsecase creates a new GDPR data-rights usecase
func NewGDPRUsecase(mailer domain.Mailer, validate *validator.Validate) domain.GDPRUsecase {
	return &gdprUsecase{
		mailer:   mailer,
		validate: validate,
	}
}

// SubmitGDPRRequest validates the data-rights submission and dispatches
// both outbound emails, following the same partial-failure policy as the
// contact form: operator notification load-bearing, confirmation
// best-effort.
func (uc *gdprUsecase) SubmitGDPRRequest(ctx context.Context, req *domain.GDPRRequest) error {
	req.Trim()

	if err := uc.validate.Struct(req); err != nil {
		return apperror.BadRequest(validation.FirstError(err))
	}

	if err := uc.mailer.SendGDPRNotification(ctx, req); err != nil {
		return apperror.Internal(err)
	}

	if err := uc.mailer.SendGDPRConfirmation(ctx, req); err != nil {
		logger.Log.Warn("gdpr confirmation email failed",
			"email", req.Email,
			"request_type", req.RequestType,
			"error", err)
	}

	return nil
}
