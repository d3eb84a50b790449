package usecase

import (
	"context"

	"go-izcloud-backend/internal/domain"
	"go-izcloud-backend/pkg/apperror"
	"go-izcloud-backend/pkg/logger"
	"go-izcloud-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.Mailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
	}
}

// SubmitContact validates the contact submission and dispatches both
// outbound emails. The operator notification is load-bearing; the submitter
// confirmation is best-effort and only logged on failure.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	req.Trim()

	if err := uc.validate.Struct(req); err != nil {
		return apperror.BadRequest(validation.FirstError(err))
	}

	if err := uc.mailer.SendContactNotification(ctx, req); err != nil {
		return apperror.Internal(err)
	}

	if err := uc.mailer.SendContactConfirmation(ctx, req); err != nil {
		// The business has already been notified; a lost confirmation does
		// not fail the submission.
		logger.Log.Warn("contact confirmation email failed",
			"email", req.Email,
			"error", err)
	}

	return nil
}
