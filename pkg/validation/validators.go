package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Permissive email shape: local part, @, domain with at least one dot.
	// Deliberately loose so it matches what the site's form accepts.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// French phone numbers: leading 0 or +33/0033, a digit 1-9, then four
	// groups of two digits with optional space/dot/dash separators.
	// Accepts "06 12 34 56 78" and "+33 6 12 34 56 78" style input.
	frenchPhoneRegex = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*[0-9]{2}){4}$`)
)

// New returns a validator instance with all custom validators registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_shape", EmailShape)
	_ = v.RegisterValidation("not_disposable", NotDisposable)
	_ = v.RegisterValidation("fr_phone", FrenchPhone)
}

// EmailShape validates the general shape of an email address
func EmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// NotDisposable rejects addresses whose domain is a known throwaway provider
func NotDisposable(fl validator.FieldLevel) bool {
	return !IsDisposableEmail(fl.Field().String())
}

// FrenchPhone validates a French phone number. Empty is valid; pair with
// omitempty on optional fields.
func FrenchPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return frenchPhoneRegex.MatchString(val)
}
