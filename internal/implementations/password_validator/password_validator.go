package passwordvalidator

import (
	"claon/internal/core/domain/user"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	MinLength = 8
	MaxLength = 32
)

var (
	allowedChars = regexp.MustCompile(`^[A-Za-z0-9@$!%*#?&]+$`)
	hasLetter    = regexp.MustCompile(`[A-Za-z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
	hasSpecial   = regexp.MustCompile(`[@$!%*#?&]`)
)

// Validator accepts passwords of 8 to 32 characters made of letters, digits
// and @$!%*#?& with at least one of each class.
type Validator struct {
	rules []validation.Rule
}

func New() *Validator {
	return &Validator{
		rules: []validation.Rule{
			validation.Required,
			validation.Length(MinLength, MaxLength),
			validation.Match(allowedChars).Error("must contain only letters, digits and @$!%*#?&"),
			validation.Match(hasLetter).Error("must contain a letter"),
			validation.Match(hasDigit).Error("must contain a digit"),
			validation.Match(hasSpecial).Error("must contain one of @$!%*#?&"),
		},
	}
}

func (v *Validator) ValidatePasswordFormat(password user.RawPassword) error {
	err := validation.Validate(string(password), v.rules...)
	if err != nil {
		return user.NewInvalidPasswordFormatError(err)
	}
	return nil
}
