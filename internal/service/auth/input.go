package auth

import (
	"net/mail"
	"regexp"

	"github.com/linguatrack/backend/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !usernameRe.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-50 letters, digits, or underscores"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates longer inputs.
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LinkTelegramInput holds parameters for linking a Telegram account.
type LinkTelegramInput struct {
	TelegramID       int64
	TelegramUsername string
}

// Validate validates the link input.
func (i LinkTelegramInput) Validate() error {
	var errs []domain.FieldError

	if i.TelegramID <= 0 {
		errs = append(errs, domain.FieldError{Field: "telegram_id", Message: "required"})
	}
	if len(i.TelegramUsername) > 100 {
		errs = append(errs, domain.FieldError{Field: "telegram_username", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
