package vocab

import (
	"strings"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

const (
	maxWordLen        = 200
	maxTranslationLen = 200
	maxExampleLen     = 500
	maxNoteLen        = 500
)

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	Word        string
	Translation string
	Example     string
	Note        string
	Level       domain.CardLevel
}

// Validate checks all fields and collects all errors.
// Word and translation are trimmed before validation.
func (i *CreateCardInput) Validate() error {
	i.Word = strings.TrimSpace(i.Word)
	i.Translation = strings.TrimSpace(i.Translation)

	var errs []domain.FieldError

	if i.Word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if len(i.Word) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	}
	if i.Translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}
	if len(i.Translation) > maxTranslationLen {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "too long"})
	}
	if len(i.Example) > maxExampleLen {
		errs = append(errs, domain.FieldError{Field: "example", Message: "too long"})
	}
	if len(i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if i.Level == "" {
		i.Level = domain.CardLevelBeginner
	} else if !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be beginner, intermediate, or advanced"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCardInput holds the parameters for updating a card.
// Nil pointer fields keep their current value.
type UpdateCardInput struct {
	CardID      uuid.UUID
	Word        *string
	Translation *string
	Example     *string
	Note        *string
	Level       *domain.CardLevel
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Word != nil {
		*i.Word = strings.TrimSpace(*i.Word)
		if *i.Word == "" {
			errs = append(errs, domain.FieldError{Field: "word", Message: "cannot be empty"})
		}
		if len(*i.Word) > maxWordLen {
			errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
		}
	}
	if i.Translation != nil {
		*i.Translation = strings.TrimSpace(*i.Translation)
		if *i.Translation == "" {
			errs = append(errs, domain.FieldError{Field: "translation", Message: "cannot be empty"})
		}
		if len(*i.Translation) > maxTranslationLen {
			errs = append(errs, domain.FieldError{Field: "translation", Message: "too long"})
		}
	}
	if i.Example != nil && len(*i.Example) > maxExampleLen {
		errs = append(errs, domain.FieldError{Field: "example", Message: "too long"})
	}
	if i.Note != nil && len(*i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be beginner, intermediate, or advanced"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCardsInput holds the parameters for listing cards.
type ListCardsInput struct {
	Level  *domain.CardLevel
	Search *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be beginner, intermediate, or advanced"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
