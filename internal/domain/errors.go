package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientInput indicates classification was attempted with no
	// symptoms selected. Recoverable: the user is asked to pick one.
	ErrInsufficientInput = errors.New("at least one symptom must be selected")

	// ErrInvalidTransition indicates a session operation was called in a
	// state that does not allow it.
	ErrInvalidTransition = errors.New("operation not allowed in current session state")

	// ErrUnsupportedLanguage indicates a language outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// MissingKeyError reports a message key with no entry in the catalog at all,
// not even in the default language.
type MissingKeyError struct {
	Key MessageKey
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("message key %q not found in catalog", e.Key)
}

// UnknownSymptomError reports a symptom id outside the catalog.
type UnknownSymptomError struct {
	ID SymptomID
}

func (e *UnknownSymptomError) Error() string {
	return fmt.Sprintf("unknown symptom %q", e.ID)
}
