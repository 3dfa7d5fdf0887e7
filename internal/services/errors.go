package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/prudhvinik1/accounts/internal/models"
)

var ErrEmailExists = errors.New("email already exists")

type ValidationKind string

const (
	KindDuplicateEmail ValidationKind = "DUPLICATE_EMAIL"
	KindInvalidFields  ValidationKind = "INVALID_FIELDS"
)

// ValidationError is a caller-facing rejection. Errors maps a request field
// path to a message and is meant to be shown to API clients as-is.
type ValidationError struct {
	Kind   ValidationKind
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field, msg := range e.Errors {
		fields = append(fields, field+": "+msg)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed (%s): %s", e.Kind, strings.Join(fields, "; "))
}

// Is lets errors.Is(err, ErrEmailExists) match a duplicate-email rejection.
func (e *ValidationError) Is(target error) bool {
	return target == ErrEmailExists && e.Kind == KindDuplicateEmail
}

func duplicateEmailError() *ValidationError {
	return &ValidationError{
		Kind:   KindDuplicateEmail,
		Errors: map[string]string{"email": ErrEmailExists.Error()},
	}
}

func invalidFieldsError(fieldErrors []models.FieldError) *ValidationError {
	errs := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		if _, seen := errs[fe.Field]; !seen {
			errs[fe.Field] = fe.Message
		}
	}
	return &ValidationError{Kind: KindInvalidFields, Errors: errs}
}
