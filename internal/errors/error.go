package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryRender  Category = "render"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// VattrError is a structured error with a code, a suggestion and
// documentation.
type VattrError struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VattrError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VattrError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a VattrError with the same code.
func (e *VattrError) Is(target error) bool {
	t, ok := target.(*VattrError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *VattrError) WithDetail(d string) *VattrError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VattrError) WithSuggestion(s string) *VattrError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *VattrError) Wrap(err error) *VattrError {
	e.Wrapped = err
	return e
}

// New creates a VattrError from a registered error code.
func New(code string) *VattrError {
	template, ok := registry[code]
	if !ok {
		return &VattrError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VattrError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VattrError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VattrError {
	return &VattrError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VattrError. An error that already
// is (or wraps) a VattrError is returned as that VattrError.
func FromError(err error, code string) *VattrError {
	if err == nil {
		return nil
	}
	var ve *VattrError
	if stderrors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first VattrError in err's chain, or "".
func Code(err error) string {
	var ve *VattrError
	if stderrors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
