package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the area an error comes from.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryCatalog    Category = "catalog"
	CategoryNewsletter Category = "newsletter"
	CategoryExport     Category = "export"
	CategoryPublish    Category = "publish"
	CategoryRuntime    Category = "runtime"
)

// SiteError is a structured error with a code, category and fix hints.
type SiteError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the area the error comes from.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, usually specific to this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SiteError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *SiteError) WithDetail(d string) *SiteError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail.
func (e *SiteError) WithDetailf(format string, args ...any) *SiteError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SiteError) WithSuggestion(s string) *SiteError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *SiteError) Wrap(err error) *SiteError {
	e.Wrapped = err
	return e
}

// New creates a SiteError from a registered error code.
func New(code string) *SiteError {
	template, ok := registry[code]
	if !ok {
		return &SiteError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SiteError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new SiteError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SiteError {
	return &SiteError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SiteError.
// An error that already is a *SiteError is returned unchanged.
func FromError(err error, code string) *SiteError {
	if err == nil {
		return nil
	}
	var se *SiteError
	if stderrors.As(err, &se) {
		return se
	}
	return New(code).Wrap(err)
}

// Is reports whether any error in err's chain is a *SiteError with code.
func Is(err error, code string) bool {
	for err != nil {
		if se, ok := err.(*SiteError); ok && se.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Code returns the code of the first *SiteError in err's chain, or "".
func Code(err error) string {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}
