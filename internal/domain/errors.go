package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeNotFound     ErrCode = "not_found"
	CodeForbidden    ErrCode = "forbidden"
	CodeUnauthorized ErrCode = "unauthorized"
	CodeUnavailable  ErrCode = "source_unavailable"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	keys := make([]string, 0, len(e.Meta))
	for k := range e.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Meta[k])
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, ", "))
}

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrForbidden(msg string) error    { return &AppError{Code: CodeForbidden, Message: msg} }
func ErrUnavailable(msg string) error  { return &AppError{Code: CodeUnavailable, Message: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Code: CodeUnauthorized, Message: msg} }

// MissingFields returns the sorted field names reported as missing by a
// validation error, or nil when err is not one.
func MissingFields(err error) []string {
	var ae *AppError
	if !errors.As(err, &ae) || ae.Code != CodeValidation {
		return nil
	}
	var out []string
	for k, v := range ae.Meta {
		if v == "required" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
