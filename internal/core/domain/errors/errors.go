package errors

import (
	stderrors "errors"
	"fmt"
)

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// Kind classifies domain errors for callers that need to pick a response
// (HTTP status, retry policy) without knowing every sentinel.
type Kind int

const (
	KindUnknown Kind = iota
	KindConflict
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Code is a machine-readable error code. User-facing text for a code lives
// in the presentation layer.
type Code string

const (
	CodeUnknown               Code = "UNKNOWN"
	CodeEmailAlreadyExists    Code = "EMAIL_ALREADY_EXISTS"
	CodeNicknameAlreadyExists Code = "NICKNAME_ALREADY_EXISTS"
	CodeInvalidPasswordFormat Code = "INVALID_PASSWORD_FORMAT"
	CodeInvalidArea           Code = "INVALID_AREA"
	CodeInvalidNickname       Code = "INVALID_NICKNAME"
	CodeInvalidPhoneNumber    Code = "INVALID_PHONE_NUMBER"
	CodeUserNotFound          Code = "USER_NOT_FOUND"
)

// Error is a coded domain error. Message is meant for logs only.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func NewConflictError(code Code, msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: msg, Cause: cause}
}

func NewValidationError(code Code, msg string, cause error) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg, Cause: cause}
}

func NewNotFoundError(code Code, msg string, cause error) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: msg, Cause: cause}
}

func KindOf(err error) Kind {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUnknown
}

func CodeOf(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}
