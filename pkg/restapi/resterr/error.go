/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDataNotFound indicates that a referenced session or artifact is absent.
var ErrDataNotFound = errors.New("data not found")

type ErrorCode string

const (
	// SystemError unexpected failure in a downstream component.
	SystemError ErrorCode = "system-error"
	// Unauthorized authentication failure.
	Unauthorized ErrorCode = "unauthorized"
	// BadRequest malformed or missing request parameters.
	BadRequest ErrorCode = "bad-request"
	// InvalidValue a supplied value failed validation.
	InvalidValue ErrorCode = "invalid-value"
	// DoesntExist referenced entity not found.
	DoesntExist ErrorCode = "doesnt-exist"
	// ConditionNotMet a lifecycle precondition does not hold.
	ConditionNotMet ErrorCode = "condition-not-met"
	// OIDCError protocol-defined error (access_denied, invalid_request, ...).
	OIDCError ErrorCode = "oidc-error"
)

func (c ErrorCode) Name() string {
	return string(c)
}

// Component identifies the subsystem an error originated in.
type Component = string

const (
	ClientSessionStoreComponent       Component = "client-session-store"
	PresentationVerifierComponent     Component = "presentation-verifier"
	TokenSignerComponent              Component = "token-signer"
	EventServiceComponent             Component = "event-service"
	CredentialPatternRegistryComponent Component = "credential-pattern-registry"
	CallbackMarkerComponent           Component = "callback-marker"
)

// CustomError is the single error kind surfaced by the orchestration boundary.
// The constructors below determine how it renders and which HTTP status it maps to.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	FailedOperation string
	Component       Component
	ErrorType       string // protocol error type, set only for OIDCError
	Err             error
}

func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		FailedOperation: failedOperation,
		Component:       component,
		Err:             err,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

// NewOIDCError wraps a protocol-defined error type such as access_denied or
// invalid_request.
func NewOIDCError(errType string, err error) *CustomError {
	return &CustomError{
		Code:      OIDCError,
		ErrorType: errType,
		Err:       err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.Code == SystemError:
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code.Name(), e.Component, e.FailedOperation, e.Err)
	case e.Code == OIDCError:
		return fmt.Sprintf("%s[%s]: %v", e.Code.Name(), e.ErrorType, e.Err)
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code.Name(), e.IncorrectValue, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code.Name(), e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the error to an HTTP status and a problem body.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var code int

	switch e.Code {
	case SystemError:
		code = http.StatusInternalServerError
	case Unauthorized:
		code = http.StatusUnauthorized
	case DoesntExist:
		code = http.StatusNotFound
	case ConditionNotMet:
		code = http.StatusPreconditionFailed
	case BadRequest, InvalidValue, OIDCError:
		code = http.StatusBadRequest
	default:
		code = http.StatusBadRequest
	}

	msg := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		msg["incorrectValue"] = e.IncorrectValue
	}

	if e.FailedOperation != "" {
		msg["failedOperation"] = e.FailedOperation
		msg["component"] = e.Component
	}

	if e.ErrorType != "" {
		msg["errorType"] = e.ErrorType
	}

	return code, msg
}

// GetErrorDetails extracts the message, code and component from err, following
// the wrap chain.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), customErr.Code.Name(), customErr.Component
	}

	return err.Error(), "", ""
}
