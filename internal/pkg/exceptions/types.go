package exceptions

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Configuration
	ErrTokenNotConfigured = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientTokenNotConfigured, constvars.ErrDevTokenNotConfigured)
	}

	// Input
	ErrInvalidAppointmentID = func(err error, raw string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidAppointmentID, raw), constvars.ErrDevInvalidAppointmentID)
	}
	ErrInputValidation = func(err error, details []ValidationDetail) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrDevValidationFailed, constvars.ErrDevValidationFailed)
		customErr.Details = details
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidJSON, constvars.ErrDevCannotParseJSON)
		customErr.Details = []ValidationDetail{{
			Loc:  []string{"body"},
			Msg:  constvars.ErrClientInvalidJSON,
			Type: constvars.ValidationTypeJSON,
		}}
		return customErr
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrClientRequestBodyTooLarge, constvars.ErrDevReadRequestBody)
	}

	// Upstream
	ErrUpstreamTimeout = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientUpstreamTimeout, fmt.Sprintf(constvars.ErrDevUpstreamTimeout, resource))
	}
	ErrUpstreamConnection = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, fmt.Sprintf(constvars.ErrClientUpstreamConnection, err.Error()), fmt.Sprintf(constvars.ErrDevUpstreamConnection, resource))
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Routing
	ErrRouteNotFound = func(path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientRouteNotFound, fmt.Sprintf(constvars.ErrDevRouteNotFound, path))
	}
	ErrMethodNotAllowed = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, fmt.Sprintf(constvars.ErrDevMethodNotAllowed, method, path))
	}

	// Default Server
	ErrServerPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanic)
	}
)
