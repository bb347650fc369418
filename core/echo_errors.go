/*
 * ULP BFF
 * Copyright (C) 2023 ULP community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"schneider.vip/problem"
)

// OperationIDContextKey contains the key for the Echo context parameter that specifies the name of the operation being
// called, for logging/error returning.
const OperationIDContextKey = "!!OperationId"

// CreateHTTPErrorHandler returns an Echo HTTPErrorHandler that logs the error and returns it as problem+json.
// Workflow outcomes never reach this handler: they are always written as the response envelope by the API layer.
// This handler only deals with router-level errors (unknown routes, rate limiting, malformed requests).
func CreateHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if echoErr, ok := err.(*echo.HTTPError); ok {
			err = httpStatusCodeError{
				msg:        fmt.Sprintf("%s", echoErr.Message),
				statusCode: echoErr.Code,
				err:        echoErr,
			}
		}
		operationID := ctx.Get(OperationIDContextKey)
		title := "Operation failed"
		if operationID != nil {
			title = fmt.Sprintf("%s failed", operationID)
		}
		statusCode := http.StatusInternalServerError
		var statusCodeErr HTTPStatusCodeError
		if errors.As(err, &statusCodeErr) {
			statusCode = statusCodeErr.StatusCode()
		}
		logMsg := Logger().
			WithField("operationID", operationID).
			WithField("requestURI", ctx.Request().RequestURI).
			WithError(err)
		if statusCode == http.StatusInternalServerError {
			logMsg.Error(title)
		} else {
			logMsg.Warn(title)
		}
		if !ctx.Response().Committed {
			result := problem.New(problem.Title(title), problem.Status(statusCode), problem.Detail(err.Error()))
			if _, writeError := result.WriteTo(ctx.Response()); writeError != nil {
				Logger().Error(writeError)
			}
		} else {
			Logger().
				WithError(err).
				Warn("Unable to send error back to client, response already committed")
		}
	}
}

// Error returns an error that maps to an HTTP status
func Error(statusCode int, errStr string, args ...interface{}) error {
	return httpStatusCodeError{msg: fmt.Errorf(errStr, args...).Error(), statusCode: statusCode}
}

// NotFoundError returns an error that maps to a HTTP 404 Status Not Found.
func NotFoundError(errStr string, args ...interface{}) error {
	return Error(http.StatusNotFound, errStr, args...)
}

// InvalidInputError returns an error that maps to a HTTP 400 Bad Request.
func InvalidInputError(errStr string, args ...interface{}) error {
	return Error(http.StatusBadRequest, errStr, args...)
}

// HTTPStatusCodeError defines an interface for HTTP errors that includes a HTTP statuscode
type HTTPStatusCodeError interface {
	error
	StatusCode() int
}

type httpStatusCodeError struct {
	msg        string
	statusCode int
	err        error
}

func (e httpStatusCodeError) Is(other error) bool {
	cast, is := other.(httpStatusCodeError)
	if !is {
		return false
	}
	return cast.statusCode == e.statusCode
}

func (e httpStatusCodeError) Error() string {
	return e.msg
}

func (e httpStatusCodeError) Unwrap() error {
	return e.err
}

// StatusCode returns the HTTP status code for the error
func (e httpStatusCodeError) StatusCode() int {
	return e.statusCode
}
