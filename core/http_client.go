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
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultHTTPTimeout is the timeout applied to outbound calls to the IdP, registry and wallet backends.
const DefaultHTTPTimeout = 30 * time.Second

// HttpError describes an error returned when invoking a remote server.
type HttpError struct {
	error
	StatusCode   int
	ResponseBody []byte
}

// TestResponseCode checks whether the returned HTTP status response code matches the expected code.
// If it doesn't match it returns an error, containing the received and expected status code, and the response body.
func TestResponseCode(expectedStatusCode int, response *http.Response) error {
	return TestResponseCodeWithLog(expectedStatusCode, response, nil)
}

// TestResponseCodeWithLog acts like TestResponseCode, but logs the response body if the status code is not as expected.
// It logs using the given logger, unless nil is passed.
func TestResponseCodeWithLog(expectedStatusCode int, response *http.Response, log *logrus.Entry) error {
	if response.StatusCode != expectedStatusCode {
		responseData, _ := io.ReadAll(response.Body)
		if log != nil {
			// Cut off the response body to 100 characters max to prevent logging of large responses
			responseBodyString := string(responseData)
			if len(responseBodyString) > 100 {
				responseBodyString = responseBodyString[:100] + "...(clipped)"
			}
			log.WithField("http_request_path", response.Request.URL.Path).
				Infof("Unexpected HTTP response (len=%d): %s", len(responseData), responseBodyString)
		}
		return HttpError{
			error:        fmt.Errorf("server returned HTTP %d (expected: %d)", response.StatusCode, expectedStatusCode),
			StatusCode:   response.StatusCode,
			ResponseBody: responseData,
		}
	}
	return nil
}

// HTTPRequestDoer defines the Do method of the http.Client interface.
type HTTPRequestDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// NewStrictHTTPClient creates a HTTPRequestDoer that only allows HTTPS calls when strictmode is enabled.
func NewStrictHTTPClient(strictmode bool, timeout time.Duration, tlsConfig *tls.Config) *StrictHTTPClient {
	if tlsConfig == nil {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	transport := http.DefaultTransport
	// Might not be http.Transport in testing
	if httpTransport, ok := transport.(*http.Transport); ok {
		// cloning the transport might reduce performance.
		httpTransport = httpTransport.Clone()
		httpTransport.TLSClientConfig = tlsConfig
		transport = httpTransport
	}

	return &StrictHTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		strictMode: strictmode,
	}
}

type StrictHTTPClient struct {
	client     *http.Client
	strictMode bool
}

func (s *StrictHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if s.strictMode && req.URL.Scheme != "https" {
		return nil, errors.New("strictmode is enabled, but request is not over HTTPS")
	}
	return s.client.Do(req)
}
