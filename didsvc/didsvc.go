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

package didsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nuts-foundation/go-did/did"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/didsvc/log"
)

// ModuleName is the name of this engine.
const ModuleName = "DID"

var (
	// ErrGeneration is returned when the DID service call fails.
	ErrGeneration = errors.New("didsvc: DID generation failed")
	// ErrUnexpectedShape is returned when the DID service response does not contain a
	// verification method to take the controller from. This is fatal for the calling workflow.
	ErrUnexpectedShape = errors.New("didsvc: DID document has no verification method")
)

// Config holds the configuration for the DID engine.
type Config struct {
	// URL is the base URL of the DID issuance service.
	URL string `koanf:"url"`
	// Timeout for outbound calls to the DID service.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default configuration for the DID engine.
func DefaultConfig() Config {
	return Config{
		Timeout: core.DefaultHTTPTimeout,
	}
}

// Issuer is the engine that requests decentralized identifiers for new subjects.
type Issuer struct {
	config Config
	client core.HTTPRequestDoer
}

// New creates a new DID issuer engine with default configuration.
func New() *Issuer {
	return &Issuer{config: DefaultConfig()}
}

func (i *Issuer) Name() string {
	return ModuleName
}

func (i *Issuer) ConfigKey() string {
	return "did"
}

func (i *Issuer) Config() interface{} {
	return &i.config
}

// Configure validates the configuration and prepares the HTTP client.
func (i *Issuer) Configure(serverConfig core.ServerConfig) error {
	if i.config.URL == "" {
		return errors.New("did.url must be configured")
	}
	i.client = core.NewStrictHTTPClient(serverConfig.Strictmode, i.config.Timeout, nil)
	return nil
}

// generateRequest is the document template posted to the DID service.
type generateRequest struct {
	Content []generateContent `json:"content"`
}

type generateContent struct {
	AlsoKnownAs []string          `json:"alsoKnownAs"`
	Services    []generateService `json:"services"`
}

type generateService struct {
	ID              string                 `json:"id"`
	Type            string                 `json:"type"`
	ServiceEndpoint map[string]interface{} `json:"serviceEndpoint"`
}

// Generate requests a DID for the given subject key and returns the controller DID
// of the first verification method of the first returned document.
func (i *Issuer) Generate(ctx context.Context, subjectKey string) (string, error) {
	payload := generateRequest{
		Content: []generateContent{
			{
				AlsoKnownAs: []string{fmt.Sprintf("did.%s", subjectKey)},
				Services: []generateService{
					{
						ID:   "IdentityHub",
						Type: "IdentityHub",
						ServiceEndpoint: map[string]interface{}{
							"@context": "schema.identity.foundation/hub",
							"@type":    "UserServiceEndpoint",
							"instance": []string{"did:test:hub.id"},
						},
					},
				},
			},
		},
	}
	body, _ := json.Marshal(payload)

	endpoint := strings.TrimSuffix(i.config.URL, "/") + "/did/generate"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return "", errors.Join(ErrGeneration, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := i.client.Do(request)
	if err != nil {
		return "", errors.Join(ErrGeneration, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return "", errors.Join(ErrGeneration, err)
	}

	var documents []did.Document
	if err := json.NewDecoder(response.Body).Decode(&documents); err != nil {
		return "", errors.Join(ErrGeneration, fmt.Errorf("unable to parse DID document: %w", err))
	}
	if len(documents) == 0 || len(documents[0].VerificationMethod) == 0 {
		return "", ErrUnexpectedShape
	}
	controller := documents[0].VerificationMethod[0].Controller
	log.Logger().WithField("did", controller.String()).Debug("Generated DID")
	return controller.String(), nil
}
