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

package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/credential/log"
)

// ModuleName is the name of this engine.
const ModuleName = "Credential"

var (
	// ErrSearch is returned when the credential search could not be executed.
	ErrSearch = errors.New("credential: search failed")
	// ErrRender is returned when the credential render call fails.
	ErrRender = errors.New("credential: render failed")
	// ErrSchema is returned when a schema or template lookup fails.
	ErrSchema = errors.New("credential: schema lookup failed")
)

// Config holds the configuration for the credential engine.
type Config struct {
	// URL is the base URL of the credential service.
	URL string `koanf:"url"`
	// SchemaURL is the base URL of the credential schema service.
	SchemaURL string `koanf:"schemaurl"`
	// Timeout for outbound calls to both services.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default configuration for the credential engine.
func DefaultConfig() Config {
	return Config{
		Timeout: core.DefaultHTTPTimeout,
	}
}

// Client is the engine that searches and renders credentials and resolves their schemas and templates.
type Client struct {
	config Config
	client core.HTTPRequestDoer
}

// New creates a new credential client engine with default configuration.
func New() *Client {
	return &Client{config: DefaultConfig()}
}

func (c *Client) Name() string {
	return ModuleName
}

func (c *Client) ConfigKey() string {
	return "credential"
}

func (c *Client) Config() interface{} {
	return &c.config
}

// Configure validates the configuration and prepares the HTTP client.
func (c *Client) Configure(serverConfig core.ServerConfig) error {
	if c.config.URL == "" {
		return errors.New("credential.url must be configured")
	}
	if c.config.SchemaURL == "" {
		return errors.New("credential.schemaurl must be configured")
	}
	c.client = core.NewStrictHTTPClient(serverConfig.Strictmode, c.config.Timeout, nil)
	return nil
}

// Search looks up credentials by subject id and returns the raw response body.
func (c *Client) Search(ctx context.Context, subjectID string) (json.RawMessage, error) {
	payload := map[string]interface{}{
		"subject": map[string]string{"id": subjectID},
	}
	body, _ := json.Marshal(payload)

	endpoint := c.credURL("/credentials/search")
	response, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.Join(ErrSearch, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrSearch, err)
	}
	return io.ReadAll(response.Body)
}

// SearchList looks up credentials by subject DID and returns them as a list,
// so callers can distinguish "no credentials" from "credentials found".
func (c *Client) SearchList(ctx context.Context, subjectDID string) ([]map[string]interface{}, error) {
	raw, err := c.Search(ctx, subjectDID)
	if err != nil {
		return nil, err
	}
	var credentials []map[string]interface{}
	if err := json.Unmarshal(raw, &credentials); err != nil {
		return nil, errors.Join(ErrSearch, fmt.Errorf("unable to parse search response: %w", err))
	}
	return credentials, nil
}

// Render posts the given render payload and returns the rendered document (HTML).
func (c *Client) Render(ctx context.Context, payload interface{}) ([]byte, error) {
	body, _ := json.Marshal(payload)

	endpoint := c.credURL("/credentials/render")
	response, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.Join(ErrRender, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrRender, err)
	}
	return io.ReadAll(response.Body)
}

// Schema resolves a credential schema by id on the credential service.
func (c *Client) Schema(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, c.credURL("/credentials/schema/"+url.PathEscape(id)))
}

// SchemaJSON resolves the JSON-LD schema by id on the schema service.
func (c *Client) SchemaJSON(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, c.schemaURL("/schema/jsonld?id="+url.QueryEscape(id)))
}

// RenderTemplate resolves a rendering template by id on the schema service.
func (c *Client) RenderTemplate(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, c.schemaURL("/rendering-template?id="+url.QueryEscape(id)))
}

// RenderTemplateSchema resolves the rendering template schema by id on the schema service.
func (c *Client) RenderTemplateSchema(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, c.schemaURL("/rendering-template/"+url.PathEscape(id)))
}

func (c *Client) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Join(ErrSchema, err)
	}
	response, err := c.client.Do(request)
	if err != nil {
		return nil, errors.Join(ErrSchema, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrSchema, err)
	}
	return io.ReadAll(response.Body)
}

func (c *Client) do(ctx context.Context, method string, endpoint string, body []byte) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	return c.client.Do(request)
}

func (c *Client) credURL(suffix string) string {
	return strings.TrimSuffix(c.config.URL, "/") + suffix
}

func (c *Client) schemaURL(suffix string) string {
	return strings.TrimSuffix(c.config.SchemaURL, "/") + suffix
}
