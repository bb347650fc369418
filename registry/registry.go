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

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/registry/log"
)

// ModuleName is the name of this engine.
const ModuleName = "Registry"

// Entity kinds owned by the Registry.
const (
	EntityStudent = "StudentDetail"
	EntityTeacher = "TeacherV1"
	EntitySchool  = "SchoolDetail"
)

// Filter fields used by the workflows.
const (
	FieldUsername        = "username"
	FieldUdiseCode       = "udiseCode"
	FieldStudentSchoolID = "studentSchoolID"
	FieldExternalLoginID = "meripehchanLoginId"
	FieldStudentName     = "studentName"
	FieldDob             = "dob"
)

// StatusSuccessful is the embedded status value the Registry uses to signal a successful write.
// Any other response shape, including a 2xx without it, does not count as success.
const StatusSuccessful = "SUCCESSFUL"

var (
	// ErrSearch is returned when a Registry search could not be executed.
	ErrSearch = errors.New("registry: search failed")
	// ErrNotFound is returned by FindUnique when zero or more than one record matched.
	// Multiple matches for a unique key never silently pick one.
	ErrNotFound = errors.New("registry: record not found")
	// ErrWrite is returned when an invite or update could not be executed.
	ErrWrite = errors.New("registry: write failed")
)

// Config holds the configuration for the Registry engine.
type Config struct {
	// URL is the base URL of the Registry.
	URL string `koanf:"url"`
	// Timeout for outbound calls to the Registry.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default configuration for the Registry engine.
func DefaultConfig() Config {
	return Config{
		Timeout: core.DefaultHTTPTimeout,
	}
}

// Record is a single Registry entity record. The Registry owns the schema, so
// records are kept dynamic; accessors cover the fields the workflows rely on.
type Record map[string]interface{}

// Field returns the named field as string, or empty when absent or not a string.
func (r Record) Field(name string) string {
	value, _ := r[name].(string)
	return value
}

// Osid returns the Registry's internal object id, required for updates.
func (r Record) Osid() string {
	return r.Field("osid")
}

// Did returns the subject DID of the record, or empty when none was issued yet.
func (r Record) Did() string {
	return r.Field("did")
}

// Acknowledgement is the Registry's response to an invite or update.
type Acknowledgement struct {
	Params struct {
		Status string `json:"status"`
	} `json:"params"`
	// Raw is the complete response body, passed through to API callers.
	Raw json.RawMessage `json:"-"`
}

// Successful returns whether the Registry reported the write as successful.
func (a Acknowledgement) Successful() bool {
	return a.Params.Status == StatusSuccessful
}

// Client is the engine that reads and writes entity records in the Registry.
type Client struct {
	config Config
	client core.HTTPRequestDoer
}

// New creates a new Registry client engine with default configuration.
func New() *Client {
	return &Client{config: DefaultConfig()}
}

func (c *Client) Name() string {
	return ModuleName
}

func (c *Client) ConfigKey() string {
	return "registry"
}

func (c *Client) Config() interface{} {
	return &c.config
}

// Configure validates the configuration and prepares the HTTP client.
func (c *Client) Configure(serverConfig core.ServerConfig) error {
	if c.config.URL == "" {
		return errors.New("registry.url must be configured")
	}
	c.client = core.NewStrictHTTPClient(serverConfig.Strictmode, c.config.Timeout, nil)
	return nil
}

// Search queries the given entity kind with equality filters and returns the matching records.
func (c *Client) Search(ctx context.Context, entity string, filters map[string]string) ([]Record, error) {
	eqFilters := map[string]interface{}{}
	for field, value := range filters {
		eqFilters[field] = map[string]string{"eq": value}
	}
	body, err := c.SearchRaw(ctx, entity, map[string]interface{}{"filters": eqFilters})
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Join(ErrSearch, fmt.Errorf("unable to parse search response: %w", err))
	}
	return records, nil
}

// SearchRaw posts an arbitrary search payload to the given entity kind and returns the raw response.
func (c *Client) SearchRaw(ctx context.Context, entity string, payload interface{}) (json.RawMessage, error) {
	body, _ := json.Marshal(payload)
	endpoint := c.entityURL(entity, "search")
	log.Logger().WithField("entity", entity).Debugf("Searching registry: %s", string(body))

	response, err := c.post(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.Join(ErrSearch, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrSearch, err)
	}
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Join(ErrSearch, err)
	}
	return data, nil
}

// FindUnique searches the given entity kind on a single field and requires exactly one match.
// Zero matches and multiple matches both return ErrNotFound.
func (c *Client) FindUnique(ctx context.Context, entity string, field string, value string) (Record, error) {
	records, err := c.Search(ctx, entity, map[string]string{field: value})
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("%w: %s by %s matched %d records", ErrNotFound, entity, field, len(records))
	}
	return records[0], nil
}

// Invite creates a new entity record. The returned acknowledgement must be checked
// with Successful(); a non-successful acknowledgement means the record already exists.
func (c *Client) Invite(ctx context.Context, entity string, payload interface{}) (*Acknowledgement, error) {
	body, _ := json.Marshal(payload)
	endpoint := c.entityURL(entity, "invite")

	response, err := c.post(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrWrite, err)
	}
	return parseAcknowledgement(response.Body)
}

// Update replaces the entity record identified by osid.
func (c *Client) Update(ctx context.Context, entity string, osid string, payload interface{}) (*Acknowledgement, error) {
	body, _ := json.Marshal(payload)
	endpoint := c.entityURL(entity, osid)

	response, err := c.post(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrWrite, err)
	}
	return parseAcknowledgement(response.Body)
}

func parseAcknowledgement(reader io.Reader) (*Acknowledgement, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}
	ack := &Acknowledgement{Raw: data}
	if err := json.Unmarshal(data, ack); err != nil {
		return nil, errors.Join(ErrWrite, fmt.Errorf("unable to parse acknowledgement: %w", err))
	}
	return ack, nil
}

func (c *Client) post(ctx context.Context, method string, endpoint string, body []byte) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	return c.client.Do(request)
}

func (c *Client) entityURL(entity string, suffix string) string {
	return strings.TrimSuffix(c.config.URL, "/") + "/api/v1/" + entity + "/" + suffix
}
