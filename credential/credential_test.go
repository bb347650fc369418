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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi-tekdi/ulp-bff/core"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	instance := New()
	instance.config.URL = server.URL
	instance.config.SchemaURL = server.URL + "/schema-svc"
	require.NoError(t, instance.Configure(core.ServerConfig{}))
	return instance
}

func TestClient_SearchList(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var requestBody map[string]interface{}
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/credentials/search", request.URL.Path)
			data, _ := io.ReadAll(request.Body)
			require.NoError(t, json.Unmarshal(data, &requestBody))
			_, _ = writer.Write([]byte(`[{"id":"cred-1"}]`))
		}))

		credentials, err := instance.SearchList(context.Background(), "did:ulp:123")

		require.NoError(t, err)
		require.Len(t, credentials, 1)
		assert.Equal(t, map[string]interface{}{"id": "did:ulp:123"}, requestBody["subject"])
	})
	t.Run("ok - empty result", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`[]`))
		}))

		credentials, err := instance.SearchList(context.Background(), "did:ulp:123")

		require.NoError(t, err)
		assert.Empty(t, credentials)
	})
	t.Run("error - upstream failure", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := instance.SearchList(context.Background(), "did:ulp:123")

		assert.ErrorIs(t, err, ErrSearch)
	})
}

func TestClient_Render(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/credentials/render", request.URL.Path)
			_, _ = writer.Write([]byte(`<html><body>diploma</body></html>`))
		}))

		html, err := instance.Render(context.Background(), map[string]string{"template": "diploma"})

		require.NoError(t, err)
		assert.Contains(t, string(html), "diploma")
	})
	t.Run("error - render failure", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
		}))

		_, err := instance.Render(context.Background(), map[string]string{})

		assert.ErrorIs(t, err, ErrRender)
	})
}

func TestClient_SchemaLookups(t *testing.T) {
	paths := map[string]func(*Client) (json.RawMessage, error){
		"/credentials/schema/schema-1": func(c *Client) (json.RawMessage, error) {
			return c.Schema(context.Background(), "schema-1")
		},
		"/schema-svc/schema/jsonld": func(c *Client) (json.RawMessage, error) {
			return c.SchemaJSON(context.Background(), "schema-1")
		},
		"/schema-svc/rendering-template": func(c *Client) (json.RawMessage, error) {
			return c.RenderTemplate(context.Background(), "tpl-1")
		},
		"/schema-svc/rendering-template/tpl-1": func(c *Client) (json.RawMessage, error) {
			return c.RenderTemplateSchema(context.Background(), "tpl-1")
		},
	}
	for path, call := range paths {
		t.Run(path, func(t *testing.T) {
			instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, path, request.URL.Path)
				_, _ = writer.Write([]byte(`{"schema":"content"}`))
			}))

			result, err := call(instance)

			require.NoError(t, err)
			assert.JSONEq(t, `{"schema":"content"}`, string(result))
		})
	}
	t.Run("error - schema lookup failure", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))

		_, err := instance.Schema(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrSchema)
	})
}

func TestClient_Configure(t *testing.T) {
	t.Run("error - missing url", func(t *testing.T) {
		assert.EqualError(t, New().Configure(core.ServerConfig{}), "credential.url must be configured")
	})
	t.Run("error - missing schema url", func(t *testing.T) {
		instance := New()
		instance.config.URL = "https://cred.example.com"
		assert.EqualError(t, instance.Configure(core.ServerConfig{}), "credential.schemaurl must be configured")
	})
}
