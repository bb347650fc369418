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
	require.NoError(t, instance.Configure(core.ServerConfig{}))
	return instance
}

func TestClient_Search(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var requestBody map[string]interface{}
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/StudentDetail/search", request.URL.Path)
			data, _ := io.ReadAll(request.Body)
			require.NoError(t, json.Unmarshal(data, &requestBody))
			_, _ = writer.Write([]byte(`[{"osid":"1-abc","did":"did:ulp:123","studentName":"X"}]`))
		}))

		records, err := instance.Search(context.Background(), EntityStudent, map[string]string{FieldUsername: "jan"})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "1-abc", records[0].Osid())
		assert.Equal(t, "did:ulp:123", records[0].Did())
		filters := requestBody["filters"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"eq": "jan"}, filters["username"])
	})
	t.Run("error - upstream failure", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := instance.Search(context.Background(), EntityStudent, map[string]string{FieldUsername: "jan"})

		assert.ErrorIs(t, err, ErrSearch)
	})
}

func TestClient_FindUnique(t *testing.T) {
	handlerFor := func(response string) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(response))
		})
	}
	t.Run("ok - exactly one match", func(t *testing.T) {
		instance := newTestClient(t, handlerFor(`[{"osid":"1-abc"}]`))

		record, err := instance.FindUnique(context.Background(), EntityStudent, FieldStudentSchoolID, "S1")

		require.NoError(t, err)
		assert.Equal(t, "1-abc", record.Osid())
	})
	t.Run("error - zero matches", func(t *testing.T) {
		instance := newTestClient(t, handlerFor(`[]`))

		_, err := instance.FindUnique(context.Background(), EntityStudent, FieldStudentSchoolID, "S1")

		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("error - multiple matches never picks one", func(t *testing.T) {
		instance := newTestClient(t, handlerFor(`[{"osid":"1-abc"},{"osid":"1-def"}]`))

		_, err := instance.FindUnique(context.Background(), EntityStudent, FieldStudentSchoolID, "S1")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClient_Invite(t *testing.T) {
	t.Run("ok - successful acknowledgement", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/StudentDetail/invite", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":"open-saber.registry.invite","params":{"status":"SUCCESSFUL"}}`))
		}))

		ack, err := instance.Invite(context.Background(), EntityStudent, StudentDetail{StudentName: "X"})

		require.NoError(t, err)
		assert.True(t, ack.Successful())
		assert.Contains(t, string(ack.Raw), "open-saber.registry.invite")
	})
	t.Run("ok - non-successful acknowledgement means duplicate", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"params":{"status":"UNSUCCESSFUL"}}`))
		}))

		ack, err := instance.Invite(context.Background(), EntityStudent, StudentDetail{StudentName: "X"})

		require.NoError(t, err)
		assert.False(t, ack.Successful())
	})
	t.Run("ok - missing params is not successful", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))

		ack, err := instance.Invite(context.Background(), EntityStudent, StudentDetail{StudentName: "X"})

		require.NoError(t, err)
		assert.False(t, ack.Successful())
	})
	t.Run("error - upstream failure", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
		}))

		_, err := instance.Invite(context.Background(), EntityStudent, StudentDetail{StudentName: "X"})

		assert.ErrorIs(t, err, ErrWrite)
	})
}

func TestClient_Update(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		instance := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "/api/v1/StudentDetail/1-abc", request.URL.Path)
			_, _ = writer.Write([]byte(`{"params":{"status":"SUCCESSFUL"}}`))
		}))

		ack, err := instance.Update(context.Background(), EntityStudent, "1-abc", StudentUpdate{Username: "jan"})

		require.NoError(t, err)
		assert.True(t, ack.Successful())
	})
}

func TestClient_Configure(t *testing.T) {
	t.Run("error - missing url", func(t *testing.T) {
		assert.EqualError(t, New().Configure(core.ServerConfig{}), "registry.url must be configured")
	})
}
