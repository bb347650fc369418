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

package idp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi-tekdi/ulp-bff/core"
)

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, core.DefaultHTTPTimeout, DefaultConfig().Timeout)
}

func newTestIdP(t *testing.T, handler http.Handler) *IdP {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	instance := New()
	instance.config.URL = server.URL
	instance.config.Realm = "ulp"
	instance.config.ClientID = "registration-client"
	instance.config.ClientSecret = "secret"
	require.NoError(t, instance.Configure(core.ServerConfig{}))
	return instance
}

func TestIdP_ClientToken(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var receivedForm string
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/realms/ulp/protocol/openid-connect/token", request.URL.Path)
			body, _ := io.ReadAll(request.Body)
			receivedForm = string(body)
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"access_token":"svc-token","expires_in":300,"token_type":"Bearer"}`))
		}))

		tokenSet, err := instance.ClientToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "svc-token", tokenSet.AccessToken)
		assert.Contains(t, receivedForm, "grant_type=client_credentials")
		assert.Contains(t, receivedForm, "client_id=registration-client")
	})
	t.Run("error - IdP rejects grant", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))

		tokenSet, err := instance.ClientToken(context.Background())

		assert.ErrorIs(t, err, ErrUpstreamAuth)
		assert.Nil(t, tokenSet)
	})
	t.Run("error - missing access_token", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))

		_, err := instance.ClientToken(context.Background())

		assert.ErrorIs(t, err, ErrUpstreamAuth)
	})
}

func TestIdP_UserToken(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "password", request.PostForm.Get("grant_type"))
			assert.Equal(t, "registration-client", request.PostForm.Get("client_id"))
			assert.Equal(t, "secret", request.PostForm.Get("client_secret"))
			assert.Equal(t, "jan@01012005", request.PostForm.Get("username"))
			_, _ = writer.Write([]byte(`{"access_token":"user-token","token_type":"Bearer"}`))
		}))

		tokenSet, err := instance.UserToken(context.Background(), "jan@01012005", "hashed")

		require.NoError(t, err)
		assert.Equal(t, "user-token", tokenSet.AccessToken)
	})
	t.Run("error - invalid credentials", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := instance.UserToken(context.Background(), "jan@01012005", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestIdP_Introspect(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/realms/ulp/protocol/openid-connect/userinfo", request.URL.Path)
			assert.Equal(t, "Bearer user-token", request.Header.Get("Authorization"))
			_, _ = writer.Write([]byte(`{"sub":"abc","preferred_username":"jan@01012005"}`))
		}))

		info, err := instance.Introspect(context.Background(), "user-token")

		require.NoError(t, err)
		assert.Equal(t, "jan@01012005", info.PreferredUsername)
		assert.Equal(t, "abc", info.Sub)
	})
	t.Run("ok - missing preferred_username is not an error", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"sub":"abc"}`))
		}))

		info, err := instance.Introspect(context.Background(), "user-token")

		require.NoError(t, err)
		assert.Empty(t, info.PreferredUsername)
	})
	t.Run("error - invalid token", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := instance.Introspect(context.Background(), "expired")

		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestIdP_CreateUser(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/admin/realms/ulp/users", request.URL.Path)
			assert.Equal(t, "Bearer svc-token", request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusCreated)
		}))

		err := instance.CreateUser(context.Background(), "svc-token", "jan@01012005", "hashed")

		assert.NoError(t, err)
	})
	t.Run("error - conflict maps to duplicate", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusConflict)
		}))

		err := instance.CreateUser(context.Background(), "svc-token", "jan@01012005", "hashed")

		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestIdP_Configure(t *testing.T) {
	t.Run("error - missing url", func(t *testing.T) {
		instance := New()
		instance.config.Realm = "ulp"

		assert.EqualError(t, instance.Configure(core.ServerConfig{}), "idp.url must be configured")
	})
	t.Run("error - missing realm", func(t *testing.T) {
		instance := New()
		instance.config.URL = "https://idp.example.com"

		assert.EqualError(t, instance.Configure(core.ServerConfig{}), "idp.realm must be configured")
	})
	t.Run("strictmode refuses plain http", func(t *testing.T) {
		instance := newTestIdP(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"access_token":"x"}`))
		}))
		require.NoError(t, instance.Configure(core.ServerConfig{Strictmode: true}))

		_, err := instance.ClientToken(context.Background())

		assert.ErrorIs(t, err, ErrUpstreamAuth)
	})
}
