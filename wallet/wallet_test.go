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

package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi-tekdi/ulp-bff/core"
)

func testIDToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	builder := jwt.NewBuilder()
	for name, value := range claims {
		builder.Claim(name, value)
	}
	token, err := builder.Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	require.NoError(t, err)
	return string(signed)
}

func newTestLinker(t *testing.T, handler http.Handler) *Linker {
	t.Helper()
	instance := New()
	instance.config.Ewallet = AccountConfig{ClientID: "ewa-client", ClientSecret: "ewa-secret", CallbackURL: "https://bff.example.com/ewallet/callback"}
	instance.config.Portal = AccountConfig{ClientID: "urp-client", ClientSecret: "urp-secret", CallbackURL: "https://bff.example.com/portal/callback"}
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		instance.config.TokenEndpoint = server.URL
	}
	require.NoError(t, instance.Configure(core.ServerConfig{}))
	return instance
}

func TestLinker_AuthorizeURL(t *testing.T) {
	instance := newTestLinker(t, nil)

	t.Run("ewallet", func(t *testing.T) {
		authorizeURL, err := url.Parse(instance.AuthorizeURL(AccountEwallet))

		require.NoError(t, err)
		assert.Equal(t, "ewa-client", authorizeURL.Query().Get("client_id"))
		assert.Equal(t, "code", authorizeURL.Query().Get("response_type"))
		assert.Equal(t, "ewallet", authorizeURL.Query().Get("state"))
	})
	t.Run("portal", func(t *testing.T) {
		authorizeURL, err := url.Parse(instance.AuthorizeURL(AccountPortal))

		require.NoError(t, err)
		assert.Equal(t, "urp-client", authorizeURL.Query().Get("client_id"))
		assert.Equal(t, "portal", authorizeURL.Query().Get("state"))
	})
}

func TestLinker_ExchangeCode(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var receivedForm url.Values
		var idToken string
		instance := newTestLinker(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseForm())
			receivedForm = request.PostForm
			response, _ := json.Marshal(map[string]string{"access_token": "wallet-token", "id_token": idToken})
			_, _ = writer.Write(response)
		}))
		idToken = testIDToken(t, map[string]interface{}{
			"sub":          "MP-123",
			"given_name":   "Jan de Vries",
			"birthdate":    "17/02/1995",
			"phone_number": "0612345678",
		})

		tokenResponse, claims, err := instance.ExchangeCode(context.Background(), AccountEwallet, "auth-code")

		require.NoError(t, err)
		assert.Equal(t, "wallet-token", tokenResponse.AccessToken)
		assert.Equal(t, "MP-123", claims.Sub)
		assert.Equal(t, "Jan de Vries", claims.GivenName)
		assert.Equal(t, "17/02/1995", claims.Dob())
		assert.Equal(t, "authorization_code", receivedForm.Get("grant_type"))
		assert.Equal(t, "ewa-client", receivedForm.Get("client_id"))
		assert.Equal(t, "auth-code", receivedForm.Get("code"))
	})
	t.Run("error - upstream rejects code", func(t *testing.T) {
		instance := newTestLinker(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))

		_, _, err := instance.ExchangeCode(context.Background(), AccountEwallet, "bad-code")

		assert.ErrorIs(t, err, ErrExchange)
	})
	t.Run("error - missing id_token", func(t *testing.T) {
		instance := newTestLinker(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"access_token":"wallet-token"}`))
		}))

		_, _, err := instance.ExchangeCode(context.Background(), AccountEwallet, "auth-code")

		assert.ErrorIs(t, err, ErrExchange)
	})
}

func TestLinker_UsernameFor(t *testing.T) {
	instance := newTestLinker(t, nil)
	claims := Claims{Sub: "MP-123", GivenName: "Jan de Vries", Birthdate: "17/02/1995"}

	assert.Equal(t, "Jan@17021995", instance.UsernameFor(AccountEwallet, claims))
	assert.Equal(t, "MP-123_teacher", instance.UsernameFor(AccountPortal, claims))
}

func TestParseAccountKind(t *testing.T) {
	for _, valid := range []string{"ewallet", "portal"} {
		kind, err := ParseAccountKind(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}
	_, err := ParseAccountKind("other")
	assert.EqualError(t, err, fmt.Sprintf("unsupported account kind: %s", "other"))
}
