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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/idp/log"
)

// ModuleName is the name of this engine.
const ModuleName = "IdP"

var (
	// ErrUpstreamAuth is returned when a service token could not be acquired via the client_credentials grant.
	ErrUpstreamAuth = errors.New("idp: service token could not be acquired")
	// ErrInvalidCredentials is returned when the IdP rejects a password grant.
	ErrInvalidCredentials = errors.New("idp: invalid user credentials")
	// ErrTokenInvalid is returned when a bearer token could not be validated against the userinfo endpoint.
	ErrTokenInvalid = errors.New("idp: bearer token could not be validated")
	// ErrDuplicateUser is returned when an account could not be created, typically because the username is taken.
	ErrDuplicateUser = errors.New("idp: user already exists")
)

// TokenSet is the token response of the IdP token endpoint.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

// UserInfo holds the claims returned by the IdP userinfo endpoint.
// Raw contains all claims as returned; PreferredUsername is extracted for convenience.
type UserInfo struct {
	Sub               string
	PreferredUsername string
	Raw               map[string]interface{}
}

// IdP is the engine that brokers tokens with the OAuth2 identity provider.
type IdP struct {
	config Config
	client core.HTTPRequestDoer
}

// New creates a new IdP engine with default configuration.
func New() *IdP {
	return &IdP{config: DefaultConfig()}
}

func (i *IdP) Name() string {
	return ModuleName
}

func (i *IdP) ConfigKey() string {
	return "idp"
}

func (i *IdP) Config() interface{} {
	return &i.config
}

// Configure validates the configuration and prepares the HTTP client.
func (i *IdP) Configure(serverConfig core.ServerConfig) error {
	if i.config.URL == "" {
		return errors.New("idp.url must be configured")
	}
	if i.config.Realm == "" {
		return errors.New("idp.realm must be configured")
	}
	i.client = core.NewStrictHTTPClient(serverConfig.Strictmode, i.config.Timeout, nil)
	return nil
}

// ClientToken exchanges the configured client id/secret for a service token (client_credentials grant).
func (i *IdP) ClientToken(ctx context.Context) (*TokenSet, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", i.config.ClientID)
	form.Set("client_secret", i.config.ClientSecret)

	tokenSet, err := i.postTokenRequest(ctx, form)
	if err != nil {
		log.Logger().WithError(err).Info("Service token request failed")
		return nil, errors.Join(ErrUpstreamAuth, err)
	}
	return tokenSet, nil
}

// UserToken exchanges a username/password pair for a user token (password grant).
func (i *IdP) UserToken(ctx context.Context, username string, password string) (*TokenSet, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", i.config.ClientID)
	form.Set("client_secret", i.config.ClientSecret)
	form.Set("username", username)
	form.Set("password", password)

	tokenSet, err := i.postTokenRequest(ctx, form)
	if err != nil {
		log.Logger().WithField("username", username).WithError(err).Info("Password grant rejected")
		return nil, errors.Join(ErrInvalidCredentials, err)
	}
	return tokenSet, nil
}

// Introspect resolves the given bearer token against the userinfo endpoint.
// A transport or non-2xx failure yields ErrTokenInvalid. A 2xx response without
// preferred_username is NOT an error here; callers treat it as an expired session.
func (i *IdP) Introspect(ctx context.Context, bearerToken string) (*UserInfo, error) {
	endpoint := i.realmURL("protocol/openid-connect/userinfo")
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}
	request.Header.Set("Authorization", "Bearer "+bearerToken)

	response, err := i.client.Do(request)
	if err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}

	claims := map[string]interface{}{}
	if err := json.NewDecoder(response.Body).Decode(&claims); err != nil {
		return nil, errors.Join(ErrTokenInvalid, fmt.Errorf("unable to parse userinfo response: %w", err))
	}
	info := &UserInfo{Raw: claims}
	if sub, ok := claims["sub"].(string); ok {
		info.Sub = sub
	}
	if username, ok := claims["preferred_username"].(string); ok {
		info.PreferredUsername = username
	}
	return info, nil
}

// CreateUser creates a non-temporary account with the given credentials via the admin users endpoint.
// The serviceToken must come from ClientToken.
func (i *IdP) CreateUser(ctx context.Context, serviceToken string, username string, password string) error {
	payload := map[string]interface{}{
		"enabled":  "true",
		"username": username,
		"credentials": []map[string]interface{}{
			{
				"type":      "password",
				"value":     password,
				"temporary": false,
			},
		},
	}
	body, _ := json.Marshal(payload)

	endpoint := i.baseURL() + "/admin/realms/" + i.config.Realm + "/users"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return errors.Join(ErrDuplicateUser, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+serviceToken)

	response, err := i.client.Do(request)
	if err != nil {
		return errors.Join(ErrDuplicateUser, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusCreated, response, log.Logger()); err != nil {
		return errors.Join(ErrDuplicateUser, err)
	}
	log.Logger().WithField("username", username).Debug("Created IdP account")
	return nil
}

func (i *IdP) postTokenRequest(ctx context.Context, form url.Values) (*TokenSet, error) {
	endpoint := i.realmURL("protocol/openid-connect/token")
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := i.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, err
	}

	tokenSet := &TokenSet{}
	if err := json.NewDecoder(response.Body).Decode(tokenSet); err != nil {
		return nil, fmt.Errorf("unable to parse token response: %w", err)
	}
	if tokenSet.AccessToken == "" {
		return nil, errors.New("token response is missing access_token")
	}
	return tokenSet, nil
}

func (i *IdP) baseURL() string {
	return strings.TrimSuffix(i.config.URL, "/")
}

func (i *IdP) realmURL(suffix string) string {
	return i.baseURL() + "/realms/" + i.config.Realm + "/" + suffix
}
