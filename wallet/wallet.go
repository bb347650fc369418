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
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/wallet/log"
)

// ModuleName is the name of this engine.
const ModuleName = "Wallet"

// AccountKind selects the Wallet OAuth client: the end-user ewallet flow or the staff portal flow.
type AccountKind string

const (
	// AccountEwallet is the end-user flow, backing student identities.
	AccountEwallet AccountKind = "ewallet"
	// AccountPortal is the staff flow, backing teacher and school identities.
	AccountPortal AccountKind = "portal"
)

// ParseAccountKind parses the given string into an AccountKind.
func ParseAccountKind(value string) (AccountKind, error) {
	switch AccountKind(value) {
	case AccountEwallet:
		return AccountEwallet, nil
	case AccountPortal:
		return AccountPortal, nil
	}
	return "", fmt.Errorf("unsupported account kind: %s", value)
}

var (
	// ErrExchange is returned when the authorization code could not be exchanged for tokens.
	ErrExchange = errors.New("wallet: code exchange failed")
)

// DefaultSalt is the salt mixed into the deterministic password derivation.
const DefaultSalt = "MjQFlAJOQSlWIQJHOEDhod"

// AccountConfig holds the OAuth client settings of one account kind.
type AccountConfig struct {
	ClientID     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
	CallbackURL  string `koanf:"callbackurl"`
}

// Config holds the configuration for the Wallet engine.
type Config struct {
	// AuthorizeEndpoint is the Wallet's OAuth2 authorization endpoint.
	AuthorizeEndpoint string `koanf:"authorizeendpoint"`
	// TokenEndpoint is the Wallet's OAuth2 token endpoint.
	TokenEndpoint string `koanf:"tokenendpoint"`
	// Ewallet holds the client settings for the end-user flow.
	Ewallet AccountConfig `koanf:"ewallet"`
	// Portal holds the client settings for the staff flow.
	Portal AccountConfig `koanf:"portal"`
	// Salt is mixed into the deterministic password derivation.
	Salt string `koanf:"salt"`
	// Timeout for outbound calls to the Wallet.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default configuration for the Wallet engine.
func DefaultConfig() Config {
	return Config{
		AuthorizeEndpoint: "https://digilocker.meripehchaan.gov.in/public/oauth2/1/authorize",
		TokenEndpoint:     "https://digilocker.meripehchaan.gov.in/public/oauth2/2/token",
		Salt:              DefaultSalt,
		Timeout:           core.DefaultHTTPTimeout,
	}
}

// TokenResponse is the Wallet's token endpoint response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	// Raw is the complete response body, forwarded to API callers alongside the outcome.
	Raw json.RawMessage `json:"-"`
}

// Linker is the engine that bridges the third-party document-wallet OAuth flow.
type Linker struct {
	config Config
	client core.HTTPRequestDoer
}

// New creates a new Wallet linker engine with default configuration.
func New() *Linker {
	return &Linker{config: DefaultConfig()}
}

func (l *Linker) Name() string {
	return ModuleName
}

func (l *Linker) ConfigKey() string {
	return "wallet"
}

func (l *Linker) Config() interface{} {
	return &l.config
}

// Configure validates the configuration and prepares the HTTP client.
func (l *Linker) Configure(serverConfig core.ServerConfig) error {
	if l.config.Ewallet.ClientID == "" || l.config.Portal.ClientID == "" {
		return errors.New("wallet.ewallet and wallet.portal client settings must be configured")
	}
	l.client = core.NewStrictHTTPClient(serverConfig.Strictmode, l.config.Timeout, nil)
	return nil
}

func (l *Linker) accountConfig(kind AccountKind) AccountConfig {
	if kind == AccountPortal {
		return l.config.Portal
	}
	return l.config.Ewallet
}

// AuthorizeURL builds the Wallet authorization URL for the given account kind.
// The account kind travels as OAuth state so the callback can resume the right flow.
func (l *Linker) AuthorizeURL(kind AccountKind) string {
	account := l.accountConfig(kind)
	query := url.Values{}
	query.Set("client_id", account.ClientID)
	query.Set("response_type", "code")
	query.Set("redirect_uri", account.CallbackURL)
	query.Set("state", string(kind))
	return l.config.AuthorizeEndpoint + "?" + query.Encode()
}

// ExchangeCode posts the authorization code to the Wallet token endpoint and decodes
// the claims from the returned identity token.
//
// The identity token's signature is NOT verified: the token is accepted on the strength
// of the direct server-to-server channel to the Wallet. This is a deliberate trust boundary.
func (l *Linker) ExchangeCode(ctx context.Context, kind AccountKind, code string) (*TokenResponse, *Claims, error) {
	account := l.accountConfig(kind)
	form := url.Values{}
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", account.ClientID)
	form.Set("client_secret", account.ClientSecret)
	form.Set("redirect_uri", account.CallbackURL)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, l.config.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, errors.Join(ErrExchange, err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := l.client.Do(request)
	if err != nil {
		return nil, nil, errors.Join(ErrExchange, err)
	}
	defer response.Body.Close()
	if err := core.TestResponseCodeWithLog(http.StatusOK, response, log.Logger()); err != nil {
		return nil, nil, errors.Join(ErrExchange, err)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, errors.Join(ErrExchange, err)
	}
	tokenResponse := &TokenResponse{Raw: data}
	if err := json.Unmarshal(data, tokenResponse); err != nil {
		return nil, nil, errors.Join(ErrExchange, fmt.Errorf("unable to parse token response: %w", err))
	}
	if tokenResponse.IDToken == "" {
		return nil, nil, errors.Join(ErrExchange, errors.New("token response is missing id_token"))
	}

	claims, err := decodeIDToken(tokenResponse.IDToken)
	if err != nil {
		return nil, nil, errors.Join(ErrExchange, err)
	}
	log.Logger().WithField("sub", claims.Sub).Debug("Exchanged Wallet authorization code")
	return tokenResponse, claims, nil
}

// UsernameFor derives the deterministic IdP username for the given account kind and claims.
func (l *Linker) UsernameFor(kind AccountKind, claims Claims) string {
	if kind == AccountPortal {
		return DeriveTeacherUsername(claims.Sub)
	}
	return DeriveUsername(claims.GivenName, claims.Dob())
}

// PasswordFor derives the deterministic IdP password for the given username.
func (l *Linker) PasswordFor(username string) string {
	return DerivePassword(username, l.config.Salt)
}

func decodeIDToken(idToken string) (*Claims, error) {
	token, err := jwt.Parse([]byte(idToken), jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, fmt.Errorf("unable to decode id_token: %w", err)
	}
	claims := &Claims{Sub: token.Subject()}
	if value, ok := token.PrivateClaims()["given_name"].(string); ok {
		claims.GivenName = value
	}
	if value, ok := token.PrivateClaims()["birthdate"].(string); ok {
		claims.Birthdate = value
	}
	if value, ok := token.PrivateClaims()["phone_number"].(string); ok {
		claims.PhoneNumber = value
	}
	return claims, nil
}
