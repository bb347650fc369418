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
	"time"

	"github.com/rushi-tekdi/ulp-bff/core"
)

// Config holds the configuration for the IdP engine.
type Config struct {
	// URL is the base URL of the OAuth2 identity provider (e.g. https://idp.example.com/auth/).
	URL string `koanf:"url"`
	// Realm is the IdP realm owning the user accounts.
	Realm string `koanf:"realm"`
	// ClientID is the client used for the client_credentials and password grants.
	ClientID string `koanf:"clientid"`
	// ClientSecret is the secret for ClientID.
	ClientSecret string `koanf:"clientsecret"`
	// Timeout for outbound calls to the IdP.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default configuration for the IdP engine.
func DefaultConfig() Config {
	return Config{
		Timeout: core.DefaultHTTPTimeout,
	}
}
